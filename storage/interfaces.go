package storage

import "shopscrape/models"

// DocumentWriter is the interface any storage backend must satisfy.
type DocumentWriter interface {
	Write(doc *models.Document) error
	Close() error
}
