package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"shopscrape/models"
)

// PostgresWriter mirrors the collected document into PostgreSQL for
// ad-hoc querying. It is an optional sink; the JSON document remains
// the primary artifact.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id         SERIAL PRIMARY KEY,
			title      TEXT        UNIQUE NOT NULL,
			price      TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS reviews (
			id          SERIAL PRIMARY KEY,
			review_date TEXT        NOT NULL,
			body        TEXT        UNIQUE NOT NULL,
			rating      INT         NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS testimonials (
			id         SERIAL PRIMARY KEY,
			body       TEXT        UNIQUE NOT NULL,
			rating     INT         NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_reviews_rating      ON reviews(rating);
		CREATE INDEX IF NOT EXISTS idx_testimonials_rating ON testimonials(rating);
	`)
	return err
}

// Write replaces the stored record sets with the document's contents,
// inside one transaction.
func (pw *PostgresWriter) Write(doc *models.Document) error {
	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM products; DELETE FROM reviews; DELETE FROM testimonials"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	for _, p := range doc.Products {
		if _, err := tx.Exec(
			`INSERT INTO products (title, price) VALUES ($1, $2) ON CONFLICT (title) DO NOTHING`,
			p.Title, p.Price,
		); err != nil {
			return fmt.Errorf("postgres: insert product: %w", err)
		}
	}

	for _, r := range doc.Reviews {
		if _, err := tx.Exec(
			`INSERT INTO reviews (review_date, body, rating) VALUES ($1, $2, $3) ON CONFLICT (body) DO NOTHING`,
			r.Date, r.Text, r.Rating,
		); err != nil {
			return fmt.Errorf("postgres: insert review: %w", err)
		}
	}

	for _, t := range doc.Testimonials {
		if _, err := tx.Exec(
			`INSERT INTO testimonials (body, rating) VALUES ($1, $2) ON CONFLICT (body) DO NOTHING`,
			t.Text, t.Rating,
		); err != nil {
			return fmt.Errorf("postgres: insert testimonial: %w", err)
		}
	}

	return tx.Commit()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
