package shop

import (
	"shopscrape/config"
	"shopscrape/models"
	"shopscrape/utils"
)

const (
	productCardSelector = "div.product-item, div[class*='product']"
	reviewSelector      = ".review"
	loadMoreSelector    = "#page-load-more"
	testimonialSelector = "div[class*='testimonial']"
)

// Scraper runs the three collection passes over one browser session
// and assembles the output document.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	driver PageDriver
}

// New creates a Scraper that will drive a real browser session.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{cfg: cfg, logger: logger}
}

// Scrape acquires a browser session, runs the product, review and
// testimonial passes in order, and returns the assembled document.
// The session is released on every exit path. Any session-level
// failure aborts the whole run: no partial document is ever returned.
func (s *Scraper) Scrape() (*models.Document, error) {
	session, err := NewSession(s.cfg, s.logger)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	s.driver = newChromedpDriver(session, s.cfg, s.logger)
	return s.collect()
}

func (s *Scraper) collect() (*models.Document, error) {
	doc := models.NewDocument()

	s.logger.Info("[shop] Collecting products...")
	products, err := s.collectProducts()
	if err != nil {
		return nil, err
	}
	doc.Products = products

	s.logger.Info("[shop] Collecting reviews (%d and newer)...", s.cfg.CutoffYear)
	reviews, err := s.collectReviews()
	if err != nil {
		return nil, err
	}
	doc.Reviews = reviews

	s.logger.Info("[shop] Collecting testimonials...")
	testimonials, err := s.collectTestimonials()
	if err != nil {
		return nil, err
	}
	doc.Testimonials = testimonials

	s.logger.Info("[shop] Collection complete — %d products, %d reviews, %d testimonials",
		len(doc.Products), len(doc.Reviews), len(doc.Testimonials))
	return doc, nil
}
