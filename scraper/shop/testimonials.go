package shop

import (
	"shopscrape/models"
	"shopscrape/services"
	"shopscrape/utils"
)

// collectTestimonials scrolls the infinite-scroll wall until the
// document height stops growing, then does a single full scan of the
// stabilized page. Testimonials are not collected per scroll step:
// the wall keeps earlier cards in the DOM, so one scan sees them all.
func (s *Scraper) collectTestimonials() ([]models.Testimonial, error) {
	if err := s.driver.Navigate(s.cfg.BaseURL + "/testimonials"); err != nil {
		return nil, ErrSessionLost{Err: err}
	}

	lastHeight, err := s.driver.ScrollHeight()
	if err != nil {
		return nil, ErrSessionLost{Err: err}
	}

	for {
		if err := s.driver.ScrollBottom(); err != nil {
			return nil, ErrSessionLost{Err: err}
		}

		height, err := s.driver.ScrollHeight()
		if err != nil {
			return nil, ErrSessionLost{Err: err}
		}
		if height == lastHeight {
			break
		}
		lastHeight = height
	}

	cards, err := s.driver.Blocks(testimonialSelector)
	if err != nil {
		return nil, ErrSessionLost{Err: err}
	}

	seen := utils.NewKeySet()
	testimonials := make([]models.Testimonial, 0)

	for _, card := range cards {
		testimonial := services.ParseTestimonial(card.Text, card.Stars)
		if testimonial == nil {
			continue
		}
		if !seen.Add(testimonial.Text) {
			continue
		}
		testimonials = append(testimonials, *testimonial)
	}

	s.logger.Info("[testimonials] Total testimonials collected: %d", len(testimonials))
	return testimonials, nil
}
