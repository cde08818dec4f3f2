package shop

import (
	"time"

	"shopscrape/models"
	"shopscrape/services"
	"shopscrape/utils"
)

// collectReviews drives the "load more" review feed. Each round
// re-scans every loaded block, because the button extends the same
// container in place. The pass halts permanently the first time a
// review older than the cutoff year appears; reviews are served newest
// first, so nothing valid can follow it. Otherwise it ends when the
// button is missing, hidden, or stops producing new blocks in time.
func (s *Scraper) collectReviews() ([]models.Review, error) {
	if err := s.driver.Navigate(s.cfg.BaseURL + "/reviews"); err != nil {
		return nil, ErrSessionLost{Err: err}
	}

	seen := utils.NewKeySet()
	reviews := make([]models.Review, 0)
	waitTimeout := time.Duration(s.cfg.LoadMoreTimeoutMs) * time.Millisecond

	for {
		blocks, err := s.driver.Blocks(reviewSelector)
		if err != nil {
			return nil, ErrSessionLost{Err: err}
		}

		reachedCutoff := false
		for _, block := range blocks {
			year, ok := services.ReviewYear(block.Text)
			if !ok {
				continue
			}
			if year < s.cfg.CutoffYear {
				s.logger.Info("[reviews] Encountered review from %d — stopping", year)
				reachedCutoff = true
				break
			}

			review := services.ParseReview(block.Text, block.Stars)
			if review == nil {
				continue
			}
			if !seen.Add(review.Text) {
				continue
			}
			reviews = append(reviews, *review)
		}

		if reachedCutoff {
			break
		}

		if err := s.driver.ScrollBottom(); err != nil {
			return nil, ErrSessionLost{Err: err}
		}

		clicked, err := s.driver.ClickVisible(loadMoreSelector)
		if err != nil {
			return nil, ErrSessionLost{Err: err}
		}
		if !clicked {
			s.logger.Info("[reviews] No load-more control — done")
			break
		}

		if !s.driver.WaitMoreBlocks(reviewSelector, len(blocks), waitTimeout) {
			s.logger.Warn("[reviews] Timed out waiting for new blocks — done")
			break
		}
	}

	s.logger.Info("[reviews] Total reviews collected: %d", len(reviews))
	return reviews, nil
}
