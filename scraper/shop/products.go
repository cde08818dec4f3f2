package shop

import (
	"fmt"

	"shopscrape/models"
	"shopscrape/services"
	"shopscrape/utils"
)

// collectProducts walks the numbered product pages starting at page 1.
// The pass ends when a page yields no cards at all, or when a full
// page of cards produces no newly accepted titles. Either condition
// legitimately signals end-of-data on this site.
func (s *Scraper) collectProducts() ([]models.Product, error) {
	seen := utils.NewKeySet()
	products := make([]models.Product, 0)

	for page := 1; ; page++ {
		if page > s.cfg.MaxProductPages {
			s.logger.Warn("[products] Reached page bound %d — stopping", s.cfg.MaxProductPages)
			break
		}
		url := fmt.Sprintf("%s/products?page=%d", s.cfg.BaseURL, page)
		if err := s.driver.Navigate(url); err != nil {
			return nil, ErrSessionLost{Err: err}
		}

		cards, err := s.driver.Blocks(productCardSelector)
		if err != nil {
			return nil, ErrSessionLost{Err: err}
		}
		if len(cards) == 0 {
			s.logger.Info("[products] Page %d has no cards — done", page)
			break
		}

		newlyAdded := 0
		for _, card := range cards {
			product := services.ParseProduct(card.Text)
			if product == nil {
				continue
			}
			if !seen.Add(product.Title) {
				continue
			}
			products = append(products, *product)
			newlyAdded++
		}

		s.logger.Info("[products] Page %d: +%d", page, newlyAdded)
		if newlyAdded == 0 {
			break
		}
	}

	return products, nil
}
