package services

import (
	"math"

	"shopscrape/models"
	"shopscrape/utils"
)

// SummaryService computes and reports end-of-run statistics over the
// collected document.
type SummaryService struct {
	logger *utils.Logger
}

// NewSummaryService creates a SummaryService with the given logger.
func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate computes counts, rating averages and price coverage.
func (s *SummaryService) Generate(doc *models.Document) *models.Summary {
	sum := &models.Summary{
		ProductCount:     len(doc.Products),
		ReviewCount:      len(doc.Reviews),
		TestimonialCount: len(doc.Testimonials),
	}

	for _, p := range doc.Products {
		if p.Price != models.PriceUnavailable {
			sum.ProductsPriced++
		}
	}

	if len(doc.Reviews) > 0 {
		total := 0
		for _, r := range doc.Reviews {
			total += r.Rating
		}
		sum.AvgReviewRating = round2(float64(total) / float64(len(doc.Reviews)))

		// Reviews arrive newest first, so the span is first..last.
		sum.NewestReviewDate = doc.Reviews[0].Date
		sum.OldestReviewDate = doc.Reviews[len(doc.Reviews)-1].Date
	}

	if len(doc.Testimonials) > 0 {
		total := 0
		for _, t := range doc.Testimonials {
			total += t.Rating
		}
		sum.AvgTestimonial = round2(float64(total) / float64(len(doc.Testimonials)))
	}

	return sum
}

// Print writes the summary through the logger.
func (s *SummaryService) Print(sum *models.Summary) {
	s.logger.Info("=== Collection summary ===")
	s.logger.Info("Products     : %d (%d with a price)", sum.ProductCount, sum.ProductsPriced)
	if sum.ReviewCount > 0 {
		s.logger.Info("Reviews      : %d (avg rating %.2f, %s … %s)",
			sum.ReviewCount, sum.AvgReviewRating, sum.OldestReviewDate, sum.NewestReviewDate)
	} else {
		s.logger.Info("Reviews      : 0")
	}
	if sum.TestimonialCount > 0 {
		s.logger.Info("Testimonials : %d (avg rating %.2f)", sum.TestimonialCount, sum.AvgTestimonial)
	} else {
		s.logger.Info("Testimonials : 0")
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
