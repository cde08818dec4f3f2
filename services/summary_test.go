package services

import (
	"testing"

	"shopscrape/models"
	"shopscrape/utils"
)

func TestSummaryGenerate(t *testing.T) {
	doc := &models.Document{
		Products: []models.Product{
			{Title: "A", Price: "$9.99"},
			{Title: "B", Price: models.PriceUnavailable},
		},
		Reviews: []models.Review{
			{Date: "Mar 2024", Text: "great", Rating: 5},
			{Date: "Jan 2023", Text: "fine", Rating: 4},
		},
		Testimonials: []models.Testimonial{
			{Text: "would recommend to anyone", Rating: 3},
		},
	}

	sum := NewSummaryService(utils.NewLogger()).Generate(doc)

	if sum.ProductCount != 2 || sum.ProductsPriced != 1 {
		t.Errorf("products: got count=%d priced=%d; want 2/1", sum.ProductCount, sum.ProductsPriced)
	}
	if sum.AvgReviewRating != 4.5 {
		t.Errorf("avg review rating = %.2f; want 4.50", sum.AvgReviewRating)
	}
	if sum.NewestReviewDate != "Mar 2024" || sum.OldestReviewDate != "Jan 2023" {
		t.Errorf("date span = %q … %q", sum.OldestReviewDate, sum.NewestReviewDate)
	}
	if sum.AvgTestimonial != 3 {
		t.Errorf("avg testimonial rating = %.2f; want 3.00", sum.AvgTestimonial)
	}
}

func TestSummaryEmptyDocument(t *testing.T) {
	sum := NewSummaryService(utils.NewLogger()).Generate(models.NewDocument())

	if sum.ProductCount != 0 || sum.ReviewCount != 0 || sum.TestimonialCount != 0 {
		t.Errorf("empty document produced non-zero counts: %+v", sum)
	}
}
