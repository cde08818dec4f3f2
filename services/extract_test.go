package services

import (
	"strings"
	"testing"

	"shopscrape/models"
)

func TestParseProductPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dollar price", "Widget\n$12.99 in stock", "$12.99"},
		{"no price", "Widget\nout of stock", models.PriceUnavailable},
		{"euro price", "Gadget\n€4.50", "€4.50"},
		{"bare amount", "Gizmo\n9.99", "9.99"},
		{"integer is not a price", "Gizmo\n15 left", models.PriceUnavailable},
	}

	for _, tt := range tests {
		p := ParseProduct(tt.text)
		if p == nil {
			t.Fatalf("%s: ParseProduct returned nil", tt.name)
		}
		if p.Price != tt.want {
			t.Errorf("%s: price = %q; want %q", tt.name, p.Price, tt.want)
		}
	}
}

func TestParseProductTitle(t *testing.T) {
	p := ParseProduct("Box of Chocolate Candy\n$9.99")
	if p == nil || p.Title != "Box of Chocolate Candy" {
		t.Fatalf("got %+v; want title from first line", p)
	}

	if p := ParseProduct("Log in\n$9.99"); p != nil {
		t.Errorf("navigation artifact accepted as product: %+v", p)
	}
	if p := ParseProduct("   \n$9.99"); p != nil {
		t.Errorf("empty title accepted as product: %+v", p)
	}
}

func TestRatingDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{0, 5},
		{-1, 5},
		{1, 1},
		{3, 3},
		{5, 5},
		{7, 5},
	}

	for _, tt := range tests {
		if got := Rating(tt.stars); got != tt.want {
			t.Errorf("Rating(%d) = %d; want %d", tt.stars, got, tt.want)
		}
	}
}

func TestParseReview(t *testing.T) {
	text := "Jane D.\nJan 15, 2023\nAbsolutely loved this product, would buy again in a heartbeat\nVerified purchase"

	r := ParseReview(text, 4)
	if r == nil {
		t.Fatal("ParseReview returned nil")
	}
	if r.Date != "Jan 15, 2023" {
		t.Errorf("date = %q; want the year-bearing line verbatim", r.Date)
	}
	if r.Text != "Absolutely loved this product, would buy again in a heartbeat" {
		t.Errorf("text = %q; want longest line", r.Text)
	}
	if r.Rating != 4 {
		t.Errorf("rating = %d; want 4", r.Rating)
	}
}

func TestParseReviewNoYear(t *testing.T) {
	if r := ParseReview("Jane D.\nGreat product\nVerified purchase", 3); r != nil {
		t.Errorf("block without a year token should yield nil, got %+v", r)
	}
}

func TestParseReviewZeroStarsDefaultsToFive(t *testing.T) {
	r := ParseReview("Mar 2024\nSolid build quality and fast shipping", 0)
	if r == nil {
		t.Fatal("ParseReview returned nil")
	}
	if r.Rating != 5 {
		t.Errorf("rating = %d; want default 5", r.Rating)
	}
}

func TestReviewYear(t *testing.T) {
	year, ok := ReviewYear("Jane D.\nDec 2022\nsome text")
	if !ok || year != 2022 {
		t.Errorf("got (%d, %v); want (2022, true)", year, ok)
	}

	if _, ok := ReviewYear("no dates here"); ok {
		t.Error("expected no year in block without a token")
	}
}

func TestParseTestimonialLengthFilter(t *testing.T) {
	if got := ParseTestimonial("too short", 3); got != nil {
		t.Errorf("short testimonial accepted: %+v", got)
	}
	if got := ParseTestimonial(strings.Repeat("very long ", 50), 3); got != nil {
		t.Errorf("overlong testimonial accepted: %+v", got)
	}

	// Exactly 10 runes is still rejected (exclusive bound).
	if got := ParseTestimonial("abcdefghij", 3); got != nil {
		t.Errorf("10-rune testimonial accepted: %+v", got)
	}
}

func TestParseTestimonialBoilerplateFilter(t *testing.T) {
	tests := []string{
		"Take a look at our newest arrivals before they sell out",
		"Browse the whole collection in our store today friends",
	}
	for _, text := range tests {
		if got := ParseTestimonial(text, 3); got != nil {
			t.Errorf("boilerplate accepted: %+v", got)
		}
	}
}

func TestParseTestimonialCollapsesWhitespace(t *testing.T) {
	got := ParseTestimonial("Great   product,\nwould\trecommend to anyone", 2)
	if got == nil {
		t.Fatal("ParseTestimonial returned nil")
	}
	if got.Text != "Great product, would recommend to anyone" {
		t.Errorf("text = %q; want collapsed whitespace", got.Text)
	}
	if got.Rating != 2 {
		t.Errorf("rating = %d; want 2", got.Rating)
	}
}
