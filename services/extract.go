package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"shopscrape/models"
)

var (
	// priceRegexp captures an optional currency symbol followed by a
	// two-decimal amount, e.g. "$12.99" or "€ 4.50".
	priceRegexp = regexp.MustCompile(`[$€£]?\s*\d+\.\d{2}`)
	// yearRegexp captures a 4-digit year token in review metadata lines.
	yearRegexp = regexp.MustCompile(`20\d{2}`)
)

// navArtifact is the site's login link text, which leaks into product
// card innerText on some pages and must never become a title.
const navArtifact = "log in"

// boilerplateMarkers identify promotional filler cards interleaved with
// real testimonials.
var boilerplateMarkers = []string{"Take a look", "collection"}

const (
	testimonialMinLen = 10
	testimonialMaxLen = 400
)

// Rating converts a raw star-marker count into the 0–5 rating stored on
// records. Zero markers means the markup variant without inline stars,
// which the site only uses for top-rated entries, so absence defaults
// to 5 rather than 0.
func Rating(stars int) int {
	if stars <= 0 {
		return 5
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// ParseProduct extracts a Product from a card's raw innerText. The
// first line is the title; the price is the first currency-amount match
// anywhere in the block. Returns nil for blocks with no usable title.
func ParseProduct(text string) *models.Product {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	title := strings.TrimSpace(lines[0])
	if title == "" || strings.EqualFold(title, navArtifact) {
		return nil
	}

	price := strings.TrimSpace(priceRegexp.FindString(text))
	if price == "" {
		price = models.PriceUnavailable
	}

	return &models.Product{Title: title, Price: price}
}

// ReviewYear returns the year found on a review block's date line, or
// false if no line carries a year token. The pagination strategy uses
// this for its temporal cutoff before the block is parsed into a record.
func ReviewYear(text string) (int, bool) {
	line, ok := dateLine(text)
	if !ok {
		return 0, false
	}
	year, err := strconv.Atoi(yearRegexp.FindString(line))
	if err != nil {
		return 0, false
	}
	return year, true
}

// ParseReview extracts a Review from a block's raw innerText plus its
// star-marker count. The date keeps the source line verbatim; the
// review body is taken as the longest line, since metadata lines
// (name, date, verified badge) are consistently shorter. Returns nil
// when no line carries a year token.
func ParseReview(text string, stars int) *models.Review {
	date, ok := dateLine(text)
	if !ok {
		return nil
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	body := lines[0]
	for _, line := range lines[1:] {
		if len(line) > len(body) {
			body = line
		}
	}

	return &models.Review{
		Date:   date,
		Text:   body,
		Rating: Rating(stars),
	}
}

// ParseTestimonial extracts a Testimonial from a card's raw innerText
// plus its star-marker count. Whitespace is collapsed to single spaces.
// Cards that are too short, too long, or contain boilerplate marker
// substrings are rejected.
func ParseTestimonial(text string, stars int) *models.Testimonial {
	collapsed := strings.Join(strings.Fields(text), " ")

	n := utf8.RuneCountInString(collapsed)
	if n <= testimonialMinLen || n >= testimonialMaxLen {
		return nil
	}
	for _, marker := range boilerplateMarkers {
		if strings.Contains(collapsed, marker) {
			return nil
		}
	}

	return &models.Testimonial{
		Text:   collapsed,
		Rating: Rating(stars),
	}
}

// dateLine finds the first line of a review block containing a year
// token. Reviews without one are metadata-only fragments and are
// skipped entirely.
func dateLine(text string) (string, bool) {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if yearRegexp.MatchString(line) {
			return line, true
		}
	}
	return "", false
}
