package models

// PriceUnavailable is the sentinel stored when no price pattern matched
// the card text. Downstream consumers expect price as a display string,
// so absence is encoded in-band rather than as an empty field.
const PriceUnavailable = "unavailable"

// Product is one entry from the paginated product listing.
// Title is the dedup key.
type Product struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

// Review is one customer review from the "load more" review feed.
// Date keeps the source display text verbatim (downstream parses it).
// Text is the dedup key.
type Review struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Testimonial is one card from the infinite-scroll testimonial wall.
// Text is the dedup key.
type Testimonial struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Document is the single output artifact of a run. Field names and
// nesting are the compatibility contract with the presentation layer.
type Document struct {
	Products     []Product     `json:"products"`
	Reviews      []Review      `json:"reviews"`
	Testimonials []Testimonial `json:"testimonials"`
}

// NewDocument returns a Document with all three lists allocated, so
// empty results serialize as [] rather than null.
func NewDocument() *Document {
	return &Document{
		Products:     make([]Product, 0),
		Reviews:      make([]Review, 0),
		Testimonials: make([]Testimonial, 0),
	}
}

// Summary holds the computed end-of-run statistics over a Document.
type Summary struct {
	ProductCount     int
	ProductsPriced   int
	ReviewCount      int
	AvgReviewRating  float64
	OldestReviewDate string
	NewestReviewDate string
	TestimonialCount int
	AvgTestimonial   float64
}
