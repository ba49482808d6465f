package models

// Review is one customer review extracted from a product's review listing.
// Fields that are missing in the page resolve to sentinels, never to a
// dropped record: "N/A" for the string fields, 0 for the rating.
type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
	Text   string `json:"text"`
}

// Sentinel value for absent name/date/text elements.
const NotAvailable = "N/A"

// NewReview returns a review with every field set to its sentinel.
func NewReview() Review {
	return Review{
		Name:   NotAvailable,
		Rating: 0,
		Date:   NotAvailable,
		Text:   NotAvailable,
	}
}

// Fields returns the CSV column names in output order.
func Fields() []string {
	return []string{"name", "rating", "date", "text"}
}
