package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReviewStartsAtSentinels(t *testing.T) {
	r := NewReview()

	assert.Equal(t, NotAvailable, r.Name)
	assert.Equal(t, 0, r.Rating)
	assert.Equal(t, NotAvailable, r.Date)
	assert.Equal(t, NotAvailable, r.Text)
}

func TestFieldsOrder(t *testing.T) {
	assert.Equal(t, []string{"name", "rating", "date", "text"}, Fields())
}
