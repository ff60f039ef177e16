package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		Title:      "Portable Blender Pro X",
		Category:   "Fitness",
		Media:      []Media{{URL: "https://example.com/img.jpg", Kind: "image"}},
		Price:      PriceInfo{SupplierPrice: 16.0, TargetPrice: 49.99, Currency: "USD", MarginX: 3.1},
		TrendScore: 89,
		Stock:      250,
	}
}

func TestProductValidate_TrendScoreBounds(t *testing.T) {
	p := validProduct()
	require.NoError(t, p.Validate())

	for _, score := range []float64{0, 50, 100} {
		p.TrendScore = score
		assert.NoError(t, p.Validate(), "trend_score %v doit être accepté", score)
	}

	for _, score := range []float64{-1, 100.5, 101} {
		p.TrendScore = score
		assert.Error(t, p.Validate(), "trend_score %v doit être rejeté", score)
	}
}

func TestReviewValidate_RatingBounds(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		r := Review{Name: "Sam", Rating: rating, Comment: "ok"}
		assert.NoError(t, r.Validate())
	}
	for _, rating := range []int{0, -1, 6} {
		r := Review{Name: "Sam", Rating: rating, Comment: "ok"}
		assert.Error(t, r.Validate(), "rating %d doit être rejeté", rating)
	}
}

func TestProductValidate_RejectsBadNestedReview(t *testing.T) {
	p := validProduct()
	p.Reviews = []Review{{Name: "Sam", Rating: 6, Comment: "trop bien"}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reviews[0]")
}

func TestMediaValidate_KindDefaultsToImage(t *testing.T) {
	m := Media{URL: "https://example.com/a.jpg"}
	require.NoError(t, m.Validate())
	assert.Equal(t, "image", m.Kind)

	m = Media{URL: "https://example.com/a.bin", Kind: "pdf"}
	assert.Error(t, m.Validate())
}

func TestProductValidate_RequiredFieldsAndStock(t *testing.T) {
	p := validProduct()
	p.Title = ""
	assert.Error(t, p.Validate())

	p = validProduct()
	p.Category = ""
	assert.Error(t, p.Validate())

	p = validProduct()
	p.Stock = -1
	assert.Error(t, p.Validate())
}
