package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedCatalog(t *testing.T) {
	c := Seed()
	list := c.List()
	assert.Len(t, list, 4)

	p, ok := c.Get("1")
	assert.True(t, ok)
	assert.Equal(t, "Chaunsa Standard Box", p.Name)
	assert.Equal(t, 1500, p.Price)
	assert.Equal(t, CategoryStandard, p.Category)

	_, ok = c.Get("999")
	assert.False(t, ok)
}

func TestAddReview(t *testing.T) {
	c := Seed()
	rv, err := c.AddReview("3", "Hassan B.", 4, "Great for the whole family.")
	assert.NoError(t, err)
	assert.NotEmpty(t, rv.ID)
	assert.Equal(t, 4, rv.Rating)

	p, _ := c.Get("3")
	assert.Len(t, p.Reviews, 1)
}

func TestAddReviewRejectsBadInput(t *testing.T) {
	c := Seed()

	_, err := c.AddReview("1", "X", 0, "meh")
	assert.ErrorIs(t, err, ErrBadRating)
	_, err = c.AddReview("1", "X", 6, "meh")
	assert.ErrorIs(t, err, ErrBadRating)
	_, err = c.AddReview("1", "", 3, "meh")
	assert.ErrorIs(t, err, ErrBadReview)
	_, err = c.AddReview("unknown", "X", 3, "meh")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	c := Seed()
	list := c.List()
	list[0].Reviews = append(list[0].Reviews, Review{ID: "fake"})
	list[0].Name = "tampered"

	fresh, _ := c.Get(list[0].ID)
	assert.NotEqual(t, "tampered", fresh.Name)
	for _, rv := range fresh.Reviews {
		assert.NotEqual(t, "fake", rv.ID)
	}
}
