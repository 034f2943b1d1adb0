package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryPremium  Category = "Premium"
	CategoryBulk     Category = "Bulk"
)

type Review struct {
	ID      string `json:"id"`
	Author  string `json:"userName"`
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`
	Date    string `json:"date"` // YYYY-MM-DD
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // rupees
	Unit        string   `json:"unit"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock"` // display counter only, never reserved
	Reviews     []Review `json:"reviews"`
}

var (
	ErrNotFound  = errors.New("product not found")
	ErrBadRating = errors.New("rating must be between 1 and 5")
	ErrBadReview = errors.New("review needs an author and a comment")
)

// Catalog holds the harvest on offer. The product set is fixed at startup;
// the only runtime mutation is appending reviews, and those live in process
// memory only. A restart loses them, same as a browser reload did.
type Catalog struct {
	mu       sync.Mutex
	products []Product
	now      func() time.Time
}

func New(products []Product) *Catalog {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp, now: time.Now}
}

func (c *Catalog) List() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p
		out[i].Reviews = append([]Review(nil), p.Reviews...)
	}
	return out
}

func (c *Catalog) Get(id string) (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			p.Reviews = append([]Review(nil), p.Reviews...)
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) AddReview(productID, author string, rating int, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrBadRating
	}
	if author == "" || comment == "" {
		return Review{}, ErrBadReview
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == productID {
			rv := Review{
				ID:      uuid.NewString(),
				Author:  author,
				Rating:  rating,
				Comment: comment,
				Date:    c.now().Format("2006-01-02"),
			}
			c.products[i].Reviews = append(c.products[i].Reviews, rv)
			return rv, nil
		}
	}
	return Review{}, ErrNotFound
}
