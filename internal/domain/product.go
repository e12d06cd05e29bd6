package domain

import "unicode/utf8"

// summaryLength is the number of characters of a description shown in list views
const summaryLength = 100

// Product represents a single catalog entry as returned by the catalog API
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// Rating is the optional customer rating block served alongside a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Summary returns the description cut to summaryLength characters for list views.
// Longer descriptions are suffixed with "...".
func (p Product) Summary() string {
	if utf8.RuneCountInString(p.Description) <= summaryLength {
		return p.Description
	}
	runes := []rune(p.Description)
	return string(runes[:summaryLength]) + "..."
}

// FindProduct returns the product with the given id from a catalog
func FindProduct(catalog []Product, id int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
