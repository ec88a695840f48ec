// Package query holds the pure functions for searching, filtering, and
// aggregating the product collection. Nothing here touches storage.
package query

import (
	"strings"

	"github.com/abertrand/vitrine/internal/models"
)

// Filter selects a subset of the collection. All set criteria must match
// (AND semantics); zero-value criteria are no-ops.
type Filter struct {
	Category   string
	Seller     string
	MinPrice   *float64
	MaxPrice   *float64
	ActiveOnly bool

	// Query is the free-text search applied on top of the other criteria,
	// with the same four-field substring semantics as the product store.
	Query string
}

// MatchesText reports whether the query is a case-insensitive substring of
// the product's name, description, category, or seller. The empty query
// matches every product.
func MatchesText(p models.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Seller), q)
}

// Matches reports whether p satisfies every set criterion of f.
func (f Filter) Matches(p models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Seller != "" && p.Seller != f.Seller {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.ActiveOnly && !p.IsActive {
		return false
	}
	if f.Query != "" && !MatchesText(p, f.Query) {
		return false
	}
	return true
}

// Apply returns the products matching f, preserving the original order.
func Apply(products []models.Product, f Filter) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// OwnedBy reports whether the product belongs to the given session user.
// This is the client-side gating check for edit/delete actions, not a
// security boundary.
func OwnedBy(p models.Product, u *models.SessionUser) bool {
	if u == nil {
		return false
	}
	if p.CreatedBy != "" && p.CreatedBy == u.Email {
		return true
	}
	return p.UserID != "" && p.UserID == u.ID
}
