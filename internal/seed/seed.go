// Package seed bundles the default datasets used to initialize a persisted
// collection the first time it is loaded.
package seed

import (
	_ "embed"
	"encoding/json"

	"github.com/abertrand/vitrine/internal/models"
)

//go:embed users.json
var usersJSON []byte

//go:embed products.json
var productsJSON []byte

// Users returns the bundled default user list.
func Users() []models.User {
	var users []models.User
	// The datasets are embedded and validated by tests; a decode failure
	// here is a programming error.
	if err := json.Unmarshal(usersJSON, &users); err != nil {
		panic(err)
	}
	return users
}

// Products returns the bundled default product list.
func Products() []models.Product {
	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		panic(err)
	}
	return products
}
