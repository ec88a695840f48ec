package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/abertrand/vitrine/internal/models"
	"github.com/abertrand/vitrine/internal/query"
	"github.com/abertrand/vitrine/internal/repositories/products"
	"github.com/abertrand/vitrine/internal/state"
)

func (a *App) showCatalogError() {
	if err := a.catalog.Snapshot().Err; err != nil {
		printlnFn(err.Message)
	}
}

func printProducts(list []models.Product) {
	if len(list) == 0 {
		printlnFn("Aucun produit.")
		return
	}
	for _, p := range list {
		status := "actif"
		if !p.IsActive {
			status = "inactif"
		}
		printlnFn(fmt.Sprintf("%s  %-28s %8.2f €  stock %-3d %-14s %-16s %s",
			p.ID, p.Name, p.Price, p.Stock, p.Category, p.Seller, status))
	}
}

// List reloads the catalog from storage and prints it.
func (a *App) List(ctx context.Context) error {
	a.catalog.Fetch(ctx)
	snap := a.catalog.Snapshot()
	if snap.Err != nil {
		printlnFn(snap.Err.Message)
		return nil
	}
	printProducts(snap.Products)
	return nil
}

// Search prompts for a query and prints matching products. The search
// round-trips through storage; an empty query returns the full collection.
func (a *App) Search(ctx context.Context) error {
	q, err := getSimpleText(a.reader, "Recherche", os.Stdout)
	if err != nil {
		return err
	}

	results := a.catalog.Search(ctx, q)
	if a.catalog.Snapshot().Err != nil {
		a.showCatalogError()
		return nil
	}
	printProducts(results)
	return nil
}

// Filter prompts for filter criteria and applies them to the in-memory
// collection. Empty answers leave a criterion unset.
func (a *App) Filter(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Catégorie (vide pour toutes)", os.Stdout)
	if err != nil {
		return err
	}
	seller, err := getSimpleText(a.reader, "Vendeur (vide pour tous)", os.Stdout)
	if err != nil {
		return err
	}
	minRaw, err := getSimpleText(a.reader, "Prix minimum (vide pour aucun)", os.Stdout)
	if err != nil {
		return err
	}
	maxRaw, err := getSimpleText(a.reader, "Prix maximum (vide pour aucun)", os.Stdout)
	if err != nil {
		return err
	}
	activeRaw, err := getSimpleText(a.reader, "Produits actifs uniquement ? (o/n)", os.Stdout)
	if err != nil {
		return err
	}
	q, err := getSimpleText(a.reader, "Recherche (vide pour aucune)", os.Stdout)
	if err != nil {
		return err
	}

	f := query.Filter{Category: category, Seller: seller, ActiveOnly: activeRaw == "o", Query: q}
	if minRaw != "" {
		min, err := strconv.ParseFloat(minRaw, 64)
		if err != nil {
			printlnFn("Prix minimum invalide.")
			return nil
		}
		f.MinPrice = &min
	}
	if maxRaw != "" {
		max, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil {
			printlnFn("Prix maximum invalide.")
			return nil
		}
		f.MaxPrice = &max
	}

	printProducts(query.Apply(a.catalog.Snapshot().Products, f))
	return nil
}

// AddProduct prompts for the fields of a new listing and creates it.
// Ownership is stamped from the current session by the collection store.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nom", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Catégorie", os.Stdout)
	if err != nil {
		return err
	}
	seller, err := getSimpleText(a.reader, "Vendeur", os.Stdout)
	if err != nil {
		return err
	}
	image, err := getSimpleText(a.reader, "Image (URI)", os.Stdout)
	if err != nil {
		return err
	}
	priceRaw, err := getSimpleText(a.reader, "Prix", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		printlnFn("Prix invalide.")
		return nil
	}
	stockRaw, err := getSimpleText(a.reader, "Stock", os.Stdout)
	if err != nil {
		return err
	}
	stock, err := strconv.Atoi(stockRaw)
	if err != nil {
		printlnFn("Stock invalide.")
		return nil
	}

	a.catalog.Add(ctx, state.AddInput{
		Name:        name,
		Description: description,
		Category:    category,
		Seller:      seller,
		Image:       image,
		Price:       price,
		Stock:       stock,
	})
	if a.catalog.Snapshot().Err != nil {
		a.showCatalogError()
		return nil
	}
	printlnFn("Produit ajouté.")
	return nil
}

// findOwned returns the product with the given id when the session user owns
// it. Ownership gating here is UI courtesy only.
func (a *App) findOwned(id string) (*models.Product, bool) {
	for _, p := range a.catalog.Snapshot().Products {
		if p.ID == id {
			if !query.OwnedBy(p, a.auth.CurrentUser()) {
				printlnFn("Vous ne pouvez modifier que vos propres annonces.")
				return nil, false
			}
			found := p
			return &found, true
		}
	}
	printlnFn("Produit introuvable.")
	return nil, false
}

// EditProduct prompts for an id and new field values. Empty answers keep the
// current value.
func (a *App) EditProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Id du produit à modifier", os.Stdout)
	if err != nil {
		return err
	}
	if _, ok := a.findOwned(id); !ok {
		return nil
	}

	var update products.Update

	name, err := getSimpleText(a.reader, "Nom (vide pour conserver)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		update.Name = &name
	}
	priceRaw, err := getSimpleText(a.reader, "Prix (vide pour conserver)", os.Stdout)
	if err != nil {
		return err
	}
	if priceRaw != "" {
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			printlnFn("Prix invalide.")
			return nil
		}
		update.Price = &price
	}
	stockRaw, err := getSimpleText(a.reader, "Stock (vide pour conserver)", os.Stdout)
	if err != nil {
		return err
	}
	if stockRaw != "" {
		stock, err := strconv.Atoi(stockRaw)
		if err != nil {
			printlnFn("Stock invalide.")
			return nil
		}
		update.Stock = &stock
	}
	activeRaw, err := getSimpleText(a.reader, "Actif ? (o/n, vide pour conserver)", os.Stdout)
	if err != nil {
		return err
	}
	if activeRaw != "" {
		active := activeRaw == "o"
		update.IsActive = &active
	}

	a.catalog.Update(ctx, id, update)
	if a.catalog.Snapshot().Err != nil {
		a.showCatalogError()
		return nil
	}
	printlnFn("Produit mis à jour.")
	return nil
}

// DeleteProduct prompts for an id and removes the listing.
func (a *App) DeleteProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Id du produit à supprimer", os.Stdout)
	if err != nil {
		return err
	}
	if _, ok := a.findOwned(id); !ok {
		return nil
	}

	a.catalog.Delete(ctx, id)
	if a.catalog.Snapshot().Err != nil {
		a.showCatalogError()
		return nil
	}
	printlnFn("Produit supprimé.")
	return nil
}
