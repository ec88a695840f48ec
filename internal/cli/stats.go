package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/abertrand/vitrine/internal/query"
)

// Stats prints the aggregate figures for the session user's listings.
func (a *App) Stats(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Aucun utilisateur connecté.")
		return nil
	}

	stats := query.ComputeStats(a.catalog.Snapshot().Products, u)

	printlnFn(fmt.Sprintf("Annonces : %d (%d actives, %d inactives)",
		stats.TotalCount, stats.ActiveCount, stats.InactiveCount))
	printlnFn(fmt.Sprintf("Prix moyen : %.2f €", stats.AveragePrice))
	printlnFn(fmt.Sprintf("Valeur totale : %.2f €", stats.TotalValue))
	if len(stats.Categories) > 0 {
		printlnFn("Catégories :", strings.Join(stats.Categories, ", "))
	}
	return nil
}
