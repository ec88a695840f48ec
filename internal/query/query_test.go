package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abertrand/vitrine/internal/models"
)

func sampleCollection() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Blue Lamp", Category: "Maison", Seller: "Atelier Lumen", Price: 20, IsActive: true, CreatedBy: "a@b.com"},
		{ID: "2", Name: "Casque audio", Category: "Électronique", Seller: "SonPlus", Price: 120, IsActive: true, CreatedBy: "a@b.com"},
		{ID: "3", Name: "Tapis", Category: "Maison", Seller: "Maison Kilim", Price: 250, IsActive: false, CreatedBy: "c@d.com"},
	}
}

func TestMatchesText_CaseInsensitiveAcrossFields(t *testing.T) {
	p := models.Product{Name: "Blue Lamp", Description: "Lampe LED", Category: "Maison", Seller: "Atelier"}

	assert.True(t, MatchesText(p, "lamp"))
	assert.True(t, MatchesText(p, "MAISON"))
	assert.True(t, MatchesText(p, "atelier"))
	assert.True(t, MatchesText(p, "led"))
	assert.False(t, MatchesText(p, "casque"))
}

func TestMatchesText_EmptyQueryMatchesEverything(t *testing.T) {
	assert.True(t, MatchesText(models.Product{}, ""))
}

func TestApply_AndSemanticsPreservesOrder(t *testing.T) {
	products := sampleCollection()

	result := Apply(products, Filter{Category: "Maison", ActiveOnly: true})
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	result = Apply(products, Filter{Category: "Maison"})
	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "3", result[1].ID)
}

func TestApply_UnsetCriteriaAreNoOps(t *testing.T) {
	products := sampleCollection()

	result := Apply(products, Filter{})
	assert.Equal(t, products, result)
}

func TestApply_PriceBounds(t *testing.T) {
	products := sampleCollection()

	min, max := 50.0, 200.0
	result := Apply(products, Filter{MinPrice: &min, MaxPrice: &max})
	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

func TestApply_CombinesFiltersWithQuery(t *testing.T) {
	products := sampleCollection()

	result := Apply(products, Filter{Category: "Maison", Query: "lamp"})
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestOwnedBy(t *testing.T) {
	p := models.Product{CreatedBy: "a@b.com"}

	assert.True(t, OwnedBy(p, &models.SessionUser{Email: "a@b.com"}))
	assert.False(t, OwnedBy(p, &models.SessionUser{Email: "c@d.com"}))
	assert.False(t, OwnedBy(p, nil))
}

func TestOwnedBy_FallsBackToUserID(t *testing.T) {
	p := models.Product{UserID: "42"}

	assert.True(t, OwnedBy(p, &models.SessionUser{ID: "42", Email: "other@b.com"}))
	assert.False(t, OwnedBy(p, &models.SessionUser{ID: "7"}))
}

func TestOwnedBy_EmptyStampsNeverMatch(t *testing.T) {
	assert.False(t, OwnedBy(models.Product{}, &models.SessionUser{}))
}

func TestComputeStats_EmptySet(t *testing.T) {
	stats := ComputeStats(nil, &models.SessionUser{Email: "a@b.com"})

	assert.Equal(t, 0, stats.TotalCount)
	assert.Equal(t, 0.0, stats.AveragePrice)
	assert.Equal(t, 0.0, stats.TotalValue)
	assert.Empty(t, stats.Categories)
}

func TestComputeStats_Aggregates(t *testing.T) {
	products := sampleCollection()
	products = append(products, models.Product{
		ID: "4", Category: "Maison", Price: 40, IsActive: false, CreatedBy: "a@b.com",
	})

	stats := ComputeStats(products, &models.SessionUser{Email: "a@b.com"})

	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 2, stats.ActiveCount)
	assert.Equal(t, 1, stats.InactiveCount)
	assert.Equal(t, 180.0, stats.TotalValue)
	assert.Equal(t, 60.0, stats.AveragePrice)
	// Distinct categories in first-seen order.
	assert.Equal(t, []string{"Maison", "Électronique"}, stats.Categories)
}
