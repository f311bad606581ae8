package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_GetCategories(t *testing.T) {
	f := newFixture(t)
	svc := NewCategoryService(f.categories)

	overview, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.MainCategories, 7)
	assert.Equal(t, 35, overview.TotalSubCategory)
	assert.Equal(t, 80.0, overview.Prices["Shirt"])
}

func TestCategoryService_AddSubCategory(t *testing.T) {
	f := newFixture(t)
	svc := NewCategoryService(f.categories)
	ctx := context.Background()

	v, err := svc.AddSubCategory(ctx, &SubCategoryInput{Category: "Steam", Name: "  Sherwani ", Price: 250})
	require.NoError(t, err)
	assert.Equal(t, "Sherwani", v.Name)
	assert.Equal(t, "₹250", v.PriceLabel)

	tree, err := f.categories.GetTree(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sherwani", tree["Steam"][len(tree["Steam"])-1])

	_, err = svc.AddSubCategory(ctx, &SubCategoryInput{Category: "Steam", Name: "Sherwani", Price: 300})
	requireAppError(t, err, http.StatusConflict)

	_, err = svc.AddSubCategory(ctx, &SubCategoryInput{Category: "Steam", Name: "Shirt/Trouser", Price: 90})
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "name", appErr.Errors[0].Field)

	_, err = svc.AddSubCategory(ctx, &SubCategoryInput{Category: "Shoes", Name: "", Price: 0})
	appErr = requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Len(t, appErr.Errors, 3)
}

func TestCategoryService_EditSubCategory(t *testing.T) {
	f := newFixture(t)
	svc := NewCategoryService(f.categories)
	ctx := context.Background()

	v, err := svc.EditSubCategory(ctx, &EditSubCategoryInput{
		Category: "Household", OldName: "Curtain", Name: "Curtains", Price: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, "₹200", v.PriceLabel)

	tree, err := f.categories.GetTree(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Curtains", tree["Household"][1], "renamed in place")

	prices, err := f.categories.GetPrices(ctx)
	require.NoError(t, err)
	assert.NotContains(t, prices, "Curtain")
	assert.Equal(t, 200.0, prices["Curtains"])

	_, err = svc.EditSubCategory(ctx, &EditSubCategoryInput{
		Category: "Kids Wear", OldName: "T-shirt", Name: "Tee", Price: 40,
	})
	require.NoError(t, err)
	shared, err := svc.GetPrice(ctx, "T-shirt")
	require.NoError(t, err)
	assert.Equal(t, PriceNotSet, shared.PriceLabel, "rename drops the old name's price")

	_, err = svc.EditSubCategory(ctx, &EditSubCategoryInput{
		Category: "Household", OldName: "Towel", Name: "Bedsheet", Price: 10,
	})
	requireAppError(t, err, http.StatusConflict)

	_, err = svc.EditSubCategory(ctx, &EditSubCategoryInput{
		Category: "Household", OldName: "Sofa", Name: "Couch", Price: 10,
	})
	requireAppError(t, err, http.StatusNotFound)
}

func TestCategoryService_DeleteSubCategory(t *testing.T) {
	f := newFixture(t)
	svc := NewCategoryService(f.categories)
	ctx := context.Background()

	require.NoError(t, svc.DeleteSubCategory(ctx, "Other", "Bag"))
	prices, err := f.categories.GetPrices(ctx)
	require.NoError(t, err)
	assert.NotContains(t, prices, "Bag")

	// Dress is listed under Women's Wear and Kids Wear and shares one price
	_, err = svc.EditSubCategory(ctx, &EditSubCategoryInput{
		Category: "Kids Wear", OldName: "Dress", Name: "Dress", Price: 70,
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSubCategory(ctx, "Kids Wear", "Dress"))

	price, err := svc.GetPrice(ctx, "Dress")
	require.NoError(t, err)
	assert.Nil(t, price.Price)
	assert.Equal(t, PriceNotSet, price.PriceLabel)

	tree, err := f.categories.GetTree(ctx)
	require.NoError(t, err)
	assert.Contains(t, tree["Women's Wear"], "Dress", "other main category keeps its entry")

	err = svc.DeleteSubCategory(ctx, "Kids Wear", "Dress")
	requireAppError(t, err, http.StatusNotFound)
}

func TestCategoryService_GetPriceAndSearch(t *testing.T) {
	f := newFixture(t)
	svc := NewCategoryService(f.categories)
	ctx := context.Background()

	v, err := svc.GetPrice(ctx, "Jeans")
	require.NoError(t, err)
	assert.Nil(t, v.Price)
	assert.Equal(t, PriceNotSet, v.PriceLabel)

	found, err := svc.SearchSubCategories(ctx, "Men's Wear", "SH")
	require.NoError(t, err)
	names := []string{}
	for _, s := range found {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Shirt", "T-shirt", "Shorts"}, names)

	_, err = svc.SearchSubCategories(ctx, "Shoes", "")
	requireAppError(t, err, http.StatusUnprocessableEntity)
}
