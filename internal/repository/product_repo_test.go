package repository

import (
	"testing"

	"go-warehouse-ws/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepoCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	price := 9.99
	require.NoError(t, repo.Create(&model.Product{ID: 1, Name: "Widget", Price: &price}))

	byID, err := repo.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Widget", byID.Name)
	assert.Equal(t, 0, byID.Quantity)
	require.NotNil(t, byID.Price)
	assert.Equal(t, 9.99, *byID.Price)

	byName, err := repo.FindByName("Widget")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, int64(1), byName.ID)
}

func TestProductRepoFindMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	byID, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, byID)

	byName, err := repo.FindByName("nope")
	require.NoError(t, err)
	assert.Nil(t, byName)
}

func TestProductRepoFindByNameIsExact(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, 1, "Widget", 0)

	found, err := repo.FindByName("widget")
	require.NoError(t, err)
	assert.Nil(t, found, "name matching is case-sensitive")
}

func TestProductRepoFindAllOrderedByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, 5, "Five", 0)
	seedProduct(t, db, 2, "Two", 0)
	seedProduct(t, db, 9, "Nine", 0)

	products, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, int64(2), products[0].ID)
	assert.Equal(t, int64(5), products[1].ID)
	assert.Equal(t, int64(9), products[2].ID)
}

func TestProductRepoUpdateFieldsClearsPrice(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	price := 4.5
	require.NoError(t, repo.Create(&model.Product{ID: 3, Name: "Gadget", Price: &price}))

	require.NoError(t, repo.UpdateFields(db, 3, map[string]interface{}{"price": nil}))

	reloaded, err := repo.FindByID(3)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Nil(t, reloaded.Price)
	assert.Equal(t, "Gadget", reloaded.Name)
}

func TestProductRepoUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, 1, "Widget", 10)

	require.NoError(t, repo.UpdateQuantity(db, 1, 35))

	reloaded, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 35, reloaded.Quantity)
}

func TestProductRepoDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, 1, "Widget", 0)

	require.NoError(t, repo.Delete(1))

	gone, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
