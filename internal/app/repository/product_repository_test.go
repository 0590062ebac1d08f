package repository

import (
	"testing"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRepoTest(t *testing.T) ProductRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewProductRepository(testDB)
}

func TestProductRepository_CreateAndFindByID(t *testing.T) {
	repo := setupProductRepoTest(t)

	product := &model.Product{
		Name:           "Hoodie",
		Category:       "apparel",
		Price:          10,
		AvailableStock: 5,
		SizeOptions:    []string{"S", "M"},
	}
	require.NoError(t, repo.Create(product))
	require.NotZero(t, product.ID)

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoodie", found.Name)
	assert.Equal(t, []string{"S", "M"}, found.SizeOptions)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo := setupProductRepoTest(t)

	_, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_FindAll_CategoryFilter(t *testing.T) {
	repo := setupProductRepoTest(t)

	require.NoError(t, repo.Create(&model.Product{Name: "Hoodie", Category: "apparel", Price: 10}))
	require.NoError(t, repo.Create(&model.Product{Name: "Mug", Category: "kitchen", Price: 5}))

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	apparel, err := repo.FindAll("apparel")
	require.NoError(t, err)
	require.Len(t, apparel, 1)
	assert.Equal(t, "Hoodie", apparel[0].Name)
}

func TestProductRepository_FindByIDs(t *testing.T) {
	repo := setupProductRepoTest(t)

	first := &model.Product{Name: "Hoodie", Category: "apparel", Price: 10}
	second := &model.Product{Name: "Mug", Category: "kitchen", Price: 5}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	// Missing IDs are absent from the result, not an error.
	products, err := repo.FindByIDs([]uint{first.ID, 9999})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, first.ID, products[0].ID)

	empty, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestProductRepository_BulkCreate(t *testing.T) {
	repo := setupProductRepoTest(t)

	batch := []model.Product{
		{Name: "A", Category: "apparel", Price: 1},
		{Name: "B", Category: "apparel", Price: 2},
		{Name: "C", Category: "apparel", Price: 3},
	}
	require.NoError(t, repo.BulkCreate(batch, 2))

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
