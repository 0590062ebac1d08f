package service

import (
	"context"
	"testing"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDraftServiceTest(t *testing.T) (DraftService, repository.DraftRepository, *model.Employee, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	company := &model.Company{
		Name:  "Acme Corp",
		Email: "orders@acme.example",
	}
	testDB.Create(company)

	employee := &model.Employee{
		CompanyID:  company.ID,
		Name:       "Jane Doe",
		Street:     "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
	}
	testDB.Create(employee)

	product := &model.Product{
		Name:           "Hoodie",
		Price:          10,
		AvailableStock: 5,
		SizeOptions:    []string{"S", "M"},
	}
	testDB.Create(product)

	draftRepo := repository.NewMemoryDraftRepository()
	productRepo := repository.NewProductRepository(testDB)
	employeeRepo := repository.NewEmployeeRepository(testDB)
	draftService := NewDraftService(draftRepo, productRepo, employeeRepo)

	return draftService, draftRepo, employee, product
}

func TestDraftService_AddItem_SeedsAndPersists(t *testing.T) {
	draftService, draftRepo, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	draft, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 2, "S")
	require.NoError(t, err)
	assert.Equal(t, employee.CompanyID, draft.CompanyID)
	assert.False(t, draft.UpdatedAt.IsZero())

	// The staged draft survives a fresh read.
	stored, err := draftRepo.Read(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, model.DraftItem{ProductID: product.ID, Quantity: 2, Size: "S"}, stored.Items[0])
}

func TestDraftService_AddItem_ProductNotFound(t *testing.T) {
	draftService, _, employee, _ := setupDraftServiceTest(t)

	_, err := draftService.AddItem(context.Background(), 1, employee.ID, 9999, 1, "S")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDraftService_AddItem_EmployeeNotFound(t *testing.T) {
	draftService, _, _, product := setupDraftServiceTest(t)

	_, err := draftService.AddItem(context.Background(), 1, 9999, product.ID, 1, "S")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDraftService_AddItem_ValidationLeavesStoreUntouched(t *testing.T) {
	draftService, draftRepo, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	_, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 2, "S")
	require.NoError(t, err)

	_, err = draftService.AddItem(ctx, 1, employee.ID, product.ID, 100, "S")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	stored, err := draftRepo.Read(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Items, 1)
}

func TestDraftService_UpdateItem(t *testing.T) {
	draftService, _, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	_, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 2, "S")
	require.NoError(t, err)

	draft, err := draftService.UpdateItem(ctx, 1, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, draft.Items[0].Quantity)

	_, err = draftService.UpdateItem(ctx, 1, 3, 1)
	assert.ErrorIs(t, err, ErrDraftItemNotFound)
}

func TestDraftService_UpdateItem_NoDraft(t *testing.T) {
	draftService, _, _, _ := setupDraftServiceTest(t)

	_, err := draftService.UpdateItem(context.Background(), 1, 0, 1)
	assert.ErrorIs(t, err, ErrDraftItemNotFound)
}

func TestDraftService_RemoveItem(t *testing.T) {
	draftService, draftRepo, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	_, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 2, "S")
	require.NoError(t, err)
	_, err = draftService.AddItem(ctx, 1, employee.ID, product.ID, 1, "M")
	require.NoError(t, err)

	draft, err := draftService.RemoveItem(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "M", draft.Items[0].Size)

	stored, err := draftRepo.Read(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestDraftService_GetDraft_AbsentIsEmptySummary(t *testing.T) {
	draftService, _, _, _ := setupDraftServiceTest(t)

	draft, summary, err := draftService.GetDraft(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.Len(t, summary.Lines, 0)
	assert.Equal(t, float64(0), summary.TotalAmount)
}

func TestDraftService_GetDraft_AggregatesAgainstCatalog(t *testing.T) {
	draftService, _, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	_, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 2, "S")
	require.NoError(t, err)

	draft, summary, err := draftService.GetDraft(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, draft)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "Hoodie", summary.Lines[0].ProductName)
	assert.Equal(t, float64(20), summary.TotalAmount)
	assert.Equal(t, 2, summary.TotalCount)
}

func TestDraftService_ClearDraft(t *testing.T) {
	draftService, draftRepo, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	_, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 1, "S")
	require.NoError(t, err)

	require.NoError(t, draftService.ClearDraft(ctx, 1))

	stored, err := draftRepo.Read(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDraftService_SetAdditionalInfo(t *testing.T) {
	draftService, _, employee, product := setupDraftServiceTest(t)
	ctx := context.Background()

	_, err := draftService.AddItem(ctx, 1, employee.ID, product.ID, 1, "S")
	require.NoError(t, err)

	draft, err := draftService.SetAdditionalInfo(ctx, 1, "deliver to floor 3")
	require.NoError(t, err)
	assert.Equal(t, "deliver to floor 3", draft.AdditionalInfo)
}
