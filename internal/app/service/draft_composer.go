package service

import (
	"errors"
	"fmt"

	"github.com/arefin/procurehub-backend/internal/app/model"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrDraftItemNotFound = errors.New("draft item not found")
)

// ValidationError reports a violated precondition on a named field. The
// draft is never modified when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// The compose functions below are pure transforms over draft orders.
// Persistence is the caller's job, which keeps composition testable
// without a storage dependency.

// ComposeAddItem appends a line item for the given product selection,
// seeding a fresh draft from the employee context when none exists.
// Identical product+size pairs are not merged; every add is a distinct
// entry in insertion order.
func ComposeAddItem(draft *model.DraftOrder, employee *model.Employee, product *model.Product, quantity int, size string) (*model.DraftOrder, error) {
	if err := validateSelection(product, quantity, &size); err != nil {
		return nil, err
	}

	var next *model.DraftOrder
	if draft == nil {
		next = &model.DraftOrder{
			CompanyID:  employee.CompanyID,
			EmployeeID: employee.ID,
			Name:       employee.Name,
			Address: model.DraftAddress{
				Street:     employee.Street,
				City:       employee.City,
				PostalCode: employee.PostalCode,
			},
		}
	} else {
		next = draft.Clone()
	}

	next.Items = append(next.Items, model.DraftItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Size:      size,
	})
	return next, nil
}

// ComposeUpdateItem replaces the quantity of the line item at index.
func ComposeUpdateItem(draft *model.DraftOrder, index int, product *model.Product, quantity int) (*model.DraftOrder, error) {
	if draft == nil || index < 0 || index >= len(draft.Items) {
		return nil, ErrDraftItemNotFound
	}
	size := draft.Items[index].Size
	if err := validateSelection(product, quantity, &size); err != nil {
		return nil, err
	}

	next := draft.Clone()
	next.Items[index].Quantity = quantity
	return next, nil
}

// ComposeRemoveItem drops the line item at index, preserving the order of
// the remaining items.
func ComposeRemoveItem(draft *model.DraftOrder, index int) (*model.DraftOrder, error) {
	if draft == nil || index < 0 || index >= len(draft.Items) {
		return nil, ErrDraftItemNotFound
	}

	next := draft.Clone()
	next.Items = append(next.Items[:index], next.Items[index+1:]...)
	return next, nil
}

// ComposeSetInfo replaces the free-text note on the draft.
func ComposeSetInfo(draft *model.DraftOrder, info string) (*model.DraftOrder, error) {
	if draft == nil {
		return nil, ErrDraftItemNotFound
	}
	next := draft.Clone()
	next.AdditionalInfo = info
	return next, nil
}

func validateSelection(product *model.Product, quantity int, size *string) error {
	if quantity < 1 {
		return newValidationError("quantity", "quantity must be at least 1")
	}
	if quantity > product.AvailableStock {
		return newValidationError("quantity", "quantity %d exceeds available stock %d", quantity, product.AvailableStock)
	}
	if len(product.SizeOptions) == 0 {
		*size = model.DefaultSize
		return nil
	}
	if !product.HasSize(*size) {
		return newValidationError("size", "size %q is not offered for this product", *size)
	}
	return nil
}
