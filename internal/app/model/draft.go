package model

import "time"

// DefaultSize is the sentinel stored on line items whose product declares
// no size options.
const DefaultSize = "Default"

// DraftAddress is the structured shipping address staged on a draft.
type DraftAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// DraftItem is one product+quantity+size selection within a draft order.
// Insertion order is display order; identical product+size pairs are kept
// as distinct entries.
type DraftItem struct {
	ProductID uint   `json:"product"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// DraftOrder is the single staged order a user builds before submission.
// It lives in the draft store only; there is no database mirror until the
// order is submitted upstream.
type DraftOrder struct {
	CompanyID      uint         `json:"company_id"`
	EmployeeID     uint         `json:"employee_id"`
	Name           string       `json:"name"`
	AdditionalInfo string       `json:"additional_info"`
	Address        DraftAddress `json:"address"`
	Items          []DraftItem  `json:"items"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Clone returns a deep copy so pure transforms never alias the input.
func (d *DraftOrder) Clone() *DraftOrder {
	if d == nil {
		return nil
	}
	out := *d
	out.Items = make([]DraftItem, len(d.Items))
	copy(out.Items, d.Items)
	return &out
}
