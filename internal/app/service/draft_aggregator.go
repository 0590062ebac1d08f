package service

import (
	"github.com/arefin/procurehub-backend/internal/app/model"
)

// CatalogSnapshot is a point-in-time read of products keyed by ID.
type CatalogSnapshot map[uint]model.Product

// BuildSnapshot indexes a product list by ID.
func BuildSnapshot(products []model.Product) CatalogSnapshot {
	snapshot := make(CatalogSnapshot, len(products))
	for _, p := range products {
		snapshot[p.ID] = p
	}
	return snapshot
}

// DraftLine is the per-item view of an aggregated draft. A line whose
// product is missing from the snapshot carries zero prices and the
// PriceUnavailable flag instead of failing the whole projection.
type DraftLine struct {
	Item             model.DraftItem `json:"item"`
	ProductName      string          `json:"product_name,omitempty"`
	UnitPrice        float64         `json:"unit_price"`
	Subtotal         float64         `json:"subtotal"`
	PriceUnavailable bool            `json:"price_unavailable,omitempty"`
}

// DraftSummary is the aggregated view of a draft against a catalog
// snapshot.
type DraftSummary struct {
	Lines       []DraftLine `json:"lines"`
	TotalCount  int         `json:"total_count"`
	TotalAmount float64     `json:"total_amount"`
}

// AggregateDraft projects a draft and a catalog snapshot into totals.
// It is deterministic and side-effect free: the same inputs always
// produce the same output, and missing or unpriced catalog entries
// contribute zero rather than an error.
func AggregateDraft(draft *model.DraftOrder, catalog CatalogSnapshot) DraftSummary {
	summary := DraftSummary{Lines: []DraftLine{}}
	if draft == nil {
		return summary
	}

	for _, item := range draft.Items {
		line := DraftLine{Item: item}

		product, ok := catalog[item.ProductID]
		if !ok {
			line.PriceUnavailable = true
		} else {
			line.ProductName = product.Name
			line.UnitPrice = product.UnitPrice()
			line.Subtotal = line.UnitPrice * float64(item.Quantity)
		}

		summary.Lines = append(summary.Lines, line)
		summary.TotalCount += item.Quantity
		summary.TotalAmount += line.Subtotal
	}
	return summary
}
