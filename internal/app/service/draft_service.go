package service

import (
	"context"
	"errors"
	"time"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/pkg/logger"
	"gorm.io/gorm"
)

// DraftService owns the read/compose/write cycle around the draft slot.
// All mutation goes through the pure compose functions so no caller ever
// reads raw storage and edits fields in place.
type DraftService interface {
	GetDraft(ctx context.Context, userID uint) (*model.DraftOrder, DraftSummary, error)
	AddItem(ctx context.Context, userID, employeeID, productID uint, quantity int, size string) (*model.DraftOrder, error)
	UpdateItem(ctx context.Context, userID uint, index, quantity int) (*model.DraftOrder, error)
	RemoveItem(ctx context.Context, userID uint, index int) (*model.DraftOrder, error)
	SetAdditionalInfo(ctx context.Context, userID uint, info string) (*model.DraftOrder, error)
	ClearDraft(ctx context.Context, userID uint) error
}

type draftService struct {
	draftRepo    repository.DraftRepository
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
}

func NewDraftService(
	draftRepo repository.DraftRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
) DraftService {
	return &draftService{
		draftRepo:    draftRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *draftService) GetDraft(ctx context.Context, userID uint) (*model.DraftOrder, DraftSummary, error) {
	draft, err := s.draftRepo.Read(ctx, userID)
	if err != nil {
		return nil, DraftSummary{}, err
	}

	snapshot, err := s.snapshotFor(draft)
	if err != nil {
		logger.Error("Failed to load catalog snapshot", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, DraftSummary{}, err
	}

	return draft, AggregateDraft(draft, snapshot), nil
}

func (s *draftService) AddItem(ctx context.Context, userID, employeeID, productID uint, quantity int, size string) (*model.DraftOrder, error) {
	logger.Info("Adding item to draft", map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"product_id":  productID,
		"quantity":    quantity,
		"size":        size,
	})

	draft, err := s.draftRepo.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	var employee *model.Employee
	if draft == nil {
		employee, err = s.employeeRepo.FindByID(employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Cannot seed draft: employee not found", map[string]interface{}{
					"employee_id": employeeID,
				})
				return nil, ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to draft: product not found", map[string]interface{}{
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	next, err := ComposeAddItem(draft, employee, product, quantity, size)
	if err != nil {
		logger.Warn("Draft add rejected", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return s.persist(ctx, userID, next)
}

func (s *draftService) UpdateItem(ctx context.Context, userID uint, index, quantity int) (*model.DraftOrder, error) {
	draft, err := s.draftRepo.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil || index < 0 || index >= len(draft.Items) {
		return nil, ErrDraftItemNotFound
	}

	product, err := s.productRepo.FindByID(draft.Items[index].ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	next, err := ComposeUpdateItem(draft, index, product, quantity)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, userID, next)
}

func (s *draftService) RemoveItem(ctx context.Context, userID uint, index int) (*model.DraftOrder, error) {
	draft, err := s.draftRepo.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, err := ComposeRemoveItem(draft, index)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, userID, next)
}

func (s *draftService) SetAdditionalInfo(ctx context.Context, userID uint, info string) (*model.DraftOrder, error) {
	draft, err := s.draftRepo.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, err := ComposeSetInfo(draft, info)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, userID, next)
}

func (s *draftService) ClearDraft(ctx context.Context, userID uint) error {
	logger.Info("Clearing draft", map[string]interface{}{
		"user_id": userID,
	})
	return s.draftRepo.Clear(ctx, userID)
}

func (s *draftService) persist(ctx context.Context, userID uint, draft *model.DraftOrder) (*model.DraftOrder, error) {
	draft.UpdatedAt = time.Now().UTC()
	if err := s.draftRepo.Write(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *draftService) snapshotFor(draft *model.DraftOrder) (CatalogSnapshot, error) {
	if draft == nil || len(draft.Items) == 0 {
		return CatalogSnapshot{}, nil
	}

	seen := make(map[uint]bool, len(draft.Items))
	ids := make([]uint, 0, len(draft.Items))
	for _, item := range draft.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(products), nil
}
