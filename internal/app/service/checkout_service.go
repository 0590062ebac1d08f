package service

import (
	"context"
	"errors"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/pkg/logger"
	"github.com/arefin/procurehub-backend/pkg/orders"
)

var (
	ErrEmptyDraft        = errors.New("draft order is empty")
	ErrUpstreamRejected  = errors.New("order was rejected upstream")
	ErrSubmissionAborted = errors.New("submission aborted before completion")
)

// SubmissionState tracks where a submit action is in its lifecycle.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// SubmissionResult is the terminal outcome of one submit action.
type SubmissionResult struct {
	State     SubmissionState `json:"state"`
	Message   string          `json:"message,omitempty"`
	OrderID   uint            `json:"order_id,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// OrderSubmitter is the slice of the upstream client the workflow needs;
// tests substitute a recording fake.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, req orders.CreateOrderRequest) (*orders.CreateOrderResponse, error)
}

// CheckoutService validates the staged draft, submits it upstream exactly
// once, and manages terminal state: the draft is cleared only after a
// confirmed success and preserved untouched on every failure path.
type CheckoutService interface {
	Submit(ctx context.Context, userID uint) (*SubmissionResult, error)
}

type checkoutService struct {
	draftRepo repository.DraftRepository
	orderRepo repository.OrderRepository
	notifier  NotificationService
	client    OrderSubmitter
}

func NewCheckoutService(
	draftRepo repository.DraftRepository,
	orderRepo repository.OrderRepository,
	notifier NotificationService,
	client OrderSubmitter,
) CheckoutService {
	return &checkoutService{
		draftRepo: draftRepo,
		orderRepo: orderRepo,
		notifier:  notifier,
		client:    client,
	}
}

func (s *checkoutService) Submit(ctx context.Context, userID uint) (*SubmissionResult, error) {
	logger.Info("Submitting draft order", map[string]interface{}{
		"user_id": userID,
		"state":   SubmissionValidating,
	})

	draft, err := s.draftRepo.Read(ctx, userID)
	if err != nil {
		return &SubmissionResult{State: SubmissionFailed, Message: "Could not load draft"}, err
	}
	if draft == nil || len(draft.Items) == 0 {
		// Rejected before any network call is made.
		logger.Warn("Cannot submit: draft is empty", map[string]interface{}{
			"user_id": userID,
		})
		return &SubmissionResult{State: SubmissionFailed, Message: "Your cart is empty"}, ErrEmptyDraft
	}

	payload := buildOrderPayload(draft)

	logger.Debug("Submitting order payload upstream", map[string]interface{}{
		"user_id":     userID,
		"employee_id": draft.EmployeeID,
		"item_count":  len(payload.Items),
		"state":       SubmissionSubmitting,
	})

	resp, err := s.client.CreateOrder(ctx, payload)
	if err != nil {
		// Transport failure or non-2xx: draft is preserved, retry is a
		// fresh user action.
		logger.Error("Order submission failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return &SubmissionResult{State: SubmissionFailed, Message: remoteMessage(err)}, err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Failed to place order"
		}
		logger.Warn("Order rejected upstream", map[string]interface{}{
			"user_id": userID,
			"message": message,
		})
		return &SubmissionResult{State: SubmissionFailed, Message: message}, ErrUpstreamRejected
	}

	if ctx.Err() != nil {
		// The caller went away while the response was in flight. The
		// upstream order may exist, but no local side effect is applied
		// to a stale view.
		logger.Warn("Discarding submission result: context cancelled", map[string]interface{}{
			"user_id": userID,
		})
		return &SubmissionResult{State: SubmissionFailed, Message: "Submission was cancelled"}, ErrSubmissionAborted
	}

	order := s.recordOrder(userID, draft, resp)

	if err := s.draftRepo.Clear(ctx, userID); err != nil {
		// The order is placed; a failed clear must not turn success into
		// failure. The sweeper reclaims the slot later.
		logger.Error("Failed to clear draft after successful submission", err, map[string]interface{}{
			"user_id": userID,
		})
	}

	result := &SubmissionResult{
		State:   SubmissionSucceeded,
		Message: "Order placed successfully",
	}
	if order != nil {
		result.OrderID = order.ID
		result.Reference = order.Reference
		s.notifier.NotifyOrderCreated(order)
	}

	logger.Info("Draft order submitted successfully", map[string]interface{}{
		"user_id": userID,
		"state":   SubmissionSucceeded,
	})
	return result, nil
}

// buildOrderPayload projects a draft into the wire shape. Locally computed
// prices are dropped.
func buildOrderPayload(draft *model.DraftOrder) orders.CreateOrderRequest {
	items := make([]orders.Item, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, orders.Item{
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Size:     item.Size,
		})
	}

	return orders.CreateOrderRequest{
		CompanyID:      draft.CompanyID,
		EmployeeID:     draft.EmployeeID,
		Name:           draft.Name,
		AdditionalInfo: draft.AdditionalInfo,
		Address: orders.Address{
			Street:     draft.Address.Street,
			City:       draft.Address.City,
			PostalCode: draft.Address.PostalCode,
		},
		Items: items,
	}
}

func (s *checkoutService) recordOrder(userID uint, draft *model.DraftOrder, resp *orders.CreateOrderResponse) *model.Order {
	order := &model.Order{
		UserID:         userID,
		CompanyID:      draft.CompanyID,
		EmployeeID:     draft.EmployeeID,
		RecipientName:  draft.Name,
		AdditionalInfo: draft.AdditionalInfo,
		Street:         draft.Address.Street,
		City:           draft.Address.City,
		PostalCode:     draft.Address.PostalCode,
		Status:         model.OrderStatusSubmitted,
	}
	if resp.Data != nil {
		order.Reference = resp.Data.Reference
	}
	for _, item := range draft.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		// History is best effort once the upstream accepted the order.
		logger.Error("Failed to record submitted order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil
	}
	return order
}

func remoteMessage(err error) string {
	var remoteErr *orders.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return "Failed to place order"
}
