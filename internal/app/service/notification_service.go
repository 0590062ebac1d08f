package service

import (
	"encoding/json"
	"fmt"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/internal/websocket"
	"github.com/arefin/procurehub-backend/pkg/logger"
)

// NotificationService persists dashboard notifications and pushes them to
// live sessions. Delivery is best effort; failures never surface into the
// workflows that trigger notifications.
type NotificationService interface {
	NotifyOrderCreated(order *model.Order)
	GetUserNotifications(userID uint) ([]model.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(userID, notificationID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	hub              *websocket.Hub
	orderEvent       string
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	hub *websocket.Hub,
	orderEvent string,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		hub:              hub,
		orderEvent:       orderEvent,
	}
}

type orderEventPayload struct {
	Event   string `json:"event"`
	OrderID uint   `json:"order_id"`
	Message string `json:"message"`
}

func (s *notificationService) NotifyOrderCreated(order *model.Order) {
	message := fmt.Sprintf("Order #%d placed for %s", order.ID, order.RecipientName)

	notification := &model.Notification{
		UserID:  order.UserID,
		Type:    model.NotificationOrderCreated,
		Message: message,
		OrderID: &order.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Error("Failed to persist notification", err, map[string]interface{}{
			"user_id":  order.UserID,
			"order_id": order.ID,
		})
	}

	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(orderEventPayload{
		Event:   s.orderEvent,
		OrderID: order.ID,
		Message: message,
	})
	if err != nil {
		return
	}
	s.hub.Publish(order.UserID, payload)
}

func (s *notificationService) GetUserNotifications(userID uint) ([]model.Notification, error) {
	return s.notificationRepo.FindByUserID(userID)
}

func (s *notificationService) CountUnread(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *notificationService) MarkRead(userID, notificationID uint) error {
	return s.notificationRepo.MarkRead(userID, notificationID)
}
