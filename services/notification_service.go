package services

import (
	"fmt"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/ws"
)

// NotificationService is the best-effort side channel for status changes.
// Callers invoke it after their own transaction has committed and must
// swallow any error it returns.
type NotificationService struct {
	Repo      *repository.NotificationRepository
	OrderRepo *repository.OrderRepository
	Hub       *ws.NotificationHub
}

func NewNotificationService(repo *repository.NotificationRepository, orderRepo *repository.OrderRepository, hub *ws.NotificationHub) *NotificationService {
	return &NotificationService{Repo: repo, OrderRepo: orderRepo, Hub: hub}
}

func (s *NotificationService) Create(orderID *uint, message, channel, status string) (*entity.Notification, error) {
	if orderID != nil {
		ok, err := s.OrderRepo.Exists(*orderID)
		if err != nil {
			return nil, fault.Wrap(err, "")
		}
		if !ok {
			return nil, fault.NotFoundf("order not found for notification")
		}
	}
	if channel == "" {
		channel = "mock"
	}
	if status == "" {
		status = "sent"
	}

	n := entity.Notification{
		OrderID: orderID,
		Channel: channel,
		Status:  status,
		Message: message,
	}
	if err := s.Repo.Create(&n); err != nil {
		return nil, fault.Wrap(err, "")
	}

	if s.Hub != nil {
		s.Hub.Publish(&n)
	}
	return &n, nil
}

// LogStatusChange records the audit event for an order status transition.
func (s *NotificationService) LogStatusChange(orderID uint, newStatus string) (*entity.Notification, error) {
	message := fmt.Sprintf("Order %d status updated to %s", orderID, newStatus)
	return s.Create(&orderID, message, "", "")
}

func (s *NotificationService) SendTest(orderID *uint, message string) (*entity.Notification, error) {
	if message == "" {
		message = "Test notification"
	}
	return s.Create(orderID, message, "", "")
}

func (s *NotificationService) List() ([]entity.Notification, error) {
	items, err := s.Repo.List()
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return items, nil
}

func (s *NotificationService) Get(id uint) (*entity.Notification, error) {
	n, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "notification not found")
	}
	return n, nil
}
