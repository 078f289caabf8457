package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/utils"
)

// PaymentService keeps payments and order status in sync: a successful
// transaction marks the order Paid, and removing or demoting the payment
// reverts it to Pending. Payment and order-status writes commit together.
type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Notifier  *NotificationService
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	notifier *NotificationService,
) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, UserRepo: userRepo, Notifier: notifier}
}

type CreatePaymentReq struct {
	OrderID           uint    `json:"order_id" binding:"required"`
	PaymentType       string  `json:"payment_type" binding:"required"`
	TransactionStatus string  `json:"transaction_status" binding:"required"`
	Amount            float64 `json:"amount"`
}

type UpdatePaymentReq struct {
	PaymentType       *string  `json:"payment_type"`
	TransactionStatus *string  `json:"transaction_status"`
	Amount            *float64 `json:"amount"`
}

func (s *PaymentService) Create(req *CreatePaymentReq) (*entity.Payment, error) {
	var payment entity.Payment
	newOrderStatus := ""

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.OrderRepo.GetBasic(tx, req.OrderID)
		if err != nil {
			return fault.Wrap(err, "order not found")
		}

		if _, err := s.Repo.GetByOrderID(tx, req.OrderID); err == nil {
			return fault.Conflictf("payment already exists for this order")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.Wrap(err, "")
		}

		if utils.Round2(req.Amount) != utils.Round2(order.TotalPrice) {
			return fault.Validationf("payment amount must match the order total")
		}

		payment = entity.Payment{
			OrderID:           req.OrderID,
			PaymentType:       req.PaymentType,
			TransactionStatus: req.TransactionStatus,
			Amount:            req.Amount,
		}
		if err := s.Repo.Create(tx, &payment); err != nil {
			return fault.Wrap(err, "")
		}

		if strings.EqualFold(req.TransactionStatus, "success") && order.Status != "Paid" {
			if err := s.OrderRepo.UpdateStatus(tx, order.ID, "Paid"); err != nil {
				return fault.Wrap(err, "")
			}
			newOrderStatus = "Paid"
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newOrderStatus != "" {
		s.notifyStatusChange(payment.OrderID, newOrderStatus)
	}
	return &payment, nil
}

func (s *PaymentService) Get(id uint) (*entity.Payment, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "payment not found")
	}
	return p, nil
}

// ReadByUser returns a payment only when its order belongs to the named
// registered user (case-insensitive name match).
func (s *PaymentService) ReadByUser(paymentID uint, username string) (*entity.Payment, error) {
	p, err := s.Repo.Get(paymentID)
	if err != nil {
		return nil, fault.Wrap(err, "payment not found")
	}

	order, err := s.OrderRepo.GetBasic(s.DB, p.OrderID)
	if err != nil {
		return nil, fault.Wrap(err, "order not found")
	}
	if order.UserID == nil {
		return nil, fault.NotFoundf("payment not found for this user")
	}

	user, err := s.UserRepo.Get(*order.UserID)
	if err != nil {
		return nil, fault.Wrap(err, "user not found")
	}
	if !strings.EqualFold(user.Name, username) {
		return nil, fault.NotFoundf("payment not found for this user")
	}
	return p, nil
}

func (s *PaymentService) Update(id uint, req *UpdatePaymentReq) (*entity.Payment, error) {
	newOrderStatus := ""
	var orderID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.Repo.GetByID(tx, id)
		if err != nil {
			return fault.Wrap(err, "payment not found")
		}
		orderID = p.OrderID

		order, err := s.OrderRepo.GetBasic(tx, p.OrderID)
		if err != nil {
			return fault.Wrap(err, "order not found")
		}

		updates := map[string]any{}
		if req.PaymentType != nil {
			updates["payment_type"] = *req.PaymentType
		}
		if req.Amount != nil {
			if utils.Round2(*req.Amount) != utils.Round2(order.TotalPrice) {
				return fault.Validationf("payment amount must match the order total")
			}
			updates["amount"] = *req.Amount
		}
		if req.TransactionStatus != nil && *req.TransactionStatus != "" {
			updates["transaction_status"] = *req.TransactionStatus
			// Success promotes the order; any other value demotes it. Safe
			// because an order never has more than one payment.
			target := "Pending"
			if strings.EqualFold(*req.TransactionStatus, "success") {
				target = "Paid"
			}
			if target != order.Status {
				if err := s.OrderRepo.UpdateStatus(tx, order.ID, target); err != nil {
					return fault.Wrap(err, "")
				}
				newOrderStatus = target
			}
		}

		if len(updates) == 0 {
			return nil
		}
		if err := s.Repo.Updates(tx, id, updates); err != nil {
			return fault.Wrap(err, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newOrderStatus != "" {
		s.notifyStatusChange(orderID, newOrderStatus)
	}
	return s.Get(id)
}

func (s *PaymentService) Delete(id uint) error {
	reverted := false
	var orderID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.Repo.GetByID(tx, id)
		if err != nil {
			return fault.Wrap(err, "payment not found")
		}
		orderID = p.OrderID

		if err := s.Repo.Delete(tx, id); err != nil {
			return fault.Wrap(err, "")
		}

		// The owning order, if still present, reverts unconditionally.
		order, err := s.OrderRepo.GetBasic(tx, p.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fault.Wrap(err, "")
		}
		if err := s.OrderRepo.UpdateStatus(tx, order.ID, "Pending"); err != nil {
			return fault.Wrap(err, "")
		}
		reverted = order.Status != "Pending"
		return nil
	})
	if err != nil {
		return err
	}

	if reverted {
		s.notifyStatusChange(orderID, "Pending")
	}
	return nil
}

func (s *PaymentService) notifyStatusChange(orderID uint, newStatus string) {
	if s.Notifier == nil {
		return
	}
	if _, err := s.Notifier.LogStatusChange(orderID, newStatus); err != nil {
		log.Printf("notification for order %d failed: %v", orderID, err)
	}
}
