package services

import (
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/utils"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
	Promos   *PromotionService
	Notifier *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
	promos *PromotionService,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		MenuRepo: menuRepo,
		UserRepo: userRepo,
		Promos:   promos,
		Notifier: notifier,
	}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type CreateOrderReq struct {
	UserID    uint          `json:"user_id" binding:"required"`
	Items     []OrderLineIn `json:"items"`
	PromoCode string        `json:"promo_code"`
}

type GuestOrderReq struct {
	GuestName  string        `json:"guest_name" binding:"required"`
	GuestEmail string        `json:"guest_email" binding:"omitempty,email"`
	GuestPhone string        `json:"guest_phone"`
	Items      []OrderLineIn `json:"items"`
	PromoCode  string        `json:"promo_code"`
}

type UpdateOrderReq struct {
	Status     *string `json:"status"`
	GuestName  *string `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	GuestPhone *string `json:"guest_phone"`
}

type UserTotalOut struct {
	UserID     uint    `json:"user_id"`
	TotalPrice float64 `json:"total_price"`
}

// ----- Create -----

// Create prices and persists an order for a registered user.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	ok, err := s.UserRepo.Exists(req.UserID)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	if !ok {
		return nil, fault.NotFoundf("user not found")
	}

	userID := req.UserID
	return s.priceOrder(req.Items, req.PromoCode, func(o *entity.Order) {
		o.UserID = &userID
	})
}

// CreateGuest prices and persists a guest checkout. Guest contact fields take
// the place of a user reference.
func (s *OrderService) CreateGuest(req *GuestOrderReq) (*entity.Order, error) {
	return s.priceOrder(req.Items, req.PromoCode, func(o *entity.Order) {
		o.GuestName = req.GuestName
		o.GuestEmail = req.GuestEmail
		o.GuestPhone = req.GuestPhone
	})
}

// priceOrder runs the full pricing workflow inside one transaction: item
// validation, stock enforcement, line pricing, stock decrement, promotion
// application, and atomic persistence. A fault at any step rolls everything
// back, including stock changes.
func (s *OrderService) priceOrder(items []OrderLineIn, promoCode string, assign func(o *entity.Order)) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, fault.Validationf("order must contain at least one item")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fault.Validationf("quantity must be a positive integer")
		}
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(items))
		seen := make(map[uint]bool, len(items))
		for _, it := range items {
			if !seen[it.MenuItemID] {
				seen[it.MenuItemID] = true
				ids = append(ids, it.MenuItemID)
			}
		}

		found, err := s.MenuRepo.GetByIDs(tx, ids)
		if err != nil {
			return fault.Wrap(err, "")
		}
		byID := make(map[uint]*entity.MenuItem, len(found))
		for i := range found {
			byID[found[i].ID] = &found[i]
		}

		var missing []uint
		for _, id := range ids {
			if byID[id] == nil {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
			return fault.Validationf("menu items not found: %v", missing)
		}

		// Availability over all lines before any mutation, so a failing line
		// leaves every item's stock untouched.
		needed := make(map[uint]int, len(ids))
		for _, it := range items {
			needed[it.MenuItemID] += it.Quantity
		}
		for _, id := range ids {
			m := byID[id]
			if m.Stock != nil && needed[id] > *m.Stock {
				return fault.Validationf("insufficient stock for item %s (id %d)", m.Name, m.ID)
			}
		}

		var total float64
		lines := make([]entity.OrderLine, 0, len(items))
		for _, it := range items {
			m := byID[it.MenuItemID]
			unit := m.Price // price snapshot; later menu edits don't touch this order
			lineTotal := utils.Round2(unit * float64(it.Quantity))
			total += unit * float64(it.Quantity)
			lines = append(lines, entity.OrderLine{
				MenuItemID: m.ID,
				Quantity:   it.Quantity,
				UnitPrice:  utils.Round2(unit),
				LineTotal:  lineTotal,
			})
		}

		for _, id := range ids {
			m := byID[id]
			if m.Stock == nil {
				continue
			}
			remaining := *m.Stock - needed[id]
			if remaining < 0 {
				remaining = 0
			}
			if err := s.MenuRepo.SetStock(tx, id, remaining); err != nil {
				return fault.Wrap(err, "")
			}
		}

		order = entity.Order{
			Status:         "Pending",
			TrackingNumber: uuid.NewString(),
			OrderLines:     lines,
		}

		// Promotion validation happens inside the transaction so a bad code
		// rolls the stock decrement back too.
		promo, err := s.Promos.Validate(tx, promoCode)
		if err != nil {
			return err
		}
		if promo != nil {
			total *= 1 - promo.DiscountPercent/100
			promoID := promo.ID
			order.PromotionID = &promoID
			order.PromotionCode = promo.PromoCode
			order.PromotionDiscount = promo.DiscountPercent
		}

		total = utils.Round2(total)
		if total < 0 {
			total = 0
		}
		order.TotalPrice = total

		assign(&order)
		if err := s.Repo.Create(tx, &order); err != nil {
			return fault.Wrap(err, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- Reads -----

func (s *OrderService) List(userID *uint) ([]entity.Order, error) {
	orders, err := s.Repo.List(userID)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	for i := range orders {
		attachLinePricing(&orders[i])
	}
	return orders, nil
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "order not found")
	}
	attachLinePricing(o)
	return o, nil
}

// Track resolves an order by its opaque tracking token. When guestName is
// non-empty the match on the stored guest name is case-insensitive exact.
func (s *OrderService) Track(token, guestName string) (*entity.Order, error) {
	o, err := s.Repo.GetByTrackingNumber(token, guestName)
	if err != nil {
		return nil, fault.Wrap(err, "order not found")
	}
	attachLinePricing(o)
	return o, nil
}

func (s *OrderService) TotalPriceForUser(userID uint) (*UserTotalOut, error) {
	ok, err := s.UserRepo.Exists(userID)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	if !ok {
		return nil, fault.NotFoundf("user not found")
	}

	total, err := s.Repo.TotalPriceForUser(userID)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return &UserTotalOut{UserID: userID, TotalPrice: utils.Round2(total)}, nil
}

// ----- Update / Delete -----

// Update applies a partial status / guest-contact update. A status change
// emits a best-effort notification after the commit; a notification failure
// never fails the update.
func (s *OrderService) Update(id uint, req *UpdateOrderReq) (*entity.Order, error) {
	existing, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "order not found")
	}

	updates := map[string]any{}
	statusChanged := false
	if req.Status != nil {
		updates["status"] = *req.Status
		statusChanged = *req.Status != existing.Status
	}
	if req.GuestName != nil {
		updates["guest_name"] = *req.GuestName
	}
	if req.GuestEmail != nil {
		updates["guest_email"] = *req.GuestEmail
	}
	if req.GuestPhone != nil {
		updates["guest_phone"] = *req.GuestPhone
	}

	if len(updates) > 0 {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.UpdateFields(tx, id, updates)
		})
		if err != nil {
			return nil, fault.Wrap(err, "")
		}
	}

	if statusChanged {
		s.notifyStatusChange(id, *req.Status)
	}
	return s.Get(id)
}

func (s *OrderService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return fault.Wrap(err, "order not found")
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return fault.Wrap(err, "")
	}
	return nil
}

// notifyStatusChange is fire-and-forget: the triggering mutation already
// committed, so emitter failures are logged and discarded.
func (s *OrderService) notifyStatusChange(orderID uint, newStatus string) {
	if s.Notifier == nil {
		return
	}
	if _, err := s.Notifier.LogStatusChange(orderID, newStatus); err != nil {
		log.Printf("notification for order %d failed: %v", orderID, err)
	}
}

// attachLinePricing recomputes the display-only unit price and line total for
// every line from its menu item. These are not stored columns; they are
// reattached whenever an order is materialized for output.
func attachLinePricing(o *entity.Order) {
	for i := range o.OrderLines {
		l := &o.OrderLines[i]
		l.UnitPrice = utils.Round2(l.MenuItem.Price)
		l.LineTotal = utils.Round2(l.MenuItem.Price * float64(l.Quantity))
	}
}
