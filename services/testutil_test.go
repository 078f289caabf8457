package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
)

type testEnv struct {
	db        *gorm.DB
	orders    *OrderService
	payments  *PaymentService
	promos    *PromotionService
	notifs    *NotificationService
	menu      *MenuService
	users     *UserService
	reviews   *ReviewService
	analytics *AnalyticsService
}

// newTestEnv wires the full service graph against an isolated in-memory
// database, one per test.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Promotion{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Payment{},
		&entity.Notification{},
		&entity.Review{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	promos := NewPromotionService(promoRepo)
	notifs := NewNotificationService(notifRepo, orderRepo, nil)
	orders := NewOrderService(db, orderRepo, menuRepo, userRepo, promos, notifs)
	payments := NewPaymentService(db, paymentRepo, orderRepo, userRepo, notifs)

	return &testEnv{
		db:        db,
		orders:    orders,
		payments:  payments,
		promos:    promos,
		notifs:    notifs,
		menu:      NewMenuService(menuRepo),
		users:     NewUserService(userRepo),
		reviews:   NewReviewService(reviewRepo, menuRepo, orderRepo),
		analytics: NewAnalyticsService(analyticsRepo),
	}
}

func seedMenuItem(t *testing.T, env *testEnv, name string, price float64, stock *int) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{Name: name, Description: "test item", Price: price, Stock: stock}
	if err := env.db.Create(&m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return &m
}

func seedUser(t *testing.T, env *testEnv, name, email string) *entity.User {
	t.Helper()
	u := entity.User{Name: name, Email: email, Password: "hashed", Role: "customer"}
	if err := env.db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &u
}

func intPtr(n int) *int          { return &n }
func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func currentStock(t *testing.T, env *testEnv, id uint) *int {
	t.Helper()
	var m entity.MenuItem
	if err := env.db.First(&m, id).Error; err != nil {
		t.Fatalf("reload menu item: %v", err)
	}
	return m.Stock
}

func orderCount(t *testing.T, env *testEnv) int64 {
	t.Helper()
	var count int64
	if err := env.db.Model(&entity.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return count
}
