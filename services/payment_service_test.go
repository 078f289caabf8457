package services

import (
	"strings"
	"testing"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
)

func seedPaidableOrder(t *testing.T, env *testEnv) *entity.Order {
	t.Helper()
	item := seedMenuItem(t, env, "Combo Meal", 15.0, nil)
	order, err := env.orders.CreateGuest(&GuestOrderReq{
		GuestName: "Payer",
		Items:     []OrderLineIn{{MenuItemID: item.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func orderStatus(t *testing.T, env *testEnv, id uint) string {
	t.Helper()
	var o entity.Order
	if err := env.db.First(&o, id).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return o.Status
}

func TestCreatePaymentSuccessMarksOrderPaid(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env)

	payment, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "SUCCESS", // any case
		Amount:            order.TotalPrice,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if payment.ID == 0 {
		t.Error("expected persisted payment id")
	}
	if got := orderStatus(t, env, order.ID); got != "Paid" {
		t.Errorf("order status = %q, want Paid", got)
	}
}

func TestCreatePaymentPendingLeavesOrderPending(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env)

	if _, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Cash",
		TransactionStatus: "Pending",
		Amount:            order.TotalPrice,
	}); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if got := orderStatus(t, env, order.ID); got != "Pending" {
		t.Errorf("order status = %q, want Pending", got)
	}
}

func TestCreatePaymentUnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           999,
		PaymentType:       "Card",
		TransactionStatus: "Success",
		Amount:            10,
	})
	if fault.KindOf(err) != fault.NotFound {
		t.Errorf("expected not-found fault, got %v", err)
	}
}

func TestCreateDuplicatePaymentConflicts(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env)

	req := &CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "Pending",
		Amount:            order.TotalPrice,
	}
	if _, err := env.payments.Create(req); err != nil {
		t.Fatalf("first payment: %v", err)
	}

	_, err := env.payments.Create(req)
	if fault.KindOf(err) != fault.Conflict {
		t.Fatalf("expected conflict fault, got %v", err)
	}
	if !strings.Contains(err.Error(), "payment already exists") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCreatePaymentAmountMismatch(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env) // total 30.00

	// Off by one cent after rounding.
	_, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "Success",
		Amount:            order.TotalPrice + 0.01,
	})
	if fault.KindOf(err) != fault.Validation {
		t.Fatalf("expected validation fault, got %v", err)
	}
	if !strings.Contains(err.Error(), "must match the order total") {
		t.Errorf("message = %q", err.Error())
	}

	// Sub-cent noise is tolerated.
	if _, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "Success",
		Amount:            order.TotalPrice + 0.001,
	}); err != nil {
		t.Errorf("rounded-equal amount rejected: %v", err)
	}
}

func TestUpdatePaymentStatusSyncsOrder(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env)

	payment, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "Pending",
		Amount:            order.TotalPrice,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	if _, err := env.payments.Update(payment.ID, &UpdatePaymentReq{
		TransactionStatus: strPtr("success"),
	}); err != nil {
		t.Fatalf("update to success: %v", err)
	}
	if got := orderStatus(t, env, order.ID); got != "Paid" {
		t.Errorf("after success: order status = %q, want Paid", got)
	}

	// Any non-success value demotes the order again.
	if _, err := env.payments.Update(payment.ID, &UpdatePaymentReq{
		TransactionStatus: strPtr("Failed"),
	}); err != nil {
		t.Fatalf("update to failed: %v", err)
	}
	if got := orderStatus(t, env, order.ID); got != "Pending" {
		t.Errorf("after failure: order status = %q, want Pending", got)
	}
}

func TestUpdatePaymentAmountRevalidated(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env)

	payment, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "Pending",
		Amount:            order.TotalPrice,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	_, err = env.payments.Update(payment.ID, &UpdatePaymentReq{Amount: floatPtr(order.TotalPrice + 5)})
	if fault.KindOf(err) != fault.Validation {
		t.Errorf("expected validation fault, got %v", err)
	}
}

func TestDeletePaymentRevertsOrder(t *testing.T) {
	env := newTestEnv(t)
	order := seedPaidableOrder(t, env)

	payment, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "Card",
		TransactionStatus: "Success",
		Amount:            order.TotalPrice,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if got := orderStatus(t, env, order.ID); got != "Paid" {
		t.Fatalf("precondition: order status = %q", got)
	}

	if err := env.payments.Delete(payment.ID); err != nil {
		t.Fatalf("delete payment: %v", err)
	}
	if got := orderStatus(t, env, order.ID); got != "Pending" {
		t.Errorf("order status = %q, want Pending", got)
	}

	if err := env.payments.Delete(payment.ID); fault.KindOf(err) != fault.NotFound {
		t.Errorf("second delete: expected not-found, got %v", err)
	}
}

func TestReadPaymentByUser(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "Payment User", "payuser@example.com")
	item := seedMenuItem(t, env, "Combo", 12.0, nil)

	order, err := env.orders.Create(&CreateOrderReq{
		UserID: user.ID,
		Items:  []OrderLineIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	payment, err := env.payments.Create(&CreatePaymentReq{
		OrderID:           order.ID,
		PaymentType:       "UPI",
		TransactionStatus: "Success",
		Amount:            order.TotalPrice,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	got, err := env.payments.ReadByUser(payment.ID, "payment user") // case-insensitive
	if err != nil {
		t.Fatalf("read by user: %v", err)
	}
	if got.ID != payment.ID {
		t.Errorf("payment id = %d, want %d", got.ID, payment.ID)
	}

	if _, err := env.payments.ReadByUser(payment.ID, "Somebody Else"); fault.KindOf(err) != fault.NotFound {
		t.Errorf("wrong user: expected not-found, got %v", err)
	}
}
