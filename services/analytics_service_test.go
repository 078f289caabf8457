package services

import (
	"testing"
)

func seedSales(t *testing.T, env *testEnv) {
	t.Helper()
	user := seedUser(t, env, "Analytics User", "analytics@example.com")
	pizza := seedMenuItem(t, env, "Pizza", 12.0, nil)
	pasta := seedMenuItem(t, env, "Pasta", 9.0, nil)

	if _, err := env.orders.Create(&CreateOrderReq{
		UserID: user.ID,
		Items:  []OrderLineIn{{MenuItemID: pizza.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("order 1: %v", err)
	}
	if _, err := env.orders.Create(&CreateOrderReq{
		UserID: user.ID,
		Items: []OrderLineIn{
			{MenuItemID: pizza.ID, Quantity: 1},
			{MenuItemID: pasta.ID, Quantity: 3},
		},
	}); err != nil {
		t.Fatalf("order 2: %v", err)
	}
}

func TestSalesSummary(t *testing.T) {
	env := newTestEnv(t)
	seedSales(t, env)

	summary, err := env.analytics.SalesSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Errorf("orders = %d, want 2", summary.TotalOrders)
	}
	// (2*12) + (1*12 + 3*9) = 63
	if summary.TotalRevenue != 63.0 {
		t.Errorf("revenue = %v, want 63.0", summary.TotalRevenue)
	}
}

func TestSalesSummaryEmpty(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.analytics.SalesSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalOrders != 0 || summary.TotalRevenue != 0 {
		t.Errorf("empty store summary = %+v", summary)
	}
}

func TestPopularItems(t *testing.T) {
	env := newTestEnv(t)
	seedSales(t, env)

	rows, err := env.analytics.PopularItems(10)
	if err != nil {
		t.Fatalf("popular items: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	byName := map[string]int64{}
	revenue := map[string]float64{}
	for _, r := range rows {
		byName[r.Name] = r.TotalQuantity
		revenue[r.Name] = r.TotalRevenue
	}
	if byName["Pizza"] != 3 || byName["Pasta"] != 3 {
		t.Errorf("quantities = %v", byName)
	}
	if revenue["Pizza"] != 36.0 || revenue["Pasta"] != 27.0 {
		t.Errorf("revenues = %v", revenue)
	}
}
