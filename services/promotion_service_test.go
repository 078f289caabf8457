package services

import (
	"strings"
	"testing"
	"time"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
)

func TestValidateEmptyCodeIsNeutral(t *testing.T) {
	env := newTestEnv(t)

	promo, err := env.promos.Validate(env.db, "")
	if err != nil {
		t.Fatalf("empty code: %v", err)
	}
	if promo != nil {
		t.Errorf("expected nil promotion for empty code, got %+v", promo)
	}
}

func TestValidateUnknownCode(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.promos.Validate(env.db, "NOSUCH")
	if fault.KindOf(err) != fault.NotFound {
		t.Errorf("expected not-found fault, got %v", err)
	}
}

func TestValidateExpiredCode(t *testing.T) {
	env := newTestEnv(t)
	yesterday := time.Now().AddDate(0, 0, -1)
	if _, err := env.promos.Create(&PromotionIn{
		PromoCode:       "OLD",
		DiscountPercent: 25,
		ExpirationDate:  &yesterday,
	}); err != nil {
		t.Fatalf("create promo: %v", err)
	}

	_, err := env.promos.Validate(env.db, "OLD")
	if fault.KindOf(err) != fault.Validation {
		t.Fatalf("expected validation fault, got %v", err)
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateExpiringTodayStillValid(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if _, err := env.promos.Create(&PromotionIn{
		PromoCode:       "TODAY",
		DiscountPercent: 5,
		ExpirationDate:  &today,
	}); err != nil {
		t.Fatalf("create promo: %v", err)
	}

	promo, err := env.promos.Validate(env.db, "TODAY")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if promo.DiscountPercent != 5 {
		t.Errorf("discount = %v", promo.DiscountPercent)
	}
}

func TestCreatePromotionCanonicalizesCode(t *testing.T) {
	env := newTestEnv(t)

	promo, err := env.promos.Create(&PromotionIn{PromoCode: "save10", DiscountPercent: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if promo.PromoCode != "SAVE10" {
		t.Errorf("code = %q, want SAVE10", promo.PromoCode)
	}
}

func TestCreateDuplicatePromoCode(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.promos.Create(&PromotionIn{PromoCode: "SAVE10", DiscountPercent: 10}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// Same code in a different case is still a duplicate.
	_, err := env.promos.Create(&PromotionIn{PromoCode: "save10", DiscountPercent: 20})
	if fault.KindOf(err) != fault.Conflict {
		t.Errorf("expected conflict fault, got %v", err)
	}
}

func TestPromotionCRUD(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.promos.Create(&PromotionIn{PromoCode: "CRUD", DiscountPercent: 15})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := env.promos.List()
	if err != nil || len(all) != 1 {
		t.Fatalf("list = %d items, err %v", len(all), err)
	}

	updated, err := env.promos.Update(created.ID, &PromotionIn{PromoCode: "CRUD", DiscountPercent: 30})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DiscountPercent != 30 {
		t.Errorf("discount = %v, want 30", updated.DiscountPercent)
	}

	if err := env.promos.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.promos.Get(created.ID); fault.KindOf(err) != fault.NotFound {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}
