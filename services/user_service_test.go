package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
)

func TestCreateUserHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Create(&UserIn{
		Name:     "New User",
		Email:    "New@Example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Errorf("email = %q, want lower-cased", user.Email)
	}
	if user.Role != "customer" {
		t.Errorf("role = %q, want customer", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Errorf("stored password is not a bcrypt hash of the input: %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	in := &UserIn{Name: "A", Email: "dup@example.com", Password: "secret123"}
	if _, err := env.users.Create(in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	in.Name = "B"
	if _, err := env.users.Create(in); fault.KindOf(err) != fault.Conflict {
		t.Errorf("expected conflict fault, got %v", err)
	}
}

func TestUpdateUserUnknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Update(999, &UserUpdateIn{Name: strPtr("Nobody")})
	if fault.KindOf(err) != fault.NotFound {
		t.Errorf("expected not-found fault, got %v", err)
	}
}
