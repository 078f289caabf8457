package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type UserIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type UserUpdateIn struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role"`
}

func (s *UserService) Create(in *UserIn) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}

	role := in.Role
	if role == "" {
		role = "customer"
	}
	u := entity.User{
		Name:     in.Name,
		Email:    strings.ToLower(in.Email),
		Phone:    in.Phone,
		Address:  in.Address,
		Password: string(hash),
		Role:     role,
	}
	if err := s.Repo.Create(&u); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, fault.Conflictf("email already registered")
		}
		return nil, fault.Wrap(err, "")
	}
	return &u, nil
}

func (s *UserService) List() ([]entity.User, error) {
	users, err := s.Repo.List()
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	u, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "user not found")
	}
	return u, nil
}

func (s *UserService) Update(id uint, in *UserUpdateIn) (*entity.User, error) {
	if _, err := s.Repo.Get(id); err != nil {
		return nil, fault.Wrap(err, "user not found")
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = strings.ToLower(*in.Email)
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fault.Wrap(err, "")
		}
		updates["password"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, fault.Wrap(err, "")
		}
	}
	return s.Get(id)
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return fault.Wrap(err, "user not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fault.Wrap(err, "")
	}
	return nil
}
