package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/repository"
)

// UserService contains user-related business logic.
type UserService interface {
	// Register stores user with its plain Password hashed.
	Register(ctx context.Context, user *model.User) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, username string, upd model.UserUpdate) (*model.User, error)
	Remove(ctx context.Context, username string) error
	Orders(ctx context.Context, username string) ([]model.Order, error)
}

type userService struct {
	repo       repository.UserRepository
	orders     repository.OrderRepository
	bcryptCost int
}

// NewUserService builds a user service.
func NewUserService(repo repository.UserRepository, orders repository.OrderRepository, bcryptCost int) UserService {
	return &userService{repo: repo, orders: orders, bcryptCost: bcryptCost}
}

func (s *userService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	if err := checkNewUser(ctx, s.repo, user); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(user.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// checkNewUser rejects usernames and emails already in use, removed users
// included.
func checkNewUser(ctx context.Context, repo repository.UserRepository, user *model.User) error {
	taken, err := repo.UsernameTaken(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return apperr.BadRequest("Duplicate username: %s", user.Username)
	}

	taken, err = repo.EmailTaken(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return apperr.BadRequest("Duplicate email: %s", user.Email)
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid username/password")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid username/password")
	}
	return user, nil
}

func (s *userService) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, lookupErr(err, "find user", "No user: %s", username)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "find user", "No user with ID: %d", id)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, username string, upd model.UserUpdate) (*model.User, error) {
	fields := upd.Fields()
	if len(fields) == 0 {
		return nil, apperr.BadRequest("No data provided")
	}

	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	if fields, err = hashPasswordField(fields, s.bcryptCost); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, user.UserID, fields); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.Get(ctx, username)
}

func (s *userService) Remove(ctx context.Context, username string) error {
	user, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, user.UserID); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

func (s *userService) Orders(ctx context.Context, username string) ([]model.Order, error) {
	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.FindByUser(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return orders, nil
}
