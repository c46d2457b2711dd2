// Package services – UserService
//
// This file implements the UserService, which manages the user directory:
// registration with phone/email uniqueness, login, lookups, the admin
// listing, and deletion guarded by the pet-ownership policy. Passwords
// are hashed through the credential manager (internal/auth) and never
// leave the service in plaintext or digest form beyond persistence.
//
// Service-level errors (e.g. ErrDuplicatePhone, ErrInvalidCredentials)
// are returned for predictable cases so handlers can map them to HTTP
// results consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/auth"
	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
// Implementations are responsible for persistence of user aggregates.
type UserRepo interface {
	// CreateUser inserts a new user row.
	CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error

	// GetUserByID fetches a user by primary key.
	GetUserByID(ctx context.Context, db *gorm.DB, id int) (*domain.User, error)

	// GetUserByPhone fetches a user by phone number.
	GetUserByPhone(ctx context.Context, db *gorm.DB, phone string) (*domain.User, error)

	// UserExistsByPhone reports whether the phone is already taken.
	UserExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error)

	// UserExistsByEmail reports whether the email is already taken.
	UserExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)

	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error)

	// DeleteUser removes a user row.
	DeleteUser(ctx context.Context, db *gorm.DB, id int) error

	// CountPetsByUser returns how many pets the user owns.
	CountPetsByUser(ctx context.Context, db *gorm.DB, userID int) (int64, error)
}

// RegisterInput carries the validated registration payload from the
// HTTP layer.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	CityID   int
	Address  string
}

// UserService provides user directory operations: register, login,
// lookups, listing, and guarded deletion.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService bound to db and r.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Register creates a new user after enforcing phone and email
// uniqueness. The two duplicate cases are reported distinctly
// (ErrDuplicatePhone / ErrDuplicateEmail). The uniqueness checks and the
// insert run in one transaction; the unique index on phone backstops
// races.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		CityID:       in.CityID,
		Address:      in.Address,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.Repo.UserExistsByPhone(ctx, tx, in.Phone)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicatePhone
		}

		taken, err = s.Repo.UserExistsByEmail(ctx, tx, in.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}

		return s.Repo.CreateUser(ctx, tx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates a phone/password pair. Unknown phone and hash
// mismatch both return ErrInvalidCredentials so the caller cannot tell
// which field was wrong. On success the stored user record is returned;
// the handler is responsible for sanitizing it.
func (s *UserService) Login(ctx context.Context, phone, password string) (*domain.User, error) {
	u, err := s.Repo.GetUserByPhone(ctx, s.DB, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := auth.VerifyPassword(password, u.PasswordHash)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID returns the user with the given id, or ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	u, err := s.Repo.GetUserByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByPhone returns the user with the given phone, or ErrUserNotFound.
func (s *UserService) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	u, err := s.Repo.GetUserByPhone(ctx, s.DB, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// List returns all users ordered by creation time descending.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Repo.ListUsers(ctx, s.DB)
}

// Delete removes a user. It fails with ErrUserNotFound when the user
// does not exist and with ErrUserHasPets while the user still owns
// pets; the existence check and the delete share a transaction.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetUserByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		n, err := s.Repo.CountPetsByUser(ctx, tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrUserHasPets
		}

		if err := s.Repo.DeleteUser(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
}
