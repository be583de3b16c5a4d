// File: internal/repository/user/gorm_user_repository.go
package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/abudi-09/Chat-App/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// Create - validates input and never logs credentials.
func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.validateUserInput(user); err != nil {
		log.Printf("[UserRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		// Secure logging - no credentials exposed
		log.Printf("[UserRepository] Database error during user creation: %v", err)
		return nil, errors.New("database error creating user")
	}

	log.Printf("[UserRepository] User created successfully with ID: %d", user.ID)
	return user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if id == 0 {
		return nil, errors.New("invalid user ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return r.handleFindError(err, &user, "FindByID")
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email is required")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return r.handleFindError(err, &user, "FindByEmail")
}

func (r *gormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, errors.New("email is required")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		log.Printf("[UserRepository] Database error checking email existence: %v", err)
		return false, errors.New("database error checking email existence")
	}
	return count > 0, nil
}

func (r *gormUserRepository) FindAllExcept(ctx context.Context, userID uint) ([]domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("id <> ?", userID).
		Order("full_name ASC, id ASC").
		Find(&users).Error
	if err != nil {
		log.Printf("[UserRepository] Database error listing users for sidebar (user ID %d): %v", userID, err)
		return nil, errors.New("database error fetching users")
	}
	return users, nil
}

func (r *gormUserRepository) UpdateProfilePic(ctx context.Context, userID uint, url string) error {
	if userID == 0 {
		return errors.New("invalid user ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("profile_pic", url)
	if result.Error != nil {
		log.Printf("[UserRepository] Database error updating profile pic for user ID %d: %v", userID, result.Error)
		return errors.New("database error updating profile picture")
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ===== VALIDATION HELPERS =====

func (r *gormUserRepository) validateUserInput(user *domain.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if err := user.IsValid(); err != nil {
		return err
	}
	if user.Password == "" {
		return errors.New("password hash is required")
	}
	return nil
}

// handleFindError - secure error handling without data leakage.
func (r *gormUserRepository) handleFindError(err error, user *domain.User, operation string) (*domain.User, error) {
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	log.Printf("[UserRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}
