// File: internal/repository/user/interface.go
package user

import (
	"context"

	"github.com/abudi-09/Chat-App/internal/domain"
)

// UserRepository handles user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindAllExcept returns every user except the given one, for the
	// contact sidebar.
	FindAllExcept(ctx context.Context, userID uint) ([]domain.User, error)
	UpdateProfilePic(ctx context.Context, userID uint, url string) error
}
