// File: internal/services/user_services/user_service.go
package user_services

import (
	"context"
	"fmt"
	"strings"

	"github.com/abudi-09/Chat-App/internal/domain"
	"github.com/abudi-09/Chat-App/internal/repository/user"
)

// UserService covers the directory and profile surface.
type UserService struct {
	userRepo user.UserRepository
	uploader Uploader
	logger   Logger
}

func NewUserService(userRepo user.UserRepository, uploader Uploader, logger Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		uploader: uploader,
		logger:   logger,
	}
}

// GetByID loads a single user.
func (s *UserService) GetByID(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// GetSidebarUsers returns every registered user except the caller, for the
// contact list.
func (s *UserService) GetSidebarUsers(ctx context.Context, userID uint) ([]domain.User, error) {
	users, err := s.userRepo.FindAllExcept(ctx, userID)
	if err != nil {
		s.logger.Error("sidebar listing failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("could not load users")
	}
	return users, nil
}

// UpdateProfilePicture uploads the new image to the media store and saves
// the resulting URL on the user's profile.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID uint, imageData string) (*domain.User, error) {
	if strings.TrimSpace(imageData) == "" {
		return nil, fmt.Errorf("profile picture is required")
	}

	url, err := s.uploader.UploadImage(ctx, imageData)
	if err != nil {
		s.logger.Error("profile picture upload failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("could not upload profile picture")
	}

	if err := s.userRepo.UpdateProfilePic(ctx, userID, url); err != nil {
		s.logger.Error("profile picture persist failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("could not update profile")
	}

	s.logger.Info("profile picture updated", "user_id", userID)
	return s.userRepo.FindByID(ctx, userID)
}
