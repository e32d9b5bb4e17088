package user

import (
	"fmt"

	"vitalguard/models"
	"vitalguard/utils"

	"go.uber.org/zap"
)

// GetUserByID fetches an account by its ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

// DeleteUser removes the account together with its profile and subscription
// record, then drops the cached session.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		utils.GetLogger().Error("Failed to delete user", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to delete account, please try again")
	}

	if err := s.ProfileRepo.DeleteByUserID(userID); err != nil {
		utils.GetLogger().Error("Failed to delete profile", zap.String("userID", userID), zap.Error(err))
	}
	if err := s.SubscriptionRepo.DeleteByUserID(userID); err != nil {
		utils.GetLogger().Error("Failed to delete subscription", zap.String("userID", userID), zap.Error(err))
	}

	s.clearAuthCache(userID)
	return nil
}
