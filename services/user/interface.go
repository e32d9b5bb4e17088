package user

import (
	profileRepo "vitalguard/database/repository/profile"
	subscriptionRepo "vitalguard/database/repository/subscription"
	userRepo "vitalguard/database/repository/user"
	"vitalguard/models"
)

// AuthResponse contains the user's ID and a fresh session token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// UserService defines account management operations.
type UserService interface {
	// RegisterUser creates a new account with an empty health profile and
	// returns a fresh session token.
	RegisterUser(user models.User) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh session token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// RevokeAuthToken invalidates the user's active session.
	RevokeAuthToken(userID string) error
	// GetUserByID fetches an account by ID.
	GetUserByID(id string) (*models.User, error)
	// UpdatePassword changes the account password and invalidates the
	// active session.
	UpdatePassword(userID, currentPassword, newPassword string) error
	// DeleteUser removes the account along with its profile and
	// subscription record.
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo             userRepo.UserRepository
	ProfileRepo      profileRepo.ProfileRepository
	SubscriptionRepo subscriptionRepo.SubscriptionRepository
}
