package usecase

import (
	"context"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/internal/infrastructure/auth"
	"vendio/pkg/errors"
	"vendio/pkg/logger"
)

// AuthUseCase implements the demo's mocked authentication: a login is a
// role choice, not a credential check. It still hands out real session
// tokens so the rest of the API can be written as if auth were real.
type AuthUseCase struct {
	sessions  *SessionRegistry
	storeRepo repository.StoreRepository
	jwtClient *auth.JWTClient
}

func NewAuthUseCase(sessions *SessionRegistry, storeRepo repository.StoreRepository, jwtClient *auth.JWTClient) *AuthUseCase {
	return &AuthUseCase{
		sessions:  sessions,
		storeRepo: storeRepo,
		jwtClient: jwtClient,
	}
}

type AuthResult struct {
	User  *entity.User  `json:"user"`
	Store *entity.Store `json:"store,omitempty"`
	Token string        `json:"token"`
}

func (uc *AuthUseCase) Login(ctx context.Context, role entity.UserRole) (*AuthResult, error) {
	user := mockUserForRole(role)
	if user == nil {
		return nil, errors.BadRequest("Unsupported login role", nil)
	}

	session := &Session{User: user}

	// A vendor signs straight into their store's dashboard.
	if role == entity.RoleVendor {
		store, err := uc.storeRepo.GetByVendorID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		session.ActiveStore = store
	}

	token, err := uc.jwtClient.CreateToken(user)
	if err != nil {
		return nil, errors.Internal("Failed to create session token", err)
	}

	uc.sessions.Put(user.ID, session)
	logger.Info("Session started: user=%s role=%s", user.ID, user.Role)

	return &AuthResult{
		User:  session.User,
		Store: session.ActiveStore,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	if _, ok := uc.sessions.Get(userID); !ok {
		return errors.Unauthorized("No active session", nil)
	}
	uc.sessions.Delete(userID)
	logger.Info("Session ended: user=%s", userID)
	return nil
}

func (uc *AuthUseCase) CurrentSession(ctx context.Context, userID string) (*Session, error) {
	session, ok := uc.sessions.Get(userID)
	if !ok {
		return nil, errors.Unauthorized("No active session", nil)
	}
	return session, nil
}

func mockUserForRole(role entity.UserRole) *entity.User {
	switch role {
	case entity.RoleAdmin:
		return &entity.User{
			ID:               "admin1",
			Email:            "admin@vendio.io",
			Name:             "Super Admin",
			Role:             entity.RoleAdmin,
			SubscriptionTier: entity.TierPro,
		}
	case entity.RoleVendor:
		return &entity.User{
			ID:               "u1",
			Email:            "alex@vendio.io",
			Name:             "Alex Rivera",
			Role:             entity.RoleVendor,
			SubscriptionTier: entity.TierPro,
		}
	default:
		return nil
	}
}
