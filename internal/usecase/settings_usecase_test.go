package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/domain/entity"
)

func TestGetSettings(t *testing.T) {
	sessions := NewSessionRegistry()
	sessions.Put("u1", &Session{
		User: &entity.User{ID: "u1", Name: "Alex Rivera", Role: entity.RoleVendor, SubscriptionTier: entity.TierPro},
		ActiveStore: &entity.Store{ID: "s1", Name: "Riverside Gear"},
	})
	uc := NewSettingsUseCase(sessions)

	data, err := uc.GetSettings(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", data.User.ID)
	assert.Equal(t, "s1", data.Store.ID)
	require.Len(t, data.Plans, 2)
	assert.True(t, data.Plans[0].Active)
	assert.False(t, data.Plans[1].Active)
	require.Len(t, data.PayoutMethods, 3)
	assert.True(t, data.PayoutMethods[0].Connected)
}

func TestGetSettingsRequiresSession(t *testing.T) {
	uc := NewSettingsUseCase(NewSessionRegistry())

	_, err := uc.GetSettings(context.Background(), "nobody")
	require.Error(t, err)
}
