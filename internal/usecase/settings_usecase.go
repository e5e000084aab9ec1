package usecase

import (
	"context"

	"vendio/internal/domain/entity"
	"vendio/pkg/errors"
)

// SettingsUseCase shapes the settings page view model: subscription,
// payout methods and business profile. Display-only in this system.
type SettingsUseCase struct {
	sessions *SessionRegistry
}

func NewSettingsUseCase(sessions *SessionRegistry) *SettingsUseCase {
	return &SettingsUseCase{sessions: sessions}
}

type PlanOption struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Active   bool     `json:"active"`
}

type PayoutMethod struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Connected   bool   `json:"connected"`
}

type SettingsData struct {
	User          *entity.User   `json:"user"`
	Store         *entity.Store  `json:"store,omitempty"`
	Plans         []PlanOption   `json:"plans"`
	PayoutMethods []PayoutMethod `json:"payout_methods"`
}

func (uc *SettingsUseCase) GetSettings(ctx context.Context, userID string) (*SettingsData, error) {
	session, ok := uc.sessions.Get(userID)
	if !ok {
		return nil, errors.Unauthorized("No active session", nil)
	}

	tier := session.User.SubscriptionTier
	return &SettingsData{
		User:  session.User,
		Store: session.ActiveStore,
		Plans: []PlanOption{
			{
				Name:     "Pro",
				Price:    "$29",
				Features: []string{"Custom domain", "0% platform fees", "Unlimited products", "Priority support"},
				Active:   tier == entity.TierPro,
			},
			{
				Name:     "Enterprise",
				Price:    "Custom",
				Features: []string{"SLA Guarantees", "Dedicated account manager", "Advanced analytics", "Custom integrations"},
				Active:   tier == entity.TierEnterprise,
			},
		},
		PayoutMethods: []PayoutMethod{
			{Title: "Stripe Connect", Description: "Automatic daily payouts to your bank account.", Connected: true},
			{Title: "M-Pesa Payouts", Description: "Withdraw instantly to your M-Pesa mobile wallet.", Connected: false},
			{Title: "PayPal Business", Description: "Global payouts to your verified PayPal account.", Connected: false},
		},
	}, nil
}
