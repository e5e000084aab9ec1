package entity

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleVendor   UserRole = "vendor"
	RoleCustomer UserRole = "customer"
)

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

type User struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	Role             UserRole         `json:"role"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier,omitempty"`
}
