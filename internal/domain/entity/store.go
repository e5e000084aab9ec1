package entity

type StoreStatus string

const (
	StoreStatusDraft           StoreStatus = "draft"
	StoreStatusPendingApproval StoreStatus = "pending_approval"
	StoreStatusActive          StoreStatus = "active"
	StoreStatusSuspended       StoreStatus = "suspended"
)

// StoreTheme is owned by its Store and shares its lifetime.
type StoreTheme struct {
	PrimaryColor string `json:"primary_color"`
	FontFamily   string `json:"font_family"`
	BorderRadius string `json:"border_radius"`
}

type Store struct {
	ID          string      `json:"id"`
	VendorID    string      `json:"vendor_id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	LogoURL     string      `json:"logo_url,omitempty"`
	Status      StoreStatus `json:"status"`
	// Platform revenue share, fraction in [0,1].
	CommissionRate float64    `json:"commission_rate"`
	Theme          StoreTheme `json:"theme"`
}
