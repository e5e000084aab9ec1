package entity

type NotificationKind string

const (
	NotificationOrder   NotificationKind = "order"
	NotificationWarning NotificationKind = "warning"
	NotificationUpdate  NotificationKind = "update"
	NotificationPayout  NotificationKind = "payout"
	NotificationBooking NotificationKind = "booking"
)

// Notification is one entry of a vendor's activity feed. TimeLabel is a
// human relative label ("12m ago", "Just now"), not a timestamp; ordering
// comes from the feed itself, newest first.
type Notification struct {
	ID          string           `json:"id"`
	VendorID    string           `json:"vendor_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TimeLabel   string           `json:"time"`
	Kind        NotificationKind `json:"type"`
}
