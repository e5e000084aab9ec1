package entity

type DisputeStatus string

const (
	DisputeStatusPending  DisputeStatus = "Pending"
	DisputeStatusInReview DisputeStatus = "In Review"
	DisputeStatusUrgent   DisputeStatus = "Urgent"
)

// Dispute is a platform-level case surfaced on the admin hub. The queue
// is display-only; resolution flows live outside this system.
type Dispute struct {
	ID        string        `json:"id"`
	StoreName string        `json:"store"`
	Amount    string        `json:"amount"`
	Reason    string        `json:"reason"`
	Status    DisputeStatus `json:"status"`
}
