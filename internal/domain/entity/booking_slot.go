package entity

// BookingSlot is a reservable time window tied to a booking-type product.
// Start and end times are ISO-8601 strings without zone, e.g.
// "2025-06-12T09:00:00"; display order is their lexicographic order,
// which coincides with chronological order for this layout.
type BookingSlot struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	IsBooked   bool   `json:"is_booked"`
	CustomerID string `json:"customer_id,omitempty"`
}
