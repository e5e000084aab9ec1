package entity

type ProductType string

const (
	ProductTypePhysical ProductType = "physical"
	ProductTypeDigital  ProductType = "digital"
	ProductTypeService  ProductType = "service"
	ProductTypeBooking  ProductType = "booking"
)

type Product struct {
	ID          string      `json:"id"`
	StoreID     string      `json:"store_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Type        ProductType `json:"type"`
	ImageURL    string      `json:"image_url"`
	Stock       *int        `json:"stock,omitempty"`        // physical only
	DigitalLink string      `json:"digital_link,omitempty"` // digital only
}
