package product

import "time"

// Unit types determine how quantities are interpreted: discrete counts
// or weight in kilograms. The catalog also carries count-like units
// such as "dozen" and "litre" for display.
const (
	UnitQuantity = "quantity"
	UnitKg       = "kg"
)

type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	OriginalPrice     *float64  `json:"original_price,omitempty"`
	QuantityAvailable float64   `json:"quantity_available"`
	UnitType          string    `json:"unit_type"`
	ImagePath         *string   `json:"image_path,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type NewProduct struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice *float64
	Quantity      float64
	UnitType      string
	ImagePath     *string
}

type UpdateProduct struct {
	ID            int64
	Name          string
	Description   string
	Price         float64
	OriginalPrice *float64
	Quantity      float64
	UnitType      string
	ImagePath     *string
	IsActive      bool
}
