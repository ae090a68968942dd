package order

import "time"

type Order struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	CustomerPhone string    `json:"customer_phone"`
	Notes         *string   `json:"notes,omitempty"`
	PickupTime    time.Time `json:"pickup_time"`
	PickupSlot    string    `json:"pickup_slot"`
	TotalAmount   float64   `json:"total_amount"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Items         []Item    `json:"items"`
}

// Item snapshots a product at order time. Name, unit type and price
// are copied by value so later catalog edits cannot change a placed
// order.
type Item struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	UnitType    string  `json:"unit_type"`
}

func (i Item) Subtotal() float64 {
	return i.UnitPrice * i.Quantity
}

type PlaceOrderInput struct {
	CustomerName  string
	CustomerEmail *string
	CustomerPhone string
	Notes         *string
	PickupDate    string
	SlotID        int64
}

type DashboardStats struct {
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	RecentOrders  []Order `json:"recent_orders"`
}
