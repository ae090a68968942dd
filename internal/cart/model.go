package cart

// Line is one product entry in a session cart. Quantity units follow
// the product's unit type.
type Line struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// Cart holds one session's selections. One line per product.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c *Cart) find(productID int64) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) remove(productID int64) {
	lines := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			lines = append(lines, l)
		}
	}
	c.Lines = lines
}

// ViewItem is a cart line joined with live product data for display.
// It is a read view; prices are frozen only at order time.
type ViewItem struct {
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
	ImagePath   *string `json:"image_path,omitempty"`
	UnitType    string  `json:"unit_type"`
	MaxQuantity float64 `json:"max_quantity"`
}
