package banner

import "time"

type Banner struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   *string   `json:"image_path,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewBanner struct {
	Title       string
	Description string
	ImagePath   *string
	IsActive    bool
}

type UpdateBanner struct {
	ID          int64
	Title       string
	Description string
	ImagePath   *string
	IsActive    bool
}
