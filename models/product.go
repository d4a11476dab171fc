package models

import "time"

// Product is an inventory record owned by a single user.
type Product struct {
	ID          string    `json:"_id"`
	OwnerID     string    `json:"user"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	Quantity    int64     `json:"quantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       Image     `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductFields carries the client-supplied values for create and update.
// Nil pointers mean "not provided"; on update they keep the stored value.
type ProductFields struct {
	Name        *string  `json:"name,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Quantity    *int64   `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`

	// Image is the uploaded file, if any. Never decoded from JSON.
	Image *ImageFile `json:"-"`
}
