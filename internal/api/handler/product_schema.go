package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"    validate:"required,url"`
}

// updateProductRequest carries a presence-tagged partial update. Pointer
// fields distinguish "omitted" from a legitimate zero value such as stock 0.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl"    validate:"omitempty,url"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type deleteProductResponse struct {
	Message string `json:"message"`
}
