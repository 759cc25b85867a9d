package item

import (
	"github.com/ductran2702/code-challenge-backend/internal/model"
)

// Item is the sole managed resource: a named record with an optional
// description. A nil Description is stored as NULL and serialized as null.
type Item struct {
	model.Base
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// DeleteItemResponse is the body returned after a successful delete.
type DeleteItemResponse struct {
	Message string `json:"message"`
	Item    Item   `json:"item"`
}

// HealthResponse is the body of the lightweight liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
