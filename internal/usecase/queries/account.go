package queries

import (
	"context"

	"github.com/google/uuid"
)

type AccountView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AccountReadStore interface {
	// FindByEmail returns the account together with its password hash; the
	// hash never leaves the login path.
	FindByEmail(ctx context.Context, email string) (*AccountView, string, error)
}
