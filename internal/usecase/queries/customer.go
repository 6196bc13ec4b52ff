package queries

import (
	"context"

	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

type CustomerReadStore interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*CustomerView, error)
}

type CustomerQueries interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*CustomerView, error) {
	view, err := q.store.FindByAccountID(ctx, accountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to find customer by account")
	}
	return view, nil
}
