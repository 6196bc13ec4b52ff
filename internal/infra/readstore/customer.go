package readstore

import (
	"context"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
)

const getCustomerByAccountIDQuery = `
SELECT id, account_id, first_name, last_name, email
FROM customers
WHERE account_id = $1`

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*queries.CustomerView, error) {
	var view queries.CustomerView
	err := r.db.QueryRow(ctx, getCustomerByAccountIDQuery, accountID).Scan(
		&view.ID, &view.AccountID, &view.FirstName, &view.LastName, &view.Email,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by account", err)
	}

	return &view, nil
}
