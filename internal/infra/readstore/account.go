package readstore

import (
	"context"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/queries"
)

const getAccountByEmailQuery = `
SELECT id, email, role, password_hash
FROM accounts
WHERE lower(email) = lower($1)`

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(db db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: db}
}

func (r *AccountReadStore) FindByEmail(ctx context.Context, email string) (*queries.AccountView, string, error) {
	var (
		view         queries.AccountView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, getAccountByEmailQuery, email).Scan(
		&view.ID, &view.Email, &view.Role, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find account by email", err)
	}

	return &view, passwordHash, nil
}
