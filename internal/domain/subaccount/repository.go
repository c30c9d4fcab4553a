package subaccount

import (
	"context"
)

type Repository interface {
	FetchAll(ctx context.Context) (SubAccounts, error)
	SearchByName(ctx context.Context, key string, skip, limit int) (SubAccounts, int64, error)
	FetchPageByStatus(ctx context.Context, status bool, skip, limit int) (SubAccounts, int64, error)
	FetchByID(ctx context.Context, id ID) (*SubAccount, error)
	Create(ctx context.Context, req SubAccount) (*SubAccount, error)
	Update(ctx context.Context, id ID, req Update) (*SubAccount, error)
	SetStatus(ctx context.Context, id ID, status bool) (*SubAccount, error)
}
