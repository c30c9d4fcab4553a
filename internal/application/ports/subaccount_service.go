package ports

import (
	"context"

	"github.com/Tanvir1407/metb/internal/domain/subaccount"
)

type SubAccountService interface {
	FindAllSubAccounts(ctx context.Context) (subaccount.SubAccounts, error)
	SearchSubAccounts(ctx context.Context, key string, skip, limit int) (subaccount.SubAccounts, int64, error)
	FindSubAccountsByStatus(ctx context.Context, status bool, skip, limit int) (subaccount.SubAccounts, int64, error)
	FindSubAccountByID(ctx context.Context, id subaccount.ID) (*subaccount.SubAccount, error)
	CreateSubAccount(ctx context.Context, sa subaccount.SubAccount) (*subaccount.SubAccount, error)
	UpdateSubAccount(ctx context.Context, id subaccount.ID, req subaccount.Update) (*subaccount.SubAccount, error)
	SetSubAccountStatus(ctx context.Context, id subaccount.ID, status bool) (*subaccount.SubAccount, error)
}
