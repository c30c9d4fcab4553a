package subaccount

import (
	"time"
)

type (
	ID         uint64
	SubAccount struct {
		ID          ID
		Name        string
		Code        *int64
		Description *string
		AccountID   uint64

		IsLocked bool
		Status   bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	SubAccounts []*SubAccount

	Update struct {
		Name        *string
		Code        *int64
		Description *string
		AccountID   *uint64
	}
)
