package subaccount

import (
	"time"
)

type (
	SubAccount struct {
		ID          uint64
		Name        string
		Code        *int64
		Description *string
		AccountID   uint64

		// varchar 'true'/'false' in the legacy schema
		IsLocked string
		Status   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	SubAccounts []*SubAccount
)

func boolFromVarchar(s string) bool { return s == "true" }

func varcharFromBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
