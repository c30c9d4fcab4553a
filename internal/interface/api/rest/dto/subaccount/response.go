package subaccount

import (
	"time"
)

type (
	SubAccount struct {
		ID          uint64    `json:"id"`
		Name        string    `json:"name"`
		Code        *int64    `json:"code"`
		Description *string   `json:"description"`
		AccountID   uint64    `json:"accountId"`
		IsLocked    bool      `json:"isLocked"`
		Status      bool      `json:"status"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
	SubAccounts []SubAccount

	ListResponse struct {
		GetAllSubAccount SubAccounts `json:"getAllSubAccount"`
		TotalSubAccount  int64       `json:"totalSubAccount"`
	}
)
