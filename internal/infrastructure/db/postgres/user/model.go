package user

import (
	"time"
)

type (
	User struct {
		ID           uint64
		FirstName    string
		LastName     string
		Username     string
		Password     string
		RefreshToken *string
		Email        *string
		Phone        string
		Image        string
		RoleID       uint64

		// varchar 'true'/'false' in the legacy schema
		IsLogin string
		Status  string

		JoinDate       *time.Time
		LeaveDate      *time.Time
		DefaultStoreID *uint64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

func boolFromVarchar(s string) bool { return s == "true" }

func varcharFromBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
