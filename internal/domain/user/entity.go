package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		FirstName    string
		LastName     string
		Username     string
		PasswordHash *string
		RefreshToken *string
		Email        *string
		Phone        string
		Image        string
		RoleID       uint64

		// legacy varchar 'true'/'false' columns, converted at the repo boundary
		IsLogin bool
		Status  bool

		JoinDate       *time.Time
		LeaveDate      *time.Time
		DefaultStoreID *uint64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// Update carries the explicit field set of an update request.
	// Nil pointers mean "keep the current value".
	Update struct {
		FirstName      *string
		LastName       *string
		Username       *string
		PasswordHash   *string
		Email          *string
		Phone          *string
		Image          *string
		RoleID         *uint64
		JoinDate       time.Time
		LeaveDate      *time.Time
		DefaultStoreID *uint64
	}
)

// SuperAdminRoleID is reserved for the single super admin account and
// can never be assigned or taken away through the update path.
const SuperAdminRoleID uint64 = 1
