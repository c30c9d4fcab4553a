package user

import (
	"time"
)

// User deliberately omits password and isLogin: neither may ever
// appear in a response payload.
type (
	User struct {
		ID             uint64     `json:"id"`
		FirstName      string     `json:"firstName"`
		LastName       string     `json:"lastName"`
		Username       string     `json:"username"`
		Email          *string    `json:"email"`
		Phone          string     `json:"phone"`
		Image          string     `json:"image"`
		RoleID         uint64     `json:"roleId"`
		Status         bool       `json:"status"`
		JoinDate       *time.Time `json:"joinDate"`
		LeaveDate      *time.Time `json:"leaveDate"`
		DefaultStoreID *uint64    `json:"defaultStoreId"`
		CreatedAt      time.Time  `json:"createdAt"`
		UpdatedAt      time.Time  `json:"updatedAt"`
	}
	Users []User

	ListResponse struct {
		GetAllUser Users `json:"getAllUser"`
		TotalUser  int64 `json:"totalUser"`
	}
)
