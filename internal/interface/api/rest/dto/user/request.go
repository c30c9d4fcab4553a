package user

type (
	// UpdateRequest is the explicit field set of a user update. Nil
	// pointers mean "leave unchanged"; joinDate is always required.
	UpdateRequest struct {
		FirstName *string  `json:"firstName"`
		LastName  *string  `json:"lastName"`
		Username  *string  `json:"username"`
		Password  *string  `json:"password"`
		Email     *string  `json:"email"`
		Phone     *string  `json:"phone"`
		Image     *string  `json:"image"`
		RoleID    *uint64  `json:"roleId"`
		JoinDate  string   `json:"joinDate"`
		LeaveDate *string  `json:"leaveDate"`
		StoreID   []uint64 `json:"storeId"`
	}

	// StatusRequest carries the legacy string boolean of the soft
	// delete endpoint.
	StatusRequest struct {
		Status string `json:"status"`
	}
)
