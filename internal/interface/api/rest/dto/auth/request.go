package auth

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Image     string `json:"image"`
		RoleID    uint64 `json:"roleId"`
	}

	LogoutRequest struct {
		ID uint64 `json:"id"`
	}
)
