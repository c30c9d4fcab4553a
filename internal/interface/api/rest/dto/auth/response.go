package auth

type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint64 `json:"userId"`
	RoleID uint64 `json:"roleId"`
}
