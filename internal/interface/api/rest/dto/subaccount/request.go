package subaccount

type (
	CreateRequest struct {
		Name        string  `json:"name"`
		Code        *int64  `json:"code"`
		Description *string `json:"description"`
		AccountID   uint64  `json:"accountId"`
	}

	// UpdateRequest leaves nil fields unchanged.
	UpdateRequest struct {
		Name        *string `json:"name"`
		Code        *int64  `json:"code"`
		Description *string `json:"description"`
		AccountID   *uint64 `json:"accountId"`
	}

	StatusRequest struct {
		Status string `json:"status"`
	}
)
