package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUsers = RouteApiV1 + "/users"
	RouteUser  = RouteUsers + "/:user_id"

	// auth
	RouteLogin    = RouteUsers + "/login"
	RouteLogout   = RouteUsers + "/logout"
	RouteRegister = RouteUsers + "/register"

	RouteMedia        = RouteApiV1 + "/media"
	RouteMediaUpload  = RouteMedia + "/upload"
	RouteMediaDestroy = RouteMedia + "/destroy"
	RouteMediaView    = RouteMedia + "/view/:media_id"

	RouteSubAccounts = RouteApiV1 + "/sub-accounts"
	RouteSubAccount  = RouteSubAccounts + "/:sub_account_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
