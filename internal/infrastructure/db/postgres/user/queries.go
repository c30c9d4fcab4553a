package user

const userColumns = `id, "firstName", "lastName", username, password, "refreshToken", email, phone, image, "roleId", "isLogin", status, "joinDate", "leaveDate", "defaultStoreId", created_at, updated_at`

const (
	SelectActiveUsers = `
		SELECT ` + userColumns + `
		FROM users
		WHERE status = 'true'
		ORDER BY id DESC
	`
	SearchActiveUsers = `
		SELECT ` + userColumns + `
		FROM users
		WHERE status = 'true'
		  AND (CAST(id AS TEXT) LIKE '%' || $1 || '%'
		    OR username LIKE '%' || $1 || '%'
		    OR "firstName" LIKE '%' || $1 || '%'
		    OR "lastName" LIKE '%' || $1 || '%')
		ORDER BY id DESC
		OFFSET $2 LIMIT $3
	`
	CountSearchActiveUsers = `
		SELECT count(*)
		FROM users
		WHERE status = 'true'
		  AND (CAST(id AS TEXT) LIKE '%' || $1 || '%'
		    OR username LIKE '%' || $1 || '%'
		    OR "firstName" LIKE '%' || $1 || '%'
		    OR "lastName" LIKE '%' || $1 || '%')
	`
	SelectUsersByStatus = `
		SELECT ` + userColumns + `
		FROM users
		WHERE status = $1
		ORDER BY id DESC
		OFFSET $2 LIMIT $3
	`
	CountUsersByStatus = `SELECT count(*) FROM users WHERE status = $1`
	SelectUserByID     = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	SelectUserByName   = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	InsertUser         = `
		INSERT INTO users ("firstName", "lastName", username, password, email, phone, image, "roleId")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns + `
	`
	UpdateUserByID = `
		UPDATE users
		SET "firstName" = COALESCE($1, "firstName"),
		    "lastName" = COALESCE($2, "lastName"),
		    username = COALESCE($3, username),
		    password = COALESCE($4, password),
		    email = COALESCE($5, email),
		    phone = COALESCE($6, phone),
		    image = COALESCE($7, image),
		    "roleId" = COALESCE($8, "roleId"),
		    "joinDate" = $9,
		    "leaveDate" = $10,
		    "defaultStoreId" = COALESCE($11, "defaultStoreId"),
		    updated_at = now()
		WHERE id = $12
		RETURNING ` + userColumns + `
	`
	UpdateLoginStateByID = `
		UPDATE users
		SET "isLogin" = $2,
		    "refreshToken" = $3,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
	UpdateStatusByID = `
		UPDATE users
		SET status = $2,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
)
