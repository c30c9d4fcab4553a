package subaccount

const subAccountColumns = `id, name, code, description, "accountId", "isLocked", status, created_at, updated_at`

const (
	SelectAllSubAccounts = `
		SELECT ` + subAccountColumns + `
		FROM "subAccount"
		WHERE status = 'true'
		ORDER BY id DESC
	`
	SearchSubAccountsByName = `
		SELECT ` + subAccountColumns + `
		FROM "subAccount"
		WHERE status = 'true' AND name LIKE '%' || $1 || '%'
		ORDER BY id DESC
		OFFSET $2 LIMIT $3
	`
	CountSearchSubAccountsByName = `
		SELECT count(*) FROM "subAccount" WHERE status = 'true' AND name LIKE '%' || $1 || '%'
	`
	SelectSubAccountsByStatus = `
		SELECT ` + subAccountColumns + `
		FROM "subAccount"
		WHERE status = $1
		ORDER BY id DESC
		OFFSET $2 LIMIT $3
	`
	CountSubAccountsByStatus = `SELECT count(*) FROM "subAccount" WHERE status = $1`
	SelectSubAccountByID     = `SELECT ` + subAccountColumns + ` FROM "subAccount" WHERE id = $1`
	InsertSubAccount         = `
		INSERT INTO "subAccount" (name, code, description, "accountId")
		VALUES ($1, $2, $3, $4)
		RETURNING ` + subAccountColumns + `
	`
	UpdateSubAccountByID = `
		UPDATE "subAccount"
		SET name = COALESCE($1, name),
		    code = COALESCE($2, code),
		    description = COALESCE($3, description),
		    "accountId" = COALESCE($4, "accountId"),
		    updated_at = now()
		WHERE id = $5
		RETURNING ` + subAccountColumns + `
	`
	UpdateSubAccountStatusByID = `
		UPDATE "subAccount"
		SET status = $2,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + subAccountColumns + `
	`
)
