package subaccount

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/Tanvir1407/metb/internal/domain/subaccount"
	"github.com/Tanvir1407/metb/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAll(ctx context.Context) (domain.SubAccounts, error) {
	rows, err := r.db.Query(ctx, SelectAllSubAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubAccountRows(rows)
}

func (r *Repository) SearchByName(ctx context.Context, key string, skip, limit int) (domain.SubAccounts, int64, error) {
	rows, err := r.db.Query(ctx, SearchSubAccountsByName, key, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sas, err := scanSubAccountRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, CountSearchSubAccountsByName, key).Scan(&total); err != nil {
		return nil, 0, err
	}

	return sas, total, nil
}

func (r *Repository) FetchPageByStatus(ctx context.Context, status bool, skip, limit int) (domain.SubAccounts, int64, error) {
	rows, err := r.db.Query(ctx, SelectSubAccountsByStatus, varcharFromBool(status), skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sas, err := scanSubAccountRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, CountSubAccountsByStatus, varcharFromBool(status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	return sas, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, id domain.ID) (*domain.SubAccount, error) {
	return scanSubAccountRow(r.db.QueryRow(ctx, SelectSubAccountByID, uint64(id)))
}

func (r *Repository) Create(ctx context.Context, req domain.SubAccount) (*domain.SubAccount, error) {
	return scanSubAccountRow(r.db.QueryRow(
		ctx,
		InsertSubAccount,
		req.Name, req.Code, req.Description, req.AccountID,
	))
}

func (r *Repository) Update(ctx context.Context, id domain.ID, req domain.Update) (*domain.SubAccount, error) {
	return scanSubAccountRow(r.db.QueryRow(
		ctx,
		UpdateSubAccountByID,
		req.Name, req.Code, req.Description, req.AccountID,
		uint64(id),
	))
}

func (r *Repository) SetStatus(ctx context.Context, id domain.ID, status bool) (*domain.SubAccount, error) {
	return scanSubAccountRow(r.db.QueryRow(ctx, UpdateSubAccountStatusByID, uint64(id), varcharFromBool(status)))
}

func scanSubAccountRow(row pgx.Row) (*domain.SubAccount, error) {
	sa := new(SubAccount)
	err := row.Scan(
		&sa.ID,
		&sa.Name,
		&sa.Code,
		&sa.Description,
		&sa.AccountID,
		&sa.IsLocked,
		&sa.Status,
		&sa.CreatedAt,
		&sa.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(sa), nil
}

func scanSubAccountRows(rows pgx.Rows) (domain.SubAccounts, error) {
	var sas SubAccounts
	for rows.Next() {
		sa := new(SubAccount)

		if err := rows.Scan(
			&sa.ID,
			&sa.Name,
			&sa.Code,
			&sa.Description,
			&sa.AccountID,
			&sa.IsLocked,
			&sa.Status,
			&sa.CreatedAt,
			&sa.UpdatedAt,
		); err != nil {
			return nil, err
		}

		sas = append(sas, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&sas), nil
}
