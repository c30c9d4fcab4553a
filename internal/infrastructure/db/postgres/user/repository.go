package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/Tanvir1407/metb/internal/domain/user"
	"github.com/Tanvir1407/metb/internal/infrastructure/db/postgres"
)

var ErrUserAlreadyExists = errors.New("username or email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchActiveUsers(ctx context.Context) (domain.Users, error) {
	rows, err := r.db.Query(ctx, SelectActiveUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUserRows(rows)
}

func (r *Repository) SearchActiveUsers(ctx context.Context, key string, skip, limit int) (domain.Users, int64, error) {
	rows, err := r.db.Query(ctx, SearchActiveUsers, key, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	us, err := scanUserRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, CountSearchActiveUsers, key).Scan(&total); err != nil {
		return nil, 0, err
	}

	return us, total, nil
}

func (r *Repository) FetchUsersByStatus(ctx context.Context, status bool, skip, limit int) (domain.Users, int64, error) {
	rows, err := r.db.Query(ctx, SelectUsersByStatus, varcharFromBool(status), skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	us, err := scanUserRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, CountUsersByStatus, varcharFromBool(status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	return us, total, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return scanUserRow(r.db.QueryRow(ctx, SelectUserByID, uint64(id)))
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUserRow(r.db.QueryRow(ctx, SelectUserByName, username))
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := scanUserRow(r.db.QueryRow(
		ctx,
		InsertUser,
		req.FirstName, req.LastName, req.Username, req.PasswordHash,
		req.Email, req.Phone, req.Image, req.RoleID,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return u, nil
}

// UpdateUser applies the whole update inside one transaction. The
// rollback is deferred so every non-commit exit path releases it.
func (r *Repository) UpdateUser(ctx context.Context, id domain.ID, req domain.Update) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUserRow(tx.QueryRow(
		ctx,
		UpdateUserByID,
		req.FirstName, req.LastName, req.Username, req.PasswordHash,
		req.Email, req.Phone, req.Image, req.RoleID,
		req.JoinDate, req.LeaveDate, req.DefaultStoreID,
		uint64(id),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) SetLoginState(ctx context.Context, id domain.ID, isLogin bool, refreshToken *string) (*domain.User, error) {
	return scanUserRow(r.db.QueryRow(ctx, UpdateLoginStateByID, uint64(id), varcharFromBool(isLogin), refreshToken))
}

func (r *Repository) SetStatus(ctx context.Context, id domain.ID, status bool) (*domain.User, error) {
	return scanUserRow(r.db.QueryRow(ctx, UpdateStatusByID, uint64(id), varcharFromBool(status)))
}

func scanUserRow(row pgx.Row) (*domain.User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Username,
		&u.Password,
		&u.RefreshToken,
		&u.Email,
		&u.Phone,
		&u.Image,
		&u.RoleID,
		&u.IsLogin,
		&u.Status,
		&u.JoinDate,
		&u.LeaveDate,
		&u.DefaultStoreID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func scanUserRows(rows pgx.Rows) (domain.Users, error) {
	var us Users
	for rows.Next() {
		u := new(User)

		if err := rows.Scan(
			&u.ID,
			&u.FirstName,
			&u.LastName,
			&u.Username,
			&u.Password,
			&u.RefreshToken,
			&u.Email,
			&u.Phone,
			&u.Image,
			&u.RoleID,
			&u.IsLogin,
			&u.Status,
			&u.JoinDate,
			&u.LeaveDate,
			&u.DefaultStoreID,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}
