package user

import (
	"context"
)

type Repository interface {
	FetchActiveUsers(ctx context.Context) (Users, error)
	SearchActiveUsers(ctx context.Context, key string, skip, limit int) (Users, int64, error)
	FetchUsersByStatus(ctx context.Context, status bool, skip, limit int) (Users, int64, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, id ID, req Update) (*User, error)
	SetLoginState(ctx context.Context, id ID, isLogin bool, refreshToken *string) (*User, error)
	SetStatus(ctx context.Context, id ID, status bool) (*User, error)
}
