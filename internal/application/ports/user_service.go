package ports

import (
	"context"

	"github.com/Tanvir1407/metb/internal/domain/user"
)

type UserService interface {
	FindActiveUsers(ctx context.Context) (user.Users, error)
	SearchActiveUsers(ctx context.Context, key string, skip, limit int) (user.Users, int64, error)
	FindUsersByStatus(ctx context.Context, status bool, skip, limit int) (user.Users, int64, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUserByUsername(ctx context.Context, username string) (*user.User, error)
	RegisterUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUser(ctx context.Context, id user.ID, req user.Update) (*user.User, error)
	MarkLogin(ctx context.Context, id user.ID, refreshToken string) (*user.User, error)
	MarkLogout(ctx context.Context, id user.ID) (*user.User, error)
	SetUserStatus(ctx context.Context, id user.ID, status bool) (*user.User, error)
}
