package ports

import (
	"github.com/Tanvir1407/metb/internal/domain/user"
)

type Auth interface {
	GenerateToken(u *user.User, requestPassword string) (string, error)
	GenerateRefreshToken(u *user.User) (string, error)
	HashPassword(password string) (string, error)
}
