package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Tanvir1407/metb/internal/application/ports"
	"github.com/Tanvir1407/metb/internal/domain/user"
	"github.com/Tanvir1407/metb/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 24 * 7 * time.Hour
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(jwtService *jwt.Service) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	if u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(requestPassword)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(fmt.Sprintf("%d", u.ID), u.RoleID, accessTokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

func (as *AuthService) GenerateRefreshToken(u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(fmt.Sprintf("%d", u.ID), u.RoleID, refreshTokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

func (as *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
