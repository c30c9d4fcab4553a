package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/internal/application/ports"
	"github.com/Tanvir1407/metb/internal/application/services"
	userDomain "github.com/Tanvir1407/metb/internal/domain/user"
	userDB "github.com/Tanvir1407/metb/internal/infrastructure/db/postgres/user"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/auth"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/user"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/validator"
)

const refreshTokenCookie = "refreshToken"

type AuthController struct {
	userService ports.UserService
	authService ports.Auth
	logger      *zap.Logger
}

func NewAuthController(
	r *gin.Engine,
	userService ports.UserService,
	authService ports.Auth,
	logger *zap.Logger,
) *AuthController {
	ac := &AuthController{
		userService: userService,
		authService: authService,
		logger:      logger,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, ac.LogoutHandler)
	r.POST(RouteRegister, ac.RegisterHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("FindUserByUsername() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrInvalidCredentials.Error()})
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err))
		return
	}

	refreshToken, err := ac.authService.GenerateRefreshToken(u)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("GenerateRefreshToken() error", zap.Error(err))
		return
	}

	if _, err = ac.userService.MarkLogin(c.Request.Context(), u.ID, refreshToken); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("MarkLogin() error", zap.Error(err))
		return
	}

	c.SetCookie(refreshTokenCookie, refreshToken, 7*24*60*60, "/", "", false, true)
	c.JSON(http.StatusOK, auth.LoginResponse{
		Token:  token,
		UserID: uint64(u.ID),
		RoleID: u.RoleID,
	})
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	var req auth.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if _, err := ac.userService.MarkLogout(c.Request.Context(), userDomain.ID(req.ID)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to logout"},
		)
		ac.logger.Error("MarkLogout() error", zap.Error(err))
		return
	}

	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successfully"})
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	hash, err := ac.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register a user"},
		)
		ac.logger.Error("HashPassword() error", zap.Error(err))
		return
	}

	uDomain := userDomain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: &hash,
		Phone:        req.Phone,
		Image:        req.Image,
		RoleID:       req.RoleID,
		Status:       true,
	}
	if req.Email != "" {
		email := req.Email
		uDomain.Email = &email
	}

	u, err := ac.userService.RegisterUser(c.Request.Context(), uDomain)
	if err != nil {
		if errors.Is(err, userDB.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register a user"},
		)
		ac.logger.Error("RegisterUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}
