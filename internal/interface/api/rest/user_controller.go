package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/internal/application/ports"
	"github.com/Tanvir1407/metb/internal/application/services"
	userDomain "github.com/Tanvir1407/metb/internal/domain/user"
	"github.com/Tanvir1407/metb/internal/infrastructure/jwt"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/user"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/middleware"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	authService ports.Auth
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	authService ports.Auth,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		authService: authService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PUT(RouteUser, middleware.AuthMiddleware(jwtService), uc.UpdateUserHandler)
	r.DELETE(RouteUser, middleware.AuthMiddleware(jwtService), uc.DeleteUserHandler)

	return uc
}

// GetUsersHandler dispatches on the query parameter the same way media
// listing does. "all" and "search" act on active users only; the
// default page filters on the exact status value.
func (uc *UserController) GetUsersHandler(c *gin.Context) {
	q := c.Request.URL.Query()
	if len(q) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}

	switch q.Get("query") {
	case "all":
		users, err := uc.userService.FindActiveUsers(c.Request.Context())
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get users"},
			)
			uc.logger.Error("FindActiveUsers() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, user.ListResponse{
			GetAllUser: user.ToResponseUsers(users),
			TotalUser:  int64(len(users)),
		})
	case "search":
		key := q.Get("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
			return
		}

		skip, limit := validator.Pagination(q)
		users, total, err := uc.userService.SearchActiveUsers(c.Request.Context(), key, skip, limit)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to search users"},
			)
			uc.logger.Error("SearchActiveUsers() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, user.ListResponse{
			GetAllUser: user.ToResponseUsers(users),
			TotalUser:  total,
		})
	default:
		status := q.Get("status") != "false"
		skip, limit := validator.Pagination(q)

		users, total, err := uc.userService.FindUsersByStatus(c.Request.Context(), status, skip, limit)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get users"},
			)
			uc.logger.Error("FindUsersByStatus() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, user.ListResponse{
			GetAllUser: user.ToResponseUsers(users),
			TotalUser:  total,
		})
	}
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), userDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrUserNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	var req user.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := uc.authService.HashPassword(*req.Password)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a user"},
			)
			uc.logger.Error("HashPassword() error", zap.Error(err))
			return
		}
		passwordHash = &hash
	}

	upd, err := user.ToDomainUpdate(req, passwordHash)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), userDomain.ID(id), upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAssignSuperAdmin),
			errors.Is(err, services.ErrChangeSuperAdminRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a user"},
			)
			uc.logger.Error("UpdateUser() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// DeleteUserHandler is a soft delete: only the status flag flips.
func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	var req user.StatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	_, err = uc.userService.SetUserStatus(c.Request.Context(), userDomain.ID(id), req.Status == "true")
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update user status"},
		)
		uc.logger.Error("SetUserStatus() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated successfully"})
}
