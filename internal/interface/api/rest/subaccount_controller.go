package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/internal/application/ports"
	"github.com/Tanvir1407/metb/internal/application/services"
	saDomain "github.com/Tanvir1407/metb/internal/domain/subaccount"
	"github.com/Tanvir1407/metb/internal/infrastructure/jwt"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/subaccount"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/middleware"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/validator"
)

type SubAccountController struct {
	subAccountService ports.SubAccountService
	logger            *zap.Logger
}

func NewSubAccountController(
	r *gin.Engine,
	subAccountService ports.SubAccountService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *SubAccountController {
	sc := &SubAccountController{
		subAccountService: subAccountService,
		logger:            logger,
	}

	r.GET(RouteSubAccounts, sc.GetSubAccountsHandler)
	r.GET(RouteSubAccount, sc.GetSubAccountHandler)
	r.POST(RouteSubAccounts, middleware.AuthMiddleware(jwtService), sc.CreateSubAccountHandler)
	r.PUT(RouteSubAccount, middleware.AuthMiddleware(jwtService), sc.UpdateSubAccountHandler)
	r.DELETE(RouteSubAccount, middleware.AuthMiddleware(jwtService), sc.DeleteSubAccountHandler)

	return sc
}

func (sc *SubAccountController) GetSubAccountsHandler(c *gin.Context) {
	q := c.Request.URL.Query()
	if len(q) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}

	switch q.Get("query") {
	case "all":
		sas, err := sc.subAccountService.FindAllSubAccounts(c.Request.Context())
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get sub accounts"},
			)
			sc.logger.Error("FindAllSubAccounts() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, subaccount.ListResponse{
			GetAllSubAccount: subaccount.ToResponseSubAccounts(sas),
			TotalSubAccount:  int64(len(sas)),
		})
	case "search":
		key := q.Get("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
			return
		}

		skip, limit := validator.Pagination(q)
		sas, total, err := sc.subAccountService.SearchSubAccounts(c.Request.Context(), key, skip, limit)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to search sub accounts"},
			)
			sc.logger.Error("SearchSubAccounts() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, subaccount.ListResponse{
			GetAllSubAccount: subaccount.ToResponseSubAccounts(sas),
			TotalSubAccount:  total,
		})
	default:
		status := q.Get("status") != "false"
		skip, limit := validator.Pagination(q)

		sas, total, err := sc.subAccountService.FindSubAccountsByStatus(c.Request.Context(), status, skip, limit)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get sub accounts"},
			)
			sc.logger.Error("FindSubAccountsByStatus() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, subaccount.ListResponse{
			GetAllSubAccount: subaccount.ToResponseSubAccounts(sas),
			TotalSubAccount:  total,
		})
	}
}

func (sc *SubAccountController) GetSubAccountHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("sub_account_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sub_account_id must be a positive integer"})
		return
	}

	sa, err := sc.subAccountService.FindSubAccountByID(c.Request.Context(), saDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a sub account"},
		)
		sc.logger.Error("FindSubAccountByID() error", zap.Error(err))
		return
	}

	if sa == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrSubAccountNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, subaccount.ToResponseSubAccount(*sa))
}

func (sc *SubAccountController) CreateSubAccountHandler(c *gin.Context) {
	var req subaccount.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSubAccount(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	sa, err := sc.subAccountService.CreateSubAccount(c.Request.Context(), subaccount.ToDomainSubAccount(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a sub account"},
		)
		sc.logger.Error("CreateSubAccount() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, subaccount.ToResponseSubAccount(*sa))
}

func (sc *SubAccountController) UpdateSubAccountHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("sub_account_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sub_account_id must be a positive integer"})
		return
	}

	var req subaccount.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	sa, err := sc.subAccountService.UpdateSubAccount(c.Request.Context(), saDomain.ID(id), subaccount.ToDomainUpdate(req))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSubAccountLocked):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a sub account"},
			)
			sc.logger.Error("UpdateSubAccount() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, subaccount.ToResponseSubAccount(*sa))
}

func (sc *SubAccountController) DeleteSubAccountHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("sub_account_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sub_account_id must be a positive integer"})
		return
	}

	var req subaccount.StatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	_, err = sc.subAccountService.SetSubAccountStatus(c.Request.Context(), saDomain.ID(id), req.Status == "true")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSubAccountLocked):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update sub account status"},
			)
			sc.logger.Error("SetSubAccountStatus() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sub account status updated successfully"})
}
