package credit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me/credit", h.GetMyCredit)
	rg.GET("/users/me/credit/transactions", h.ListMyTransactions)
	rg.POST("/users/:id/credit/adjust", middleware.AdminOnly(), h.AdjustCredit)
}

func (h *Handler) GetMyCredit(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	balance, err := h.service.BalanceOf(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"credit": balance})
}

func (h *Handler) ListMyTransactions(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	txns, err := h.service.ListTransactions(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithCount(c, http.StatusOK, len(txns), txns)
}

type adjustRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *Handler) AdjustCredit(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	txn, err := h.service.Adjust(c.Request.Context(), userID, req.Amount)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, txn)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		response.Error(c, http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be non-zero")
	case errors.Is(err, ErrInsufficientFunds):
		response.Error(c, http.StatusBadRequest, "INSUFFICIENT_CREDIT", "Credit balance cannot go negative")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Credit operation failed")
	}
}
