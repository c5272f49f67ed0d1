package ads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ads", h.GetBanners)
}

func (h *Handler) GetBanners(c *gin.Context) {
	banners, err := h.service.PickBanners(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoHotels) {
			response.Error(c, http.StatusNotFound, "NO_HOTELS", "No hotels to advertise")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Banner selection failed")
		return
	}
	response.SuccessWithCount(c, http.StatusOK, len(banners), banners)
}
