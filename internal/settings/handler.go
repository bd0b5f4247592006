package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/money"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetKitchenSettings(c *gin.Context) {
	settings, err := h.service.GetKitchenSettings(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, settings)
}

func (h *Handler) UpdateKitchenSettings(c *gin.Context) {
	var settings KitchenSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	err := h.service.UpdateKitchenSettings(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		&settings,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, settings)
}

// --------------------------------------------------
// ADMIN pricing
// --------------------------------------------------

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Amounts cross the boundary in euros and are stored as cents.
type pricingRequest struct {
	MonthlyPrice           float64 `json:"monthly_price"`
	SetupFee               float64 `json:"setup_fee"`
	IncludedMinutes        int     `json:"included_minutes"`
	OverflowPricePerMinute float64 `json:"overflow_price_per_minute"`
}

func (h *AdminHandler) UpdatePricing(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	cfg := &PricingConfig{
		RestaurantID:           c.Param("id"),
		MonthlyPriceCents:      money.ToCents(req.MonthlyPrice),
		SetupFeeCents:          money.ToCents(req.SetupFee),
		IncludedMinutes:        req.IncludedMinutes,
		OverflowPerMinuteCents: money.ToCents(req.OverflowPricePerMinute),
	}

	if err := h.service.UpdatePricing(c.Request.Context(), cfg); err != nil {
		apperr.Respond(c, err)
		return
	}

	apperr.OK(c, http.StatusOK, gin.H{
		"restaurant_id":             cfg.RestaurantID,
		"monthly_price":             money.ToEuros(cfg.MonthlyPriceCents),
		"setup_fee":                 money.ToEuros(cfg.SetupFeeCents),
		"included_minutes":          cfg.IncludedMinutes,
		"overflow_price_per_minute": money.ToEuros(cfg.OverflowPerMinuteCents),
	})
}

func (h *AdminHandler) GetPricing(c *gin.Context) {
	cfg, err := h.service.GetPricing(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	apperr.OK(c, http.StatusOK, gin.H{
		"restaurant_id":             cfg.RestaurantID,
		"monthly_price":             money.ToEuros(cfg.MonthlyPriceCents),
		"setup_fee":                 money.ToEuros(cfg.SetupFeeCents),
		"included_minutes":          cfg.IncludedMinutes,
		"overflow_price_per_minute": money.ToEuros(cfg.OverflowPerMinuteCents),
	})
}
