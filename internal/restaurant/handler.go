package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	restaurant, err := h.service.CreateRestaurant(
		c.Request.Context(),
		req.Name,
		req.PhoneNumber,
		c.GetString("userID"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	apperr.OK(c, http.StatusCreated, restaurant)
}

func (h *Handler) ListMyRestaurants(c *gin.Context) {
	restaurants, err := h.service.ListMyRestaurants(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, restaurants)
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.service.GetRestaurant(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, restaurant)
}

func (h *Handler) UpdateBusinessHours(c *gin.Context) {
	var hours BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	err := h.service.UpdateBusinessHours(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		&hours,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "business hours updated"})
}

type kitchenStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) SetKitchenStatus(c *gin.Context) {
	var req kitchenStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	err := h.service.SetKitchenStatus(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		KitchenStatus(req.Status),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"status": req.Status})
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.service.ListAllRestaurants(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, restaurants)
}

func (h *AdminHandler) UpdateVoiceConfig(c *gin.Context) {
	var cfg VoiceConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if err := h.service.UpdateVoiceConfig(c.Request.Context(), c.Param("id"), &cfg); err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "voice config updated"})
}
