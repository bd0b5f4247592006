package order

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type orderLineRequest struct {
	VariationID string   `json:"variation_id" binding:"required"`
	ModifierIDs []string `json:"modifier_ids"`
	Quantity    int      `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone"`
	PickupTime    *time.Time         `json:"pickup_time"`
	Notes         string             `json:"notes"`
	Lines         []orderLineRequest `json:"lines" binding:"required"`
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	lines := make([]LineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, LineInput{
			VariationID: l.VariationID,
			ModifierIDs: l.ModifierIDs,
			Quantity:    l.Quantity,
		})
	}

	order, err := h.service.CreateOrder(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.CustomerName,
		req.CustomerPhone,
		req.PickupTime,
		req.Notes,
		lines,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusCreated, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		Status(c.Query("status")),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrder(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("orderId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	order, err := h.service.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("orderId"),
		Status(req.Status),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, order)
}
