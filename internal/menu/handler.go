package menu

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

// Prices cross the boundary in euros; storage is cents.

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Rank int    `json:"rank"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	category, err := h.service.CreateCategory(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.Name,
		req.Rank,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusCreated, category)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, categories)
}

type createVariationRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price"`
}

func (h *Handler) CreateVariation(c *gin.Context) {
	var req createVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	variation, err := h.service.CreateVariation(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.CategoryID,
		req.Name,
		money.ToCents(req.Price),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusCreated, variation)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	err := h.service.DeleteCategory(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("categoryId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "category deleted"})
}

func (h *Handler) ListVariations(c *gin.Context) {
	variations, err := h.service.ListVariations(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("categoryId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, variations)
}

type updateVariationRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

func (h *Handler) UpdateVariation(c *gin.Context) {
	var req updateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	update := &VariationUpdate{Name: req.Name}
	if req.Price != nil {
		cents := money.ToCents(*req.Price)
		update.PriceCents = &cents
	}

	variation, err := h.service.UpdateVariation(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("variationId"),
		update,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, variation)
}

func (h *Handler) DeleteVariation(c *gin.Context) {
	err := h.service.DeleteVariation(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("variationId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "variation deleted"})
}

type createGroupRequest struct {
	VariationID          string `json:"variation_id" binding:"required"`
	IngredientCategoryID string `json:"ingredient_category_id" binding:"required"`
	MinSelect            int    `json:"min_select"`
	MaxSelect            int    `json:"max_select"`
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	group, err := h.service.CreateGroup(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.VariationID,
		req.IngredientCategoryID,
		req.MinSelect,
		req.MaxSelect,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusCreated, group)
}

func (h *Handler) DeleteGroup(c *gin.Context) {
	err := h.service.DeleteGroup(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("groupId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "group and its modifiers deleted"})
}

type addModifierRequest struct {
	GroupID      string   `json:"group_id" binding:"required"`
	IngredientID string   `json:"ingredient_id" binding:"required"`
	PriceExtra   *float64 `json:"price_extra"`
}

func (h *Handler) AddModifier(c *gin.Context) {
	var req addModifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	var priceExtraCents *int64
	if req.PriceExtra != nil {
		cents := money.ToCents(*req.PriceExtra)
		priceExtraCents = &cents
	}

	modifier, err := h.service.AddModifier(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.GroupID,
		req.IngredientID,
		priceExtraCents,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusCreated, modifier)
}

func (h *Handler) DeleteModifier(c *gin.Context) {
	err := h.service.DeleteModifier(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("modifierId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "modifier deleted"})
}

// ResolveVariation returns the variation with its groups expanded
// and live ingredient availability, for the order-taking surface.
func (h *Handler) ResolveVariation(c *gin.Context) {
	resolved, err := h.service.ResolveVariation(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("variationId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, resolved)
}
