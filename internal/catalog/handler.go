package catalog

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

type createIngredientRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price"`
}

func (h *Handler) CreateIngredient(c *gin.Context) {
	var req createIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	ingredient, err := h.service.CreateIngredient(
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
	apperr.OK(c, http.StatusCreated, ingredient)
}

func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.service.ListIngredients(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, ingredients)
}

type updateIngredientRequest struct {
	Name       *string  `json:"name"`
	CategoryID *string  `json:"category_id"`
	Price      *float64 `json:"price"`
}

func (h *Handler) UpdateIngredient(c *gin.Context) {
	var req updateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	update := &IngredientUpdate{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	}
	if req.Price != nil {
		cents := money.ToCents(*req.Price)
		update.PriceCents = &cents
	}

	ingredient, err := h.service.UpdateIngredient(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("ingredientId"),
		update,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, ingredient)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (h *Handler) ToggleAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	ingredient, err := h.service.ToggleAvailability(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("ingredientId"),
		*req.IsAvailable,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, ingredient)
}

func (h *Handler) DeleteIngredient(c *gin.Context) {
	err := h.service.DeleteIngredient(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("ingredientId"),
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, gin.H{"message": "ingredient deleted"})
}

func (h *Handler) UploadIngredientImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image file is required"})
		return
	}
	defer file.Close()

	ingredient, err := h.service.UploadIngredientImage(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.Param("ingredientId"),
		file,
		header.Filename,
	)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	apperr.OK(c, http.StatusOK, ingredient)
}
