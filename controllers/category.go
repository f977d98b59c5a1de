package controllers

import (
	"net/http"
	"strings"

	"pharma-place/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var category models.Category
	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&category, binding.JSON); err != nil {
		badRequest(c, "invalid category")
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		badRequest(c, "invalid category")
		return
	}
	if strings.TrimSpace(category.Name) == "" {
		badRequest(c, "categoryName is required")
		return
	}
	category.Extra = models.SplitExtra(raw, "categoryName", "categoryImage")

	res, err := h.Categories.Create(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(models.SplitExtra(fields)) == 0 {
		badRequest(c, "nothing to update")
		return
	}

	res, err := h.Categories.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	res, err := h.Categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
