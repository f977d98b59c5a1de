package controllers

import (
	"errors"
	"net/http"

	"pharma-place/models"

	"github.com/gin-gonic/gin"
)

// RequestAdvertisement lets the owning seller (or an admin) ask for a slider slot.
func (h *Handler) RequestAdvertisement(c *gin.Context) {
	ctx := c.Request.Context()
	id := caller(c)

	medicine, err := h.Medicines.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if medicine.AddedBy != id.Email {
		role, err := h.Users.RoleOf(ctx, id.Email)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			respondError(c, err)
			return
		}
		if role != models.RoleAdmin {
			forbidden(c)
			return
		}
	}

	res, err := h.Medicines.SetSliderStatus(ctx, c.Param("id"), models.SliderRequested)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) SetAdvertisementStatus(c *gin.Context) {
	var input struct {
		SliderStatus *string `json:"sliderStatus"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.SliderStatus == nil {
		badRequest(c, "sliderStatus is required")
		return
	}
	if !models.ValidSliderStatus(*input.SliderStatus) {
		badRequest(c, "sliderStatus must be add, requested or empty")
		return
	}

	res, err := h.Medicines.SetSliderStatus(c.Request.Context(), c.Param("id"), *input.SliderStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
