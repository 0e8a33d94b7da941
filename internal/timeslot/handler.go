package timeslot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Uoerim/UniSphere-sub001/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateTimeslot godoc
// @Summary      Create a weekly timeslot
// @Description  Admin-only: create a recurring weekly timeslot
// @Tags         admin,timeslots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTimeslotRequest true "Timeslot payload"
// @Success      201 {object} Timeslot
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/timeslots [post]
func (h *Handler) CreateTimeslot(c *gin.Context) {
	var req CreateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid timeslot data"})
		case errors.Is(err, ErrDuplicateSlot):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Timeslot already exists for this day and window"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create timeslot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// ListTimeslots godoc
// @Summary      List timeslots for a weekday
// @Tags         timeslots
// @Produce      json
// @Security     BearerAuth
// @Param        day query int true "Day of week (0=Sunday .. 6=Saturday)"
// @Success      200 {array} Timeslot
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /timeslots [get]
func (h *Handler) ListTimeslots(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "day query param must be an integer 0-6"})
		return
	}

	slots, err := h.service.ListByDay(c.Request.Context(), day)
	if err != nil {
		if errors.Is(err, ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "day must be between 0 and 6"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch timeslots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// DeleteTimeslot godoc
// @Summary      Delete a timeslot
// @Description  Admin-only: hard-deletes a timeslot. Existing reservations keep their timeslot id.
// @Tags         admin,timeslots
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Timeslot ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/timeslots/{id} [delete]
func (h *Handler) DeleteTimeslot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid timeslot ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Timeslot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete timeslot"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Timeslot deleted"})
}
