package reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/api"
	"github.com/Uoerim/UniSphere-sub001/internal/auth"

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

// GetAvailability godoc
// @Summary      Room availability for a date
// @Description  Projects the weekly timeslot catalog onto the date and lists free rooms per slot.
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "Calendar date (YYYY-MM-DD)"
// @Success      200 {object} DayAvailability
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query param is required"})
		return
	}

	availability, err := h.service.ComputeAvailability(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute availability"})
		return
	}

	c.JSON(http.StatusOK, availability)
}

// CreateReservation godoc
// @Summary      Book a room
// @Description  Creates a confirmed reservation for (room, date, timeslot). A concurrent booking of the same triple gets a conflict.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateReservationRequest true "Reservation payload"
// @Success      201 {object} ReservationDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /reservations [post]
func (h *Handler) CreateReservation(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.service.Book(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrRoomNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
		case errors.Is(err, ErrTimeslotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Timeslot not found"})
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Room already reserved for this date and timeslot"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create reservation"})
		}
		return
	}

	c.JSON(http.StatusCreated, details)
}

// CancelReservation godoc
// @Summary      Cancel a reservation
// @Description  Sets the reservation to cancelled. Cancelling twice is a no-op.
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Reservation ID"
// @Success      200 {object} Reservation
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /reservations/{id}/cancel [patch]
func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel reservation"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// ListMyReservations godoc
// @Summary      List my reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ReservationDetails
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /reservations/mine [get]
func (h *Handler) ListMyReservations(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListReservationsByDate godoc
// @Summary      List reservations for a date
// @Description  Admin-only day overview, cancelled rows included.
// @Tags         admin,reservations
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "Calendar date (YYYY-MM-DD)"
// @Success      200 {array} ReservationDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/reservations [get]
func (h *Handler) ListReservationsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query param is required"})
		return
	}

	list, err := h.service.ListForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetReservationStats godoc
// @Summary      Reservation analytics
// @Description  Admin-only aggregates over a date range, grouped by day or by room.
// @Tags         admin,reservations
// @Produce      json
// @Security     BearerAuth
// @Param        group_by query string false "Group by dimension (day or room)"
// @Param        from     query string true  "Start date (YYYY-MM-DD)"
// @Param        to       query string true  "End date (YYYY-MM-DD)"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/analytics/reservations [get]
func (h *Handler) GetReservationStats(c *gin.Context) {
	groupBy := c.DefaultQuery("group_by", "day")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from and to query params are required"})
		return
	}

	from, err := time.Parse(DateLayout, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}

	to, err := time.Parse(DateLayout, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}

	switch groupBy {
	case "day":
		stats, err := h.service.StatsByDay(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_by": "day",
			"from":     fromStr,
			"to":       toStr,
			"data":     stats,
		})
	case "room":
		stats, err := h.service.StatsByRoom(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_by": "room",
			"from":     fromStr,
			"to":       toStr,
			"data":     stats,
		})
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "group_by must be 'day' or 'room'"})
	}
}
