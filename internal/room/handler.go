package room

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

// CreateRoom godoc
// @Summary      Create a room
// @Description  Admin-only: register a bookable room
// @Tags         admin,rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRoomRequest true "Room payload"
// @Success      201 {object} Room
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRoom):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room data"})
		case errors.Is(err, ErrDuplicateName):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Room name already taken"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create room"})
		}
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListRooms godoc
// @Summary      List active rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Room
// @Failure      500 {object} api.ErrorResponse
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// DeactivateRoom godoc
// @Summary      Deactivate a room
// @Description  Admin-only: removes the room from future availability without touching existing reservations.
// @Tags         admin,rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Room ID"
// @Success      200 {object} Room
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/rooms/{id}/deactivate [patch]
func (h *Handler) DeactivateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	room, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deactivate room"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary      Delete a room
// @Description  Admin-only: hard-deletes a room. Existing reservations keep their room id.
// @Tags         admin,rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Room ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/rooms/{id} [delete]
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Room deleted"})
}
