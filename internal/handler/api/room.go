package api

import (
	"net/http"

	domroom "hotelier-hub/internal/domain/room"
	reqdto "hotelier-hub/internal/handler/dto/request"
	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	rooms, err := h.roomQueries.List(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypes(rooms))
}

// @Summary Create room type
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rt, err := h.roomCommands.Create(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, domroom.ErrEmptyName),
			errs.Is(err, domroom.ErrInvalidOccupancy),
			errs.Is(err, domroom.ErrNegativePrice),
			errs.Is(err, domroom.ErrNegativeInventory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomType(rt))
}

// @Summary Get room type
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		return
	}

	rt, err := h.roomQueries.Get(c.Request.Context(), hotelID, roomTypeID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomType(rt))
}

// @Summary Update room type
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRequest true "Room type update"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		return
	}

	var req reqdto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rt, err := h.roomCommands.Update(c.Request.Context(), hotelID, roomTypeID, req.ToPatch())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		case errs.Is(err, domroom.ErrEmptyName),
			errs.Is(err, domroom.ErrInvalidOccupancy),
			errs.Is(err, domroom.ErrNegativePrice),
			errs.Is(err, domroom.ErrNegativeInventory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomType(rt))
}

// @Summary Delete room type
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		return
	}

	if err := h.roomCommands.Delete(c.Request.Context(), hotelID, roomTypeID); err != nil {
		switch {
		case errs.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
