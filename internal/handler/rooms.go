package handler

import (
	"net/http"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/gin-gonic/gin"
)

type RoomsHandler struct {
	svc       service.RoomService
	checklist service.ChecklistService
}

func NewRoomsHandler(svc service.RoomService, checklist service.ChecklistService) *RoomsHandler {
	return &RoomsHandler{svc: svc, checklist: checklist}
}

// CreateUnderFloor adds one or more rooms to the floor in the path. Numbers
// that already exist are reported back as skipped.
func (h *RoomsHandler) CreateUnderFloor(c *gin.Context) {
	floorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateRoomsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateRooms(c.Request.Context(), floorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RoomsHandler) ListUnderFloor(c *gin.Context) {
	floorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListByFloor(c.Request.Context(), floorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomsHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListNeededItems serves the room's checklist.
func (h *RoomsHandler) ListNeededItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.checklist.ListByRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
