package handler

import (
	"net/http"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/gin-gonic/gin"
)

type FloorsHandler struct{ svc service.FloorService }

func NewFloorsHandler(svc service.FloorService) *FloorsHandler {
	return &FloorsHandler{svc: svc}
}

func (h *FloorsHandler) Create(c *gin.Context) {
	var req dto.CreateFloorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FloorsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FloorsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFloorRequest
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

func (h *FloorsHandler) Delete(c *gin.Context) {
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
