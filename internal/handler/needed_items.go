package handler

import (
	"net/http"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/gin-gonic/gin"
)

type NeededItemsHandler struct{ svc service.ChecklistService }

func NewNeededItemsHandler(svc service.ChecklistService) *NeededItemsHandler {
	return &NeededItemsHandler{svc: svc}
}

func (h *NeededItemsHandler) Create(c *gin.Context) {
	var req dto.CreateNeededItemRequest
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

func (h *NeededItemsHandler) Delete(c *gin.Context) {
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

// SetFulfilled drives the checklist reconciliation: marking fulfilled folds
// the request into inventory, marking unfulfilled takes it back out.
func (h *NeededItemsHandler) SetFulfilled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SetFulfilledRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetFulfilled(c.Request.Context(), id, *req.Fulfilled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
