package handler

import (
	"net/http"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/gin-gonic/gin"
)

type AssignmentsHandler struct{ svc service.AssignmentService }

func NewAssignmentsHandler(svc service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{svc: svc}
}

func (h *AssignmentsHandler) Assign(c *gin.Context) {
	var req dto.AssignItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Assign(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AssignmentsHandler) EditItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EditAssignmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.EditItem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssignmentsHandler) Unassign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Unassign(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdvanceStatus moves an assignment to the next delivery stage. The body
// must name exactly the next status in the sequence.
func (h *AssignmentsHandler) AdvanceStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdvanceStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdvanceStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssignmentsHandler) Transfer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Transfer(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AssignmentsHandler) ListTransfers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListTransfers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
