package handler

import (
	"net/http"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct{ svc service.AssistantService }

func NewAssistantHandler(svc service.AssistantService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Ask forwards a free-form question about the current stock to the AI
// gateway along with a snapshot of the data.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
