package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/infra"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportsHandler struct {
	svc    service.ReportService
	mailer *infra.Mailer
}

func NewReportsHandler(svc service.ReportService, mailer *infra.Mailer) *ReportsHandler {
	return &ReportsHandler{svc: svc, mailer: mailer}
}

func (h *ReportsHandler) Completion(c *gin.Context) {
	resp, err := h.svc.Completion(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Shortages(c *gin.Context) {
	resp, err := h.svc.Shortages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) ChecklistProgress(c *gin.Context) {
	resp, err := h.svc.ChecklistProgress(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompletionPDF renders the completion report as a downloadable PDF.
func (h *ReportsHandler) CompletionPDF(c *gin.Context) {
	report, err := h.svc.Completion(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	pdf, err := infra.GenerateCompletionPDF(report)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("completion-report-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// EmailCompletion generates the completion PDF and mails it to the requested
// recipient.
func (h *ReportsHandler) EmailCompletion(c *gin.Context) {
	var req dto.EmailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	report, err := h.svc.Completion(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	pdf, err := infra.GenerateCompletionPDF(report)
	if err != nil {
		respondError(c, err)
		return
	}
	now := time.Now()
	subject := fmt.Sprintf("Renovation completion report - %s", now.Format("2 Jan 2006"))
	body := fmt.Sprintf(
		"Attached is the renovation completion report.\n\nRooms tracked: %d\nComplete: %d\nIncomplete: %d\n",
		report.TotalRooms, report.CompleteRooms, report.IncompleteRooms,
	)
	filename := fmt.Sprintf("completion-report-%s.pdf", now.Format("2006-01-02"))
	if err := h.mailer.SendReport(req.To, subject, body, pdf, filename); err != nil {
		log.Error().Err(err).Str("to", req.To).Msg("report email failed")
		respondError(c, apperr.Transient("could not send report email", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true, "to": req.To})
}
