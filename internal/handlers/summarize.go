package handlers

import (
	"net/http"

	"github.com/Aditya-2aga/todo-assistant/internal/dto"
	"github.com/Aditya-2aga/todo-assistant/internal/service"

	"github.com/gin-gonic/gin"
)

type SummarizeHandler struct {
	svc *service.SummaryService
}

func NewSummarizeHandler(svc *service.SummaryService) *SummarizeHandler {
	return &SummarizeHandler{svc: svc}
}

// Summarize godoc
// @Summary      Summarize pending todos and post the result to Slack
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.SummarizeResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/summarize [post]
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	res, err := h.svc.Run(c.Request.Context())
	if err != nil {
		summarizeRuns.WithLabelValues("error").Inc()
		writeError(c, err)
		return
	}
	if res.SlackSent {
		summarizeRuns.WithLabelValues("ok").Inc()
	} else {
		summarizeRuns.WithLabelValues("notify_failed").Inc()
	}
	c.JSON(http.StatusOK, dto.SummarizeResponse{
		Message:   res.Message,
		Summary:   res.Summary,
		SlackSent: res.SlackSent,
	})
}
