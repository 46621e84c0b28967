package handlers

import (
	"net/http"
	"time"

	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	now     func() time.Time
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc, now: time.Now}
}

// periodQuery reads ?start and ?end (YYYY-MM-DD). Missing bounds default to
// the current month up to today.
func (h *DashboardHandler) periodQuery(c *gin.Context) (time.Time, time.Time, bool) {
	now := h.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	from, err := dateQuery(c, "start")
	if err != nil {
		respondInvalid(c, "start: "+err.Error())
		return time.Time{}, time.Time{}, false
	}
	to, err := dateQuery(c, "end")
	if err != nil {
		respondInvalid(c, "end: "+err.Error())
		return time.Time{}, time.Time{}, false
	}
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	return start, end, true
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	start, end, ok := h.periodQuery(c)
	if !ok {
		return
	}
	d, err := h.usecase.Overview(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) FinancialKPIs(c *gin.Context) {
	start, end, ok := h.periodQuery(c)
	if !ok {
		return
	}
	k, err := h.usecase.FinancialKPIs(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, k)
}

func (h *DashboardHandler) OSMetrics(c *gin.Context) {
	start, end, ok := h.periodQuery(c)
	if !ok {
		return
	}
	m, err := h.usecase.OSMetrics(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *DashboardHandler) StockMetrics(c *gin.Context) {
	m, err := h.usecase.StockMetrics(c.Request.Context())
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DailySummary defaults ?day to today.
func (h *DashboardHandler) DailySummary(c *gin.Context) {
	day := h.now()
	d, err := dateQuery(c, "day")
	if err != nil {
		respondInvalid(c, "day: "+err.Error())
		return
	}
	if d != nil {
		day = *d
	}
	s, err := h.usecase.DailySummary(c.Request.Context(), day)
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, s)
}
