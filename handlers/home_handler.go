package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shibinnakam/smart-attendance/attendance"
	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/models"
)

type HomeHandler struct {
	ledger     *attendance.Ledger
	agg        *attendance.Aggregator
	clock      *dayclock.Provider
	windowDays int
}

func NewHomeHandler(ledger *attendance.Ledger, agg *attendance.Aggregator, clock *dayclock.Provider, windowDays int) *HomeHandler {
	return &HomeHandler{ledger: ledger, agg: agg, clock: clock, windowDays: windowDays}
}

// GET /home?window=30
// หน้ารวม: รายการของวันนี้ + summary จำนวนวันที่มาต่อคน
// เส้นทางนี้ต้องไม่ตอบ 5xx — ถ้า store มีปัญหาให้ลดรูปเป็นค่าว่างแทน
func (h *HomeHandler) Home(c echo.Context) error {
	today := h.clock.Today()
	window := atoiOr(c.QueryParam("window"), h.windowDays)
	if window <= 0 || window > 365 {
		window = h.windowDays
	}

	records, err := h.ledger.ForDate(today)
	if err != nil {
		log.Printf("[home] today records: %v", err)
		records = nil
	}
	if records == nil {
		records = []models.DayRecord{}
	}

	summary, err := h.agg.PresenceCounts(window, true)
	if err != nil {
		log.Printf("[home] summary: %v", err)
		summary = nil
	}
	if summary == nil {
		summary = []attendance.UserPresence{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"date":        today,
		"window_days": window,
		"records":     records,
		"summary":     summary,
	})
}

// แปลง string -> int; ถ้าแปลงไม่ได้ให้คืนค่าเริ่มต้น
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
