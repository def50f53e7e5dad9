package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shibinnakam/smart-attendance/attendance"
	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/models"
)

type AttendanceHandler struct {
	ledger *attendance.Ledger
	clock  *dayclock.Provider
}

func NewAttendanceHandler(ledger *attendance.Ledger, clock *dayclock.Provider) *AttendanceHandler {
	return &AttendanceHandler{ledger: ledger, clock: clock}
}

// GET /attendance/daily?date=YYYY-MM-DD หรือ date=today (ว่าง = วันนี้)
func (h *AttendanceHandler) Daily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" || date == "today" {
		date = h.clock.Today()
	}
	if !dayclock.ValidDateKey(date) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}

	rows, err := h.ledger.ForDate(date)
	if err != nil {
		log.Printf("[attendance] daily %s: %v", date, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if rows == nil {
		rows = []models.DayRecord{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /attendance/monthly?month=YYYY-MM
func (h *AttendanceHandler) Monthly(c echo.Context) error {
	month := strings.TrimSpace(c.QueryParam("month"))
	if !dayclock.ValidMonthKey(month) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_MONTH"})
	}

	rows, err := h.ledger.ForMonth(month)
	if err != nil {
		log.Printf("[attendance] monthly %s: %v", month, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if rows == nil {
		rows = []models.DayRecord{}
	}
	return c.JSON(http.StatusOK, rows)
}
