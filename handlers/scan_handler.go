package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shibinnakam/smart-attendance/apperrors"
	"github.com/shibinnakam/smart-attendance/attendance"
	"github.com/shibinnakam/smart-attendance/dayclock"
)

type ScanHandler struct {
	ledger *attendance.Ledger
	clock  *dayclock.Provider
}

func NewScanHandler(ledger *attendance.Ledger, clock *dayclock.Provider) *ScanHandler {
	return &ScanHandler{ledger: ledger, clock: clock}
}

// POST /scan  body: { "identifier": "ab12" }
// สแกนแรกของวัน = เข้า, ที่สอง = ออก, ถัดไป = ALREADY_OUT (400 แต่ไม่ใช่ fault)
func (h *ScanHandler) Scan(c echo.Context) error {
	var req struct {
		Identifier string `json:"identifier"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	res, err := h.ledger.RecordScan(req.Identifier, h.clock.Now())
	switch {
	case err == nil:
		// ผ่าน
	case errors.Is(err, apperrors.ErrUnknownCard):
		// บัตรยังไม่ลงทะเบียน — ฝั่ง kiosk ควรพาไปหน้าลงทะเบียน
		return c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_CARD"})
	case errors.Is(err, apperrors.ErrInvalidIdentifier):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "message": err.Error()})
	default:
		log.Printf("[scan] %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}

	if res.Status == attendance.StatusAlreadyOut {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusOK, res)
}
