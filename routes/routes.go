package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/shibinnakam/smart-attendance/attendance"
	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/directory"
	"github.com/shibinnakam/smart-attendance/handlers"
)

type Deps struct {
	Directory         *directory.Directory
	Ledger            *attendance.Ledger
	Aggregator        *attendance.Aggregator
	Clock             *dayclock.Provider
	SummaryWindowDays int
}

// Register ผูกทุก HTTP route ของระบบ
func Register(e *echo.Echo, d Deps) {
	// ===== Handlers (shared singletons) =====
	usr := handlers.NewUserHandler(d.Directory)
	scn := handlers.NewScanHandler(d.Ledger, d.Clock)
	att := handlers.NewAttendanceHandler(d.Ledger, d.Clock)
	home := handlers.NewHomeHandler(d.Ledger, d.Aggregator, d.Clock, d.SummaryWindowDays)

	e.GET("/health", handlers.Health)

	// ลงทะเบียน/รายชื่อผู้ใช้บัตร
	e.POST("/users", usr.Register)
	e.GET("/users", usr.List)

	// จุดรับสแกนจากเครื่อง kiosk
	e.POST("/scan", scn.Scan)

	// อ่านรายการเข้า-ออก
	e.GET("/attendance/daily", att.Daily)
	e.GET("/attendance/monthly", att.Monthly)

	// หน้ารวมของ kiosk
	e.GET("/home", home.Home)
}
