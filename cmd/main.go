package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shibinnakam/smart-attendance/attendance"
	"github.com/shibinnakam/smart-attendance/config"
	"github.com/shibinnakam/smart-attendance/database"
	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/directory"
	"github.com/shibinnakam/smart-attendance/routes"
)

func main() {
	cfg := config.Load()

	// เชื่อมต่อฐานข้อมูล (ถ้า DB ยังไม่ขึ้น โปรแกรมจะ error ทันที — เหมาะสำหรับ early fail)
	database.Connect(cfg)

	clock, err := dayclock.New(cfg.AppTimezone)
	if err != nil {
		log.Fatalf("clock: %v", err)
	}

	dir := directory.New(database.DB)
	ledger := attendance.NewLedger(database.DB, dir, clock)
	agg := attendance.NewAggregator(database.DB, clock)
	sweeper := attendance.NewSweeper(database.DB, clock)

	sched, err := attendance.NewScheduler(sweeper, clock.Location())
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	sched.Start()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, routes.Deps{
		Directory:         dir,
		Ledger:            ledger,
		Aggregator:        agg,
		Clock:             clock,
		SummaryWindowDays: cfg.SummaryWindowDays,
	})

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("server listening at %s (tz=%s)", addr, cfg.AppTimezone)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Printf("server stopped")
}
