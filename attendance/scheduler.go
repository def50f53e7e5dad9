package attendance

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ยิงทุกวัน 23:59 ตามเขตเวลาที่ตั้งค่าไว้
const sweepSpec = "59 23 * * *"

// Scheduler สั่ง Sweeper ทำงานวันละครั้ง รอบที่พลาด/ล้มเหลวไม่ retry
// แค่ log แล้วรอรอบถัดไป และต้องไม่ทำให้โปรเซสหลักล่ม
type Scheduler struct {
	cron    *cron.Cron
	sweeper *Sweeper
}

func NewScheduler(sweeper *Sweeper, loc *time.Location) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	)
	s := &Scheduler{cron: c, sweeper: sweeper}
	if _, err := c.AddFunc(sweepSpec, s.sweepOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() { s.cron.Start() }

func (s *Scheduler) Stop() { s.cron.Stop() }

func (s *Scheduler) sweepOnce() {
	n, err := s.sweeper.Run()
	if err != nil {
		log.Printf("[sweep] failed, waiting for next run: %v", err)
		return
	}
	log.Printf("[sweep] closed %d open day records", n)
}
