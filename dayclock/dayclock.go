package dayclock

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Provider คำนวณ "วันปฏิทิน" และเวลาในเขตเวลาคงที่หนึ่งเขต
// nowFn ฉีดได้ในเทสต์เพื่อกำหนดเวลาแบบ deterministic
type Provider struct {
	loc   *time.Location
	nowFn func() time.Time
}

func New(tz string) (*Provider, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return &Provider{loc: loc, nowFn: time.Now}, nil
}

// NewFixed ใช้ในเทสต์: เขตเวลา + เวลา "ตอนนี้" คงที่
func NewFixed(loc *time.Location, now func() time.Time) *Provider {
	return &Provider{loc: loc, nowFn: now}
}

func (p *Provider) Location() *time.Location { return p.loc }

func (p *Provider) Now() time.Time { return p.nowFn().In(p.loc) }

// DateKey วันปฏิทินแบบ YYYY-MM-DD
func (p *Provider) DateKey(t time.Time) string {
	return t.In(p.loc).Format(DateLayout)
}

// TimeOfDay เวลาแบบ HH:mm:ss
func (p *Provider) TimeOfDay(t time.Time) string {
	return t.In(p.loc).Format(TimeLayout)
}

func (p *Provider) Today() string { return p.DateKey(p.Now()) }

// WindowStart วันเริ่มของหน้าต่างย้อนหลัง days วัน นับรวมวัน end
func (p *Provider) WindowStart(end time.Time, days int) string {
	return p.DateKey(end.In(p.loc).AddDate(0, 0, -(days - 1)))
}

// ValidDateKey ตรวจรูปแบบ YYYY-MM-DD
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidMonthKey ตรวจรูปแบบ YYYY-MM
func ValidMonthKey(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// MonthBounds ขอบเขต [first, last] ของเดือน YYYY-MM สำหรับเทียบ string
func MonthBounds(month string) (string, string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month key %q: %w", month, err)
	}
	first := t.Format(DateLayout)
	last := t.AddDate(0, 1, -1).Format(DateLayout)
	return first, last, nil
}
