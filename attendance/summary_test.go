package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presenceOf(t *testing.T, rows []UserPresence, identifier string) int64 {
	t.Helper()
	for _, r := range rows {
		if r.Identifier == identifier {
			return r.DaysPresent
		}
	}
	t.Fatalf("identifier %s missing from summary", identifier)
	return 0
}

func TestPresenceCountsRollingWindow(t *testing.T) {
	db, dir, ledger, clock, tc := newFixture(t)
	agg := NewAggregator(db, clock)

	_, err := dir.Register("Asha", "ab12")
	require.NoError(t, err)
	_, err = dir.Register("Binu", "cd34")
	require.NoError(t, err)

	// Asha มาเมื่อวาน วันนี้ และเมื่อ 10 วันก่อน (นอกหน้าต่าง 7 วัน)
	_, err = ledger.RecordScan("ab12", tc.now.AddDate(0, 0, -10))
	require.NoError(t, err)
	_, err = ledger.RecordScan("ab12", tc.now.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = ledger.RecordScan("ab12", tc.now)
	require.NoError(t, err)

	rows, err := agg.PresenceCounts(7, true)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), presenceOf(t, rows, "0000AB12"))
	// ผู้ใช้ที่ไม่เคยมาต้องอยู่ในผลลัพธ์ด้วยค่าเป็นศูนย์
	assert.Zero(t, presenceOf(t, rows, "0000CD34"))
}

func TestPresenceCountsExcludeToday(t *testing.T) {
	db, dir, ledger, clock, tc := newFixture(t)
	agg := NewAggregator(db, clock)

	_, err := dir.Register("Asha", "ab12")
	require.NoError(t, err)
	_, err = ledger.RecordScan("ab12", tc.now.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = ledger.RecordScan("ab12", tc.now)
	require.NoError(t, err)

	rows, err := agg.PresenceCounts(7, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), presenceOf(t, rows, "0000AB12"))
}

func TestPresenceCountsOpenAndSweptDaysBothCount(t *testing.T) {
	db, dir, ledger, clock, tc := newFixture(t)
	agg := NewAggregator(db, clock)
	sweeper := NewSweeper(db, clock)

	_, err := dir.Register("Asha", "ab12")
	require.NoError(t, err)

	// เข้าแล้วไม่แตะออก ปล่อยให้ sweep ปิด — วันนั้นยังนับว่ามา
	_, err = ledger.RecordScan("ab12", tc.now)
	require.NoError(t, err)
	_, err = sweeper.Run()
	require.NoError(t, err)

	rows, err := agg.PresenceCounts(7, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), presenceOf(t, rows, "0000AB12"))
}

func TestPresenceCountsRecomputedOnRead(t *testing.T) {
	db, dir, ledger, clock, tc := newFixture(t)
	agg := NewAggregator(db, clock)

	_, err := dir.Register("Asha", "ab12")
	require.NoError(t, err)

	rows, err := agg.PresenceCounts(7, true)
	require.NoError(t, err)
	assert.Zero(t, presenceOf(t, rows, "0000AB12"))

	_, err = ledger.RecordScan("ab12", tc.now)
	require.NoError(t, err)

	// อ่านรอบถัดไปเห็นผลทันที ไม่มี cache ค้าง
	rows, err = agg.PresenceCounts(7, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), presenceOf(t, rows, "0000AB12"))
}

func TestPresenceCountsWindowOfOneDay(t *testing.T) {
	db, dir, ledger, clock, tc := newFixture(t)
	agg := NewAggregator(db, clock)

	_, err := dir.Register("Asha", "ab12")
	require.NoError(t, err)
	_, err = ledger.RecordScan("ab12", tc.now.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = ledger.RecordScan("ab12", tc.now)
	require.NoError(t, err)

	rows, err := agg.PresenceCounts(1, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), presenceOf(t, rows, "0000AB12"))
}
