package directory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shibinnakam/smart-attendance/apperrors"
	"github.com/shibinnakam/smart-attendance/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_busy_timeout=5000"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// in-memory sqlite ใช้ connection เดียว กัน table หายระหว่าง conn
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.DayRecord{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM day_records")
		db.Exec("DELETE FROM users")
	})
	return db
}

func TestRegisterNormalizesIdentifier(t *testing.T) {
	d := New(openTestDB(t))

	u, err := d.Register("Asha", "ab12")
	require.NoError(t, err)
	assert.Equal(t, "0000AB12", u.Identifier)
	assert.Equal(t, "Asha", u.Name)
	assert.NotZero(t, u.ID)
}

func TestRegisterValidation(t *testing.T) {
	d := New(openTestDB(t))

	_, err := d.Register("Al", "ab12")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = d.Register("Asha", "ab1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = d.Register("Asha", "12345678901234567")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegisterDuplicateByNormalizedKey(t *testing.T) {
	d := New(openTestDB(t))

	_, err := d.Register("Asha", "ab12")
	require.NoError(t, err)

	// รหัสดิบต่างกัน แต่ normalize แล้วเป็นคีย์เดียวกัน
	_, err = d.Register("Binu", " AB12 ")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentifier)
}

func TestRegisterConcurrentSameIdentifier(t *testing.T) {
	d := New(openTestDB(t))

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = d.Register("Asha", "ab12")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentifier)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestFindByIdentifierAliases(t *testing.T) {
	d := New(openTestDB(t))

	created, err := d.Register("Asha", "ab12")
	require.NoError(t, err)

	for _, raw := range []string{"ab12", "AB12", "  aB12 ", "0000AB12"} {
		u, err := d.FindByIdentifier(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, created.ID, u.ID)
	}
}

func TestFindByIdentifierUnknown(t *testing.T) {
	d := New(openTestDB(t))

	_, err := d.FindByIdentifier("zz99")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCard)
}

func TestListOrdersByName(t *testing.T) {
	d := New(openTestDB(t))

	_, err := d.Register("Binu", "cd34")
	require.NoError(t, err)
	_, err = d.Register("Asha", "ab12")
	require.NoError(t, err)

	users, err := d.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Asha", users[0].Name)
	assert.Equal(t, "Binu", users[1].Name)
}
