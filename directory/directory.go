package directory

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shibinnakam/smart-attendance/apperrors"
	"github.com/shibinnakam/smart-attendance/cardid"
	"github.com/shibinnakam/smart-attendance/models"
)

// ขอบเขตความยาวรหัสบัตรดิบ (ก่อน normalize)
const (
	minNameLen  = 3
	minRawIDLen = 4
	maxRawIDLen = 16
)

type Directory struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Directory { return &Directory{db: db} }

// Register ลงทะเบียนผู้ใช้บัตรใหม่
// uniqueness ตัดสินที่ unique index ของ store — สองคำขอชนกันสำเร็จได้คนเดียว
func (d *Directory) Register(name, rawID string) (*models.User, error) {
	name = strings.Join(strings.Fields(name), " ")
	if len(name) < minNameLen {
		return nil, fmt.Errorf("%w: name must be at least %d characters", apperrors.ErrValidation, minNameLen)
	}

	trimmed := strings.TrimSpace(rawID)
	if len(trimmed) < minRawIDLen || len(trimmed) > maxRawIDLen {
		return nil, fmt.Errorf("%w: identifier must be %d-%d characters", apperrors.ErrValidation, minRawIDLen, maxRawIDLen)
	}

	key, err := cardid.Normalize(trimmed)
	if err != nil {
		return nil, err
	}

	u := models.User{Identifier: key, Name: name}
	if err := d.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateIdentifier
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// FindByIdentifier ค้นหาผู้ใช้จากรหัสบัตรดิบ ไม่แก้ไขข้อมูลใด ๆ
func (d *Directory) FindByIdentifier(rawID string) (*models.User, error) {
	key, err := cardid.Normalize(rawID)
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := d.db.Where("identifier = ?", key).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownCard
		}
		return nil, fmt.Errorf("find user %s: %w", key, err)
	}
	return &u, nil
}

// List ผู้ใช้ทั้งหมดเรียงตามชื่อ
func (d *Directory) List() ([]models.User, error) {
	var users []models.User
	if err := d.db.Order("name ASC, identifier ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
