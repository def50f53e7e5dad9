package cardid

import (
	"strings"

	"github.com/shibinnakam/smart-attendance/apperrors"
)

// ความยาวขั้นต่ำของคีย์บัตรหลัง normalize (เติม '0' ข้างหน้าให้ครบ)
const KeyMinLength = 8

// Normalize แปลงรหัสบัตรดิบให้เป็นคีย์มาตรฐาน: trim → upper-case → zero-pad
// ต้องเรียกเหมือนกันทุกจุด ทั้งตอนลงทะเบียนและตอนสแกน
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", apperrors.ErrInvalidIdentifier
	}
	s = strings.ToUpper(s)
	if len(s) < KeyMinLength {
		s = strings.Repeat("0", KeyMinLength-len(s)) + s
	}
	return s, nil
}
