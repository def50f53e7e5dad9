// scripts/seed_cards.go
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/shibinnakam/smart-attendance/apperrors"
	"github.com/shibinnakam/smart-attendance/config"
	"github.com/shibinnakam/smart-attendance/database"
	"github.com/shibinnakam/smart-attendance/directory"
)

// seed ผู้ใช้ตัวอย่างสำหรับทดสอบเครื่อง kiosk ในเครื่อง dev
func main() {
	cfg := config.Load()
	database.Connect(cfg)

	dir := directory.New(database.DB)

	seeds := []struct {
		name string
		card string
	}{
		{"Asha Nair", "ab12"},
		{"Binu Thomas", "cd34"},
		{"Charu Menon", "ef56"},
	}

	for _, s := range seeds {
		u, err := dir.Register(s.name, s.card)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateIdentifier) {
				fmt.Printf("skip %s: already registered\n", s.card)
				continue
			}
			log.Fatalf("seed %s: %v", s.card, err)
		}
		fmt.Printf("registered %s as %s\n", u.Name, u.Identifier)
	}
}
