package database

import (
	"log"

	mistakeModel "hafalanku_backend/internals/features/hafalan/mistakes/model"
	sessionModel "hafalanku_backend/internals/features/hafalan/sessions/model"

	"gorm.io/gorm"
)

// EnsureSchema dijalankan setiap startup. Kegagalan di sini hanya dicatat —
// skema yang sudah ada harus tetap bisa dipakai baca/tulis.
func EnsureSchema(db *gorm.DB) {
	// Kolom mistake_count ditambahkan setelah rilis awal; cek dulu sebelum
	// AutoMigrate supaya tabel lama lewat jalur ALTER TABLE eksplisit.
	if err := MigrateMistakeCount(db); err != nil {
		log.Printf("Migration note: %v", err)
	}

	if err := db.AutoMigrate(
		&sessionModel.SessionModel{},
		&mistakeModel.MistakeModel{},
	); err != nil {
		log.Printf("Migration note: %v", err)
	}
}

// MigrateMistakeCount menambah kolom sessions.mistake_count (default 0) bila
// belum ada. Idempoten — aman dipanggil setiap startup.
func MigrateMistakeCount(db *gorm.DB) error {
	m := db.Migrator()

	if !m.HasTable("sessions") {
		return nil
	}
	if m.HasColumn(&sessionModel.SessionModel{}, "mistake_count") {
		return nil
	}

	if err := db.Exec("ALTER TABLE sessions ADD COLUMN mistake_count INTEGER DEFAULT 0").Error; err != nil {
		return err
	}
	log.Println("✅ Added mistake_count column to sessions table")
	return nil
}
