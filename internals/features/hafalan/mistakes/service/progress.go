package service

import (
	model "hafalanku_backend/internals/features/hafalan/mistakes/model"

	"gorm.io/gorm"
)

// CountMistakesForSession menghitung baris mistake yang sudah dicatat untuk
// satu sesi.
func CountMistakesForSession(db *gorm.DB, sessionID uint) (int64, error) {
	var total int64
	err := db.Model(&model.MistakeModel{}).
		Where("session_id = ?", sessionID).
		Count(&total).Error
	return total, err
}

// RemainingForSession = max(0, target yang dideklarasikan - yang dicatat).
// Nilai turunan murni untuk tampilan; tidak pernah disimpan atau
// direkonsiliasi otomatis.
func RemainingForSession(declaredCount int, logged int64) int64 {
	remaining := int64(declaredCount) - logged
	if remaining < 0 {
		return 0
	}
	return remaining
}
