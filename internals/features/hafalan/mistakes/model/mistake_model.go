package model

import (
	sessionModel "hafalanku_backend/internals/features/hafalan/sessions/model"
)

type MistakeModel struct {
	MistakeID   uint   `gorm:"column:id;primaryKey" json:"id"`
	SessionID   uint   `gorm:"column:session_id;not null;index" json:"session_id"`
	SuraAyah    string `gorm:"column:sura_ayah;not null" json:"sura_ayah"`
	Category    string `gorm:"column:category;not null" json:"category"`
	Description string `gorm:"column:description;not null" json:"description"`
	Correction  string `gorm:"column:correction" json:"correction"`

	// Deklarasi FK mistakes.session_id → sessions.id
	Session *sessionModel.SessionModel `gorm:"foreignKey:SessionID;references:SessionID" json:"-"`
}

func (MistakeModel) TableName() string {
	return "mistakes"
}
