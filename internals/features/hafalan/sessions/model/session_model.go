package model

import "time"

type SessionModel struct {
	SessionID    uint      `gorm:"column:id;primaryKey" json:"id"`
	Date         time.Time `gorm:"column:date;type:date" json:"date"`
	Juz          int       `gorm:"column:juz;not null" json:"juz"`
	Quarter      string    `gorm:"column:quarter;not null" json:"quarter"`
	SessionType  string    `gorm:"column:session_type;not null" json:"session_type"`
	Duration     float64   `gorm:"column:duration;not null" json:"duration"`
	Attention    int       `gorm:"column:attention;not null" json:"attention"`
	MistakeCount int       `gorm:"column:mistake_count;default:0" json:"mistake_count"`
	Notes        string    `gorm:"column:notes" json:"notes"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
