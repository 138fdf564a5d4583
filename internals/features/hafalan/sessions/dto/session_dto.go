package dto

import (
	"fmt"
	"strings"
	"time"

	model "hafalanku_backend/internals/features/hafalan/sessions/model"
	helper "hafalanku_backend/internals/helpers"
)

const DateLayout = "2006-01-02"

// Batas tampilan kolom notes di tabel list
const notesPreviewLimit = 50

/* =========================
   REQUEST
   ========================= */

type SessionCreateRequest struct {
	Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"` // kosong = hari ini
	Juz          int     `json:"juz" validate:"required,min=1,max=30"`
	Quarter      string  `json:"quarter" validate:"required,oneof=Q1 Q2 Q3 Q4"`
	SessionType  string  `json:"session_type" validate:"required,oneof=Practice Test"`
	Duration     float64 `json:"duration" validate:"required,gt=0"`
	Attention    int     `json:"attention" validate:"required,min=1,max=5"`
	MistakeCount int     `json:"mistake_count" validate:"gte=0"`
	Notes        string  `json:"notes"`
}

func (r *SessionCreateRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Quarter = strings.TrimSpace(r.Quarter)
	r.SessionType = strings.TrimSpace(r.SessionType)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *SessionCreateRequest) ToModel() model.SessionModel {
	date := time.Now()
	if r.Date != "" {
		if parsed, err := time.Parse(DateLayout, r.Date); err == nil {
			date = parsed
		}
	}

	return model.SessionModel{
		Date:         date,
		Juz:          r.Juz,
		Quarter:      r.Quarter,
		SessionType:  r.SessionType,
		Duration:     r.Duration,
		Attention:    r.Attention,
		MistakeCount: r.MistakeCount,
		Notes:        r.Notes,
	}
}

/* =========================
   RESPONSE
   ========================= */

type SessionResponse struct {
	SessionID    uint    `json:"id"`
	Date         string  `json:"date"`
	Juz          int     `json:"juz"`
	Quarter      string  `json:"quarter"`
	SessionType  string  `json:"session_type"`
	Duration     float64 `json:"duration"`
	Attention    int     `json:"attention"`
	MistakeCount int     `json:"mistake_count"`
	Notes        string  `json:"notes"`
}

func NewSessionResponse(m model.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:    m.SessionID,
		Date:         m.Date.Format(DateLayout),
		Juz:          m.Juz,
		Quarter:      m.Quarter,
		SessionType:  m.SessionType,
		Duration:     m.Duration,
		Attention:    m.Attention,
		MistakeCount: m.MistakeCount,
		Notes:        m.Notes,
	}
}

// SessionListItem adalah baris tabel "Show All Sessions"; notes dipotong untuk
// tampilan saja.
type SessionListItem struct {
	SessionID    uint    `json:"id"`
	Date         string  `json:"date"`
	Juz          int     `json:"juz"`
	Quarter      string  `json:"quarter"`
	SessionType  string  `json:"session_type"`
	Duration     float64 `json:"duration"`
	MistakeCount int     `json:"mistake_count"`
	Attention    int     `json:"attention"`
	Notes        string  `json:"notes"`
}

func NewSessionListItem(m model.SessionModel) SessionListItem {
	return SessionListItem{
		SessionID:    m.SessionID,
		Date:         m.Date.Format(DateLayout),
		Juz:          m.Juz,
		Quarter:      m.Quarter,
		SessionType:  m.SessionType,
		Duration:     m.Duration,
		MistakeCount: m.MistakeCount,
		Attention:    m.Attention,
		Notes:        helper.TruncateText(m.Notes, notesPreviewLimit),
	}
}

// SessionOption mengisi picker "Link Mistakes to Session".
type SessionOption struct {
	SessionID uint   `json:"session_id"`
	Label     string `json:"label"`
}

func NewSessionOption(m model.SessionModel) SessionOption {
	return SessionOption{
		SessionID: m.SessionID,
		Label: fmt.Sprintf("Session #%d - Juz %d %s (%s) - %d mistakes - %s",
			m.SessionID, m.Juz, m.Quarter, m.SessionType, m.MistakeCount,
			m.Date.Format(DateLayout)),
	}
}

// SessionProgressResponse: target yang dideklarasikan vs yang sudah dicatat.
// Remaining dihitung ulang setiap request, tidak pernah disimpan.
type SessionProgressResponse struct {
	SessionID    uint  `json:"session_id"`
	MistakeCount int   `json:"mistake_count"`
	Logged       int64 `json:"logged"`
	Remaining    int64 `json:"remaining"`
}
