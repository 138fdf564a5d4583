package dto

import (
	"strings"

	model "hafalanku_backend/internals/features/hafalan/mistakes/model"
	helper "hafalanku_backend/internals/helpers"
)

// Batas tampilan kolom description/correction di tabel list
const mistakePreviewLimit = 40

/* =========================
   REQUEST
   ========================= */

type MistakeCreateRequest struct {
	SessionID   uint   `json:"session_id" validate:"required"`
	SuraAyah    string `json:"sura_ayah" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=Hifz Tajweed Pronunciation Rhythm Pause"`
	Description string `json:"description" validate:"required"`
	Correction  string `json:"correction"`
}

// Normalize men-trim field teks supaya "   " tidak lolos cek required.
func (r *MistakeCreateRequest) Normalize() {
	r.SuraAyah = strings.TrimSpace(r.SuraAyah)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
	r.Correction = strings.TrimSpace(r.Correction)
}

func (r *MistakeCreateRequest) ToModel() model.MistakeModel {
	return model.MistakeModel{
		SessionID:   r.SessionID,
		SuraAyah:    r.SuraAyah,
		Category:    r.Category,
		Description: r.Description,
		Correction:  r.Correction,
	}
}

/* =========================
   RESPONSE
   ========================= */

type MistakeResponse struct {
	MistakeID   uint   `json:"id"`
	SessionID   uint   `json:"session_id"`
	SuraAyah    string `json:"sura_ayah"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Correction  string `json:"correction"`
}

func NewMistakeResponse(m model.MistakeModel) MistakeResponse {
	return MistakeResponse{
		MistakeID:   m.MistakeID,
		SessionID:   m.SessionID,
		SuraAyah:    m.SuraAyah,
		Category:    m.Category,
		Description: m.Description,
		Correction:  m.Correction,
	}
}

// MistakeListItem adalah baris tabel "Show All Mistakes"; description dan
// correction dipotong untuk tampilan saja.
type MistakeListItem struct {
	SessionID   uint   `json:"session_id"`
	SuraAyah    string `json:"sura_ayah"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Correction  string `json:"correction"`
}

func NewMistakeListItem(m model.MistakeModel) MistakeListItem {
	return MistakeListItem{
		SessionID:   m.SessionID,
		SuraAyah:    m.SuraAyah,
		Category:    m.Category,
		Description: helper.TruncateText(m.Description, mistakePreviewLimit),
		Correction:  helper.TruncateText(m.Correction, mistakePreviewLimit),
	}
}
