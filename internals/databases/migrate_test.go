package database

import (
	"path/filepath"
	"testing"

	sessionModel "hafalanku_backend/internals/features/hafalan/sessions/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tracker.db")), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestEnsureSchemaCreatesTables(t *testing.T) {
	db := openTestDB(t)

	EnsureSchema(db)

	m := db.Migrator()
	assert.True(t, m.HasTable("sessions"))
	assert.True(t, m.HasTable("mistakes"))
	assert.True(t, m.HasColumn(&sessionModel.SessionModel{}, "mistake_count"))
}

func TestMigrateMistakeCountOnLegacyTable(t *testing.T) {
	db := openTestDB(t)

	// Tabel sessions versi rilis awal, belum punya mistake_count
	require.NoError(t, db.Exec(`CREATE TABLE sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date DATE,
		juz INTEGER,
		quarter TEXT,
		session_type TEXT,
		duration REAL,
		attention INTEGER,
		notes TEXT
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO sessions (date, juz, quarter, session_type, duration, attention, notes)
		 VALUES ('2024-01-15', 5, 'Q2', 'Test', 45.5, 3, 'legacy row')`).Error)

	require.NoError(t, MigrateMistakeCount(db))
	assert.True(t, db.Migrator().HasColumn(&sessionModel.SessionModel{}, "mistake_count"))

	// Baris lama tidak boleh berubah, mistake_count terisi default 0
	var row struct {
		Juz          int
		Quarter      string
		SessionType  string
		Duration     float64
		Attention    int
		Notes        string
		MistakeCount int
	}
	require.NoError(t, db.Raw(
		`SELECT juz, quarter, session_type, duration, attention, notes, mistake_count
		 FROM sessions WHERE id = 1`).Scan(&row).Error)
	assert.Equal(t, 5, row.Juz)
	assert.Equal(t, "Q2", row.Quarter)
	assert.Equal(t, "Test", row.SessionType)
	assert.Equal(t, 45.5, row.Duration)
	assert.Equal(t, 3, row.Attention)
	assert.Equal(t, "legacy row", row.Notes)
	assert.Equal(t, 0, row.MistakeCount)
}

func TestMigrateMistakeCountIdempotent(t *testing.T) {
	db := openTestDB(t)
	EnsureSchema(db)

	// Dua kali berturut-turut pada skema yang sudah lengkap = no-op
	require.NoError(t, MigrateMistakeCount(db))
	require.NoError(t, MigrateMistakeCount(db))
	assert.True(t, db.Migrator().HasColumn(&sessionModel.SessionModel{}, "mistake_count"))
}

func TestMigrateMistakeCountWithoutTable(t *testing.T) {
	db := openTestDB(t)

	// Belum ada tabel sama sekali: bukan error, biar AutoMigrate yang buat
	require.NoError(t, MigrateMistakeCount(db))
	assert.False(t, db.Migrator().HasTable("sessions"))
}
