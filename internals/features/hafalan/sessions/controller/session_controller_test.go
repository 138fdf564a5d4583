package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	database "hafalanku_backend/internals/databases"
	"hafalanku_backend/internals/features/hafalan/sessions/dto"
	sessionRoutes "hafalanku_backend/internals/features/hafalan/sessions/route"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiEnvelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tracker.db")), &gorm.Config{})
	require.NoError(t, err)
	database.EnsureSchema(db)

	app := fiber.New()
	api := app.Group("/api")
	sessionRoutes.SessionRoutes(api, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestCreateSessionRoundTrip(t *testing.T) {
	app := setupApp(t)

	input := dto.SessionCreateRequest{
		Date:         "2026-08-30",
		Juz:          2,
		Quarter:      "Q1",
		SessionType:  "Practice",
		Duration:     30.0,
		Attention:    4,
		MistakeCount: 3,
		Notes:        "ok",
	}
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/sessions/", input)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(1), created.SessionID)
	assert.Contains(t, env.Message, "Session #1 saved successfully")

	// getSession mengembalikan persis apa yang dibuat
	resp, env = doJSON(t, app, fiber.MethodGet, "/api/sessions/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched dto.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, dto.SessionResponse{
		SessionID:    1,
		Date:         "2026-08-30",
		Juz:          2,
		Quarter:      "Q1",
		SessionType:  "Practice",
		Duration:     30.0,
		Attention:    4,
		MistakeCount: 3,
		Notes:        "ok",
	}, fetched)

	// listSessions memuat tepat satu record itu
	resp, env = doJSON(t, app, fiber.MethodGet, "/api/sessions/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []dto.SessionListItem
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].SessionID)
	assert.Equal(t, 2, list[0].Juz)
	assert.Equal(t, "ok", list[0].Notes)
}

func TestCreateSessionDefaultsDateToToday(t *testing.T) {
	app := setupApp(t)

	_, env := doJSON(t, app, fiber.MethodPost, "/api/sessions/", dto.SessionCreateRequest{
		Juz: 1, Quarter: "Q3", SessionType: "Test", Duration: 15, Attention: 2,
	})

	var created dto.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, time.Now().Format(dto.DateLayout), created.Date)
	assert.Equal(t, 0, created.MistakeCount)
}

func TestCreateSessionRejectsOutOfRange(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name  string
		input dto.SessionCreateRequest
		field string
	}{
		{
			"juz above 30",
			dto.SessionCreateRequest{Juz: 31, Quarter: "Q1", SessionType: "Practice", Duration: 10, Attention: 3},
			"Juz",
		},
		{
			"unknown quarter",
			dto.SessionCreateRequest{Juz: 1, Quarter: "Q5", SessionType: "Practice", Duration: 10, Attention: 3},
			"Quarter",
		},
		{
			"unknown session type",
			dto.SessionCreateRequest{Juz: 1, Quarter: "Q1", SessionType: "Drill", Duration: 10, Attention: 3},
			"SessionType",
		},
		{
			"attention above 5",
			dto.SessionCreateRequest{Juz: 1, Quarter: "Q1", SessionType: "Practice", Duration: 10, Attention: 6},
			"Attention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, app, fiber.MethodPost, "/api/sessions/", tt.input)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, env.Errors, tt.field)
		})
	}

	// tidak ada insert yang lolos
	_, env := doJSON(t, app, fiber.MethodGet, "/api/sessions/", nil)
	var list []dto.SessionListItem
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}

func TestGetSessionNotFound(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/sessions/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Session not found", env.Message)
}

func TestSessionOptionsLabel(t *testing.T) {
	app := setupApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/sessions/", dto.SessionCreateRequest{
		Date: "2026-08-30", Juz: 2, Quarter: "Q1", SessionType: "Practice",
		Duration: 30, Attention: 4, MistakeCount: 3,
	})

	_, env := doJSON(t, app, fiber.MethodGet, "/api/sessions/options", nil)
	var options []dto.SessionOption
	require.NoError(t, json.Unmarshal(env.Data, &options))
	require.Len(t, options, 1)
	assert.Equal(t, uint(1), options[0].SessionID)
	assert.Equal(t, "Session #1 - Juz 2 Q1 (Practice) - 3 mistakes - 2026-08-30", options[0].Label)
}

func TestSessionListTruncatesNotesForDisplayOnly(t *testing.T) {
	app := setupApp(t)

	longNotes := "catatan panjang sekali tentang sesi hafalan hari ini, banyak pengulangan"
	doJSON(t, app, fiber.MethodPost, "/api/sessions/", dto.SessionCreateRequest{
		Juz: 4, Quarter: "Q2", SessionType: "Practice", Duration: 25, Attention: 3, Notes: longNotes,
	})

	_, env := doJSON(t, app, fiber.MethodGet, "/api/sessions/", nil)
	var list []dto.SessionListItem
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, longNotes[:50]+"...", list[0].Notes)

	// nilai tersimpan tetap utuh
	_, env = doJSON(t, app, fiber.MethodGet, "/api/sessions/1", nil)
	var fetched dto.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, longNotes, fetched.Notes)
}
