package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notemark/config"
	"notemark/internal/testutils"
	"notemark/middleware"
	"notemark/model"
	"notemark/repository"
	"notemark/services"
	"notemark/usecase"

	"github.com/gin-gonic/gin"
)

type respEnvelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func setupNotesRouter(t *testing.T) (*gin.Engine, *usecase.NoteService, func()) {
	t.Helper()
	client, cleanup := testutils.SetupTestDB(t)

	gin.SetMode(gin.TestMode)
	services.InitTokens(config.AuthConfig{
		JWTSecretKey:      "test_secret_key",
		AccessExpiration:  time.Hour,
		RefreshExpiration: 24 * time.Hour,
		Issuer:            "notemark",
	})

	noteService := &usecase.NoteService{
		NotesRepo: repository.GetNotesRepo(client, testutils.TestDBName),
	}
	notesHandler := NewNotesHandler(noteService)

	router := gin.New()
	notes := router.Group("/api/notes", middleware.AuthMiddleware())
	{
		notes.POST("", notesHandler.CreateNote)
		notes.GET("", notesHandler.ListNotes)
		notes.GET("/:id", notesHandler.GetNote)
		notes.PUT("/:id", notesHandler.UpdateNote)
		notes.DELETE("/:id", notesHandler.DeleteNote)
	}

	return router, noteService, cleanup
}

func testContext() context.Context {
	return context.Background()
}

func authToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := services.GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNotesHandlerCreate(t *testing.T) {
	router, svc, cleanup := setupNotesRouter(t)
	defer cleanup()
	token := authToken(t, "user-1")

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCount  int
	}{
		{
			name:       "Valid Note",
			body:       `{"title": "First", "content": "body", "tags": ["a", " a ", "b"]}`,
			wantStatus: http.StatusCreated,
			wantCount:  1,
		},
		{
			name:       "Tags As Delimited String",
			body:       `{"title": "Second", "content": "body", "tags": "foo, bar #baz"}`,
			wantStatus: http.StatusCreated,
			wantCount:  2,
		},
		{
			name:       "Missing Content",
			body:       `{"title": "No body"}`,
			wantStatus: http.StatusBadRequest,
			wantCount:  2,
		},
		{
			name:       "Blank Title",
			body:       `{"title": "   ", "content": "body"}`,
			wantStatus: http.StatusBadRequest,
			wantCount:  2,
		},
		{
			name:       "Malformed JSON",
			body:       `{"title": `,
			wantStatus: http.StatusBadRequest,
			wantCount:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/notes", token, []byte(tt.body))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			count, err := svc.NotesRepo.CountUserNotes(testContext(), "user-1")
			if err != nil {
				t.Fatal(err)
			}
			if count != tt.wantCount {
				t.Errorf("stored notes = %d, want %d", count, tt.wantCount)
			}
		})
	}
}

func TestNotesHandlerCreateIgnoresClientID(t *testing.T) {
	router, _, cleanup := setupNotesRouter(t)
	defer cleanup()
	token := authToken(t, "user-1")

	w := doJSON(router, http.MethodPost, "/api/notes", token, []byte(`{"title": "First", "content": "body"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	var resp respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	var first model.Note
	if err := json.Unmarshal(resp.Data, &first); err != nil {
		t.Fatal(err)
	}

	// Reusing an existing id in the payload must not collide.
	body := `{"id": "` + first.ID.Hex() + `", "title": "Second", "content": "body"}`
	w = doJSON(router, http.MethodPost, "/api/notes", token, []byte(body))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	var second model.Note
	if err := json.Unmarshal(resp.Data, &second); err != nil {
		t.Fatal(err)
	}
	if second.ID.IsZero() || second.ID == first.ID {
		t.Errorf("id = %s, want a fresh server-assigned id", second.ID.Hex())
	}
}

func TestNotesHandlerRequiresAuth(t *testing.T) {
	router, _, cleanup := setupNotesRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/notes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var resp respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == "" {
		t.Error("401 response has no error message")
	}
}

func TestNotesHandlerGetByID(t *testing.T) {
	router, svc, cleanup := setupNotesRouter(t)
	defer cleanup()

	note := model.Note{UserID: "owner", Title: "Mine", Content: "body"}
	if err := svc.CreateNote(testContext(), &note); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		id         string
		user       string
		wantStatus int
	}{
		{
			name:       "Owner Gets Record",
			id:         note.ID.Hex(),
			user:       "owner",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Foreign Owner Gets Not Found",
			id:         note.ID.Hex(),
			user:       "intruder",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Unknown Well Formed ID",
			id:         "64b000000000000000000000",
			user:       "owner",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Malformed ID",
			id:         "definitely-not-hex",
			user:       "owner",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/api/notes/"+tt.id, authToken(t, tt.user), nil)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestNotesHandlerUpdateAndDelete(t *testing.T) {
	router, svc, cleanup := setupNotesRouter(t)
	defer cleanup()
	token := authToken(t, "user-1")

	note := model.Note{UserID: "user-1", Title: "Before", Content: "body"}
	if err := svc.CreateNote(testContext(), &note); err != nil {
		t.Fatal(err)
	}

	w := doJSON(router, http.MethodPut, "/api/notes/"+note.ID.Hex(), token,
		[]byte(`{"title": "After"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body: %s)", w.Code, w.Body.String())
	}

	var resp respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	var updated model.Note
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Title != "After" || updated.Content != "body" {
		t.Errorf("updated note = %+v, want title replaced and content kept", updated)
	}

	w = doJSON(router, http.MethodDelete, "/api/notes/"+note.ID.Hex(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d (body: %s)", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message == "" {
		t.Error("delete response has no confirmation message")
	}

	w = doJSON(router, http.MethodDelete, "/api/notes/"+note.ID.Hex(), token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestNotesHandlerList(t *testing.T) {
	router, svc, cleanup := setupNotesRouter(t)
	defer cleanup()

	seed := []model.Note{
		{UserID: "user-1", Title: "Meeting notes", Content: "agenda", Tags: model.TagList{"work"}},
		{UserID: "user-1", Title: "Groceries", Content: "milk", Tags: model.TagList{"home"}, IsFavorite: true},
		{UserID: "user-2", Title: "Other", Content: "not yours"},
	}
	for i := range seed {
		if err := svc.CreateNote(testContext(), &seed[i]); err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	tests := []struct {
		name       string
		path       string
		wantTitles []string
	}{
		{
			name:       "All Owned Newest First",
			path:       "/api/notes",
			wantTitles: []string{"Groceries", "Meeting notes"},
		},
		{
			name:       "Text Search",
			path:       "/api/notes?q=meeting",
			wantTitles: []string{"Meeting notes"},
		},
		{
			name:       "Favorite Filter",
			path:       "/api/notes?favorite=true",
			wantTitles: []string{"Groceries"},
		},
		{
			name:       "Tag Filter",
			path:       "/api/notes?tags=work,home",
			wantTitles: []string{"Groceries", "Meeting notes"},
		},
	}

	token := authToken(t, "user-1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, token, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d (body: %s)", w.Code, w.Body.String())
			}

			var resp respEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			var notes []model.Note
			if err := json.Unmarshal(resp.Data, &notes); err != nil {
				t.Fatal(err)
			}
			if len(notes) != len(tt.wantTitles) {
				t.Fatalf("got %d notes, want %d", len(notes), len(tt.wantTitles))
			}
			for i, want := range tt.wantTitles {
				if notes[i].Title != want {
					t.Errorf("notes[%d].Title = %q, want %q", i, notes[i].Title, want)
				}
			}
		})
	}
}
