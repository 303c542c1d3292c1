package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avolkov/jobscout/internal/config"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpAPIClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpAPIClient {
	t.Helper()
	apiCfg := config.API{Address: serverURL, RequestTimeout: 5 * time.Second}

	c, err := NewHTTPAPIClient(apiCfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAPIClient)
}

// ── ExchangeToken ────────────────────────────────────────────────────────────

func TestExchangeToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Token{AccessToken: "tok-123", TokenType: "bearer"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ExchangeToken(context.Background(), "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", got.AccessToken)
}

func TestExchangeToken_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Incorrect username or password"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ExchangeToken(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExchangeToken_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ExchangeToken(context.Background(), "alice", "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bob", req.Username)
		assert.Equal(t, "bob@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(models.User{ID: 7, Username: req.Username, Email: req.Email})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.CreateUser(context.Background(), models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Username already registered"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateUser(context.Background(), models.RegisterRequest{Username: "bob"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestCurrentUser_AttachesBearerCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: "alice", Skills: []string{"Go"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.CurrentUser(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, []string{"Go"}, got.Skills)
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Could not validate credentials"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CurrentUser(context.Background(), "stale")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestUpdateProfile_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/me", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &fields))
		// Only full_name was set on the update; nothing else may leak into
		// the body or the server-side merge would wipe it.
		assert.Contains(t, fields, "full_name")
		assert.Len(t, fields, 1)

		_ = json.NewEncoder(w).Encode(models.User{ID: 1, FullName: "Alice A."})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	name := "Alice A."
	got, err := c.UpdateProfile(context.Background(), "tok", models.UserUpdate{FullName: &name})

	require.NoError(t, err)
	assert.Equal(t, "Alice A.", got.FullName)
}

// ── ListJobs / GetJob ────────────────────────────────────────────────────────

func TestListJobs_Success(t *testing.T) {
	want := []models.Job{
		{ID: 1, Title: "Backend Engineer", Company: "Acme", JobType: models.JobTypeFullTime},
		{ID: 2, Title: "SRE", Company: "Globex", IsRemote: true, JobType: "gig"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListJobs(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Backend Engineer", got[0].Title)
	// job_type is an open string: unknown values decode and render as-is.
	assert.Equal(t, "gig", got[1].JobType)
}

func TestGetJob_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Job not found"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetJob(context.Background(), "tok", 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ListRecommendations ──────────────────────────────────────────────────────

func TestListRecommendations_Success(t *testing.T) {
	want := []models.Recommendation{
		{JobID: 3, MatchScore: 0.91, MatchReasons: []string{"You have 3 required skills"}},
		{JobID: 1, MatchScore: 0.42, MatchReasons: nil},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommendations/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListRecommendations(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].JobID)
	assert.InDelta(t, 0.91, got[0].MatchScore, 1e-9)
}

func TestListRecommendations_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ListRecommendations(context.Background(), "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewHTTPAPIClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAPIClient(config.API{Address: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", got)

	got, err = normalizeBaseURL("https://api.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", got)
}
