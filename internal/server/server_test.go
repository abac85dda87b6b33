package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/catalog"
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/database/memory"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/game"
	"github.com/osse101/WheelOfFortune_Go/internal/progression"
	"github.com/osse101/WheelOfFortune_Go/internal/reward"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
	"github.com/osse101/WheelOfFortune_Go/internal/wheel"
	"github.com/osse101/WheelOfFortune_Go/internal/zone"
	"github.com/osse101/WheelOfFortune_Go/mocks"
)

const testAPIKey = "test-key"

// newTestRouter wires a real session with an instant animator behind the full middleware stack
func newTestRouter(t *testing.T) (http.Handler, *game.Session) {
	t.Helper()
	cfg := config.DefaultGameConfig()

	cat, err := catalog.Default()
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	rng := utils.NewSeededSource(11)
	resolver := zone.NewResolver(cfg.Wheel, zone.NewClassifier(cfg.Zones.SafeInterval, cfg.Zones.SuperInterval), cat)
	store := memory.NewProgressStore()
	progress := progression.NewController(cfg.Zones, resolver, wheel.NewGenerator(rng), store, bus)

	session := game.NewSession(game.Dependencies{
		Spin:     cfg.Spin,
		Progress: progress,
		Ledger:   reward.NewLedger(),
		Bus:      bus,
		Animator: game.InstantAnimator{},
		RNG:      rng,
	})
	session.Start(context.Background())

	router := NewRouter(Options{APIKey: testAPIKey, MaxZone: cfg.Zones.MaxZone}, Dependencies{
		Game:  session,
		Items: cat,
		Zones: resolver,
		Store: store,
	})
	return router, session
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{PathHealthz, PathReadyz, PathVersion, PathMetrics} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_RequiresKey(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/game", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_PlaysASpin(t *testing.T) {
	router, session := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/game", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snap domain.SessionSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Equal(t, domain.GameStateIdle, snap.State)
	require.NotEmpty(t, snap.Slices)

	// pick a non-bomb slice so the outcome is deterministic
	target := -1
	for i, s := range snap.Slices {
		if !s.IsBomb {
			target = i
			break
		}
	}
	require.GreaterOrEqual(t, target, 0)

	rec = do(t, router, http.MethodPost, "/api/v1/game/spin-to", `{"index":`+strconv.Itoa(target)+`}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, domain.GameStateShowingResult, session.State())

	rec = do(t, router, http.MethodPost, "/api/v1/game/spin", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "spinning while the popup is open is rejected")

	rec = do(t, router, http.MethodPost, "/api/v1/game/popup/close", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GameStateIdle, session.State())
	assert.Equal(t, 2, session.Snapshot().Zone.Current)

	rec = do(t, router, http.MethodGet, "/api/v1/game/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_count":1`)

	rec = do(t, router, http.MethodPost, "/api/v1/game/revive", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "revive is only offered after a bomb")
}

func TestRouter_CatalogAndZones(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/items/cash", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/zones/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_safe":true`)

	rec = do(t, router, http.MethodGet, "/api/v1/zones/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UsesGameService(t *testing.T) {
	svc := mocks.NewMockGameService(t)
	svc.On("Trash", mock.Anything).Return(nil)
	svc.On("Snapshot").Return(domain.SessionSnapshot{State: domain.GameStateIdle})

	router := NewRouter(Options{}, Dependencies{Game: svc, Store: memory.NewProgressStore()})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/game/trash", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/game", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id=")
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, PathHealthz, nil))

	assert.Empty(t, buf.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	var _ http.Flusher = rw
	rw.Flush()

	assert.True(t, rec.Flushed)
}
