package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
)

func TestEventMetricsCollector_RecordsGameEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	collector := NewEventMetricsCollector()
	require.NoError(t, collector.Register(bus))
	defer collector.Close()
	ctx := context.Background()

	spinsBefore := testutil.ToFloat64(SpinsStarted)
	bombsBefore := testutil.ToFloat64(BombHits)
	coinsBefore := testutil.ToFloat64(RewardAmount.WithLabelValues(string(domain.RewardKindCoin)))
	trashBefore := testutil.ToFloat64(GameRestarts.WithLabelValues(event.RestartReasonTrash))
	superBefore := testutil.ToFloat64(ZonesEntered.WithLabelValues(ZoneKindLabelSuper))

	spin := domain.Spin{ID: uuid.New(), Zone: 7, TargetIndex: 2}
	require.NoError(t, bus.Publish(ctx, event.NewSpinStartedEvent(spin)))
	require.NoError(t, bus.Publish(ctx, event.NewBombHitEvent(spin)))
	require.NoError(t, bus.Publish(ctx, event.NewRewardCollectedEvent(
		domain.RewardRecord{ID: "cash_cash", Name: "Cash", Kind: domain.RewardKindCoin, Amount: 120},
		3, domain.LedgerState{})))
	require.NoError(t, bus.Publish(ctx, event.NewZoneChangedEvent(30, 29, 30, domain.WheelTierGolden)))
	require.NoError(t, bus.Publish(ctx, event.NewSuperZoneEnteredEvent(30)))
	require.NoError(t, bus.Publish(ctx, event.NewGameRestartedEvent(event.RestartReasonTrash, 1)))

	assert.Equal(t, spinsBefore+1, testutil.ToFloat64(SpinsStarted))
	assert.Equal(t, bombsBefore+1, testutil.ToFloat64(BombHits))
	assert.Equal(t, coinsBefore+120, testutil.ToFloat64(RewardAmount.WithLabelValues(string(domain.RewardKindCoin))))
	assert.Equal(t, trashBefore+1, testutil.ToFloat64(GameRestarts.WithLabelValues(event.RestartReasonTrash)))
	assert.Equal(t, superBefore+1, testutil.ToFloat64(ZonesEntered.WithLabelValues(ZoneKindLabelSuper)))
	assert.Equal(t, float64(30), testutil.ToFloat64(CurrentZone))
	assert.Equal(t, float64(30), testutil.ToFloat64(HighestZone))
}

func TestEventMetricsCollector_CloseUnsubscribes(t *testing.T) {
	bus := event.NewMemoryBus()
	collector := NewEventMetricsCollector()
	require.NoError(t, collector.Register(bus))
	require.Equal(t, 1, bus.HandlerCount(event.BombHit))

	collector.Close()

	assert.Equal(t, 0, bus.HandlerCount(event.BombHit))
}

func TestEventMetricsCollector_UndecodablePayload(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.GameRestarted)))

	err := collector.HandleEvent(context.Background(), event.Event{Type: event.GameRestarted, Payload: make(chan int)})

	assert.NoError(t, err, "metrics never fail a publish")
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.GameRestarted))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/spins/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/spins/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spins/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/spins/{id}", "418")))
}
