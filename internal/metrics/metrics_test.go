package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/inventories/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/inventories/{id}", "418"))
	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/inventories/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/inventories/{id}", "418"))
	assert.Equal(t, float64(2), after-before)
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	rw.Flush()
	assert.True(t, rec.Flushed)

	_, _, err := rw.Hijack()
	assert.Error(t, err, "recorder cannot be hijacked")
}

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	posts := testutil.ToFloat64(PostsCreated)
	likes := testutil.ToFloat64(Likes.WithLabelValues(LikeActionLike))
	unlikes := testutil.ToFloat64(Likes.WithLabelValues(LikeActionUnlike))

	require.NoError(t, bus.Publish(ctx, event.NewPostCreatedEvent(domain.Post{ID: "p"})))
	require.NoError(t, bus.Publish(ctx, event.NewItemEvent(event.ItemLiked, "inv", "item", "u")))
	require.NoError(t, bus.Publish(ctx, event.NewItemEvent(event.ItemUnliked, "inv", "item", "u")))

	assert.Equal(t, posts+1, testutil.ToFloat64(PostsCreated))
	assert.Equal(t, likes+1, testutil.ToFloat64(Likes.WithLabelValues(LikeActionLike)))
	assert.Equal(t, unlikes+1, testutil.ToFloat64(Likes.WithLabelValues(LikeActionUnlike)))
}
