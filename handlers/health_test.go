package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type readiness struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func TestHealth(t *testing.T) {
	r := gin.New()
	RegisterHealth(r, "memory", nil)

	w := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"store":"memory"`)

	w = do(t, r, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestReadyReportsEachDependency(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	RegisterHealth(r, "mongodb", map[string]Pinger{
		"redis":   func(ctx context.Context) error { return client.Ping(ctx).Err() },
		"mongodb": func(context.Context) error { return errors.New("no primary") },
	})

	w := do(t, r, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode[readiness](t, w)
	require.Equal(t, "not ready", body.Status)
	require.Equal(t, map[string]string{"redis": "ok", "mongodb": "unavailable"}, body.Dependencies)
}
