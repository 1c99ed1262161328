package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"dicegame/pkg/config"
)

func TestNewRouter(t *testing.T) {
	conf := config.Default()
	conf.Server.AllowOrigins = []string{"http://localhost:3000"}

	router, err := newRouter(conf)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouterRejectsBadDice(t *testing.T) {
	conf := config.Default()
	conf.Game.Dice = 0

	_, err := newRouter(conf)
	require.Error(t, err)
}

func TestRunReportsListenFailure(t *testing.T) {
	conf := config.Default()
	conf.Server.Port = "not-a-port"

	require.Error(t, run(conf))
}
