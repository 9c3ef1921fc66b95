package gateway_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/alovak/cardflow-gateway/gateway"
	"github.com/alovak/cardflow-gateway/gateway/models"
	"github.com/alovak/cardflow-gateway/internal/gatewayclient"
	"github.com/alovak/cardflow-gateway/internal/middleware"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	config := gateway.DefaultConfig()
	config.HTTPAddr = "127.0.0.1:0"

	app := gateway.NewApp(logger, config)
	require.NoError(t, app.Start())
	defer app.Shutdown()

	t.Run("request id is echoed", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://"+app.Addr+"/-/live", nil)
		require.NoError(t, err)
		req.Header.Set(middleware.RequestIDHeader, "req-1")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "req-1", resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("request id is generated", func(t *testing.T) {
		resp, err := http.Get("http://" + app.Addr + "/-/live")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("client exports fields", func(t *testing.T) {
		client := gatewayclient.New("http://"+app.Addr+"/", nil)
		code := "321"

		fields, err := client.ExportFields(context.Background(), models.CreditCardRequest{
			Number:     "4111111111111111",
			Expiration: "2501",
			CardCode:   &code,
		})
		require.NoError(t, err)
		require.Equal(t, models.Fields{
			"method":    "CC",
			"card_num":  "4111111111111111",
			"exp_date":  "2501",
			"card_code": "321",
		}, fields)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GATEWAY_HTTP_ADDR", "127.0.0.1:7070")

	config, err := gateway.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7070", config.HTTPAddr)
	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, int64(64<<10), config.MaxBodyBytes)
}
