package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *MomoConfig {
	return &MomoConfig{
		PartnerCode: "PARTNER",
		AccessKey:   "access",
		SecretKey:   "secret",
		RedirectURL: "https://shop.example/return",
		IPNURL:      "https://shop.example/api/payments/callback",
		Sandbox:     true,
	}
}

func TestMomoConfig_Validate(t *testing.T) {
	t.Run("accepts complete credentials", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("rejects missing secret key", func(t *testing.T) {
		cfg := validConfig()
		cfg.SecretKey = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestMomoAdapter_Initiate(t *testing.T) {
	t.Run("signs the request and returns the pay URL", func(t *testing.T) {
		var captured momoCreateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			json.NewEncoder(w).Encode(momoCreateResponse{ResultCode: 0, PayURL: "https://pay.example/redirect"})
		}))
		defer server.Close()

		adapter, err := NewMomoAdapter(validConfig())
		require.NoError(t, err)
		adapter.httpClient = server.Client()
		adapter.endpoint = server.URL

		orderID := uuid.New()
		initiation, err := adapter.Initiate(context.Background(), orderID, decimal.NewFromInt(250))
		require.NoError(t, err)

		assert.Equal(t, "https://pay.example/redirect", initiation.PayURL)
		assert.Equal(t, orderID, initiation.OrderID)
		assert.Equal(t, "PARTNER", captured.PartnerCode)
		assert.Equal(t, int64(250), captured.Amount)
		assert.NotEmpty(t, captured.Signature)
	})

	t.Run("non-zero result code is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(momoCreateResponse{ResultCode: 41, Message: "duplicate order"})
		}))
		defer server.Close()

		adapter, err := NewMomoAdapter(validConfig())
		require.NoError(t, err)
		adapter.httpClient = server.Client()
		adapter.endpoint = server.URL

		_, err = adapter.Initiate(context.Background(), uuid.New(), decimal.NewFromInt(100))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate order")
	})
}
