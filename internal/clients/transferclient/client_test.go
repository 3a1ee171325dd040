package transferclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init(0)
	os.Exit(m.Run())
}

func newTestClient(endpoint string) *Client {
	return NewClient(&config.TransferConfig{
		Endpoint:       endpoint,
		CustodyAccount: "custody-vault",
		Timeout:        time.Second,
		MaxRetryTimes:  3,
		RetryInterval:  time.Millisecond,
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("completed transfer", func(t *testing.T) {
		var got transferRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, transferPath, r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(transferResponse{Status: "completed"})
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).Transfer(ctx, "asset-1", "alice", "custody-vault")
		require.NoError(t, err)
		require.Equal(t, "asset-1", got.AssetID)
		require.Equal(t, uint64(1), got.Amount)
	})

	t.Run("rejection is not retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(transferResponse{Status: "rejected", Error: "asset frozen"})
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).Transfer(ctx, "asset-1", "alice", "custody-vault")
		require.Error(t, err)
		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected)
		require.Equal(t, 1, calls)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(transferResponse{Status: "completed"})
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).Transfer(ctx, "asset-1", "alice", "custody-vault")
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})
}
