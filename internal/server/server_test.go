package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/services"
	"github.com/naffleslabs/nft-staking-service/internal/types"
	"github.com/naffleslabs/nft-staking-service/tests/mocks"
)

func TestMain(m *testing.M) {
	metrics.Init(0)
	os.Exit(m.Run())
}

type apiFixture struct {
	server *Server
	db     *mocks.DbInterface
}

func newAPIFixture(t *testing.T) *apiFixture {
	dbMock := mocks.NewDbInterface(t)
	transferMock := mocks.NewTransferInterface(t)
	eventsMock := mocks.NewEventSink(t)
	eventsMock.On("PublishEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	transferMock.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Transfer: config.TransferConfig{CustodyAccount: "custody-vault"},
	}
	svc := services.NewService(cfg, dbMock, transferMock, eventsMock, clockwork.NewRealClock())

	return &apiFixture{
		server: New(&cfg.Server, svc, dbMock),
		db:     dbMock,
	}
}

func (f *apiFixture) do(t *testing.T, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if caller != "" {
		req.Header.Set(CallerHeader, caller)
	}
	rec := httptest.NewRecorder()
	f.server.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealthcheck(t *testing.T) {
	f := newAPIFixture(t)
	f.db.On("Ping", mock.Anything).Return(nil)

	rec := f.do(t, http.MethodGet, "/healthcheck", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingCallerHeader(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/pause", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, types.ValidationError.String(), decodeError(t, rec).ErrorCode)
}

func TestStakeRejectsUnknownDuration(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/positions", "owner-1", stakeRequest{
		AssetID:      "asset-1",
		CollectionID: "collection-1",
		Duration:     "FOUR_YEARS",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, types.InvalidDuration.String(), decodeError(t, rec).ErrorCode)
}

func TestStatusMapsServiceErrors(t *testing.T) {
	f := newAPIFixture(t)
	f.db.On("GetStakingConfig", mock.Anything).
		Return(nil, &db.NotFoundError{Key: "staking_config", Message: "not initialized"})

	rec := f.do(t, http.MethodGet, "/v1/status", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, types.NotFound.String(), decodeError(t, rec).ErrorCode)
}

func TestEmergencyUnlockRequestReturnsAccepted(t *testing.T) {
	f := newAPIFixture(t)
	now := time.Now().Unix()
	position := model.NewPositionDocument("pos-1", "owner-1", "asset-1", "collection-1", now, types.TierSixMonths)

	configDoc := model.NewStakingConfigDocument("authority-key", 2)
	f.db.On("GetStakingConfig", mock.Anything).Return(configDoc, nil)
	f.db.On("GetAdminByID", mock.Anything, "admin-1").
		Return(model.NewAdminDocument("admin-1", now), nil)
	f.db.On("GetPositionByID", mock.Anything, "pos-1").Return(position, nil)
	f.db.On("GetEscalationByPosition", mock.Anything, "pos-1").
		Return(nil, &db.NotFoundError{Key: "pos-1", Message: "not found"})
	f.db.On("SaveNewEscalation", mock.Anything, mock.Anything).Return(nil)

	rec := f.do(t, http.MethodPost, "/v1/positions/pos-1/emergency-unlock", "admin-1",
		emergencyUnlockRequest{Reason: "compromised key"})
	require.Equal(t, http.StatusAccepted, rec.Code)
}
