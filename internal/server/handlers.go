package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

type initializeRequest struct {
	Authority         string `json:"authority"`
	MultiSigThreshold uint8  `json:"multi_sig_threshold"`
}

type addAdminRequest struct {
	AdminID string `json:"admin_id"`
}

type setAdminActiveRequest struct {
	Active bool `json:"active"`
}

type addCollectionRequest struct {
	CollectionID       string `json:"collection_id"`
	SixMonthTickets    uint64 `json:"six_month_tickets"`
	TwelveMonthTickets uint64 `json:"twelve_month_tickets"`
	ThreeYearTickets   uint64 `json:"three_year_tickets"`
}

type updateRewardsRequest struct {
	SixMonthTickets    uint64 `json:"six_month_tickets"`
	TwelveMonthTickets uint64 `json:"twelve_month_tickets"`
	ThreeYearTickets   uint64 `json:"three_year_tickets"`
}

type validateCollectionRequest struct {
	Validated bool `json:"validated"`
}

type stakeRequest struct {
	AssetID      string `json:"asset_id"`
	CollectionID string `json:"collection_id"`
	Duration     string `json:"duration"`
}

type emergencyUnlockRequest struct {
	Reason string `json:"reason"`
}

type positionResponse struct {
	Position   *model.PositionDocument   `json:"position"`
	Escalation *model.EscalationDocument `json:"escalation,omitempty"`
}

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (s *Server) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if serviceErr := s.service.Initialize(r.Context(), req.Authority, req.MultiSigThreshold); serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "initialized"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	configDoc, serviceErr := s.service.GetStakingStatus(r.Context())
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, configDoc)
}

func (s *Server) handleAddAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	var req addAdminRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if serviceErr := s.service.AddAdmin(r.Context(), caller, req.AdminID); serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"admin_id": req.AdminID})
}

func (s *Server) handleSetAdminActive(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	adminID := chi.URLParam(r, "adminID")
	var req setAdminActiveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if serviceErr := s.service.SetAdminActive(r.Context(), caller, adminID, req.Active); serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"admin_id": adminID, "active": req.Active})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	if serviceErr := s.service.Pause(r.Context(), caller); serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "paused"})
}

func (s *Server) handleUnpause(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	if serviceErr := s.service.Unpause(r.Context(), caller); serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unpaused"})
}

func (s *Server) handleAddCollection(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	var req addCollectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	serviceErr := s.service.AddCollection(
		r.Context(), caller, req.CollectionID,
		req.SixMonthTickets, req.TwelveMonthTickets, req.ThreeYearTickets,
	)
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"collection_id": req.CollectionID})
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collectionDocs, serviceErr := s.service.ListCollections(r.Context())
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, collectionDocs)
}

func (s *Server) handleUpdateCollectionRewards(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	collectionID := chi.URLParam(r, "collectionID")
	var req updateRewardsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	serviceErr := s.service.UpdateCollectionRewards(
		r.Context(), caller, collectionID,
		req.SixMonthTickets, req.TwelveMonthTickets, req.ThreeYearTickets,
	)
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"collection_id": collectionID})
}

func (s *Server) handleValidateCollection(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	collectionID := chi.URLParam(r, "collectionID")
	var req validateCollectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	serviceErr := s.service.ValidateCollection(r.Context(), caller, collectionID, req.Validated)
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collection_id": collectionID, "validated": req.Validated})
}

func (s *Server) handleStake(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	var req stakeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tier, ok := types.ParseDurationTier(req.Duration)
	if !ok {
		writeError(w, http.StatusBadRequest, types.InvalidDuration.String(),
			"duration must be one of SIX_MONTHS, TWELVE_MONTHS, THREE_YEARS")
		return
	}
	positionDoc, serviceErr := s.service.Stake(r.Context(), caller, req.AssetID, req.CollectionID, tier)
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusCreated, positionDoc)
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "positionID")
	positionDoc, escalationDoc, serviceErr := s.service.GetPosition(r.Context(), positionID)
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, positionResponse{
		Position:   positionDoc,
		Escalation: escalationDoc,
	})
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	positionID := chi.URLParam(r, "positionID")
	if serviceErr := s.service.Claim(r.Context(), caller, positionID); serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"position_id": positionID, "status": "claimed"})
}

func (s *Server) handleEmergencyUnlock(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	positionID := chi.URLParam(r, "positionID")
	var req emergencyUnlockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	executed, serviceErr := s.service.EmergencyUnlock(r.Context(), caller, positionID, req.Reason)
	if serviceErr != nil {
		writeServiceError(w, serviceErr)
		return
	}
	status := "requested"
	code := http.StatusAccepted
	if executed {
		status = "executed"
		code = http.StatusOK
	}
	writeJSON(w, code, map[string]string{"position_id": positionID, "status": status})
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := r.Header.Get(CallerHeader)
	if caller == "" {
		writeError(w, http.StatusBadRequest, types.ValidationError.String(),
			"missing "+CallerHeader+" header")
		return "", false
	}
	return caller, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, types.ValidationError.String(), "invalid JSON body")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, serviceErr *types.Error) {
	writeError(w, serviceErr.StatusCode, serviceErr.ErrorCode.String(), serviceErr.Err.Error())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{ErrorCode: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
