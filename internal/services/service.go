package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/naffleslabs/nft-staking-service/internal/clients/transferclient"
	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/queue"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

type Service struct {
	cfg      *config.Config
	db       db.DbInterface
	transfer transferclient.TransferInterface
	events   queue.EventSink
	clock    clockwork.Clock
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	transfer transferclient.TransferInterface,
	events queue.EventSink,
	clock clockwork.Clock,
) *Service {
	return &Service{
		cfg:      cfg,
		db:       db,
		transfer: transfer,
		events:   events,
		clock:    clock,
	}
}

// StartBackground launches the periodic counter audit. It blocks until the
// context is cancelled.
func (s *Service) StartBackground(ctx context.Context) {
	s.StartCounterAuditPoller(ctx)
}

// requireUnpaused is the first guard of every mutating operation except the
// pause toggle itself.
func (s *Service) requireUnpaused(ctx context.Context) (*model.StakingConfigDocument, *types.Error) {
	configDoc, err := s.db.GetStakingConfig(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusPreconditionFailed,
				types.NotFound,
				"staking system is not initialized",
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load staking config: %w", err),
		)
	}
	if configDoc.IsPaused {
		return nil, types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.SystemPaused,
			"system is paused",
		)
	}
	return configDoc, nil
}

// requireActiveAdmin checks that the caller holds an admin record with the
// active flag set. A deactivated admin loses all privileges.
func (s *Service) requireActiveAdmin(ctx context.Context, caller string) *types.Error {
	adminDoc, err := s.db.GetAdminByID(ctx, caller)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusForbidden,
				types.Unauthorized,
				"caller is not an admin",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to load admin record: %w", err),
		)
	}
	if !adminDoc.IsActive {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.Unauthorized,
			"admin is deactivated",
		)
	}
	return nil
}

// requireAuthority checks that the caller is the system authority recorded at
// initialization.
func requireAuthority(configDoc *model.StakingConfigDocument, caller string) *types.Error {
	if configDoc.Authority != caller {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.Unauthorized,
			"caller is not the system authority",
		)
	}
	return nil
}

// errIsTransferRejection tells a definitive custody-side rejection apart from
// a transient transfer failure; both abort the operation.
func errIsTransferRejection(err error) bool {
	var rejected *transferclient.RejectedError
	return errors.As(err, &rejected)
}

func newTransferError(err error) *types.Error {
	if errIsTransferRejection(err) {
		return types.NewError(http.StatusBadGateway, types.TransferFailed, err)
	}
	return types.NewError(
		http.StatusBadGateway,
		types.TransferFailed,
		fmt.Errorf("asset transfer failed: %w", err),
	)
}
