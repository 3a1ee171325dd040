package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/utils/poller"
)

// StartCounterAuditPoller runs AuditCounters on the configured interval until
// the context is cancelled.
func (s *Service) StartCounterAuditPoller(ctx context.Context) {
	auditPoller := poller.NewPoller(
		s.cfg.Audit.PollingInterval,
		metrics.RecordPollerDuration("counter_audit", s.AuditCounters),
	)
	auditPoller.Start(ctx)
}

// AuditCounters recounts active positions and compares the result against the
// denormalized totals on the config and collection documents. Drift is logged
// and counted; with repair enabled the stored totals are overwritten with the
// recount. Positions are the source of truth.
func (s *Service) AuditCounters(ctx context.Context) error {
	configDoc, err := s.db.GetStakingConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staking config for audit: %w", err)
	}

	activeCount, err := s.db.CountActivePositions(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active positions: %w", err)
	}
	metrics.RecordActivePositionsCount(activeCount)

	if activeCount != configDoc.TotalStaked {
		metrics.IncCounterAuditDrift()
		log.Ctx(ctx).Warn().
			Int64("counted", activeCount).
			Int64("stored", configDoc.TotalStaked).
			Msg("Global total-staked counter drifted from position recount")
		if s.cfg.Audit.Repair {
			if err := s.db.SetGlobalTotalStaked(ctx, activeCount); err != nil {
				return fmt.Errorf("failed to repair global total-staked counter: %w", err)
			}
			log.Ctx(ctx).Info().
				Int64("total", activeCount).
				Msg("Repaired global total-staked counter")
		}
	}

	collectionDocs, err := s.db.GetAssetCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections for audit: %w", err)
	}

	auditPool := pool.New().
		WithErrors().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.Audit.MaxConcurrency)
	for _, collectionDoc := range collectionDocs {
		auditPool.Go(func(ctx context.Context) error {
			return s.auditCollectionCounter(ctx, collectionDoc.ID, collectionDoc.TotalStaked)
		})
	}
	return auditPool.Wait()
}

func (s *Service) auditCollectionCounter(
	ctx context.Context, collectionID string, stored int64,
) error {
	counted, err := s.db.CountActivePositionsByCollection(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("failed to count active positions for collection %s: %w", collectionID, err)
	}
	if counted == stored {
		return nil
	}

	metrics.IncCounterAuditDrift()
	log.Ctx(ctx).Warn().
		Str("collectionId", collectionID).
		Int64("counted", counted).
		Int64("stored", stored).
		Msg("Collection total-staked counter drifted from position recount")
	if !s.cfg.Audit.Repair {
		return nil
	}
	if err := s.db.SetAssetCollectionTotalStaked(ctx, collectionID, counted); err != nil {
		return fmt.Errorf("failed to repair counter for collection %s: %w", collectionID, err)
	}
	log.Ctx(ctx).Info().
		Str("collectionId", collectionID).
		Int64("total", counted).
		Msg("Repaired collection total-staked counter")
	return nil
}
