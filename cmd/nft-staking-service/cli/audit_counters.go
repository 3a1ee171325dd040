package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/naffleslabs/nft-staking-service/internal/clients/transferclient"
	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/observability/tracing"
	"github.com/naffleslabs/nft-staking-service/internal/queue"
	"github.com/naffleslabs/nft-staking-service/internal/services"
)

func AuditCountersCmd() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "audit-counters",
		Short: "Recounts active positions and reports counter drift",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCounters(cmd, repair)
		},
	}
	cmd.Flags().BoolVar(&repair, "repair", false, "overwrite drifted counters with the recount")

	return cmd
}

func auditCounters(cmd *cobra.Command, repair bool) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}
	cfg.Audit.Repair = repair

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	// The audit records gauges even in one-shot mode.
	metrics.Init(cfg.Metrics.GetMetricsPort())

	// One-shot run: no event sink, no transfer client needed by the audit.
	eventSink, err := queue.NewQueueManager(&config.EventsConfig{})
	if err != nil {
		return err
	}
	service := services.NewService(
		cfg, dbClient, transferclient.NewClient(&cfg.Transfer), eventSink, clockwork.NewRealClock(),
	)

	return service.AuditCounters(ctx)
}
