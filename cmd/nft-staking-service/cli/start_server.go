package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/naffleslabs/nft-staking-service/internal/clients/transferclient"
	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/db"
	dbmodel "github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/observability/tracing"
	"github.com/naffleslabs/nft-staking-service/internal/queue"
	"github.com/naffleslabs/nft-staking-service/internal/server"
	"github.com/naffleslabs/nft-staking-service/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the NFT staking service API server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	eventSink, err := queue.NewQueueManager(&cfg.Events)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize event sink")
	}
	defer eventSink.Shutdown()

	transferClient := transferclient.NewClient(&cfg.Transfer)

	service := services.NewService(cfg, dbClient, transferClient, eventSink, clockwork.NewRealClock())

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	go service.StartBackground(ctx)

	apiServer := server.New(&cfg.Server, service, dbClient)
	return apiServer.Start()
}
