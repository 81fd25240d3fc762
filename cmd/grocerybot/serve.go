package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/freshmart/grocery-bot/internal/common"
	"github.com/freshmart/grocery-bot/internal/engine"
	"github.com/freshmart/grocery-bot/internal/server"
	"github.com/freshmart/grocery-bot/internal/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook server",
		Long: `Serve the conversation engine over HTTP. The messaging channel posts
inbound messages to /webhook and receives the reply; confirmed orders go to
the Google Sheets orders tab with the sqlite log as fallback.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :3000)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	client, err := newSheetsClient(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	if client == nil {
		return common.NewUserError("sheets.spreadsheet_id is required for serve; use 'chat' for a local session",
			common.ErrMissingConfig)
	}

	store := newCatalogStore(client, logger)
	if err := store.Load(ctx); err != nil {
		// Degraded but serving: catalog-dependent replies tell the user to
		// try again later.
		logger.Error("catalog load failed, serving degraded", "error", err)
	}

	orderLog, err := newOrderLog()
	if err != nil {
		return fmt.Errorf("failed to open order log: %w", err)
	}
	defer func() { _ = orderLog.Close() }()

	var notifier service.Notifier
	if url := viper.GetString("notify.webhook_url"); url != "" {
		notifier = server.NewWebhookNotifier(url, logger)
	} else {
		notifier = server.NewLogNotifier(logger)
	}

	eng := engine.New(store, newOrderSink(client, orderLog, logger), notifier, engineConfigFromViper(), logger)

	srvCfg := server.DefaultConfig()
	srvCfg.Addr = viper.GetString("server.addr")
	srvCfg.RateLimit = viper.GetString("server.rate_limit")

	srv, err := server.New(eng, orderLog, srvCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(ctx)
}
