package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshmart/grocery-bot/internal/catalog"
	"github.com/freshmart/grocery-bot/internal/cli"
	"github.com/freshmart/grocery-bot/internal/engine"
	"github.com/freshmart/grocery-bot/internal/server"
	"github.com/freshmart/grocery-bot/internal/service"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot from the terminal",
		Long: `Run a local conversation against the engine without any messaging
channel. Uses the Google Sheets catalog when configured, otherwise the
builtin sample catalog; confirmed orders land in the local order log.`,
		RunE: runChat,
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	var source service.CatalogSource
	client, err := newSheetsClient(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	if client != nil {
		source = client
	} else {
		logger.Info("sheets not configured, using builtin sample catalog")
		source = catalog.BuiltinSource{}
	}

	store := newCatalogStore(source, logger)
	if err := store.Load(ctx); err != nil {
		logger.Error("catalog load failed, chatting degraded", "error", err)
	}

	orderLog, err := newOrderLog()
	if err != nil {
		return fmt.Errorf("failed to open order log: %w", err)
	}
	defer func() { _ = orderLog.Close() }()

	var primary service.OrderSink
	if client != nil {
		primary = client
	}
	notifier := server.NewLogNotifier(logger)
	eng := engine.New(store, newOrderSink(primary, orderLog, logger), notifier, engineConfigFromViper(), logger)

	fmt.Println(cli.FormatTitle("Fresh Mart chat session"))
	fmt.Println(cli.SubtleStyle.Render("Type \"start\" to begin, Ctrl-C to leave."))
	fmt.Println()

	reader := cli.NewReader(os.Stdin)
	for {
		fmt.Print(cli.FormatPrompt("you"))
		text, err := reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, cli.ErrInputCancelled) || errors.Is(err, io.EOF) {
				fmt.Println()
				fmt.Println(cli.SubtleStyle.Render("Bye!"))
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if text == "" {
			continue
		}

		reply := eng.HandleMessage(ctx, service.InboundMessage{
			SenderID:   "local@terminal",
			SenderName: os.Getenv("USER"),
			Text:       text,
			Type:       "text",
		})
		if reply == "" {
			continue
		}

		fmt.Println(cli.PromptStyle.Render(cli.RobotIcon + " bot"))
		fmt.Println(cli.FormatReply(reply))
		fmt.Println()
	}
}
