package main

import (
	"context"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"

	"github.com/freshmart/grocery-bot/internal/catalog"
	"github.com/freshmart/grocery-bot/internal/config"
	"github.com/freshmart/grocery-bot/internal/engine"
	"github.com/freshmart/grocery-bot/internal/orders"
	"github.com/freshmart/grocery-bot/internal/service"
	"github.com/freshmart/grocery-bot/internal/sheets"
	"github.com/freshmart/grocery-bot/internal/storage"
)

func sheetsConfigFromViper() sheets.Config {
	cfg := sheets.DefaultConfig()
	cfg.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")
	cfg.ServiceAccountPath = viper.GetString("sheets.service_account_path")
	cfg.ClientID = viper.GetString("sheets.client_id")
	cfg.ClientSecret = viper.GetString("sheets.client_secret")
	cfg.RefreshToken = viper.GetString("sheets.refresh_token")
	cfg.CategoriesSheet = viper.GetString("sheets.categories_sheet")
	cfg.ItemsSheet = viper.GetString("sheets.items_sheet")
	cfg.OrdersSheet = viper.GetString("sheets.orders_sheet")
	cfg.TimeZone = viper.GetString("sheets.timezone")
	cfg.RetryAttempts = viper.GetInt("sheets.retry_attempts")
	cfg.RetryDelay = viper.GetDuration("sheets.retry_delay")
	return cfg
}

func engineConfigFromViper() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.StoreName = viper.GetString("shop.name")
	cfg.StoreAddress = viper.GetString("shop.address")
	cfg.StoreHours = viper.GetString("shop.hours")
	cfg.StorePhone = viper.GetString("shop.phone")
	cfg.Currency = viper.GetString("shop.currency")
	cfg.ShopkeeperID = viper.GetString("shop.shopkeeper_id")
	return cfg
}

// newSheetsClient returns nil without error when Sheets is not configured;
// callers degrade to the builtin catalog and local order log.
func newSheetsClient(ctx context.Context, logger *slog.Logger) (*sheets.Client, error) {
	cfg := sheetsConfigFromViper()
	if !cfg.Configured() {
		return nil, nil
	}
	return sheets.NewClient(ctx, cfg, logger)
}

// newCatalogStore builds the catalog store over the given source, attaching
// the redis cache when redis is configured.
func newCatalogStore(source service.CatalogSource, logger *slog.Logger) *catalog.Store {
	opts := []catalog.Option{}
	if addr := viper.GetString("redis.addr"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})
		cache := catalog.NewCache(client, viper.GetDuration("redis.catalog_ttl"), logger)
		opts = append(opts, catalog.WithCache(cache))
	}
	return catalog.NewStore(source, logger, opts...)
}

func newOrderLog() (*storage.OrderLog, error) {
	return storage.NewOrderLog(config.ExpandPath(viper.GetString("storage.order_log")))
}

// newOrderSink assembles the two-tier sink: Sheets primary when configured,
// sqlite fallback always.
func newOrderSink(primary service.OrderSink, orderLog *storage.OrderLog, logger *slog.Logger) service.OrderSink {
	sheetsCfg := sheetsConfigFromViper()
	retry := service.RetryOptions{
		MaxAttempts:  sheetsCfg.RetryAttempts,
		InitialDelay: sheetsCfg.RetryDelay,
	}
	return orders.NewTieredSink(primary, orderLog, retry, logger)
}
