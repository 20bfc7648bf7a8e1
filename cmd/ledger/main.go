// cmd/ledger/main.go

// ledger 為命令列工具：載入銀行定義（或上次的快照），執行單一命令後結束。
// 例如：ledger sheet、ledger transfer john jane 50、ledger accrue、ledger schedule @monthly。
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ledger/internal/cli"
	"ledger/internal/config"
	"ledger/internal/service"
	"ledger/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		return cli.ExitError
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		return cli.ExitError
	}
	defer logger.Sync()

	seed, err := loadState(cfg, logger)
	if err != nil {
		logger.Error("failed to load bank", zap.Error(err))
		return cli.ExitError
	}

	var persist service.PersistFunc
	if cfg.AutoSave {
		persist = func(s storage.Snapshot) error {
			return storage.SaveSnapshot(cfg.DataFile, s)
		}
	}
	b, err := service.FromSeed(seed, persist, logger)
	if err != nil {
		logger.Error("invalid bank definition", zap.Error(err))
		return cli.ExitError
	}

	// SIGINT/SIGTERM 取消 ctx，讓 schedule 命令在結束前完成進行中的計提
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return cli.New(b, os.Stdout, os.Stderr, logger).RunContext(ctx, args)
}

// loadState 優先載入上次的快照；快照不存在時改用初始定義檔。
func loadState(cfg config.Config, logger *zap.Logger) (storage.Seed, error) {
	snap, err := storage.LoadSnapshot(cfg.DataFile)
	if err == nil {
		logger.Debug("snapshot loaded",
			zap.String("file", cfg.DataFile),
			zap.String("snapshot_id", snap.Meta.SnapshotID))
		return snap.Seed, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return storage.Seed{}, err
	}
	logger.Debug("no snapshot, using seed", zap.String("file", cfg.SeedFile))
	return storage.LoadSeed(cfg.SeedFile)
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
