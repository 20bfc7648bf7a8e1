// internal/config/config.go
//
// 由環境變數（可選 .env）載入執行設定。
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	SeedFile string // 初始定義檔，快照不存在時使用
	DataFile string // 快照檔
	LogLevel string // "debug" | "info"
	AutoSave bool   // 每次成功變更後寫入快照
}

// Load 先嘗試載入 envFiles（未指定時為 .env；檔案不存在不視為錯誤），再讀取環境變數。
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	autoSave, err := getEnvBool("LEDGER_AUTOSAVE", true)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		SeedFile: getEnv("LEDGER_SEED_FILE", "bank.json"),
		DataFile: getEnv("LEDGER_DATA_FILE", "data.json"),
		LogLevel: getEnv("LEDGER_LOG_LEVEL", "info"),
		AutoSave: autoSave,
	}
	switch cfg.LogLevel {
	case "debug", "info":
	default:
		return Config{}, fmt.Errorf("LEDGER_LOG_LEVEL: unsupported level %q", cfg.LogLevel)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
