package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ledger/internal/config"
	"ledger/internal/storage"
)

func TestLoadStatePrefersSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		SeedFile: filepath.Join(dir, "bank.json"),
		DataFile: filepath.Join(dir, "data.json"),
	}
	require.NoError(t, os.WriteFile(cfg.SeedFile,
		[]byte(`{"name":"Seed","accounts":[{"id":"a","credit_line":0,"balance":1}]}`), 0o644))

	seed, err := loadState(cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "Seed", seed.Name)

	snap := storage.Snapshot{Seed: storage.Seed{
		Name:     "Snap",
		Accounts: []storage.PersistAccount{{ID: "a", Balance: 7}},
	}}
	require.NoError(t, storage.SaveSnapshot(cfg.DataFile, snap))

	seed, err = loadState(cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "Snap", seed.Name)
	require.Equal(t, int64(7), seed.Accounts[0].Balance)
}

func TestLoadStateCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		SeedFile: filepath.Join(dir, "bank.json"),
		DataFile: filepath.Join(dir, "data.json"),
	}
	require.NoError(t, os.WriteFile(cfg.DataFile, []byte("{"), 0o644))
	_, err := loadState(cfg, zap.NewNop())
	require.Error(t, err)
}
