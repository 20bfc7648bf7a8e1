// internal/storage/jsonstore_test.go
//
// 驗證初始定義檔的驗證規則，以及 JSON 快照寫入後能完整讀回。
// 使用 t.TempDir() 確保測試不汙染本機環境。
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ledger/internal/bank"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeFile(t, "bank.json", `{
  "name": "First Bank",
  "debit_interest_rate": 4,
  "credit_interest_rate": 1,
  "accounts": [
    {"id": "john", "credit_line": 100, "balance": 1},
    {"id": "jane", "credit_line": 1, "balance": 90}
  ]
}`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Equal(t, "First Bank", seed.Name)
	require.Equal(t, uint64(4), seed.DebitInterestRate)
	require.Equal(t, uint64(1), seed.CreditInterestRate)
	require.Equal(t, []PersistAccount{
		{ID: "john", CreditLine: 100, Balance: 1},
		{ID: "jane", CreditLine: 1, Balance: 90},
	}, seed.Accounts)
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestSeedValidate(t *testing.T) {
	tests := []struct {
		name     string
		accounts []PersistAccount
		want     error
	}{
		{"ok", []PersistAccount{{ID: "a", CreditLine: 5, Balance: -5}}, nil},
		{"empty id", []PersistAccount{{ID: ""}}, ErrEmptyID},
		{"duplicate", []PersistAccount{{ID: "a"}, {ID: "a"}}, bank.ErrDuplicateAccount},
		{"below credit line", []PersistAccount{{ID: "a", CreditLine: 5, Balance: -6}}, ErrSeedInvariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Seed{Name: "b", Accounts: tt.accounts}.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

// TestJSONSnapshotRoundTrip 驗證快照寫入後讀回內容一致，且 Meta 由 SaveSnapshot 填入。
func TestJSONSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	orig := Snapshot{
		Meta: Meta{Note: "test"},
		Seed: Seed{
			Name:               "First Bank",
			DebitInterestRate:  4,
			CreditInterestRate: 1,
			Accounts: []PersistAccount{
				{ID: "1", CreditLine: 10, Balance: -3},
				{ID: "2", CreditLine: 0, Balance: 200},
			},
		},
	}
	require.NoError(t, SaveSnapshot(path, orig))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "tmp file should be renamed away")

	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, orig.Seed, loaded.Seed)
	require.Equal(t, "json_snapshot", loaded.Meta.Storage)
	require.Equal(t, 1, loaded.Meta.Version)
	require.Equal(t, "test", loaded.Meta.Note)
	require.NotEmpty(t, loaded.Meta.SnapshotID)
	require.False(t, loaded.Meta.Timestamp.IsZero())

	// 每次寫入產生新的 SnapshotID
	require.NoError(t, SaveSnapshot(path, orig))
	again, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.NotEqual(t, loaded.Meta.SnapshotID, again.Meta.SnapshotID)
}

// TestSaveSnapshotFailureLeavesNoTmp 寫入失敗時不得留下 .tmp 檔，也不得覆蓋既有快照。
func TestSaveSnapshotFailureLeavesNoTmp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, SaveSnapshot(path, Snapshot{Seed: Seed{Name: "keep"}}))

	// 目標路徑為非空目錄時 rename 失敗
	bad := filepath.Join(dir, "occupied")
	require.NoError(t, os.MkdirAll(filepath.Join(bad, "child"), 0o755))
	require.Error(t, SaveSnapshot(bad, Snapshot{Seed: Seed{Name: "x"}}))

	// 暫存檔所在目錄不存在時 create 失敗
	require.Error(t, SaveSnapshot(filepath.Join(dir, "missing", "data.json"), Snapshot{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotEqual(t, ".tmp", filepath.Ext(e.Name()), "leftover %s", e.Name())
	}
	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, "keep", loaded.Name)
}
