// internal/storage/jsonstore.go
//
// 提供初始定義檔 (Seed) 與 JSON 快照 (Snapshot) 的讀寫。
// 快照採「原子寫入」：先寫入 .tmp 檔，再以 rename() 取代原檔。
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"ledger/internal/bank"
)

const (
	storageKind   = "json_snapshot"
	schemaVersion = 1
)

var (
	ErrEmptyID = errors.New("account id is empty")
	// ErrSeedInvariant 代表定義檔中帳戶餘額低於 -credit_line。
	ErrSeedInvariant = errors.New("balance below credit line")
)

// Validate 檢查帳戶 ID 非空且唯一，且每個帳戶滿足 balance >= -credit_line。
// 重複 ID 回傳的錯誤滿足 errors.Is(err, bank.ErrDuplicateAccount)。
func (s Seed) Validate() error {
	seen := make(map[string]struct{}, len(s.Accounts))
	for i, a := range s.Accounts {
		if a.ID == "" {
			return fmt.Errorf("accounts[%d]: %w", i, ErrEmptyID)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("accounts[%d] %q: %w", i, a.ID, bank.ErrDuplicateAccount)
		}
		seen[a.ID] = struct{}{}
		if a.Balance < 0 && uint64(-a.Balance) > a.CreditLine {
			return fmt.Errorf("accounts[%d] %q: balance=%d credit_line=%d: %w",
				i, a.ID, a.Balance, a.CreditLine, ErrSeedInvariant)
		}
	}
	return nil
}

// LoadSeed 讀取並驗證初始定義檔。
func LoadSeed(path string) (Seed, error) {
	var seed Seed
	if err := decodeFile(path, &seed); err != nil {
		return seed, fmt.Errorf("load seed %s: %w", path, err)
	}
	if err := seed.Validate(); err != nil {
		return seed, fmt.Errorf("seed %s: %w", path, err)
	}
	return seed, nil
}

// LoadSnapshot 讀取指定路徑的 JSON 快照；檔案不存在時回傳的錯誤滿足 errors.Is(err, os.ErrNotExist)。
func LoadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	if err := decodeFile(path, &snap); err != nil {
		return snap, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return snap, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap, nil
}

// SaveSnapshot 將 Snapshot 序列化為 JSON 檔案，並採原子方式寫入。
// 流程：填入 Meta → 寫入 path+".tmp" → os.Rename() 取代正式檔案。
func SaveSnapshot(path string, snap Snapshot) error {
	snap.Meta.Storage = storageKind
	snap.Meta.Version = schemaVersion
	snap.Meta.SnapshotID = uuid.NewString()
	snap.Meta.Timestamp = time.Now()
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	// 任何一步失敗都移除暫存檔，原檔保持不變
	done := false
	defer func() {
		if !done {
			os.Remove(tmp)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	done = true
	return nil
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}
