// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的結構模型。
// Seed 為建立 Ledger 的初始定義檔；Snapshot 為執行後的完整狀態，
// 兩者共用相同的帳戶格式，Snapshot 另外附帶中繼資訊 (Meta)。
package storage

import "time"

// Meta 為所有持久化快照的中繼資料 (metadata)。
type Meta struct {
	Storage    string    `json:"storage"`        // 儲存類型，例如 "json_snapshot"
	Version    int       `json:"version"`        // 結構版本號
	SnapshotID string    `json:"snapshot_id"`    // 每次寫入產生的唯一 ID
	Timestamp  time.Time `json:"timestamp"`      // 快照建立時間
	Note       string    `json:"note,omitempty"` // 備註欄
}

// PersistAccount 為帳戶在儲存層的序列化格式。
type PersistAccount struct {
	ID         string `json:"id"`
	CreditLine uint64 `json:"credit_line"`
	Balance    int64  `json:"balance"` // 以最小貨幣單位儲存
}

// Seed 為銀行的初始定義：名稱、利率與帳戶清單（順序即 Ledger 的插入順序）。
type Seed struct {
	Name               string           `json:"name"`
	DebitInterestRate  uint64           `json:"debit_interest_rate"`
	CreditInterestRate uint64           `json:"credit_interest_rate"`
	Accounts           []PersistAccount `json:"accounts"`
}

// Snapshot 為 Ledger 狀態的完整快照。
type Snapshot struct {
	Meta Meta `json:"_meta"`
	Seed
}
