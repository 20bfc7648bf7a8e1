// internal/bank/bank.go

// Package bank 定義核心商業邏輯：帳戶查詢、資產負債表、轉帳與利息計提。
// Ledger 為純記憶體、單一 goroutine 使用的資料結構；需要並行存取時，
// 由呼叫端（見 internal/service）以單一互斥鎖序列化所有呼叫。
// 金額以 int64 的最小貨幣單位儲存，避免浮點誤差。
package bank

import "go.uber.org/zap"

// Ledger 為聚合根 (Aggregate Root)：依插入順序持有帳戶，並保存全行的存款／信用利率。
// - accounts：有序切片，查詢為線性掃描，重複 ID 時以第一筆為準。
// - debitRate / creditRate：每次計提套用的百分比。
type Ledger struct {
	name       string
	accounts   []*Account
	debitRate  uint64
	creditRate uint64
	log        *zap.Logger
}

// Rates 為全行利率（百分比）。
type Rates struct {
	Debit  uint64 `json:"debit_interest_rate"`
	Credit uint64 `json:"credit_interest_rate"`
}

// Sheet 為資產負債表彙總。
// Assets 為所有餘額總和（可能為負）；Liabilities 為所有信用額度總和，即銀行最大曝險。
type Sheet struct {
	Assets      int64  `json:"total_assets"`
	Liabilities uint64 `json:"total_liabilities"`
}

type Option func(*Ledger)

// WithLogger 指定 Ledger 使用的 logger；未指定時不輸出。
func WithLogger(l *zap.Logger) Option {
	return func(lg *Ledger) {
		if l != nil {
			lg.log = l
		}
	}
}

// NewLedger 以初始帳戶與利率建立 Ledger。
// 不檢查 ID 是否唯一（重複時查詢以第一筆為準）；需要檢查請改用 Open 逐筆加入。
func NewLedger(name string, accounts []*Account, debitRate, creditRate uint64, opts ...Option) *Ledger {
	l := &Ledger{
		name:       name,
		accounts:   append([]*Account(nil), accounts...),
		debitRate:  debitRate,
		creditRate: creditRate,
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Ledger) Name() string { return l.name }

func (l *Ledger) Rates() Rates {
	return Rates{Debit: l.debitRate, Credit: l.creditRate}
}

// Open 於尾端加入帳戶。ID 為空回傳 ErrEmptyID，餘額低於 -creditLine 回傳
// ErrBelowCreditLine，ID 已存在回傳 ErrDuplicateAccount；失敗時不變更任何狀態。
func (l *Ledger) Open(a *Account) error {
	if a.ID() == "" {
		return ErrEmptyID
	}
	if a.MaxCredit() < 0 {
		return ErrBelowCreditLine
	}
	if _, ok := l.find(a.ID()); ok {
		return ErrDuplicateAccount
	}
	l.accounts = append(l.accounts, a)
	l.log.Debug("account opened",
		zap.String("account", a.ID()),
		zap.Uint64("credit_line", a.CreditLine()),
		zap.Int64("balance", a.Balance()))
	return nil
}

// find 線性掃描，回傳第一個 ID 相符的內部指標。
func (l *Ledger) find(id string) (*Account, bool) {
	for _, a := range l.accounts {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// FindAccount 依 ID 查詢帳戶；回傳值拷貝，呼叫端無法藉此改寫內部狀態。
func (l *Ledger) FindAccount(id string) (Account, bool) {
	a, ok := l.find(id)
	if !ok {
		return Account{}, false
	}
	return *a, true
}

// Accounts 依插入順序回傳所有帳戶的值拷貝。
func (l *Ledger) Accounts() []Account {
	out := make([]Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}
	return out
}

// BalanceSheet 彙總所有帳戶；純讀取，不會失敗。
func (l *Ledger) BalanceSheet() Sheet {
	var s Sheet
	for _, a := range l.accounts {
		s.Assets += a.balance
		s.Liabilities += a.creditLine
	}
	return s
}
