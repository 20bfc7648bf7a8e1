// internal/service/bank.go

// Package service 以單一互斥鎖包裝 bank.Ledger，讓多個 goroutine 可安全共用同一個 Ledger。
// Ledger 的轉帳為「先檢核再變更」，本層把每次呼叫放進同一個臨界區，
// 並在每次成功變更後呼叫 persist 回呼保存快照。
package service

import (
	"errors"
	"fmt"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/zap"

	"ledger/internal/bank"
	"ledger/internal/storage"
)

// ErrNotPersisted 代表變更已套用到記憶體中的 Ledger，但快照保存失敗。
// 回傳的錯誤同時包裝 persist 的原始錯誤；呼叫端不應假設變更已回滾。
var ErrNotPersisted = errors.New("change applied but not persisted")

// PersistFunc 在每次成功變更後以最新快照呼叫；nil 代表不保存。
type PersistFunc func(storage.Snapshot) error

type Bank struct {
	mu      deadlock.Mutex
	ledger  *bank.Ledger
	persist PersistFunc
	log     *zap.Logger
}

// New 包裝既有的 Ledger。
func New(l *bank.Ledger, persist PersistFunc, logger *zap.Logger) *Bank {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bank{ledger: l, persist: persist, log: logger}
}

// FromSeed 由初始定義（或快照內容）建立 Ledger 並包裝。
func FromSeed(seed storage.Seed, persist PersistFunc, logger *zap.Logger) (*Bank, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	accts := make([]*bank.Account, 0, len(seed.Accounts))
	for _, a := range seed.Accounts {
		accts = append(accts, bank.NewAccount(a.ID, a.CreditLine, a.Balance))
	}
	l := bank.NewLedger(seed.Name, accts, seed.DebitInterestRate, seed.CreditInterestRate,
		bank.WithLogger(logger.Named("ledger")))
	return New(l, persist, logger), nil
}

// AccountView 為帳戶對外呈現的唯讀資料。
type AccountView struct {
	ID         string `json:"id"`
	CreditLine uint64 `json:"credit_line"`
	Balance    int64  `json:"balance"`
	MaxCredit  int64  `json:"max_credit"`
}

func view(a bank.Account) AccountView {
	return AccountView{ID: a.ID(), CreditLine: a.CreditLine(), Balance: a.Balance(), MaxCredit: a.MaxCredit()}
}

func (b *Bank) Name() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.Name()
}

func (b *Bank) Sheet() bank.Sheet {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.BalanceSheet()
}

// Account 依 ID 查詢；不存在時回傳 bank.ErrAccountNotFound。
func (b *Bank) Account(id string) (AccountView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.ledger.FindAccount(id)
	if !ok {
		return AccountView{}, bank.ErrAccountNotFound
	}
	return view(a), nil
}

func (b *Bank) Accounts() []AccountView {
	b.mu.Lock()
	defer b.mu.Unlock()
	all := b.ledger.Accounts()
	out := make([]AccountView, 0, len(all))
	for _, a := range all {
		out = append(out, view(a))
	}
	return out
}

// Open 新增帳戶並保存；驗證失敗時回傳 bank.ErrEmptyID、bank.ErrBelowCreditLine
// 或 bank.ErrDuplicateAccount。保存失敗時帳戶仍已加入，錯誤滿足 errors.Is(err, ErrNotPersisted)。
func (b *Bank) Open(id string, creditLine uint64, balance int64) (AccountView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := bank.NewAccount(id, creditLine, balance)
	if err := b.ledger.Open(a); err != nil {
		return AccountView{}, err
	}
	return view(*a), b.save()
}

// Transfer 於臨界區內完成檢核與變更；檢核失敗時回傳 bank 的領域錯誤且不變更任何帳戶。
// 保存失敗時轉帳已生效，錯誤滿足 errors.Is(err, ErrNotPersisted)。
func (b *Bank) Transfer(from, to string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.ledger.Transfer(from, to, amount); err != nil {
		return err
	}
	return b.save()
}

// Accrue 計提一次利息並保存；保存失敗時計提已生效，錯誤滿足 errors.Is(err, ErrNotPersisted)。
func (b *Bank) Accrue() (bank.Accrual, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.ledger.AccrueInterest()
	return r, b.save()
}

// Snapshot 匯出目前狀態，帳戶順序與 Ledger 插入順序一致。
func (b *Bank) Snapshot() storage.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *Bank) snapshot() storage.Snapshot {
	rates := b.ledger.Rates()
	s := storage.Snapshot{
		Seed: storage.Seed{
			Name:               b.ledger.Name(),
			DebitInterestRate:  rates.Debit,
			CreditInterestRate: rates.Credit,
		},
	}
	for _, a := range b.ledger.Accounts() {
		s.Accounts = append(s.Accounts, storage.PersistAccount{
			ID: a.ID(), CreditLine: a.CreditLine(), Balance: a.Balance(),
		})
	}
	return s
}

// save 需在持有 mu 時呼叫。
func (b *Bank) save() error {
	if b.persist == nil {
		return nil
	}
	if err := b.persist(b.snapshot()); err != nil {
		b.log.Error("persist failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}
