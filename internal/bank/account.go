// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account：帳戶識別、餘額與信用額度，不含任何 I/O 或儲存細節。

package bank

import "github.com/shopspring/decimal"

// Account represents a ledger entry with a balance and a credit line.
//
// Balance 為有號整數：正值代表存入資金，負值代表動用信用額度。
// 靜止狀態下須滿足 Balance >= -CreditLine；SetBalance 不做夾限，由呼叫端（Ledger）維持。
type Account struct {
	id         string
	creditLine uint64
	balance    int64
}

// NewAccount 建立帳戶，不做任何驗證。
func NewAccount(id string, creditLine uint64, balance int64) *Account {
	return &Account{id: id, creditLine: creditLine, balance: balance}
}

// ID 回傳建立時指定的識別碼，之後不可變更。
func (a *Account) ID() string { return a.id }

func (a *Account) CreditLine() uint64 { return a.creditLine }

func (a *Account) Balance() int64 { return a.balance }

func (a *Account) SetBalance(v int64) { a.balance = v }

// MaxCredit 回傳 balance + creditLine，即超出信用額度前可動用的總額。
// 不變式成立時恆 >= 0；超過 int64 上限時回傳 math.MaxInt64。
func (a *Account) MaxCredit() int64 {
	return clampInt64(decimal.NewFromInt(a.balance).Add(fromUint64(a.creditLine)))
}
