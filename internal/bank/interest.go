package bank

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Accrual 為一次利息計提的彙總結果；合計超出型別上限時以上限表示。
type Accrual struct {
	DebitInterest  int64  `json:"debit_interest"`
	CreditInterest uint64 `json:"credit_interest"`
	Accounts       int    `json:"accounts"`
}

// AccrueInterest 對每個帳戶計提一次利息，恆成功：
//   - 信用額度：creditLine += floor(creditLine * creditRate / 100)
//   - 餘額：balance += floor(balance * debitRate / 100)，僅限 balance >= 0
//
// 負餘額不計存款利息，因此計提後餘額與信用額度皆不會減少，
// 也不會讓帳戶跌破 -creditLine。結果超出 int64 / uint64 時夾限於上限。
func (l *Ledger) AccrueInterest() Accrual {
	debitTotal, creditTotal := decimal.Zero, decimal.Zero
	for _, a := range l.accounts {
		if a.balance > 0 {
			cur := decimal.NewFromInt(a.balance)
			next := clampInt64(cur.Add(percentOf(cur, l.debitRate)))
			debitTotal = debitTotal.Add(decimal.NewFromInt(next).Sub(cur))
			a.balance = next
		}
		if a.creditLine > 0 {
			cur := fromUint64(a.creditLine)
			next := clampUint64(cur.Add(percentOf(cur, l.creditRate)))
			creditTotal = creditTotal.Add(fromUint64(next).Sub(cur))
			a.creditLine = next
		}
	}
	r := Accrual{
		DebitInterest:  clampInt64(debitTotal),
		CreditInterest: clampUint64(creditTotal),
		Accounts:       len(l.accounts),
	}
	l.log.Info("interest accrued",
		zap.Int("accounts", r.Accounts),
		zap.Uint64("debit_rate", l.debitRate),
		zap.Uint64("credit_rate", l.creditRate),
		zap.Int64("debit_interest", r.DebitInterest),
		zap.Uint64("credit_interest", r.CreditInterest))
	return r
}

// percentOf 回傳 v * rate / 100，向零截斷。
func percentOf(v decimal.Decimal, rate uint64) decimal.Decimal {
	return v.Mul(fromUint64(rate)).Div(hundred).Truncate(0)
}
