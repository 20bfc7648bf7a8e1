// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 轉帳失敗一律回傳下列其中之一，呼叫端以 errors.Is 判斷原因；
// 命令列層 (internal/cli) 再將其轉換成對應的結束碼。

package bank

import "errors"

var (
	// ErrInvalidAmount 代表轉帳金額 <= 0。
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrAccountNotFound 代表來源或目標帳戶不存在。
	ErrAccountNotFound = errors.New("account not found")

	// ErrCreditLimitExceeded 代表來源帳戶可動用額度 (MaxCredit) 小於轉帳金額。
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")

	// ErrSameAccount 代表轉帳來源與目標帳戶相同。
	ErrSameAccount = errors.New("origin and destination are the same account")

	// ErrBalanceOverflow 代表轉帳後任一方餘額會超出 int64 範圍。
	ErrBalanceOverflow = errors.New("balance would overflow")

	// ErrEmptyID 代表帳戶識別碼為空字串。
	ErrEmptyID = errors.New("account id is empty")

	// ErrBelowCreditLine 代表開戶餘額低於 -creditLine。
	ErrBelowCreditLine = errors.New("balance below credit line")

	// ErrDuplicateAccount 代表帳戶識別碼已存在於此 Ledger。
	ErrDuplicateAccount = errors.New("duplicate account id")
)
