// internal/cli/response.go
//
// 統一輸出格式：成功結果為縮排 JSON 寫到 stdout；錯誤為純文字寫到 stderr，
// 並依錯誤類型決定結束碼。
package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ledger/internal/bank"
	"ledger/internal/storage"
)

const (
	ExitOK       = 0
	ExitError    = 1 // 非預期錯誤（例如快照寫入失敗）
	ExitUsage    = 2 // 參數錯誤或金額非法
	ExitNotFound = 3
	ExitRejected = 4 // 額度不足、同帳戶轉帳或餘額溢位
)

var errUsage = errors.New("usage")

func (c *CLI) writeJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitCode 將錯誤對應為結束碼。
func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrDuplicateAccount),
		errors.Is(err, bank.ErrEmptyID),
		errors.Is(err, bank.ErrBelowCreditLine),
		errors.Is(err, storage.ErrEmptyID),
		errors.Is(err, storage.ErrSeedInvariant):
		return ExitUsage
	case errors.Is(err, bank.ErrAccountNotFound):
		return ExitNotFound
	case errors.Is(err, bank.ErrCreditLimitExceeded),
		errors.Is(err, bank.ErrSameAccount),
		errors.Is(err, bank.ErrBalanceOverflow):
		return ExitRejected
	default:
		return ExitError
	}
}

func (c *CLI) fail(err error) int {
	code := exitCode(err)
	if code == ExitError {
		c.log.Error("command failed", zap.Error(err))
	}
	fmt.Fprintf(c.errOut, "error: %v\n", err)
	return code
}
