// internal/cli/handler.go
//
// 各命令的處理函式。成功變更後的快照保存由 service.Bank 的 persist 回呼負責。
package cli

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"ledger/internal/bank"
	"ledger/internal/scheduler"
)

func (c *CLI) sheet(_ []string) error {
	return c.writeJSON(struct {
		Name string `json:"name"`
		bank.Sheet
	}{Name: c.svc.Name(), Sheet: c.svc.Sheet()})
}

func (c *CLI) accounts(_ []string) error {
	return c.writeJSON(c.svc.Accounts())
}

func (c *CLI) show(args []string) error {
	a, err := c.svc.Account(args[0])
	if err != nil {
		return err
	}
	return c.writeJSON(a)
}

func (c *CLI) open(args []string) error {
	line, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: credit_line: %v", errUsage, err)
	}
	bal, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: balance: %v", errUsage, err)
	}
	a, err := c.svc.Open(args[0], line, bal)
	if err != nil {
		return err
	}
	c.log.Info("account opened", zap.String("account", a.ID))
	return c.writeJSON(a)
}

// transfer：金額解析失敗視為用法錯誤；其餘失敗原因沿用 bank 的領域錯誤。
func (c *CLI) transfer(args []string) error {
	from, to := args[0], args[1]
	amt, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: amount: %v", errUsage, err)
	}
	if err := c.svc.Transfer(from, to, amt); err != nil {
		return err
	}
	fa, _ := c.svc.Account(from)
	ta, _ := c.svc.Account(to)
	return c.writeJSON(map[string]any{
		"status": "ok",
		"amount": amt,
		"from":   fa,
		"to":     ta,
	})
}

func (c *CLI) accrue(_ []string) error {
	r, err := c.svc.Accrue()
	if err != nil {
		return err
	}
	return c.writeJSON(map[string]any{
		"accrual": r,
		"sheet":   c.svc.Sheet(),
	})
}

// schedule 依 cron 排程重複計提利息，直到 ctx 取消。
func (c *CLI) schedule(args []string) error {
	s, err := scheduler.New(c.svc, args[0], c.log)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	c.log.Info("accrual scheduled", zap.String("spec", args[0]))
	s.Run(c.ctx)
	return c.writeJSON(map[string]any{
		"status": "stopped",
		"runs":   s.Runs(),
		"sheet":  c.svc.Sheet(),
	})
}
