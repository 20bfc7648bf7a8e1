// internal/cli/cli.go
//
// Package cli 提供命令列介面，作為 service 層的應用層。
// 每個命令僅負責：解析參數 → 呼叫 service.Bank → 以 JSON 輸出結果。
// 錯誤一律寫到 stderr，並轉換為對應的結束碼（見 response.go）。
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"ledger/internal/service"
)

// CLI 綁定一個 service.Bank 與輸出目的地。
type CLI struct {
	svc    *service.Bank
	ctx    context.Context
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
}

func New(b *service.Bank, out, errOut io.Writer, logger *zap.Logger) *CLI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLI{svc: b, ctx: context.Background(), out: out, errOut: errOut, log: logger}
}

type command struct {
	usage string
	nargs int
	run   func(c *CLI, args []string) error
}

// commands 為命令表：名稱 → 參數個數與處理函式。
var commands = map[string]command{
	"sheet":    {usage: "sheet", run: (*CLI).sheet},
	"accounts": {usage: "accounts", run: (*CLI).accounts},
	"show":     {usage: "show <id>", nargs: 1, run: (*CLI).show},
	"open":     {usage: "open <id> <credit_line> <balance>", nargs: 3, run: (*CLI).open},
	"transfer": {usage: "transfer <from> <to> <amount>", nargs: 3, run: (*CLI).transfer},
	"accrue":   {usage: "accrue", run: (*CLI).accrue},
	"schedule": {usage: "schedule <cron-spec>", nargs: 1, run: (*CLI).schedule},
}

// RunContext 同 Run；ctx 取消時長時間執行的命令（schedule）結束。
func (c *CLI) RunContext(ctx context.Context, args []string) int {
	c.ctx = ctx
	return c.Run(args)
}

// Run 執行單一命令並回傳結束碼。
func (c *CLI) Run(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		c.usage()
		if len(args) == 0 {
			return ExitUsage
		}
		return ExitOK
	}
	cmd, ok := commands[args[0]]
	if !ok {
		c.usage()
		return c.fail(fmt.Errorf("%w: unknown command %q", errUsage, args[0]))
	}
	if len(args)-1 != cmd.nargs {
		return c.fail(fmt.Errorf("%w: %s", errUsage, cmd.usage))
	}
	if err := cmd.run(c, args[1:]); err != nil {
		return c.fail(err)
	}
	return ExitOK
}

func (c *CLI) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.errOut, "usage: ledger <command> [args]")
	for _, name := range names {
		fmt.Fprintf(c.errOut, "  %s\n", commands[name].usage)
	}
}
