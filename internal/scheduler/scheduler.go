// internal/scheduler/scheduler.go

// Package scheduler 依 cron 排程週期性地對 Ledger 計提利息。
// 每次觸發都經由 service.Bank 進入同一把鎖，與轉帳互不交錯。
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ledger/internal/bank"
)

// Accruer 為排程所需的最小介面；*service.Bank 即滿足。
type Accruer interface {
	Accrue() (bank.Accrual, error)
}

type Scheduler struct {
	cron *cron.Cron
	svc  Accruer
	log  *zap.Logger
	runs atomic.Int64
}

// New 以標準五欄 cron 表示式或描述子（@daily、@every 1h 等）建立排程。
// 前一次計提尚未結束時跳過本次觸發。
func New(svc Accruer, spec string, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger.Named("cron").Sugar()}
	s := &Scheduler{
		svc: svc,
		log: logger,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.SkipIfStillRunning(cl)),
		),
	}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("cron spec %q: %w", spec, err)
	}
	return s, nil
}

// Run 啟動排程並阻塞至 ctx 取消，返回前等待進行中的計提完成。
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
}

// Runs 回傳已執行的計提次數（含保存失敗者）。
func (s *Scheduler) Runs() int64 { return s.runs.Load() }

func (s *Scheduler) tick() {
	s.runs.Add(1)
	r, err := s.svc.Accrue()
	if err != nil {
		s.log.Error("scheduled accrual failed", zap.Error(err))
		return
	}
	s.log.Info("scheduled accrual",
		zap.Int64("debit_interest", r.DebitInterest),
		zap.Uint64("credit_interest", r.CreditInterest))
}

// cronLogger 將 cron 的日誌轉接到 zap。
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
