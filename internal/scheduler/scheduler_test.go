package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ledger/internal/bank"
	"ledger/internal/service"
	"ledger/internal/storage"
)

type countingAccruer struct {
	calls atomic.Int64
	err   error
}

func (c *countingAccruer) Accrue() (bank.Accrual, error) {
	c.calls.Add(1)
	return bank.Accrual{Accounts: 1}, c.err
}

func TestNewInvalidSpec(t *testing.T) {
	_, err := New(&countingAccruer{}, "not a spec", nil)
	require.Error(t, err)
}

func TestTick(t *testing.T) {
	acc := &countingAccruer{}
	s, err := New(acc, "@daily", zap.NewNop())
	require.NoError(t, err)

	s.tick()
	s.tick()
	require.Equal(t, int64(2), acc.calls.Load())
	require.Equal(t, int64(2), s.Runs())

	// 保存失敗仍計為一次執行
	acc.err = errors.New("disk full")
	s.tick()
	require.Equal(t, int64(3), s.Runs())
}

// TestTickAccruesLedger 每次觸發都對實際 Ledger 計提一次。
func TestTickAccruesLedger(t *testing.T) {
	b, err := service.FromSeed(storage.Seed{
		Name:              "b",
		DebitInterestRate: 4,
		Accounts:          []storage.PersistAccount{{ID: "a", Balance: 100}},
	}, nil, nil)
	require.NoError(t, err)

	s, err := New(b, "@monthly", nil)
	require.NoError(t, err)
	s.tick()

	a, err := b.Account("a")
	require.NoError(t, err)
	require.Equal(t, int64(104), a.Balance)
}

func TestRunUntilCancelled(t *testing.T) {
	acc := &countingAccruer{}
	s, err := New(acc, "@every 1s", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.GreaterOrEqual(t, acc.calls.Load(), int64(1))
	require.Equal(t, acc.calls.Load(), s.Runs())
}
