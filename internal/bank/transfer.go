package bank

import (
	"math"

	"go.uber.org/zap"
)

// Transfer 自 origin 轉出 amount 至 destination。
// 檢核依序為：金額 → 兩端帳戶存在 → 非同一帳戶 → 來源可動用額度 → 兩端餘額不溢位；
// 第一個失敗的檢核即回傳，且所有檢核都在任何變更之前完成，失敗時不改變任何帳戶。
func (l *Ledger) Transfer(originID, destinationID string, amount int64) error {
	err := l.checkTransfer(originID, destinationID, amount)
	if err != nil {
		l.log.Info("transfer rejected",
			zap.String("origin", originID),
			zap.String("destination", destinationID),
			zap.Int64("amount", amount),
			zap.Error(err))
		return err
	}

	from, _ := l.find(originID)
	to, _ := l.find(destinationID)
	from.SetBalance(from.Balance() - amount)
	to.SetBalance(to.Balance() + amount)

	l.log.Debug("transfer applied",
		zap.String("origin", originID),
		zap.String("destination", destinationID),
		zap.Int64("amount", amount),
		zap.Int64("origin_balance", from.Balance()),
		zap.Int64("destination_balance", to.Balance()))
	return nil
}

func (l *Ledger) checkTransfer(originID, destinationID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	from, ok1 := l.find(originID)
	to, ok2 := l.find(destinationID)
	if !ok1 || !ok2 {
		return ErrAccountNotFound
	}
	if originID == destinationID {
		return ErrSameAccount
	}
	if from.MaxCredit() < amount {
		return ErrCreditLimitExceeded
	}
	if from.balance < math.MinInt64+amount || to.balance > math.MaxInt64-amount {
		return ErrBalanceOverflow
	}
	return nil
}
