package game

import (
	"fmt"
	"math"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// TakeLoan borrows amount: cash and loan both grow by it. Interest accrues
// at the next settlement.
func (g *Game) TakeLoan(amount float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if amount <= 0 {
		return fmt.Errorf("loan amount must be positive, got %.2f", amount)
	}
	g.state.Loan += amount
	g.state.Cash += amount
	g.notify(model.NoticeInfo, fmt.Sprintf("Borrowed $%.0f", amount))
	g.log.Infof("loan taken: %.2f (balance %.2f)", amount, g.state.Loan)
	return nil
}

// RepayLoan pays down the loan with whatever cash is available, up to the
// outstanding balance, and returns the amount repaid.
func (g *Game) RepayLoan() (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Loan <= 0 {
		return 0, ErrNoOutstandingLoan
	}
	repay := math.Min(g.state.Cash, g.state.Loan)
	if repay <= 0 {
		return 0, fmt.Errorf("%w: no cash available for repayment", ErrInsufficientFunds)
	}
	g.state.Cash -= repay
	g.state.Loan -= repay
	g.notify(model.NoticeSuccess, fmt.Sprintf("Repaid $%.0f of the loan", repay))
	g.log.Infof("loan repaid: %.2f (balance %.2f)", repay, g.state.Loan)
	return repay, nil
}
