package game

import "errors"

// Operation errors. All are recoverable: they abort the single triggering
// operation and leave prior state unchanged.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrNoCargo           = errors.New("no packages to load")
	ErrPreconditionUnmet = errors.New("precondition unmet")
	ErrNoOutstandingLoan = errors.New("no outstanding loan")
)
