package service

import (
	"fmt"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
)

type Applier interface {
	Apply(t model.Transaction) error
	Balance() int64
}

// Account deducts every transaction; its balance may go negative.
type Account struct {
	Number  string
	balance int64
	out     *console.Printer
}

func NewAccount(number string, initialCents int64, out *console.Printer) *Account {
	return &Account{Number: number, balance: initialCents, out: out}
}

func (a *Account) Balance() int64 { return a.balance }

func (a *Account) Apply(t model.Transaction) error {
	a.balance -= t.AmountCents
	a.out.Line("[Account] Applied %s. New balance: %s", model.FormatCents(t.AmountCents), model.FormatCents(a.balance))
	return nil
}

// SavingsAccount refuses transactions larger than the current balance.
type SavingsAccount struct {
	Account
}

func NewSavingsAccount(number string, initialCents int64, out *console.Printer) *SavingsAccount {
	return &SavingsAccount{Account: Account{Number: number, balance: initialCents, out: out}}
}

func (s *SavingsAccount) Apply(t model.Transaction) error {
	if t.AmountCents > s.balance {
		return fmt.Errorf("%w: transaction #%d needs %s, balance is %s",
			model.ErrInsufficientFunds, t.ID, model.FormatCents(t.AmountCents), model.FormatCents(s.balance))
	}
	s.balance -= t.AmountCents
	s.out.Line("[SavingsAccount] Deducted %s. Updated balance: %s", model.FormatCents(t.AmountCents), model.FormatCents(s.balance))
	return nil
}
