package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/keyed"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

// Payment pairs a transaction with the processor that handles it.
type Payment struct {
	Transaction model.Transaction
	Processor   Processor
}

type service struct {
	ledger  *keyed.Repository[model.Transaction]
	account Applier
	out     *console.Printer
}

func NewFinanceService(account Applier, out *console.Printer) *service {
	return &service{
		ledger:  keyed.New[model.Transaction](),
		account: account,
		out:     out,
	}
}

func (s *service) Ledger() []model.Transaction { return s.ledger.All() }

// Record adds the transaction to the ledger, processes it and applies it to
// the account. A rejected application is reported but the transaction stays
// recorded.
func (s *service) Record(ctx context.Context, p Payment) (Receipt, error) {
	const op = "finance.Record"

	log := logger.With(logger.Int("transaction_id", p.Transaction.ID))

	if err := s.ledger.Add(p.Transaction); err != nil {
		log.Warn(ctx, "ledger rejected transaction", logger.ErrorF(err))
		return Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	receipt, err := p.Processor.Process(ctx, p.Transaction)
	if err != nil {
		log.Error(ctx, "processor failed", logger.ErrorF(err))
		return Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.account.Apply(p.Transaction); err != nil {
		log.Warn(ctx, "account rejected transaction", logger.ErrorF(err))
		return receipt, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug(ctx, "transaction applied", logger.String("reference", receipt.Reference.String()))
	return receipt, nil
}

func DemoPayments(today time.Time, out *console.Printer) []Payment {
	return []Payment{
		{model.Transaction{ID: 1, Date: today, AmountCents: 12000, Category: "Groceries"}, NewMobileMoneyProcessor(out)},
		{model.Transaction{ID: 2, Date: today, AmountCents: 30000, Category: "Utilities"}, NewBankTransferProcessor(out)},
		{model.Transaction{ID: 3, Date: today, AmountCents: 70000, Category: "Entertainment"}, NewCryptoWalletProcessor(out)},
	}
}

func (s *service) Run(ctx context.Context, payments []Payment) error {
	s.out.Heading("Transactions")
	for _, p := range payments {
		if _, err := s.Record(ctx, p); err != nil {
			s.out.Caught(err)
		}
	}

	s.out.Line("Total transactions recorded: %d", s.ledger.Len())
	s.out.Line("Final balance: %s", model.FormatCents(s.account.Balance()))
	return nil
}
