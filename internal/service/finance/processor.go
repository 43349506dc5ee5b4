package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
)

// Receipt is what a processor hands back for a transaction it accepted.
type Receipt struct {
	Reference   uuid.UUID
	Channel     string
	Transaction model.Transaction
}

type Processor interface {
	Process(ctx context.Context, t model.Transaction) (Receipt, error)
}

type channelProcessor struct {
	channel string
	out     *console.Printer
	newID   func() uuid.UUID
}

func (p channelProcessor) Process(_ context.Context, t model.Transaction) (Receipt, error) {
	r := Receipt{Reference: p.newID(), Channel: p.channel, Transaction: t}
	p.out.Line("[%s] Processing %s for '%s' on %s (ref %s)",
		p.channel, model.FormatCents(t.AmountCents), t.Category, t.Date.Format(model.DateLayout), r.Reference)
	return r, nil
}

func NewBankTransferProcessor(out *console.Printer) Processor {
	return channelProcessor{channel: "BankTransfer", out: out, newID: uuid.New}
}

func NewMobileMoneyProcessor(out *console.Printer) Processor {
	return channelProcessor{channel: "MobileMoney", out: out, newID: uuid.New}
}

func NewCryptoWalletProcessor(out *console.Printer) Processor {
	return channelProcessor{channel: "Crypto", out: out, newID: uuid.New}
}
