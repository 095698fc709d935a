package usecase

import (
	"context"

	"taller_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ToggleTaxCommand struct {
	OrderID string
	WriteOptions
}

// Recompute derives the order total from the current lines and persists it
// when it changed. Calling it again without a ledger change writes nothing.
func (u *WorkOrderUseCase) Recompute(ctx context.Context, orderID string) (LedgerResult, error) {
	return u.run(ctx, mutation{
		op:        "recompute",
		orderID:   orderID,
		loadLines: true,
		build: func(s ledgerState) (ledgerChange, error) {
			for _, l := range s.lines {
				if err := checkLine(l); err != nil {
					return ledgerChange{}, err
				}
			}
			if u.orderTotal(s.lines, s.order.TaxIncluded) == s.order.Total {
				return ledgerChange{noop: true}, nil
			}
			return ledgerChange{order: s.order}, nil
		},
	})
}

// ToggleTax flips tax_included and recomputes in the same commit. Line prices
// are always tax exclusive; this is the only place tax is applied.
func (u *WorkOrderUseCase) ToggleTax(ctx context.Context, cmd ToggleTaxCommand) (LedgerResult, error) {
	return u.run(ctx, mutation{
		op:              "toggle_tax",
		orderID:         cmd.OrderID,
		opts:            cmd.WriteOptions,
		pinsOrder:       true,
		loadLines:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			for _, l := range s.lines {
				if err := checkLine(l); err != nil {
					return ledgerChange{}, err
				}
			}
			order := s.order
			order.TaxIncluded = !order.TaxIncluded
			return ledgerChange{order: order}, nil
		},
	})
}

// orderTotal is round(sum(line_total) * (1 + rate)) with tax, the plain sum
// without. Rounding is half away from zero to whole currency units.
func (u *WorkOrderUseCase) orderTotal(lines []entities.ChargeLine, taxIncluded bool) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.LineTotal
	}
	if !taxIncluded {
		return sum
	}
	factor := decimal.NewFromInt(1).Add(u.taxRate)
	return decimal.NewFromInt(sum).Mul(factor).Round(0).IntPart()
}
