package pos

import (
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/shopspring/decimal"
)

// SalesTotals is the payment-method split plus per-item-category totals for
// a window of receipts.
type SalesTotals struct {
	Cash       decimal.Decimal            `json:"cash"`
	Gcash      decimal.Decimal            `json:"gcash"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	Receipts   int                        `json:"receipts"`
}

// SumReceipts folds receipts into cash/GCash expected figures. Unknown
// payment types count as cash, matching how the register treats them.
func SumReceipts(receipts []Receipt) SalesTotals {
	totals := SalesTotals{
		ByCategory: map[string]decimal.Decimal{},
		Receipts:   len(receipts),
	}
	for _, r := range receipts {
		for _, p := range r.Payments {
			if p.Type == PaymentGcash {
				totals.Gcash = totals.Gcash.Add(p.Amount)
			} else {
				totals.Cash = totals.Cash.Add(p.Amount)
			}
		}
		for _, it := range r.Items {
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			line := it.Price.Mul(decimal.NewFromInt(int64(qty)))
			totals.ByCategory[it.Category] = totals.ByCategory[it.Category].Add(line)
		}
	}
	return totals
}

// SlotWindow is the sales window backing a (business date, shift type)
// register row. Day shifts sell from 05:00 to 17:00 of the date itself;
// night shifts sell from 17:00 of the previous calendar day to 05:00 of the
// business date, mirroring how closing shifts attribute their cash.
func SlotWindow(date time.Time, shiftType string) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if shiftType == shift.TypeNight {
		return day.AddDate(0, 0, -1).Add(17 * time.Hour), day.Add(5 * time.Hour)
	}
	return day.Add(5 * time.Hour), day.Add(17 * time.Hour)
}
