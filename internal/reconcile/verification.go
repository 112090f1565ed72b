package reconcile

import (
	"sort"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/shopspring/decimal"
)

const (
	ClassMatch    = "match"
	ClassSurplus  = "surplus"
	ClassShortage = "shortage"
)

// PendingGroup is one (business date, shift type) handover awaiting review.
// Difference is submitted minus expected: negative means a shortage.
type PendingGroup struct {
	Date           string            `json:"date"`
	ShiftType      string            `json:"shift_type"`
	Shifts         []ShiftLine       `json:"shifts"`
	Expenses       []ExpenseLine     `json:"expenses"`
	Submitted      decimal.Decimal   `json:"submitted"`
	Expected       decimal.Decimal   `json:"expected"`
	Difference     decimal.Decimal   `json:"difference"`
	Classification string            `json:"classification"`
	SuggestedSplit []decimal.Decimal `json:"suggested_split,omitempty"`
}

type ShiftLine struct {
	ShiftID      string          `json:"shift_id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	GcashAmount  decimal.Decimal `json:"gcash_amount"`
	Submitted    decimal.Decimal `json:"submitted"`
}

type ExpenseLine struct {
	ExpenseID   string          `json:"expense_id"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

type groupKey struct {
	date      string
	shiftType string
}

// ComputePendingVerifications groups closed, unapproved shifts by business
// date and shift type and compares the submitted handover totals against the
// expected register figures for the same slot. Expenses still awaiting
// approval ride along with their group. Expected reads as zero when no
// register row exists for the slot.
func ComputePendingVerifications(
	shifts []shift.Shift,
	expenses []register.CashExpense,
	records []register.CashRegisterRecord,
) []PendingGroup {
	expected := make(map[groupKey]decimal.Decimal, len(records))
	for _, rec := range records {
		k := groupKey{rec.RecordDate.Format("2006-01-02"), rec.ShiftType}
		expected[k] = rec.CashExpected.Add(rec.GcashExpected)
	}

	groups := make(map[groupKey]*PendingGroup)
	var order []groupKey

	for _, s := range shifts {
		if s.Status != shift.StatusClosed || s.Approved {
			continue
		}
		k := groupKey{s.ShiftDate.Format("2006-01-02"), s.ShiftType}
		g, ok := groups[k]
		if !ok {
			g = &PendingGroup{
				Date:       k.date,
				ShiftType:  k.shiftType,
				Submitted:  decimal.Zero,
				Expected:   expected[k],
				Difference: decimal.Zero,
			}
			groups[k] = g
			order = append(order, k)
		}

		line := ShiftLine{
			ShiftID:    s.ID.String(),
			EmployeeID: s.EmployeeID.String(),
		}
		if s.Employee != nil {
			line.EmployeeName = s.Employee.FullName
		}
		if s.CashAmount != nil {
			line.CashAmount = *s.CashAmount
		}
		if s.GcashAmount != nil {
			line.GcashAmount = *s.GcashAmount
		}
		line.Submitted = line.CashAmount.Add(line.GcashAmount)

		g.Shifts = append(g.Shifts, line)
		g.Submitted = g.Submitted.Add(line.Submitted)
	}

	for _, e := range expenses {
		if e.Approved {
			continue
		}
		k := groupKey{e.ExpenseDate.Format("2006-01-02"), e.ShiftType}
		g, ok := groups[k]
		if !ok {
			continue
		}
		g.Expenses = append(g.Expenses, ExpenseLine{
			ExpenseID:   e.ID.String(),
			Category:    e.Category,
			Source:      e.Source,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}

	out := make([]PendingGroup, 0, len(order))
	for _, k := range order {
		g := groups[k]
		g.Difference = g.Submitted.Sub(g.Expected)
		g.Classification = Classify(g.Difference)
		if g.Classification == ClassShortage {
			g.SuggestedSplit = SplitShortage(g.Difference.Neg(), len(g.Shifts))
		}
		out = append(out, *g)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ShiftType < out[j].ShiftType
	})
	return out
}

func Classify(difference decimal.Decimal) string {
	switch difference.Sign() {
	case 1:
		return ClassSurplus
	case -1:
		return ClassShortage
	}
	return ClassMatch
}

// SplitShortage divides a positive shortage evenly across n shifts in whole
// currency units. Every share past the first is the rounded even share; the
// first share absorbs the rounding remainder so the parts always sum back to
// the total. The first share therefore deviates from the others by at most
// n-1 whole units.
func SplitShortage(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	shares := make([]decimal.Decimal, n)
	if n == 1 {
		shares[0] = total
		return shares
	}

	even := total.Div(decimal.NewFromInt(int64(n))).Round(0)
	rest := decimal.Zero
	for i := 1; i < n; i++ {
		shares[i] = even
		rest = rest.Add(even)
	}
	shares[0] = total.Sub(rest)
	return shares
}
