package payroll

import (
	"math"
	"sort"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/shopspring/decimal"
)

// DefaultBaseSalary is charged per shift when no explicit base was set on
// the shift row.
var DefaultBaseSalary = decimal.NewFromInt(500)

// BuildSummary folds closed shifts and their bonuses into one row per
// employee. The paid amount is the most recent payment stamp in the period;
// equal restamps leave it unchanged, a different amount overwrites it.
func BuildSummary(shifts []shift.Shift, bonuses []bonus.Bonus, sortBy string) []EmployeePayroll {
	type acc struct {
		row      *EmployeePayroll
		paidAll  bool
		lastPaid time.Time
	}
	byEmployee := make(map[string]*acc)
	var order []string

	for _, s := range shifts {
		if s.Status != shift.StatusClosed {
			continue
		}
		id := s.EmployeeID.String()
		a, ok := byEmployee[id]
		if !ok {
			a = &acc{row: &EmployeePayroll{EmployeeID: id}, paidAll: true}
			byEmployee[id] = a
			order = append(order, id)
		}
		if s.Employee != nil && a.row.EmployeeName == "" {
			a.row.EmployeeName = s.Employee.FullName
		}

		a.row.TotalShifts++
		a.row.TotalHours += s.TotalHours

		base := s.BaseSalary
		if base.IsZero() {
			base = DefaultBaseSalary
		}
		a.row.BaseSalaryTotal = a.row.BaseSalaryTotal.Add(base)
		a.row.CashShortageTotal = a.row.CashShortageTotal.Add(s.CashShortage)

		if !s.SalaryPaid {
			a.paidAll = false
		} else if s.SalaryPaidAt != nil && s.SalaryPaidAt.After(a.lastPaid) {
			a.lastPaid = *s.SalaryPaidAt
			if s.SalaryPaidAmount != nil {
				a.row.PaidAmount = *s.SalaryPaidAmount
			}
		}
	}

	for _, b := range bonuses {
		if a, ok := byEmployee[b.EmployeeID.String()]; ok {
			a.row.BonusesTotal = a.row.BonusesTotal.Add(b.Amount)
		}
	}

	out := make([]EmployeePayroll, 0, len(order))
	for _, id := range order {
		a := byEmployee[id]
		r := a.row
		r.TotalHours = math.Round(r.TotalHours*100) / 100
		r.TotalSalary = r.BaseSalaryTotal.Add(r.BonusesTotal).Sub(r.CashShortageTotal)
		r.SalaryPaid = a.paidAll && r.TotalShifts > 0
		r.UnpaidAmount = r.TotalSalary.Sub(r.PaidAmount)
		out = append(out, *r)
	}

	switch sortBy {
	case SortByShifts:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalShifts > out[j].TotalShifts
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EmployeeName < out[j].EmployeeName
		})
	}
	return out
}
