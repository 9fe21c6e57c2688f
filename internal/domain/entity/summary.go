package entity

import "github.com/shopspring/decimal"

// Summary holds the totals derived from a list of transactions.
// It is never stored; callers recompute it from the full list.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Summarize sums Income and Expense amounts and derives the balance.
// Nil entries are skipped. The result does not depend on input order.
func Summarize(transactions []*Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		switch tx.Type {
		case TypeIncome:
			income = income.Add(tx.Amount)
		case TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}
