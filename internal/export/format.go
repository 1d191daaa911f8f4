package export

import "github.com/shopspring/decimal"

// formatCurrency renders a money amount as "$1234.56".
func formatCurrency(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
