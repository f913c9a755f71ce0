package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney renders an amount with thousand separators and two decimals, e.g. "USD 1,234.50".
func FormatMoney(currency string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = "USD"
	}
	return fmt.Sprintf("%s %s%s.%02d", cur, sign, formatThousand(whole), frac)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
