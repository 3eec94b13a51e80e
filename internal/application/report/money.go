package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatMoney presenta un monto en la moneda del usuario ("$ 2.500,00 COP").
// Si el código no es ISO 4217 válido cae al monto plano con dos decimales;
// los reportes nunca fallan por una preferencia corrupta.
func FormatMoney(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2)
	}
	f, _ := amount.Float64()
	p := message.NewPrinter(language.Spanish)
	return p.Sprintf("%v %s", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)), unit.String())
}
