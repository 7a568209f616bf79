package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber formata com separador de milhar e 2 casas (ex: 1,234.50)
func FormatNumber(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// FormatMoney prefixa o número formatado com o símbolo da moeda
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + FormatNumber(d)
}
