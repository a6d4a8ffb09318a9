// Package format da formato de presentación a números, montos y fechas (estilo GT: 12,345.67).
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tag de presentación: español latinoamericano, punto decimal y coma de miles.
var tag = language.LatinAmericanSpanish

var (
	printer = message.NewPrinter(tag)
	folder  = cases.Fold()
)

// DateTimeLayout formato de fecha y hora de los reportes.
const DateTimeLayout = "02/01/2006 15:04"

// Number formatea v con separador de miles y como máximo decimals decimales (sin ceros a la derecha).
func Number(v float64, decimals int) string {
	return printer.Sprint(number.Decimal(v, number.MinFractionDigits(0), number.MaxFractionDigits(decimals)))
}

// Int formatea un entero con separador de miles.
func Int(v int) string {
	return printer.Sprint(number.Decimal(v))
}

// Currency formatea un monto con exactamente dos decimales.
func Currency(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Quetzales antepone el símbolo de moneda a Currency.
func Quetzales(d decimal.Decimal) string {
	return "Q" + Currency(d)
}

// DateTime formatea t en la zona loc.
func DateTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateTimeLayout)
}

// Measures describe alto × ancho ("2m x 1.5m"), o "-" si falta alguna medida.
func Measures(height, width *float64) string {
	if height == nil || width == nil || *height == 0 || *width == 0 {
		return "-"
	}
	return Number(*height, 2) + "m x " + Number(*width, 2) + "m"
}

// Fold normaliza s para comparaciones sin distinguir mayúsculas.
func Fold(s string) string {
	return folder.String(s)
}
