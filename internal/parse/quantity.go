// Package parse implements the free-text order grammar: quantity tokens with
// unit conversion, and comma-separated line-item utterances.
package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-bot/internal/common"
	"github.com/freshmart/grocery-bot/internal/model"
)

// ParsedQuantity is the result of parsing a quantity token against an item.
// Multiplier is the factor applied to the item's price; Display is the
// normalized human-readable echo of what the user typed.
type ParsedQuantity struct {
	Display    string
	Multiplier decimal.Decimal
}

var (
	quantityPattern = regexp.MustCompile(`^([0-9]+\.?[0-9]*)([a-z]*)$`)
	baseQtyPattern  = regexp.MustCompile(`\d+`)

	thousand = decimal.NewFromInt(1000)
)

// Quantity parses a quantity token such as "2", "2.5", "500g" or "1.5kg"
// relative to an item's base unit. Pure function, no side effects.
//
// Conversion is intentionally asymmetric: a kg/l quantity is used as a
// direct multiplier, while g/ml quantities divide by the base unit's
// embedded amount. Flagged to the shop owner; kept to match how prices have
// always been quoted.
func Quantity(token string, item model.Item) (ParsedQuantity, error) {
	clean := strings.ToLower(strings.TrimSpace(token))

	m := quantityPattern.FindStringSubmatch(clean)
	if m == nil {
		return ParsedQuantity{}, common.NewQuantityError(common.QuantityInvalidFormat, "")
	}

	number, err := decimal.NewFromString(m[1])
	if err != nil {
		return ParsedQuantity{}, common.NewQuantityError(common.QuantityInvalidFormat, "")
	}
	if !number.IsPositive() {
		return ParsedQuantity{}, common.NewQuantityError(common.QuantityNotPositive, "")
	}

	unit := m[2]
	if unit == "" {
		// Plain count of the item's own unit, e.g. "3" packs.
		return ParsedQuantity{
			Multiplier: number,
			Display:    number.String() + " " + item.Unit,
		}, nil
	}

	base := strings.ToLower(item.Unit)

	switch unit {
	case "kg", "kgs":
		// Kilograms are always a direct multiplier, whatever the base unit.
		return ParsedQuantity{Multiplier: number, Display: number.String() + "kg"}, nil

	case "g", "gm", "gms":
		var mult decimal.Decimal
		switch {
		case strings.Contains(base, "kg"):
			mult = number.Div(thousand)
		case strings.Contains(base, "g"):
			if b, ok := baseQuantity(base); ok {
				mult = number.Div(b)
			} else {
				mult = number.Div(thousand)
			}
		default:
			mult = number.Div(thousand)
		}
		return ParsedQuantity{Multiplier: mult, Display: number.String() + "g"}, nil

	case "l", "lt", "ltr", "litre", "liter":
		mult := number
		if strings.Contains(base, "l") {
			if b, ok := baseQuantity(base); ok {
				mult = number.Div(b)
			}
		}
		return ParsedQuantity{Multiplier: mult, Display: number.String() + "L"}, nil

	case "ml", "mls":
		var mult decimal.Decimal
		switch {
		case strings.Contains(base, "ml"):
			if b, ok := baseQuantity(base); ok {
				mult = number.Div(b)
			} else {
				mult = number.Div(thousand)
			}
		case strings.Contains(base, "l"):
			mult = number.Div(thousand)
		default:
			mult = number.Div(thousand)
		}
		return ParsedQuantity{Multiplier: mult, Display: number.String() + "ml"}, nil

	default:
		return ParsedQuantity{}, common.NewQuantityError(common.QuantityUnknownUnit, unit)
	}
}

// baseQuantity extracts the integer amount embedded in a base unit label,
// e.g. "250g" -> 250, "1kg" -> 1. Labels without a number ("pack", "piece")
// report ok=false.
func baseQuantity(base string) (decimal.Decimal, bool) {
	digits := baseQtyPattern.FindString(base)
	if digits == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(digits)
	if err != nil || d.IsZero() {
		return decimal.Decimal{}, false
	}
	return d, true
}
