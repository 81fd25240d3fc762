package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/freshmart/grocery-bot/internal/model"
)

// Entry is one successfully resolved "item quantity" segment.
type Entry struct {
	Item     model.Item
	Quantity ParsedQuantity
}

// LineResult carries both the resolved entries of an utterance and the
// per-segment errors; one bad segment never aborts the rest.
type LineResult struct {
	Entries []Entry
	Errors  []string
}

// Line splits a comma-separated utterance like "1 2, 3 500g" into segments
// and resolves each against the active category. Each segment must be
// exactly two whitespace-separated tokens: a 1-based item ordinal and a
// quantity token.
func Line(utterance string, category *model.Category) LineResult {
	var result LineResult

	for _, segment := range strings.Split(utterance, ",") {
		raw := strings.TrimSpace(segment)
		clean := strings.ToLower(raw)

		parts := strings.Fields(clean)
		if len(parts) != 2 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%q - Use format: item_number quantity", raw))
			continue
		}

		ordinal, err := strconv.Atoi(parts[0])
		if err != nil || ordinal < 1 || ordinal > len(category.Items) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%q - Item %s not found (use 1-%d)", raw, parts[0], len(category.Items)))
			continue
		}
		item := category.Items[ordinal-1]

		qty, err := Quantity(parts[1], item)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%q - %s", raw, err.Error()))
			continue
		}

		result.Entries = append(result.Entries, Entry{Item: item, Quantity: qty})
	}

	return result
}
