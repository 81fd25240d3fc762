// Package command parses raw utterances into a closed set of command
// variants so the conversation engine can dispatch exhaustively instead of
// comparing string literals in every branch.
package command

import "strings"

// Kind identifies a recognized top-level command.
type Kind int

const (
	// KindOther is any utterance that is not a global command; the engine
	// interprets it according to the session state (category ordinal in the
	// main menu, item entry inside a category).
	KindOther Kind = iota
	// KindMenu shows the category menu (start/menu/categories/shop).
	KindMenu
	// KindHelp shows the help text.
	KindHelp
	// KindContact shows the store contact card.
	KindContact
	// KindCart shows the current cart.
	KindCart
	// KindClear empties the cart.
	KindClear
	// KindBack returns from a category to the main menu.
	KindBack
	// KindConfirm places the order.
	KindConfirm
)

// String implements fmt.Stringer for log output.
func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindHelp:
		return "help"
	case KindContact:
		return "contact"
	case KindCart:
		return "cart"
	case KindClear:
		return "clear"
	case KindBack:
		return "back"
	case KindConfirm:
		return "confirm"
	default:
		return "other"
	}
}

// Command is one parsed utterance. Text holds the normalized (trimmed,
// lowercased) input and is only meaningful for KindOther.
type Command struct {
	Text string
	Kind Kind
}

// Parse normalizes raw input and classifies it. Global commands win over any
// state-specific interpretation, so "help" works everywhere.
func Parse(raw string) Command {
	text := strings.ToLower(strings.TrimSpace(raw))

	switch text {
	case "start", "menu", "categories", "shop":
		return Command{Kind: KindMenu, Text: text}
	case "help":
		return Command{Kind: KindHelp, Text: text}
	case "contact":
		return Command{Kind: KindContact, Text: text}
	case "cart":
		return Command{Kind: KindCart, Text: text}
	case "clear":
		return Command{Kind: KindClear, Text: text}
	case "back":
		return Command{Kind: KindBack, Text: text}
	case "confirm":
		return Command{Kind: KindConfirm, Text: text}
	default:
		return Command{Kind: KindOther, Text: text}
	}
}
