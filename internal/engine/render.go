package engine

import (
	"fmt"
	"strings"

	"github.com/freshmart/grocery-bot/internal/cart"
	"github.com/freshmart/grocery-bot/internal/model"
)

// All user-facing copy lives here so the dispatch logic stays readable and
// the texts are testable in one place. The wording mirrors the shop's
// existing WhatsApp persona.

const catalogUnavailableText = "❌ Catalog not available\n\nPlease try again later or contact support."

func (e *Engine) renderMenu() string {
	catalog := e.catalog.Catalog()
	if catalog == nil || catalog.CategoryCount() == 0 {
		return catalogUnavailableText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *Welcome to %s!*\n\n", e.config.StoreName)
	b.WriteString("📋 *Select a Category:*\n\n")

	for _, cat := range catalog.Categories {
		fmt.Fprintf(&b, "%s️⃣ %s\n", cat.Key, cat.Name)
	}

	b.WriteString("\n💡 *How to order:*\n")
	fmt.Fprintf(&b, "• Type category number (1-%d)\n", catalog.CategoryCount())
	b.WriteString("• Select items with quantity\n")
	b.WriteString("• Review and confirm order\n\n")
	b.WriteString("Type *help* for more commands")

	return b.String()
}

func (e *Engine) renderCategory(cat *model.Category) string {
	if len(cat.Items) == 0 {
		return "❌ No items available in this category\n\nType \"back\" to return to categories."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s*\n\n", cat.Emoji, cat.Name)
	b.WriteString("📦 *Available Items:*\n\n")

	for i, item := range cat.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   💰 %s%s/%s\n\n", e.config.Currency, item.Price.String(), item.Unit)
	}

	first := cat.Items[0].Name
	b.WriteString("📝 *How to add items:*\n\n")
	b.WriteString("*Single item:*\n")
	fmt.Fprintf(&b, "• \"1 2\" = 2x %s\n", first)
	fmt.Fprintf(&b, "• \"1 500g\" = 500g %s\n\n", first)
	b.WriteString("*Multiple items:*\n")
	b.WriteString("• \"1 2, 3 1\" = item 1 (qty 2) + item 3 (qty 1)\n")
	b.WriteString("• \"1 500g, 2 2, 5 1kg\" = mixed quantities\n\n")
	b.WriteString("*Supported units:* kg, g, l, ml\n\n")
	b.WriteString("🔙 Type \"back\" to return to categories\n")
	b.WriteString("🛒 Type \"cart\" to view your cart")

	return b.String()
}

func (e *Engine) renderHelp() string {
	var b strings.Builder
	b.WriteString("🤖 *Grocery Bot Commands*\n\n")
	b.WriteString("🛒 *Shopping:*\n")
	b.WriteString("• start/menu - Show categories\n")
	b.WriteString("• cart - View your cart\n")
	b.WriteString("• confirm - Place order\n")
	b.WriteString("• clear - Empty cart\n\n")
	b.WriteString("📦 *Adding Items:*\n")
	b.WriteString("• Single: \"1 2\" (item 1, qty 2)\n")
	b.WriteString("• Multiple: \"1 2, 3 1, 5 3\"\n")
	b.WriteString("• Custom qty: \"1 500g\" or \"2 2.5kg\"\n\n")
	b.WriteString("📞 *Support:*\n")
	b.WriteString("• help - Show this menu\n")
	b.WriteString("• contact - Store contact info\n\n")
	b.WriteString("Ready to help you shop! 🎉")
	return b.String()
}

func (e *Engine) renderContact() string {
	var b strings.Builder
	b.WriteString("📞 *")
	b.WriteString(e.config.StoreName)
	b.WriteString(" Contact Info*\n\n")
	fmt.Fprintf(&b, "🏪 Store: %s\n", e.config.StoreName)
	fmt.Fprintf(&b, "📍 Address: %s\n", e.config.StoreAddress)
	fmt.Fprintf(&b, "⏰ Timing: %s\n", e.config.StoreHours)
	fmt.Fprintf(&b, "📱 Phone: %s\n\n", e.config.StorePhone)
	fmt.Fprintf(&b, "🚚 Free delivery above %s500!", e.config.Currency)
	return b.String()
}

func (e *Engine) renderCart(c *cart.Cart) string {
	if c == nil || c.Empty() {
		return fmt.Sprintf("🛒 *Your Cart is Empty*\n\nType a category number (1-%d) to start shopping!",
			maxInt(e.catalog.CategoryCount(), 1))
	}

	var b strings.Builder
	b.WriteString("🛒 *Your Shopping Cart*\n\n")

	for i, line := range c.Lines() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.Name)
		fmt.Fprintf(&b, "   Qty: %s\n", line.Display)
		fmt.Fprintf(&b, "   Price: %s%s\n\n", e.config.Currency, line.LineTotal.String())
	}

	fmt.Fprintf(&b, "💰 *Total: %s%s*\n\n", e.config.Currency, c.Total().Round(0).String())
	b.WriteString("✅ Type \"confirm\" to place order\n")
	b.WriteString("🗑️ Type \"clear\" to empty cart\n")
	b.WriteString("🔙 Type \"back\" to continue shopping")

	return b.String()
}

func (e *Engine) renderAdded(cat *model.Category, added []cart.Line, errors []string, c *cart.Cart) string {
	if len(added) == 0 {
		var b strings.Builder
		b.WriteString("❌ *Unable to add items*\n\n")
		for _, msg := range errors {
			fmt.Fprintf(&b, "• %s\n", msg)
		}
		b.WriteString("\n💡 *Correct formats:*\n")
		b.WriteString("• Single item: \"1 2\" (item 1, qty 2)\n")
		b.WriteString("• Multiple items: \"1 2, 3 1, 5 3\"\n")
		b.WriteString("• Custom quantity: \"1 500g\" or \"2 2.5kg\"\n")
		b.WriteString("• Mixed: \"1 2, 3 500g, 5 1.5kg\"\n\n")
		fmt.Fprintf(&b, "📋 Available items: 1-%d", len(cat.Items))
		return b.String()
	}

	var b strings.Builder
	b.WriteString("✅ *Added to Cart*\n\n")

	if len(added) == 1 {
		line := added[0]
		fmt.Fprintf(&b, "%s %s\n", cat.Emoji, line.Name)
		fmt.Fprintf(&b, "Quantity: %s\n", line.Display)
		fmt.Fprintf(&b, "Price: %s%s\n\n", e.config.Currency, line.LineTotal.String())
	} else {
		fmt.Fprintf(&b, "%s *%d items added:*\n\n", cat.Emoji, len(added))
		for i, line := range added {
			fmt.Fprintf(&b, "%d. %s\n", i+1, line.Name)
			fmt.Fprintf(&b, "   Qty: %s\n", line.Display)
			fmt.Fprintf(&b, "   Price: %s%s\n\n", e.config.Currency, line.LineTotal.String())
		}
	}

	fmt.Fprintf(&b, "🛒 Cart Total: %s%s\n\n", e.config.Currency, c.Total().Round(0).String())

	if len(errors) > 0 {
		b.WriteString("⚠️ *Some items couldn't be added:*\n")
		for _, msg := range errors {
			fmt.Fprintf(&b, "• %s\n", msg)
		}
		b.WriteString("\n")
	}

	b.WriteString("Continue shopping or type:\n")
	b.WriteString("• \"cart\" to view full cart\n")
	b.WriteString("• \"back\" for categories\n")
	b.WriteString("• \"confirm\" to place order")

	return b.String()
}

func (e *Engine) renderReceipt(order *model.Order, lines []cart.Line) string {
	var b strings.Builder
	b.WriteString("✅ *Order Confirmed!*\n\n")
	fmt.Fprintf(&b, "📋 Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "💰 Total: %s%s\n\n", e.config.Currency, order.TotalAmount.Round(0).String())
	b.WriteString("📦 *Your Items:*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s x%s\n", line.Name, line.Display)
	}
	b.WriteString("\n🚚 We'll deliver within 1-2 hours!\n")
	fmt.Fprintf(&b, "📞 Contact: %s\n\n", e.config.StorePhone)
	fmt.Fprintf(&b, "Thank you for shopping with %s! 🎉", e.config.StoreName)
	return b.String()
}

func (e *Engine) renderShopkeeperAlert(order *model.Order) string {
	var b strings.Builder
	b.WriteString("🆕 *NEW ORDER RECEIVED*\n\n")
	fmt.Fprintf(&b, "📋 Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "👤 Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 Phone: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "💰 Amount: %s%s\n\n", e.config.Currency, order.TotalAmount.Round(0).String())
	fmt.Fprintf(&b, "📦 Items:\n%s\n\n", order.ItemsSummary)
	b.WriteString("📊 Check the orders sheet for details!")
	return b.String()
}

func (e *Engine) renderEmptyCartConfirm() string {
	return "🛒 Your cart is empty!\n\nType \"start\" to begin shopping."
}

func (e *Engine) renderCleared() string {
	return "🗑️ *Cart Cleared*\n\nType \"start\" to begin shopping again!"
}

func (e *Engine) renderAlreadyAtMain() string {
	return "🔙 You're already at the main menu!\n\n" + e.renderMenu()
}

func (e *Engine) renderUnknown() string {
	return "❓ I didn't understand that.\n\n" + e.renderMenu()
}

func (e *Engine) renderApology() string {
	return "⚠️ Something went wrong. Please try again or type \"help\"."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
