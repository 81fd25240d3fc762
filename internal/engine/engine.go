// Package engine implements the conversation core: per-user sessions and
// carts, the command dispatch table, and the order confirmation flow.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/freshmart/grocery-bot/internal/cart"
	"github.com/freshmart/grocery-bot/internal/catalog"
	"github.com/freshmart/grocery-bot/internal/command"
	"github.com/freshmart/grocery-bot/internal/model"
	"github.com/freshmart/grocery-bot/internal/parse"
	"github.com/freshmart/grocery-bot/internal/service"
)

// Config holds the store identity rendered into replies and the optional
// shopkeeper notification target.
type Config struct {
	StoreName    string
	StoreAddress string
	StoreHours   string
	StorePhone   string
	Currency     string
	ShopkeeperID string
}

// DefaultConfig returns the Fresh Mart defaults.
func DefaultConfig() Config {
	return Config{
		StoreName:    "Fresh Mart Grocery Store",
		StoreAddress: "123 Market Street",
		StoreHours:   "8 AM - 10 PM",
		StorePhone:   "+91 99822 30201",
		Currency:     "₹",
	}
}

// userState is one user's session and cart. Its mutex serializes all
// processing for that user; different users never share an entry.
type userState struct {
	cart    *cart.Cart
	session model.Session
	mu      sync.Mutex
}

// Engine drives the conversation. Safe for concurrent use: utterances from
// the same user are applied one at a time, utterances from different users
// proceed independently.
type Engine struct {
	catalog  *catalog.Store
	sink     service.OrderSink
	notifier service.Notifier
	logger   *slog.Logger
	orderIDs *model.OrderIDGenerator
	users    map[string]*userState
	config   Config
	mu       sync.Mutex
}

// New creates a conversation engine. notifier may be nil when no shopkeeper
// notifications are wanted.
func New(store *catalog.Store, sink service.OrderSink, notifier service.Notifier, cfg Config, logger *slog.Logger) *Engine {
	if cfg.Currency == "" {
		cfg.Currency = "₹"
	}
	return &Engine{
		catalog:  store,
		sink:     sink,
		notifier: notifier,
		config:   cfg,
		logger:   logger,
		orderIDs: model.NewOrderIDGenerator(),
		users:    make(map[string]*userState),
	}
}

// CatalogAvailable reports whether the catalog loaded; surfaced on the
// health endpoint.
func (e *Engine) CatalogAvailable() bool {
	return e.catalog.Available()
}

func (e *Engine) user(id string) *userState {
	e.mu.Lock()
	defer e.mu.Unlock()
	u, ok := e.users[id]
	if !ok {
		u = &userState{session: model.Session{State: model.StateMain}}
		e.users[id] = u
	}
	return u
}

// HandleMessage processes one inbound utterance end-to-end and returns the
// reply text. Non-text messages and empty bodies produce an empty reply,
// which transports treat as "send nothing".
func (e *Engine) HandleMessage(ctx context.Context, msg service.InboundMessage) (reply string) {
	if msg.Type != "" && msg.Type != "text" {
		return ""
	}
	if strings.TrimSpace(msg.Text) == "" {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("panic while handling message",
				"sender", msg.SenderID,
				"panic", r)
			reply = e.renderApology()
		}
	}()

	u := e.user(msg.SenderID)
	u.mu.Lock()
	defer u.mu.Unlock()

	cmd := command.Parse(msg.Text)
	e.logger.Debug("handling message",
		"sender", msg.SenderID,
		"command", cmd.Kind.String(),
		"state", u.session.State.String())

	switch cmd.Kind {
	case command.KindMenu:
		u.session = model.Session{State: model.StateMain}
		return e.renderMenu()

	case command.KindHelp:
		return e.renderHelp()

	case command.KindContact:
		return e.renderContact()

	case command.KindCart:
		return e.renderCart(u.cart)

	case command.KindClear:
		u.cart = nil
		return e.renderCleared()

	case command.KindBack:
		if u.session.State == model.StateCategory {
			u.session = model.Session{State: model.StateMain}
			return e.renderMenu()
		}
		return e.renderAlreadyAtMain()

	case command.KindConfirm:
		return e.confirm(ctx, msg, u)

	default:
		return e.handleFreeform(cmd.Text, u)
	}
}

// handleFreeform interprets unrecognized input according to the session
// state: a category ordinal in the main menu, item entries inside a
// category, and a gentle fallback otherwise.
func (e *Engine) handleFreeform(text string, u *userState) string {
	if u.session.State == model.StateCategory {
		cat := e.catalog.Category(u.session.ActiveCategory)
		if cat == nil {
			// Catalog went away under us; fall back to the menu.
			u.session = model.Session{State: model.StateMain}
			return e.renderMenu()
		}
		return e.addItems(text, cat, u)
	}

	if cat := e.catalog.Category(text); cat != nil {
		u.session = model.Session{State: model.StateCategory, ActiveCategory: cat.Key}
		return e.renderCategory(cat)
	}

	u.session = model.Session{State: model.StateMain}
	return e.renderUnknown()
}

func (e *Engine) addItems(text string, cat *model.Category, u *userState) string {
	result := parse.Line(text, cat)

	var added []cart.Line
	if len(result.Entries) > 0 {
		if u.cart == nil {
			u.cart = cart.New()
		}
		for _, entry := range result.Entries {
			added = append(added, u.cart.AddOrReplace(entry.Item, entry.Quantity))
		}
	}

	return e.renderAdded(cat, added, result.Errors, u.cart)
}

// confirm runs the order confirmation flow: snapshot the cart, persist the
// order (the sink owns retry and fallback), notify the shopkeeper
// best-effort, then reset the user's state.
func (e *Engine) confirm(ctx context.Context, msg service.InboundMessage, u *userState) string {
	if u.cart == nil || u.cart.Empty() {
		return e.renderEmptyCartConfirm()
	}

	snap := u.cart.Snapshot()
	order := &model.Order{
		OrderID:       e.orderIDs.Next(),
		CustomerName:  customerName(msg),
		CustomerPhone: customerPhone(msg.SenderID),
		ItemsSummary:  itemsSummary(snap.Lines),
		TotalAmount:   snap.Total.Round(0),
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	// A persistence failure is logged but never breaks the confirmation:
	// the tiered sink has already done everything it could.
	if err := e.sink.PersistOrder(ctx, order); err != nil {
		e.logger.Error("failed to persist order",
			"order_id", order.OrderID,
			"error", err)
	}

	e.notifyShopkeeper(ctx, order)

	u.cart = nil
	u.session = model.Session{State: model.StateMain}

	return e.renderReceipt(order, snap.Lines)
}

func (e *Engine) notifyShopkeeper(ctx context.Context, order *model.Order) {
	if e.notifier == nil || e.config.ShopkeeperID == "" {
		return
	}
	if err := e.notifier.Notify(ctx, e.config.ShopkeeperID, e.renderShopkeeperAlert(order)); err != nil {
		e.logger.Error("failed to notify shopkeeper",
			"order_id", order.OrderID,
			"error", err)
	}
}

func customerName(msg service.InboundMessage) string {
	if name := strings.TrimSpace(msg.SenderName); name != "" {
		return name
	}
	return "Unknown"
}

func customerPhone(senderID string) string {
	return strings.TrimSuffix(senderID, "@c.us")
}

func itemsSummary(lines []cart.Line) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Name + " x" + line.Display
	}
	return strings.Join(parts, ", ")
}
