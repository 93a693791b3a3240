package model

import "time"

// ConversationState is the explicit per-session state machine. Transitions are
// applied by the dialogue engine; intents that do not name a transition leave
// the state unchanged.
type ConversationState string

const (
	// StateIdle is the state of a fresh session with an empty cart.
	StateIdle ConversationState = "idle"
	// StateBuilding means at least one item has been added to the cart.
	StateBuilding ConversationState = "building"
	// StateAwaitingConfirmation means a confirm outcome was produced and the
	// host is expected to persist the order and then call ClearCart.
	StateAwaitingConfirmation ConversationState = "awaiting_confirmation"
	// StateFulfilled means the host persisted the order and cleared the cart.
	StateFulfilled ConversationState = "fulfilled"
	// StateCancelled means the user abandoned a non-empty cart.
	StateCancelled ConversationState = "cancelled"
)

// CartLine is one orderable item plus quantity held in a session. Lines are
// unique by MenuItemID within a cart.
type CartLine struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"item"`
	UnitPrice  float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Session is the per-user conversational state. It is owned exclusively by the
// dialogue engine; hosts observe it only through the results the engine returns.
type Session struct {
	UserID       string            `json:"user_id"`
	Cart         []CartLine        `json:"cart"`
	LastIntent   Intent            `json:"last_intent,omitempty"`
	State        ConversationState `json:"state"`
	OrderHistory []int             `json:"order_history,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewSession creates an idle session for the given user.
func NewSession(userID string) *Session {
	now := time.Now().UTC()
	return &Session{
		UserID:    userID,
		Cart:      []CartLine{},
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem puts quantity units of item into the cart. Adding an item that is
// already present increments its line quantity instead of duplicating the line.
func (s *Session) AddItem(item MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.Cart {
		if s.Cart[i].MenuItemID == item.ID {
			s.Cart[i].Quantity += quantity
			return
		}
	}
	s.Cart = append(s.Cart, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   quantity,
	})
}

// CartTotal returns the sum of unit price times quantity over all lines.
func (s *Session) CartTotal() float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ClearCart empties the cart without touching any other session field.
func (s *Session) ClearCart() {
	s.Cart = []CartLine{}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Cloning a nil session yields nil.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Cart = append([]CartLine(nil), s.Cart...)
	if s.OrderHistory != nil {
		out.OrderHistory = append([]int(nil), s.OrderHistory...)
	}
	return &out
}
