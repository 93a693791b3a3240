package model

// Action tags the outcome of one handled message. Hosts switch on the action
// to decide what to render and whether any side effect (order creation, cart
// clearing) is owed.
type Action string

const (
	ActionGreeting        Action = "greeting"
	ActionPersonaResponse Action = "persona_response"
	ActionShowMenu        Action = "show_menu"
	ActionShowCategory    Action = "show_category"
	ActionShowItem        Action = "show_item"
	ActionItemNotFound    Action = "item_not_found"
	ActionAddToCart       Action = "add_to_cart"
	ActionPromptItems     Action = "prompt_items"
	ActionConfirmOrder    Action = "confirm_order"
	ActionCartEmpty       Action = "cart_empty"
	ActionClearCart       Action = "clear_cart"
	ActionNothingToCancel Action = "nothing_to_cancel"
	ActionShowOrderStatus Action = "show_order_status"
	ActionOrderNotFound   Action = "order_not_found"
	ActionNoOrders        Action = "no_orders"
	ActionKBResponse      Action = "kb_response"
	ActionKBFallback      Action = "kb_fallback"
	ActionSupport         Action = "support"
	ActionHelp            Action = "help"
)

// Result is the engine's answer for one message. Data is a loosely typed
// payload whose keys depend on the action:
//
//	greeting           restaurant
//	show_menu          items
//	show_category      category (empty when no keyword matched), items
//	show_item          item
//	add_to_cart        cart, quantity
//	confirm_order      cart, total, requires_details
//	show_order_status  order
//	order_not_found    order_id
//	kb_response        entries, related (optional)
//	persona_response   entry (absent on fallback)
//
// Actions not listed carry a nil Data.
type Result struct {
	Intent Intent         `json:"intent"`
	Action Action         `json:"action"`
	Data   map[string]any `json:"data,omitempty"`
}
