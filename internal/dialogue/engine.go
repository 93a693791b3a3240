// Package dialogue orchestrates one conversation turn: classify the message,
// extract entities, mutate the user's session, and emit an action plus payload
// for the host service to act on. The engine performs no I/O of its own; menu
// and order snapshots arrive fresh from the caller on every call.
package dialogue

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	errx "github.com/ai-pizza-palace/server/internal/core/error"
	"github.com/ai-pizza-palace/server/internal/dialogue/classify"
	"github.com/ai-pizza-palace/server/internal/dialogue/extract"
	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	"github.com/ai-pizza-palace/server/internal/knowledge"
	"github.com/ai-pizza-palace/server/internal/metrics"
	logx "github.com/ai-pizza-palace/server/pkg/logger"
	"github.com/google/uuid"
)

// categoryKeywords is the closed list CategoryQuery recognizes; first hit wins.
var categoryKeywords = []string{"pizza", "drink", "dessert", "side", "appetizer", "beverage"}

var orderIDPattern = regexp.MustCompile(`#?([0-9]+)`)

// lockShards bounds the keyed-mutex pool so it cannot grow with the user
// population the way evicted sessions would otherwise leave locks behind.
const lockShards = 64

// Engine is the dialogue manager. Safe for concurrent use: each user's
// read-modify-write cycle runs under that user's lock shard, so two
// concurrent messages from the same user cannot interleave cart mutations.
// Users hashing to different shards never contend.
type Engine struct {
	repo        model.SessionRepository
	kb          *knowledge.Store
	cfg         model.EngineConfig
	anonymousID string
	locks       [lockShards]sync.Mutex
}

// NewEngine builds an engine over the given session repository and knowledge
// store. An empty anonymousID falls back to "anonymous".
func NewEngine(repo model.SessionRepository, kb *knowledge.Store, cfg model.EngineConfig, anonymousID string) *Engine {
	if anonymousID == "" {
		anonymousID = "anonymous"
	}
	if cfg.KnowledgeLimit <= 0 {
		cfg.KnowledgeLimit = 2
	}
	return &Engine{
		repo:        repo,
		kb:          kb,
		cfg:         cfg,
		anonymousID: anonymousID,
	}
}

// Handle processes one inbound message for userID against the supplied menu
// and order snapshots. Conversational misses ("item not found", "empty cart")
// are ordinary results; the only error paths are malformed snapshots
// (errx.ErrInvalidInput) and repository failures.
func (e *Engine) Handle(ctx context.Context, message, userID string, menu []model.MenuItem, orders []model.Order) (model.Result, error) {
	if userID == "" {
		userID = e.anonymousID
	}
	if err := validateSnapshots(menu, orders); err != nil {
		return model.Result{}, errx.WrapInvalidInput(err)
	}

	requestID := uuid.NewString()

	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.repo.Get(ctx, userID)
	if err != nil {
		return model.Result{}, err
	}
	if sess == nil {
		sess = model.NewSession(userID)
	}

	intent := classify.Classify(message)
	sess.LastIntent = intent
	metrics.MessagesHandled.WithLabelValues(intent.String()).Inc()
	logx.Debug().
		Str("requestID", requestID).
		Str("userID", userID).
		Str("intent", intent.String()).
		Msg("handling message")

	result := e.dispatch(sess, intent, message, menu, orders)

	sess.UpdatedAt = time.Now().UTC()
	if err := e.repo.Save(ctx, sess); err != nil {
		return model.Result{}, err
	}
	return result, nil
}

// ClearCart is the host's post-persistence obligation: after translating a
// confirm_order result into a stored order, the host must call this to empty
// the originating cart. A confirm outcome that is never followed by ClearCart
// leaves the cart intact so the user can retry.
func (e *Engine) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		userID = e.anonymousID
	}

	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}

	sess.ClearCart()
	if sess.State == model.StateAwaitingConfirmation {
		sess.State = model.StateFulfilled
	}
	sess.UpdatedAt = time.Now().UTC()
	return e.repo.Save(ctx, sess)
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &e.locks[h.Sum32()%lockShards]
}

func (e *Engine) dispatch(sess *model.Session, intent model.Intent, message string, menu []model.MenuItem, orders []model.Order) model.Result {
	switch intent {
	case model.IntentGreeting:
		return model.Result{Intent: intent, Action: model.ActionGreeting, Data: map[string]any{
			"restaurant": e.cfg.RestaurantName,
		}}
	case model.IntentPersonaQuery:
		return e.handlePersona(intent, message)
	case model.IntentMenuQuery:
		return model.Result{Intent: intent, Action: model.ActionShowMenu, Data: map[string]any{
			"items": menu,
		}}
	case model.IntentCategoryQuery:
		return e.handleCategory(intent, message, menu)
	case model.IntentItemDetails:
		return e.handleItemDetails(intent, message, menu)
	case model.IntentOrder:
		return e.handleOrder(sess, intent, message, menu)
	case model.IntentConfirmOrder:
		return e.handleConfirm(sess, intent)
	case model.IntentCancelOrder:
		return e.handleCancel(sess, intent)
	case model.IntentTrackOrder:
		return e.handleTrack(sess, intent, message, orders)
	case model.IntentKnowledgeQuery:
		return e.handleKnowledge(intent, message)
	case model.IntentSupport:
		return model.Result{Intent: intent, Action: model.ActionSupport}
	default:
		return model.Result{Intent: intent, Action: model.ActionHelp}
	}
}

func (e *Engine) handlePersona(intent model.Intent, message string) model.Result {
	metrics.KnowledgeSearches.Inc()
	hits := e.kb.Search(message, "persona", 1)
	if len(hits) == 0 {
		// Default persona line is the host's to render; no entry payload.
		return model.Result{Intent: intent, Action: model.ActionPersonaResponse}
	}
	return model.Result{Intent: intent, Action: model.ActionPersonaResponse, Data: map[string]any{
		"entry": hits[0],
	}}
}

func (e *Engine) handleCategory(intent model.Intent, message string, menu []model.MenuItem) model.Result {
	lower := strings.ToLower(message)
	category := ""
	for _, keyword := range categoryKeywords {
		if strings.Contains(lower, keyword) {
			category = keyword
			break
		}
	}

	items := menu
	if category != "" {
		items = make([]model.MenuItem, 0, len(menu))
		for _, it := range menu {
			if strings.EqualFold(it.Category, category) {
				items = append(items, it)
			}
		}
	}
	return model.Result{Intent: intent, Action: model.ActionShowCategory, Data: map[string]any{
		"category": category,
		"items":    items,
	}}
}

func (e *Engine) handleItemDetails(intent model.Intent, message string, menu []model.MenuItem) model.Result {
	found := extract.Items(message, menu)
	if len(found) == 0 {
		return model.Result{Intent: intent, Action: model.ActionItemNotFound}
	}
	return model.Result{Intent: intent, Action: model.ActionShowItem, Data: map[string]any{
		"item": found[0],
	}}
}

func (e *Engine) handleOrder(sess *model.Session, intent model.Intent, message string, menu []model.MenuItem) model.Result {
	found := extract.Items(message, menu)
	if len(found) == 0 {
		// No cart mutation; ask the user to name an item.
		return model.Result{Intent: intent, Action: model.ActionPromptItems}
	}

	quantity := extract.Quantity(message)
	for _, item := range found {
		sess.AddItem(item, quantity)
		metrics.CartItemsAdded.Inc()
	}
	sess.State = model.StateBuilding

	return model.Result{Intent: intent, Action: model.ActionAddToCart, Data: map[string]any{
		"cart":     cartCopy(sess),
		"quantity": quantity,
	}}
}

func (e *Engine) handleConfirm(sess *model.Session, intent model.Intent) model.Result {
	if len(sess.Cart) == 0 {
		return model.Result{Intent: intent, Action: model.ActionCartEmpty}
	}

	// The cart survives confirmation: only the host clears it, after the
	// order is actually persisted.
	sess.State = model.StateAwaitingConfirmation
	return model.Result{Intent: intent, Action: model.ActionConfirmOrder, Data: map[string]any{
		"cart":             cartCopy(sess),
		"total":            sess.CartTotal(),
		"requires_details": true,
	}}
}

func (e *Engine) handleCancel(sess *model.Session, intent model.Intent) model.Result {
	if len(sess.Cart) == 0 {
		return model.Result{Intent: intent, Action: model.ActionNothingToCancel}
	}
	sess.ClearCart()
	sess.State = model.StateCancelled
	return model.Result{Intent: intent, Action: model.ActionClearCart}
}

func (e *Engine) handleTrack(sess *model.Session, intent model.Intent, message string, orders []model.Order) model.Result {
	if len(orders) == 0 {
		return model.Result{Intent: intent, Action: model.ActionNoOrders}
	}

	if id, ok := extractOrderID(message); ok {
		for _, o := range orders {
			if o.ID == id {
				return model.Result{Intent: intent, Action: model.ActionShowOrderStatus, Data: map[string]any{
					"order": o,
				}}
			}
		}
		return model.Result{Intent: intent, Action: model.ActionOrderNotFound, Data: map[string]any{
			"order_id": id,
		}}
	}

	// No explicit id: prefer the newest of the caller's own orders, matched
	// by customer phone; otherwise fall back to the first snapshot record,
	// which callers supply newest-first.
	target := orders[0]
	var best *model.Order
	for i := range orders {
		if orders[i].CustomerPhone != sess.UserID {
			continue
		}
		if best == nil || orders[i].CreatedAt.After(best.CreatedAt) {
			best = &orders[i]
		}
	}
	if best != nil {
		target = *best
	}
	return model.Result{Intent: intent, Action: model.ActionShowOrderStatus, Data: map[string]any{
		"order": target,
	}}
}

func (e *Engine) handleKnowledge(intent model.Intent, message string) model.Result {
	metrics.KnowledgeSearches.Inc()
	hits := e.kb.Search(message, "", e.cfg.KnowledgeLimit)
	if len(hits) == 0 {
		return model.Result{Intent: intent, Action: model.ActionKBFallback}
	}

	data := map[string]any{"entries": hits}
	if len(hits) > 1 {
		data["related"] = hits[1].Title
	}
	return model.Result{Intent: intent, Action: model.ActionKBResponse, Data: data}
}

// extractOrderID finds the first digit run in the message, with or without a
// leading '#'.
func extractOrderID(message string) (int, bool) {
	m := orderIDPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func cartCopy(sess *model.Session) []model.CartLine {
	return append([]model.CartLine(nil), sess.Cart...)
}

func validateSnapshots(menu []model.MenuItem, orders []model.Order) error {
	for i, item := range menu {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("menu snapshot index %d: %w", i, err)
		}
	}
	for i, order := range orders {
		if err := order.Validate(); err != nil {
			return fmt.Errorf("order snapshot index %d: %w", i, err)
		}
	}
	return nil
}
