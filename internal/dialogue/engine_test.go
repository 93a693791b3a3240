package dialogue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/ai-pizza-palace/server/internal/core/error"
	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	"github.com/ai-pizza-palace/server/internal/dialogue/repo"
	"github.com/ai-pizza-palace/server/internal/knowledge"
)

func testMenu() []model.MenuItem {
	return []model.MenuItem{
		{ID: 1, Name: "Margherita Pizza", Price: 12.99, Category: "pizza"},
		{ID: 2, Name: "Pepperoni Pizza", Price: 14.99, Category: "pizza"},
		{ID: 3, Name: "Garlic Bread", Price: 5.99, Category: "side"},
		{ID: 4, Name: "Tiramisu", Price: 6.99, Category: "dessert"},
		{ID: 5, Name: "Cola", Price: 2.49, Category: "drink"},
	}
}

// testOrders is newest-first, the ordering Handle documents for snapshots.
func testOrders() []model.Order {
	now := time.Now().UTC()
	return []model.Order{
		{ID: 44, Status: model.OrderPreparing, TotalAmount: 21.50, CustomerPhone: "555-0101", CreatedAt: now.Add(-10 * time.Minute)},
		{ID: 43, Status: model.OrderReady, TotalAmount: 14.99, CustomerPhone: "555-0142", CreatedAt: now.Add(-time.Hour)},
		{ID: 42, Status: model.OrderDelivered, TotalAmount: 30.00, CustomerPhone: "555-0142", CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func newTestEngine(kb *knowledge.Store) (*Engine, *repo.MemorySessionRepository) {
	r := repo.NewMemorySessionRepository(0, 0)
	cfg := model.EngineConfig{RestaurantName: "AI Pizza Palace", KnowledgeLimit: 2}
	return NewEngine(r, kb, cfg, "anonymous"), r
}

func getSession(t *testing.T, r model.SessionRepository, userID string) *model.Session {
	t.Helper()
	sess, err := r.Get(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	return sess
}

func TestHandleGreeting(t *testing.T) {
	e, r := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "hello", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.IntentGreeting, res.Intent)
	assert.Equal(t, model.ActionGreeting, res.Action)
	assert.Equal(t, "AI Pizza Palace", res.Data["restaurant"])

	sess := getSession(t, r, "alice")
	assert.Equal(t, model.IntentGreeting, sess.LastIntent)
	assert.Equal(t, model.StateIdle, sess.State)
}

func TestHandleMenuQuery(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "show me the menu", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowMenu, res.Action)
	assert.Len(t, res.Data["items"], 5)
}

func TestHandleCategoryQuery(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "pizza please", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowCategory, res.Action)
	assert.Equal(t, "pizza", res.Data["category"])
	items := res.Data["items"].([]model.MenuItem)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "pizza", it.Category)
	}
}

func TestHandleCategoryQueryWithoutKeywordShowsFullMenu(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "category", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowCategory, res.Action)
	assert.Equal(t, "", res.Data["category"])
	assert.Len(t, res.Data["items"], 5)
}

func TestHandleItemDetails(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "tell me about the tiramisu", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowItem, res.Action)
	item := res.Data["item"].(model.MenuItem)
	assert.Equal(t, 4, item.ID)
}

func TestHandleItemDetailsNotFound(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "tell me about the calzone", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionItemNotFound, res.Action)
	assert.Nil(t, res.Data)
}

func TestHandleOrderAddsToCart(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(ctx, "order two margherita", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionAddToCart, res.Action)
	assert.Equal(t, 2, res.Data["quantity"])

	sess := getSession(t, r, "alice")
	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 1, sess.Cart[0].MenuItemID)
	assert.Equal(t, 2, sess.Cart[0].Quantity)
	assert.Equal(t, model.StateBuilding, sess.State)
}

func TestHandleOrderSameItemTwiceMergesLines(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	_, err := e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
	require.NoError(t, err)
	_, err = e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
	require.NoError(t, err)

	sess := getSession(t, r, "alice")
	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 2, sess.Cart[0].Quantity)
}

func TestHandleOrderWithoutItemsPrompts(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(ctx, "i want something good", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionPromptItems, res.Action)

	sess := getSession(t, r, "alice")
	assert.Empty(t, sess.Cart)
	assert.Equal(t, model.StateIdle, sess.State)
}

func TestHandleConfirmEmptyCart(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(ctx, "confirm", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionCartEmpty, res.Action)
	assert.Nil(t, res.Data)

	sess := getSession(t, r, "alice")
	assert.Equal(t, model.StateIdle, sess.State)
}

func TestHandleConfirmKeepsCartUntilCleared(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	_, err := e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
	require.NoError(t, err)

	res, err := e.Handle(ctx, "yes", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionConfirmOrder, res.Action)
	assert.InDelta(t, 12.99, res.Data["total"], 0.001)
	assert.Equal(t, true, res.Data["requires_details"])

	// Confirming does not clear the cart; a retry still sees it.
	sess := getSession(t, r, "alice")
	require.Len(t, sess.Cart, 1)
	assert.Equal(t, model.StateAwaitingConfirmation, sess.State)

	again, err := e.Handle(ctx, "yes", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionConfirmOrder, again.Action)
}

func TestClearCartAfterConfirmFulfills(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	_, err := e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
	require.NoError(t, err)
	_, err = e.Handle(ctx, "yes", "alice", testMenu(), nil)
	require.NoError(t, err)

	require.NoError(t, e.ClearCart(ctx, "alice"))

	sess := getSession(t, r, "alice")
	assert.Empty(t, sess.Cart)
	assert.Equal(t, model.StateFulfilled, sess.State)

	res, err := e.Handle(ctx, "yes", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionCartEmpty, res.Action)
}

func TestClearCartUnknownUserIsNoop(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())
	assert.NoError(t, e.ClearCart(context.Background(), "nobody"))
}

func TestHandleCancel(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	_, err := e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
	require.NoError(t, err)

	res, err := e.Handle(ctx, "cancel", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionClearCart, res.Action)

	sess := getSession(t, r, "alice")
	assert.Empty(t, sess.Cart)
	assert.Equal(t, model.StateCancelled, sess.State)

	again, err := e.Handle(ctx, "cancel", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionNothingToCancel, again.Action)
}

func TestHandleTrackByExplicitID(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "track order #42", "alice", testMenu(), testOrders())
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowOrderStatus, res.Action)
	order := res.Data["order"].(model.Order)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, model.OrderDelivered, order.Status)
}

func TestHandleTrackUnknownID(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "track order #99", "alice", testMenu(), testOrders())
	require.NoError(t, err)
	assert.Equal(t, model.ActionOrderNotFound, res.Action)
	assert.Equal(t, 99, res.Data["order_id"])
}

func TestHandleTrackPrefersCallersNewestOrder(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	// Two orders carry this phone; the newer one (43) must win.
	res, err := e.Handle(context.Background(), "where is my order", "555-0142", testMenu(), testOrders())
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowOrderStatus, res.Action)
	order := res.Data["order"].(model.Order)
	assert.Equal(t, 43, order.ID)
}

func TestHandleTrackFallsBackToFirstRecord(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "where is my order", "nobody", testMenu(), testOrders())
	require.NoError(t, err)
	assert.Equal(t, model.ActionShowOrderStatus, res.Action)
	order := res.Data["order"].(model.Order)
	assert.Equal(t, 44, order.ID)
}

func TestHandleTrackNoOrders(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "where is my order", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionNoOrders, res.Action)
}

func TestHandleKnowledgeQuery(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "gluten", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionKBResponse, res.Action)
	entries := res.Data["entries"].([]knowledge.Entry)
	require.Len(t, entries, 2)
	assert.Equal(t, "Allergen Information", entries[0].Title)
	assert.Equal(t, entries[1].Title, res.Data["related"])
}

func TestHandleKnowledgeFallbackOnEmptyCorpus(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewStore())

	res, err := e.Handle(context.Background(), "gluten", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionKBFallback, res.Action)
	assert.Nil(t, res.Data)
}

func TestHandlePersonaQuery(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "who are you", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionPersonaResponse, res.Action)
	entry := res.Data["entry"].(knowledge.Entry)
	assert.Equal(t, "persona", entry.Category)
}

func TestHandleSupport(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(context.Background(), "speak to a human", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionSupport, res.Action)
	assert.Nil(t, res.Data)
}

func TestHandleUnknownIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	res, err := e.Handle(ctx, "xyzzy", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionHelp, res.Action)

	first := getSession(t, r, "alice")
	cartLen, state := len(first.Cart), first.State

	res, err = e.Handle(ctx, "xyzzy", "alice", testMenu(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ActionHelp, res.Action)

	second := getSession(t, r, "alice")
	assert.Equal(t, cartLen, len(second.Cart))
	assert.Equal(t, state, second.State)
	assert.Equal(t, model.IntentUnknown, second.LastIntent)
}

func TestHandleAnonymousUser(t *testing.T) {
	e, r := newTestEngine(knowledge.NewSeededStore())

	_, err := e.Handle(context.Background(), "hello", "", testMenu(), nil)
	require.NoError(t, err)

	sess := getSession(t, r, "anonymous")
	assert.Equal(t, "anonymous", sess.UserID)
}

func TestHandleRejectsMalformedSnapshots(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(knowledge.NewSeededStore())

	badMenu := []model.MenuItem{{ID: 1, Name: "Freebie"}} // missing price
	_, err := e.Handle(ctx, "hello", "alice", badMenu, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errx.ErrInvalidInput))

	badOrders := []model.Order{{Status: model.OrderPending}} // missing id
	_, err = e.Handle(ctx, "hello", "alice", testMenu(), badOrders)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errx.ErrInvalidInput))
}

func TestHandleConcurrentSameUser(t *testing.T) {
	ctx := context.Background()
	e, r := newTestEngine(knowledge.NewSeededStore())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sess := getSession(t, r, "alice")
	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 10, sess.Cart[0].Quantity)
}

// Exercises Handle mutating a session while the sweeper walks the repository,
// the configuration main runs. The race detector is the real assertion here;
// the ttl is generous so no turn is lost to eviction.
func TestHandleConcurrentWithSweeper(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemorySessionRepository(time.Hour, time.Minute)
	cfg := model.EngineConfig{RestaurantName: "AI Pizza Palace", KnowledgeLimit: 2}
	e := NewEngine(r, knowledge.NewSeededStore(), cfg, "anonymous")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, err := e.Handle(ctx, "order a margherita", "alice", testMenu(), nil)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			r.EvictIdle(time.Now().UTC())
		}
	}()
	wg.Wait()

	sess := getSession(t, r, "alice")
	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 200, sess.Cart[0].Quantity)
}

func TestUserLockShards(t *testing.T) {
	e, _ := newTestEngine(knowledge.NewSeededStore())

	assert.Same(t, e.userLock("alice"), e.userLock("alice"))

	distinct := make(map[*sync.Mutex]bool)
	for i := 0; i < 1000; i++ {
		distinct[e.userLock(fmt.Sprintf("user-%d", i))] = true
	}
	assert.LessOrEqual(t, len(distinct), lockShards)
}
