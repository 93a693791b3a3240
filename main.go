package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ai-pizza-palace/server/internal/core"
	"github.com/ai-pizza-palace/server/internal/dialogue"
	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	"github.com/ai-pizza-palace/server/internal/dialogue/repo"
	"github.com/ai-pizza-palace/server/internal/knowledge"
	logx "github.com/ai-pizza-palace/server/pkg/logger"
	pkgredis "github.com/ai-pizza-palace/server/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig defines all configurable parameters for the dialogue engine demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure. Redis is optional: when REDIS_URL is unset the demo
	// falls back to the in-memory session repository.
	RedisURL string `envconfig:"REDIS_URL"`

	// Engine configs
	Session model.SessionConfig
	Engine  model.EngineConfig
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	ttl, err := time.ParseDuration(envCfg.Session.TTL)
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL '%s': %v", envCfg.Session.TTL, err)
	}
	sweep, err := time.ParseDuration(envCfg.Session.SweepInterval)
	if err != nil {
		log.Fatalf("Invalid SESSION_SWEEP_INTERVAL '%s': %v", envCfg.Session.SweepInterval, err)
	}

	var sessions model.SessionRepository
	if envCfg.RedisURL != "" {
		redisCfg := pkgredis.Config{URL: envCfg.RedisURL, ReadTimeout: 3, WriteTimeout: 3, DialTimeout: 5}
		rdb, err := redisCfg.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		fmt.Println("Connected to Redis successfully")
		sessions = repo.NewRedisSessionRepository(rdb, ttl)
	} else {
		memory := repo.NewMemorySessionRepository(ttl, sweep)
		memory.StartSweeper(ctx)
		sessions = memory
	}

	engine := dialogue.NewEngine(sessions, knowledge.NewSeededStore(), envCfg.Engine, envCfg.Session.AnonymousID)

	menu := menuFixture()
	orders := orderFixture()

	testMessages := []struct {
		description string
		message     string
	}{
		{description: "Greeting", message: "Hey there!"},
		{description: "Browse the menu", message: "show me the menu"},
		{description: "Add an item", message: "I want two Pepperoni Pizzas"},
		{description: "Ask about allergens", message: "do you have allergen info?"},
		{description: "Confirm the order", message: "yes, confirm"},
		{description: "Track an order", message: "track order #2"},
	}

	userID := "555-0142"

	for i, test := range testMessages {
		fmt.Printf("\nTurn %d: %s\n", i+1, test.description)
		fmt.Printf("Message: %q\n", test.message)

		result, err := engine.Handle(ctx, test.message, userID, menu, orders)
		if err != nil {
			log.Fatalf("Failed to handle turn %d: %v", i+1, err)
		}

		fmt.Printf("  intent=%s action=%s\n", result.Intent, result.Action)
		for k, v := range result.Data {
			fmt.Printf("  data.%s=%v\n", k, v)
		}
	}

	// The confirm turn above leaves the cart intact; a real host would persist
	// the order first and then clear. Simulate that handoff.
	if err := engine.ClearCart(ctx, userID); err != nil {
		log.Fatalf("Failed to clear cart: %v", err)
	}
	fmt.Println("\nOrder persisted by host, cart cleared.")
}

func menuFixture() []model.MenuItem {
	return []model.MenuItem{
		{ID: 1, Name: "Margherita Pizza", Price: 12.99, Category: "Pizza", Description: "Classic tomato, fresh mozzarella, and aromatic basil leaves", Ingredients: "San Marzano Tomato Sauce, Mozzarella di Bufala, Fresh Basil, EVOO"},
		{ID: 2, Name: "Pepperoni Pizza", Price: 14.99, Category: "Pizza", Description: "Loaded with premium pepperoni and extra melted cheese", Ingredients: "Tomato Sauce, Mozzarella, Pecorino, Spicy Pepperoni"},
		{ID: 3, Name: "BBQ Chicken Pizza", Price: 16.99, Category: "Pizza", Description: "Grilled chicken, smoky BBQ sauce, red onions, and fresh cilantro", Ingredients: "BBQ Sauce, Mozzarella, Grilled Chicken, Red Onions, Cilantro"},
		{ID: 4, Name: "Meat Lovers Pizza", Price: 18.99, Category: "Pizza", Description: "Pepperoni, Italian sausage, crispy bacon, and glazed ham", Ingredients: "Tomato Sauce, Mozzarella, Pepperoni, Sausage, Bacon, Ham"},
		{ID: 5, Name: "Garlic Bread", Price: 4.99, Category: "Side", Description: "Crispy Italian bread with garlic butter and herbs", Ingredients: "Baguette, Garlic Butter, Parsley, Parmesan"},
		{ID: 6, Name: "Caesar Salad", Price: 7.99, Category: "Side", Description: "Crisp romaine, shaved parmesan, croutons, caesar dressing", Ingredients: "Romaine Lettuce, Parmesan, Croutons, Caesar Dressing"},
		{ID: 7, Name: "Fresh Lemonade", Price: 3.49, Category: "Drink", Description: "House-made lemonade with fresh lemon slices", Ingredients: "Lemon Juice, Water, Sugar, Ice"},
		{ID: 8, Name: "Tiramisu", Price: 7.99, Category: "Dessert", Description: "Classic Italian layered coffee-mascarpone dessert", Ingredients: "Ladyfingers, Mascarpone, Espresso, Cocoa Powder"},
	}
}

func orderFixture() []model.Order {
	now := time.Now().UTC()
	// Newest first, as the engine's tracking fallback expects.
	return []model.Order{
		{ID: 3, Status: model.OrderPreparing, TotalAmount: 32.97, CustomerPhone: "555-0101", CreatedAt: now.Add(-10 * time.Minute)},
		{ID: 2, Status: model.OrderConfirmed, TotalAmount: 14.99, CustomerPhone: "555-0142", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: 1, Status: model.OrderDelivered, TotalAmount: 21.98, CustomerPhone: "555-0142", CreatedAt: now.Add(-2 * time.Hour)},
	}
}
