package extract

import (
	"testing"

	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	"github.com/stretchr/testify/assert"
)

var catalog = []model.MenuItem{
	{ID: 1, Name: "Margherita Pizza", Price: 12.99, Category: "pizza"},
	{ID: 2, Name: "Pepperoni Pizza", Price: 14.99, Category: "pizza"},
	{ID: 3, Name: "BBQ Chicken Pizza", Price: 16.99, Category: "pizza"},
	{ID: 4, Name: "BBQ Rib Bites", Price: 9.99, Category: "side"},
	{ID: 5, Name: "Ice Cream Sundae", Price: 5.99, Category: "dessert"},
}

func TestItemsFullName(t *testing.T) {
	found := Items("one Margherita Pizza please", catalog)
	assert.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)
}

func TestItemsLeadingToken(t *testing.T) {
	found := Items("a margherita for me", catalog)
	assert.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)
}

func TestItemsSignificantToken(t *testing.T) {
	// "bbq" is too short to match alone; "chicken" carries the hit.
	found := Items("the bbq chicken one", catalog)
	assert.Len(t, found, 1)
	assert.Equal(t, 3, found[0].ID)
}

func TestItemsCompound(t *testing.T) {
	// Every significant token of "BBQ Rib Bites" is absent, so only the
	// first-two-token compound can match.
	found := Items("bbq rib to go", catalog)
	assert.Len(t, found, 1)
	assert.Equal(t, 4, found[0].ID)
}

func TestItemsShortTokenDoesNotMatch(t *testing.T) {
	// "ice" and "bbq" are at the length floor and must not match alone.
	assert.Empty(t, Items("ice please", catalog))
	assert.Empty(t, Items("bbq", catalog))
}

func TestItemsMultipleInMessageOrderByCatalog(t *testing.T) {
	found := Items("a margherita and a pepperoni", catalog)
	assert.Len(t, found, 2)
	assert.Equal(t, 1, found[0].ID)
	assert.Equal(t, 2, found[1].ID)
}

func TestItemsDeduplicated(t *testing.T) {
	found := Items("margherita margherita margherita", catalog)
	assert.Len(t, found, 1)
}

func TestItemsNoMatch(t *testing.T) {
	assert.Empty(t, Items("something tasty", catalog))
	assert.Empty(t, Items("", catalog))
	assert.Empty(t, Items("   ", catalog))
}

func TestItemsWhitespaceAndCase(t *testing.T) {
	found := Items("  BBQ   Rib   special  ", catalog)
	assert.Len(t, found, 1)
	assert.Equal(t, 4, found[0].ID)
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"two pepperoni pizzas", 2},
		{"I'd like TEN wings", 10},
		{"order 5", 5},
		{"pizza", 1},
		{"", 1},
		// Written numbers outrank digits regardless of position.
		{"five pizzas or maybe 2", 5},
		{"maybe 2, no, five", 5},
		// First digit run wins when no number word is present.
		{"12 plus 3", 12},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantity(tt.message))
		})
	}
}
