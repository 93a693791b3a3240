// Package classify turns free-text messages into intents using an ordered
// rule table. No scoring is involved: each pattern is a yes/no gate.
package classify

import (
	"regexp"
	"strings"

	"github.com/ai-pizza-palace/server/internal/dialogue/model"
)

// Pattern is one yes/no gate. It matches when the regexp matches and none of
// the exclusion substrings appear in the message. Exclusions stand in for
// negative lookahead, which RE2 does not support.
type Pattern struct {
	re      *regexp.Regexp
	exclude []string
}

func (p Pattern) match(message string) bool {
	if !p.re.MatchString(message) {
		return false
	}
	for _, sub := range p.exclude {
		if strings.Contains(message, sub) {
			return false
		}
	}
	return true
}

// Rule binds an intent to its pattern set. Within a rule any one matching
// pattern suffices.
type Rule struct {
	Intent   model.Intent
	Patterns []Pattern
}

func pattern(expr string, exclude ...string) Pattern {
	return Pattern{re: regexp.MustCompile(expr), exclude: exclude}
}

// rules is evaluated top to bottom and the first matching rule wins, so
// declaration order is a disambiguation mechanism. TrackOrder sits before
// OrderIntent on purpose: "order status" vocabulary must never read as a
// purchase, and the bare-word "order" rule excludes tracking phrasings that
// slipped past TrackOrder's own patterns.
var rules = []Rule{
	{model.IntentGreeting, []Pattern{
		pattern(`\b(hi|hello|hey|good\s*(morning|afternoon|evening)|greetings)\b`),
	}},
	{model.IntentMenuQuery, []Pattern{
		pattern(`\b(menu|show.*menu|what.*have|what.*offer|list.*items|food.*list|available|options)\b`),
	}},
	{model.IntentCategoryQuery, []Pattern{
		pattern(`\b(pizza|drink|dessert|side|appetizer|beverage|category)\b`),
	}},
	{model.IntentItemDetails, []Pattern{
		pattern(`\b(tell.*about|describe|what.*is|details|ingredients|info.*about)\b`),
	}},
	{model.IntentTrackOrder, []Pattern{
		pattern(`\b(track|where.*(is|my)|order\s*(status|#|number)|status.*order|how\s*long|my\s*order)\b`),
	}},
	{model.IntentConfirmOrder, []Pattern{
		pattern(`\b(yes|confirm|proceed|place.*order|go\s*ahead|sure|okay|ok|yep|yup)\b`),
	}},
	{model.IntentCancelOrder, []Pattern{
		pattern(`\b(cancel|remove|delete|never\s*mind|forget\s*it|don'?t\s*want)\b`),
	}},
	{model.IntentOrder, []Pattern{
		pattern(`\b(want|i'?d\s*like|get\s*me|give\s*me|buy|purchase|add.*cart)\b`),
		pattern(`\border\b`, "order status", "order #", "order number"),
	}},
	{model.IntentSupport, []Pattern{
		pattern(`\b(help|support|problem|issue|complaint|speak.*human|manager|wrong)\b`),
	}},
	{model.IntentPersonaQuery, []Pattern{
		pattern(`\b(who.*are.*you|are.*you.*(real|ai|bot|human)|what.*can.*you.*do|your.*name|do.*you.*eat)\b`),
	}},
	{model.IntentKnowledgeQuery, []Pattern{
		pattern(`\b(allergy|allergen|gluten|nutrition|calorie|ingredient|policy|refund|delivery.*time|hours|open|contact|phone|email|promo|deal|discount|coupon|loyalty|reward|custom|modify|topping|history|origin|fact|trivia|dough|rise|yeast|science|reaction|oven|temp|pineapple|deep.*dish|thin.*crust)\b`),
	}},
}

// Classify returns the first intent whose pattern set matches the message,
// or IntentUnknown when nothing matches. Matching is case-insensitive and
// free of side effects.
func Classify(message string) model.Intent {
	normalized := strings.TrimSpace(strings.ToLower(message))
	if normalized == "" {
		return model.IntentUnknown
	}

	for _, rule := range rules {
		for _, p := range rule.Patterns {
			if p.match(normalized) {
				return rule.Intent
			}
		}
	}
	return model.IntentUnknown
}
