package model

// Intent is the classified purpose of a user message. The set is closed;
// messages that match no category classify as IntentUnknown.
type Intent string

const (
	IntentGreeting       Intent = "GREETING"
	IntentMenuQuery      Intent = "MENU_QUERY"
	IntentCategoryQuery  Intent = "CATEGORY_QUERY"
	IntentItemDetails    Intent = "ITEM_DETAILS"
	IntentTrackOrder     Intent = "TRACK_ORDER"
	IntentConfirmOrder   Intent = "CONFIRM_ORDER"
	IntentCancelOrder    Intent = "CANCEL_ORDER"
	IntentOrder          Intent = "ORDER_INTENT"
	IntentSupport        Intent = "SUPPORT"
	IntentPersonaQuery   Intent = "PERSONA_QUERY"
	IntentKnowledgeQuery Intent = "KB_QUERY"
	IntentUnknown        Intent = "UNKNOWN"
)

// String returns the wire name of the intent.
func (i Intent) String() string {
	return string(i)
}
