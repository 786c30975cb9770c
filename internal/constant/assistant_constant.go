package constant

// Roles used on the Gemini wire format. The REST API only accepts "user" and
// "model"; inbound "assistant" roles are mapped before they reach the engine.
const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

const (
	LocaleEN = "en"
	LocaleJA = "ja"
)

// RecentTicketLimit bounds how many of the newest tickets are embedded into
// the per-request vector index.
const RecentTicketLimit = 10

// DefaultMaxToolTurns caps the tool-dispatch rounds in a single chat exchange.
// This is the only mechanism stopping a model that keeps requesting tools.
const DefaultMaxToolTurns = 1

// ToolResultLimit bounds how many tickets a single list_tickets call returns.
const ToolResultLimit = 5
