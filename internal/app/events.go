package app

// EventKind identifies table-level events for Nakama dispatch. Engine events
// pass through with their own kind strings; the kinds below are synthesized
// by the table service because they carry hidden or lobby-only information.
type EventKind string

const (
	EventPlayerJoined EventKind = "player_joined"
	EventPlayerLeft   EventKind = "player_left"
	EventHandDealt    EventKind = "hand_dealt"
	EventTurnChanged  EventKind = "turn_changed"
)

// Event is a table or engine event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID string `json:"userId"`
	Seat   int    `json:"seat"`
	Owner  bool   `json:"owner"`
}

type PlayerLeftPayload struct {
	UserID string `json:"userId"`
	Seat   int    `json:"seat"`
}

// HandDealtPayload is only ever sent to the seat it belongs to.
type HandDealtPayload struct {
	Seat    int      `json:"seat"`
	CardIDs []string `json:"cardIds"`
}

type TurnChangedPayload struct {
	Seat       int `json:"seat"`
	TrickIndex int `json:"trickIndex"`
}
