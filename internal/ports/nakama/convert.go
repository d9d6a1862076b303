package nakama

import (
	"encoding/json"

	"doppelkopf/internal/app"
	"doppelkopf/internal/domain"
)

// wireEvent is the JSON envelope every table and engine event crosses the
// wire in. Payload shapes are the engine's own JSON-tagged payload structs.
type wireEvent struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
}

func marshalEvent(ev app.Event) ([]byte, error) {
	return json.Marshal(wireEvent{Kind: string(ev.Kind), Payload: ev.Payload})
}

// opCodeFor picks the dispatch op code; private deal events use their own
// code so clients can route them without inspecting the envelope.
func opCodeFor(ev app.Event) int64 {
	if ev.Kind == app.EventHandDealt {
		return OpHandDealt
	}
	return OpTableEvent
}

// Client request payloads.

type startHandRequest struct {
	// Seed pins the shuffle for rematches and tests; omitted means random.
	Seed *uint32 `json:"seed,omitempty"`
}

type playCardRequest struct {
	CardID string `json:"cardId"`
}

type announceRequest struct {
	Declaration string `json:"declaration"`
}

type exchangeArmutRequest struct {
	FromArmutCardIDs    [3]string `json:"fromArmutCardIds"`
	FromAcceptedCardIDs [3]string `json:"fromAcceptedCardIds"`
}

// parseDeclaration maps a wire declaration string onto the domain constant,
// returning false for anything the rules do not know.
func parseDeclaration(s string) (domain.AnnouncementDeclaration, bool) {
	switch domain.AnnouncementDeclaration(s) {
	case domain.DeclareRe, domain.DeclareKontra, domain.DeclareNo90,
		domain.DeclareNo60, domain.DeclareNo30, domain.DeclareSchwarz,
		domain.DeclareNo9:
		return domain.AnnouncementDeclaration(s), true
	}
	return "", false
}
