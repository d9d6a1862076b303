package app

import (
	"errors"

	"doppelkopf/internal/domain"
	"doppelkopf/internal/engine"
)

var (
	ErrHandInProgress = errors.New("a hand is already in progress")
	ErrNoActiveHand   = errors.New("no active hand")
	ErrActionRejected = errors.New("action rejected by rules")
)

// TableService adapts the engine reducer to a seated table. It owns no state
// of its own: the caller holds the GameState and the seat assignments, the
// service translates actions into reducer calls and reducer events into
// dispatchable table events with recipients.
type TableService struct {
	rs domain.Ruleset
}

// NewTableService constructs a table service bound to one ruleset.
func NewTableService(rs domain.Ruleset) *TableService {
	return &TableService{rs: rs}
}

// Ruleset returns the ruleset the service reduces under.
func (s *TableService) Ruleset() domain.Ruleset {
	return s.rs
}

// StartHand deals a fresh hand for the seated players. seats maps seat index
// to user ID and is only used to target the private hand_dealt events.
// A nil seed lets the engine draw one.
func (s *TableService) StartHand(seats [domain.NumSeats]string, seed *uint32) (*engine.GameState, []Event) {
	handSeed := engine.RandomSeed()
	if seed != nil {
		handSeed = *seed
	}

	state, engineEvents := engine.StartHand(handSeed, s.rs)

	events := wrapEngineEvents(engineEvents)
	events = append(events, dealEvents(state, seats, 0, 1, 2, 3)...)
	events = append(events, turnChanged(state))
	return state, events
}

// Apply runs one action through the reducer. Invalid actions surface as
// ErrActionRejected so the transport can answer the sender; the state is
// untouched in that case.
func (s *TableService) Apply(state *engine.GameState, seats [domain.NumSeats]string, action engine.Action) ([]Event, error) {
	if state == nil {
		return nil, ErrNoActiveHand
	}
	if action.Type == engine.ActionStartHand {
		return nil, ErrHandInProgress
	}

	_, engineEvents := engine.Reduce(state, action, s.rs)
	if len(engineEvents) == 0 {
		return nil, ErrActionRejected
	}

	events := wrapEngineEvents(engineEvents)

	// A completed poverty exchange rewrites two hands, so both seats get a
	// fresh private deal event.
	for _, ev := range engineEvents {
		if ev.Kind == engine.EventArmutExchanged {
			p := ev.Payload.(engine.ArmutExchangedPayload)
			events = append(events, dealEvents(state, seats, p.ArmutSeat, p.AcceptedBySeat)...)
		}
	}

	if !state.Finished {
		events = append(events, turnChanged(state))
	}
	return events, nil
}

// wrapEngineEvents lifts engine events into dispatchable table events. Engine
// events carry no hidden information and broadcast to the whole table.
func wrapEngineEvents(engineEvents []engine.Event) []Event {
	events := make([]Event, 0, len(engineEvents)+2)
	for _, ev := range engineEvents {
		events = append(events, Event{Kind: EventKind(ev.Kind), Payload: ev.Payload})
	}
	return events
}

func dealEvents(state *engine.GameState, seats [domain.NumSeats]string, seatIndexes ...int) []Event {
	events := make([]Event, 0, len(seatIndexes))
	for _, seat := range seatIndexes {
		hand := state.Hands[seat]
		ids := make([]string, len(hand))
		for i, card := range hand {
			ids[i] = card.ID()
		}
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, CardIDs: ids},
			Recipients: []string{seats[seat]},
		})
	}
	return events
}

func turnChanged(state *engine.GameState) Event {
	return Event{
		Kind:    EventTurnChanged,
		Payload: TurnChangedPayload{Seat: state.CurrentSeat, TrickIndex: state.TrickIndex},
	}
}
