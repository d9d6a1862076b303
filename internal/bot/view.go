// Package bot picks cards for automated seats. It sees only what a human at
// the table would see: its own hand, the tricks, and the public announcement
// and callout history. It never reads other hands or the engine internals.
package bot

import (
	"doppelkopf/internal/domain"
	"doppelkopf/internal/engine"
)

// View is the public projection of the game handed to the bot. Everything in
// it is either the bot's own hand or table-visible information.
type View struct {
	Seat int

	Hand            []domain.Card
	CurrentTrick    []domain.TrickPlay
	CompletedTricks []domain.TrickResult
	LegalCards      []domain.Card
	TrickIndex      int

	Mode               domain.GameMode
	SchweineActiveSeat int
	Announcements      []engine.AnnouncementRecord
	SpecialCallouts    []engine.SpecialCallout

	Ruleset domain.Ruleset
}

// ViewFor projects the state for one seat. Slices are copied so the bot can
// never mutate engine state through its view.
func ViewFor(state *engine.GameState, seat int, rs domain.Ruleset) View {
	hand := make([]domain.Card, len(state.Hands[seat]))
	copy(hand, state.Hands[seat])

	trick := make([]domain.TrickPlay, len(state.Trick))
	copy(trick, state.Trick)

	completed := make([]domain.TrickResult, len(state.CompletedTricks))
	copy(completed, state.CompletedTricks)

	announcements := make([]engine.AnnouncementRecord, len(state.Announcements))
	copy(announcements, state.Announcements)

	callouts := make([]engine.SpecialCallout, len(state.SpecialCallouts))
	copy(callouts, state.SpecialCallouts)

	return View{
		Seat:               seat,
		Hand:               hand,
		CurrentTrick:       trick,
		CompletedTricks:    completed,
		LegalCards:         domain.LegalCardsForPlay(hand, trick, state.Mode),
		TrickIndex:         state.TrickIndex,
		Mode:               state.Mode,
		SchweineActiveSeat: state.SchweineActiveSeat,
		Announcements:      announcements,
		SpecialCallouts:    callouts,
		Ruleset:            rs,
	}
}
