package engine

import "doppelkopf/internal/domain"

// LeadKind tags what a renonce offender failed to follow.
type LeadKind string

const (
	LeadTrump LeadKind = "trump"
	LeadSuit  LeadKind = "suit"
)

// RenonceRecord stores one tolerated illegal play together with the cards
// that would have been legal at the time. The record matures into a proved
// forfeit the first time the offending seat later plays one of those ids.
type RenonceRecord struct {
	Seat               int         `json:"seat"`
	TrickIndex         int         `json:"trickIndex"`
	LeadKind           LeadKind    `json:"leadKind"`
	LeadSuit           domain.Suit `json:"leadSuit,omitempty"`
	LegalCardIDsAtTime []string    `json:"legalCardIdsAtTime"`
	Proved             bool        `json:"proved"`
	ProvedAtTrickIndex int         `json:"provedAtTrickIndex"`
}

// TeamTotals aggregates the authoritative per-team counters used for final
// scoring. They are recomputed from captured cards, never from callouts.
type TeamTotals struct {
	CardPoints  int `json:"cardPoints"`
	FuchsCaught int `json:"fuchsCaught"`
	Doppelkopf  int `json:"doppelkopf"`
	Karlchen    int `json:"karlchen"`
}

// TeamScore is one team's final game-point result with a human-readable
// breakdown.
type TeamScore struct {
	Team       domain.Team `json:"team"`
	GamePoints int         `json:"gamePoints"`
	Details    []string    `json:"details"`
}

// CalloutKind names the non-authoritative table hints.
type CalloutKind string

const (
	CalloutSchweine      CalloutKind = "Schweine"
	CalloutFuchsGefangen CalloutKind = "FuchsGefangen"
	CalloutDoppelkopf    CalloutKind = "Doppelkopf"
	CalloutKarlchen      CalloutKind = "Karlchen"
)

// SpecialCallout is an emitted table hint. Scoring is always recomputed from
// captured-card ownership, so callouts may include provisional information.
type SpecialCallout struct {
	Kind CalloutKind `json:"kind"`
	Seat int         `json:"seat"`
	Text string      `json:"text"`
}

// AnnouncementRecord is an immutable declaration made by a team.
type AnnouncementRecord struct {
	Seat        int                            `json:"seat"`
	Team        domain.Team                    `json:"team"`
	Declaration domain.AnnouncementDeclaration `json:"declaration"`
	TrickIndex  int                            `json:"trickIndex"`
}

// GameState is the sole mutable aggregate for one hand. It is created by
// StartHand, mutated exclusively through Reduce, and becomes immutable once
// Finished is set.
type GameState struct {
	Seed               uint32
	Mode               domain.GameMode
	SchweineHolderSeat int
	SchweineActiveSeat int

	Hands           [domain.NumSeats][]domain.Card
	Trick           []domain.TrickPlay
	TrickIndex      int
	CompletedTricks []domain.TrickResult
	CapturedBySeat  [domain.NumSeats][]domain.Card
	TeamBySeat      [domain.NumSeats]domain.Team
	CurrentSeat     int
	Finished        bool
	ForfeitSeat     int

	RenonceRecords  []RenonceRecord
	Announcements   []AnnouncementRecord
	SpecialCallouts []SpecialCallout

	SeenCards             map[string]bool
	OriginalOwnerByCardID map[string]int

	ScoreRe     *TeamScore
	ScoreKontra *TeamScore
}

// handIndex returns the position of the card id in the seat's hand, or -1.
func (s *GameState) handIndex(seat int, cardID string) int {
	for i, card := range s.Hands[seat] {
		if card.ID() == cardID {
			return i
		}
	}
	return -1
}

func nextSeat(seat int) int {
	return (seat + 1) % domain.NumSeats
}
