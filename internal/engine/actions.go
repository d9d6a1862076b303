package engine

import "doppelkopf/internal/domain"

// ActionType discriminates the engine's action kinds.
type ActionType int

const (
	ActionStartHand ActionType = iota
	ActionAnnounce
	ActionAcceptArmut
	ActionExchangeArmutCards
	ActionAnnounceSchweine
	ActionPlayCard
)

// Action is one discrete input to the reducer. Only the fields relevant to
// the action type are read.
type Action struct {
	Type ActionType

	// Seat is the acting seat for Announce, AcceptArmut, AnnounceSchweine
	// and PlayCard.
	Seat int

	// Seed is optional for StartHand; a random seed is drawn when nil.
	Seed *uint32

	// Declaration is the announcement for Announce.
	Declaration domain.AnnouncementDeclaration

	// CardID is the played card for PlayCard.
	CardID string

	// Poverty exchange parameters for ExchangeArmutCards.
	ArmutSeat           int
	AcceptedBySeat      int
	FromArmutCardIDs    [3]string
	FromAcceptedCardIDs [3]string
}
