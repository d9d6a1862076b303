package domain

import "fmt"

// Suit is one of the four card suits.
type Suit string

const (
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
)

// Rank is a card rank in the Doppelkopf deck. Sevens, eights and below do
// not exist; the double deck runs A, 10, K, Q, J, 9 per suit.
type Rank string

const (
	RankAce   Rank = "A"
	RankTen   Rank = "10"
	RankKing  Rank = "K"
	RankQueen Rank = "Q"
	RankJack  Rank = "J"
	RankNine  Rank = "9"
)

// Suits lists all suits in canonical deck order.
var Suits = []Suit{SuitClubs, SuitSpades, SuitHearts, SuitDiamonds}

// Ranks lists all ranks in canonical deck order.
var Ranks = []Rank{RankAce, RankTen, RankKing, RankQueen, RankJack, RankNine}

// Card is one physical card. The deck holds two copies of every suit/rank
// combination; Copy (0 or 1) distinguishes them.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
	Copy int  `json:"copy"`
}

// ID returns the stable identity string "suit-rank-copy".
func (c Card) ID() string {
	return fmt.Sprintf("%s-%s-%d", c.Suit, c.Rank, c.Copy)
}

// CardPoints returns the card-point value of a rank. Every suit sums to 30,
// the full deck to 240.
func CardPoints(rank Rank) int {
	switch rank {
	case RankAce:
		return 11
	case RankTen:
		return 10
	case RankKing:
		return 4
	case RankQueen:
		return 3
	case RankJack:
		return 2
	default:
		return 0
	}
}

// SuitRankPower orders ranks within a plain suit trick: A > 10 > K > 9.
// Queens and jacks carry their suit power too, but are trump in every mode
// that keeps them off the suit track.
func SuitRankPower(rank Rank) int {
	switch rank {
	case RankAce:
		return 6
	case RankTen:
		return 5
	case RankKing:
		return 4
	case RankQueen:
		return 3
	case RankJack:
		return 2
	default:
		return 1
	}
}

// CardLabel renders a card for human-facing text such as renonce proofs and
// callouts.
func CardLabel(c Card) string {
	rankLabel := map[Rank]string{
		RankAce:   "Ace",
		RankTen:   "Ten",
		RankKing:  "King",
		RankQueen: "Queen",
		RankJack:  "Jack",
		RankNine:  "Nine",
	}
	suitLabel := map[Suit]string{
		SuitClubs:    "Clubs",
		SuitSpades:   "Spades",
		SuitHearts:   "Hearts",
		SuitDiamonds: "Diamonds",
	}
	return fmt.Sprintf("%s of %s", rankLabel[c.Rank], suitLabel[c.Suit])
}
