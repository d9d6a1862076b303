package domain

// NoSeat marks an absent seat reference (no holder, no partner, and so on).
const NoSeat = -1

// trumpOrder is the base-game trump ladder below the Dulle, highest first.
var trumpOrder = []string{
	"clubs-Q", "spades-Q", "hearts-Q", "diamonds-Q",
	"clubs-J", "spades-J", "hearts-J", "diamonds-J",
	"diamonds-A", "diamonds-10", "diamonds-K", "diamonds-9",
}

// queenJackOrder is the queen/jack ladder shared by the solo variants.
var queenJackOrder = []string{
	"clubs-Q", "spades-Q", "hearts-Q", "diamonds-Q",
	"clubs-J", "spades-J", "hearts-J", "diamonds-J",
}

func suitRankKey(c Card) string {
	return string(c.Suit) + "-" + string(c.Rank)
}

func orderIndex(order []string, c Card) int {
	key := suitRankKey(c)
	for i, entry := range order {
		if entry == key {
			return i
		}
	}
	return -1
}

func isDulle(c Card) bool {
	return c.Suit == SuitHearts && c.Rank == RankTen
}

func isFox(c Card) bool {
	return c.Suit == SuitDiamonds && c.Rank == RankAce
}

func isClubQueen(c Card) bool {
	return c.Suit == SuitClubs && c.Rank == RankQueen
}

// IsTrump reports whether the card belongs to the trump track of the active
// mode. In the base modes that is all diamonds, all queens and jacks, and
// the Ten of Hearts; solos narrow the set to their declared variant.
func IsTrump(card Card, mode GameMode) bool {
	if solo, ok := mode.(Solo); ok {
		switch solo.SoloType {
		case SoloJack:
			return card.Rank == RankJack
		case SoloQueen:
			return card.Rank == RankQueen
		case SoloQueenJack:
			return card.Rank == RankQueen || card.Rank == RankJack
		case SoloFleischlos:
			return false
		}
		if solo.SoloType.IsSuitSolo() {
			if card.Rank == RankQueen || card.Rank == RankJack {
				return true
			}
			return string(card.Suit) == string(solo.SoloType)
		}
	}

	// Normal, Hochzeit, Armut and the forced solos share the base track.
	if isDulle(card) {
		return true
	}
	if card.Rank == RankQueen || card.Rank == RankJack {
		return true
	}
	return card.Suit == SuitDiamonds
}

// TrumpPower returns the numeric strength of a trump card, zero for
// non-trumps. An active Schweine declaration makes the declaring seat's
// diamond aces outrank everything, then the Dulle, then the mode ladder.
func TrumpPower(card Card, schweineActiveSeat int, ownerSeat int, rs Ruleset, mode GameMode) int {
	if !IsTrump(card, mode) {
		return 0
	}

	if mode.Kind() != ModeSolo &&
		rs.Schweine.Mode != SchweineDisabled &&
		schweineActiveSeat != NoSeat &&
		schweineActiveSeat == ownerSeat &&
		isFox(card) {
		return 500
	}

	if solo, ok := mode.(Solo); ok {
		switch solo.SoloType {
		case SoloJack:
			order := []string{"clubs-J", "spades-J", "hearts-J", "diamonds-J"}
			if idx := orderIndex(order, card); idx >= 0 {
				return 300 - idx
			}
			return 0
		case SoloQueen:
			order := []string{"clubs-Q", "spades-Q", "hearts-Q", "diamonds-Q"}
			if idx := orderIndex(order, card); idx >= 0 {
				return 300 - idx
			}
			return 0
		case SoloQueenJack:
			if idx := orderIndex(queenJackOrder, card); idx >= 0 {
				return 300 - idx
			}
			return 0
		}
		if solo.SoloType.IsSuitSolo() {
			if idx := orderIndex(queenJackOrder, card); idx >= 0 {
				return 300 - idx
			}
			return 100 + SuitRankPower(card.Rank)
		}
	}

	if isDulle(card) {
		return 400
	}
	if idx := orderIndex(trumpOrder, card); idx >= 0 {
		return 300 - idx
	}
	return 0
}

// hasCardOnLeadTrack reports whether the hand can follow the lead: the trump
// track when the lead is trump, otherwise the lead's plain suit.
func hasCardOnLeadTrack(hand []Card, lead Card, mode GameMode) bool {
	if IsTrump(lead, mode) {
		for _, card := range hand {
			if IsTrump(card, mode) {
				return true
			}
		}
		return false
	}
	for _, card := range hand {
		if card.Suit == lead.Suit && !IsTrump(card, mode) {
			return true
		}
	}
	return false
}

// LegalCardsForPlay returns the cards the hand may legally play into the
// trick. A hand that cannot follow the lead's track may play anything.
func LegalCardsForPlay(hand []Card, trick []TrickPlay, mode GameMode) []Card {
	out := make([]Card, 0, len(hand))
	if len(trick) == 0 {
		return append(out, hand...)
	}

	lead := trick[0].Card
	if !hasCardOnLeadTrack(hand, lead, mode) {
		return append(out, hand...)
	}

	if IsTrump(lead, mode) {
		for _, card := range hand {
			if IsTrump(card, mode) {
				out = append(out, card)
			}
		}
		return out
	}

	for _, card := range hand {
		if card.Suit == lead.Suit && !IsTrump(card, mode) {
			out = append(out, card)
		}
	}
	return out
}

// IsLegalPlay reports whether the identified card is a legal play from the
// hand into the trick.
func IsLegalPlay(hand []Card, trick []TrickPlay, cardID string, mode GameMode) bool {
	for _, card := range LegalCardsForPlay(hand, trick, mode) {
		if card.ID() == cardID {
			return true
		}
	}
	return false
}

// CompareSameTrack reports whether the challenger beats the current winner
// when both plays are on the trump track. The Dulle-beats-Dulle policy is
// consulted first; identical copies otherwise stand with the earlier play.
func CompareSameTrack(challenger, current TrickPlay, trickIndex int, schweineActiveSeat int, rs Ruleset, mode GameMode) bool {
	// The Dulle reordering rule only applies in suit games.
	isSuitGame := true
	if solo, ok := mode.(Solo); ok {
		isSuitGame = solo.SoloType.IsSuitSolo()
	}

	if isSuitGame &&
		rs.DulleBeatsDulle != DulleNeverBeats &&
		isDulle(challenger.Card) && isDulle(current.Card) {
		switch rs.DulleBeatsDulle {
		case DulleAlwaysBeats:
			return true
		case DulleExceptLastTrick:
			return trickIndex < 12
		}
		return false
	}

	challengerPower := TrumpPower(challenger.Card, schweineActiveSeat, challenger.Seat, rs, mode)
	currentPower := TrumpPower(current.Card, schweineActiveSeat, current.Seat, rs, mode)

	if challengerPower != currentPower {
		return challengerPower > currentPower
	}

	// Equal power means the two physical copies of one card; the earlier
	// play stands.
	return false
}

// WinnerOfTrick scans the four plays in order and returns the winning play.
// A later trump beats any earlier non-trump; among trumps the higher power
// wins; among lead-suit cards the higher suit rank wins. Calling this on a
// trick without exactly four plays is a programming error.
func WinnerOfTrick(plays []TrickPlay, trickIndex int, schweineActiveSeat int, rs Ruleset, mode GameMode) TrickPlay {
	if len(plays) != NumSeats {
		panic("domain: WinnerOfTrick requires exactly 4 plays")
	}

	lead := plays[0].Card
	winner := plays[0]

	for _, challenger := range plays[1:] {
		challengerTrump := IsTrump(challenger.Card, mode)
		winnerTrump := IsTrump(winner.Card, mode)

		switch {
		case challengerTrump && !winnerTrump:
			winner = challenger
		case !challengerTrump && winnerTrump:
			// Off-track plays never win against a trump.
		case challengerTrump && winnerTrump:
			if CompareSameTrack(challenger, winner, trickIndex, schweineActiveSeat, rs, mode) {
				winner = challenger
			}
		case challenger.Card.Suit != lead.Suit:
			// Off-suit, off-trump plays never win.
		default:
			if SuitRankPower(challenger.Card.Rank) > SuitRankPower(winner.Card.Rank) {
				winner = challenger
			}
		}
	}

	return winner
}

// ComputeTeamsByQueens assigns Re to every seat holding a club queen and
// Kontra to the rest.
func ComputeTeamsByQueens(hands [NumSeats][]Card) [NumSeats]Team {
	var teams [NumSeats]Team
	for seat := 0; seat < NumSeats; seat++ {
		teams[seat] = TeamKontra
		for _, card := range hands[seat] {
			if isClubQueen(card) {
				teams[seat] = TeamRe
				break
			}
		}
	}
	return teams
}

// FindSchweineSeat returns the seat holding both diamond aces, or NoSeat.
func FindSchweineSeat(hands [NumSeats][]Card) int {
	for seat := 0; seat < NumSeats; seat++ {
		foxes := 0
		for _, card := range hands[seat] {
			if isFox(card) {
				foxes++
			}
		}
		if foxes == 2 {
			return seat
		}
	}
	return NoSeat
}

// FindHochzeitSeat returns the seat holding both club queens, or NoSeat.
func FindHochzeitSeat(hands [NumSeats][]Card) int {
	for seat := 0; seat < NumSeats; seat++ {
		queens := 0
		for _, card := range hands[seat] {
			if isClubQueen(card) {
				queens++
			}
		}
		if queens == 2 {
			return seat
		}
	}
	return NoSeat
}

// CountTrumps counts the trump cards in a hand under the base mode.
func CountTrumps(hand []Card, schweineActiveSeat int, ownerSeat int, rs Ruleset) int {
	count := 0
	for _, card := range hand {
		if TrumpPower(card, schweineActiveSeat, ownerSeat, rs, Normal{}) > 0 {
			count++
		}
	}
	return count
}

// FindArmutSeat returns the first seat with at most three trumps, or NoSeat.
func FindArmutSeat(hands [NumSeats][]Card, rs Ruleset) int {
	for seat := 0; seat < NumSeats; seat++ {
		if CountTrumps(hands[seat], NoSeat, seat, rs) <= 3 {
			return seat
		}
	}
	return NoSeat
}
