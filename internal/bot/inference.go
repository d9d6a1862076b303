package bot

import "doppelkopf/internal/domain"

// Standing is the bot's belief about one seat's team. "likely_re" is a soft
// read from play patterns; the hard values come from provable evidence.
type Standing string

const (
	StandingUnknown  Standing = "unknown"
	StandingRe       Standing = "re"
	StandingKontra   Standing = "kontra"
	StandingLikelyRe Standing = "likely_re"
)

// InferTeams derives a per-seat standing from the view, strongest evidence
// first: the mode itself, then the bot's own club queens, then public queen
// plays, then a soft read on repeated trump leads.
func InferTeams(view View) [domain.NumSeats]Standing {
	var teams [domain.NumSeats]Standing
	for seat := range teams {
		teams[seat] = StandingUnknown
	}

	switch mode := view.Mode.(type) {
	case domain.Solo:
		for seat := range teams {
			teams[seat] = StandingKontra
		}
		teams[mode.SoloSeat] = StandingRe
		return teams

	case domain.Hochzeit:
		teams[mode.HolderSeat] = StandingRe
		if mode.PartnerSeat != domain.NoSeat {
			for seat := range teams {
				if seat != mode.HolderSeat && seat != mode.PartnerSeat {
					teams[seat] = StandingKontra
				}
			}
			teams[mode.PartnerSeat] = StandingRe
		}
		return teams

	case domain.Armut:
		if mode.AcceptedBySeat != domain.NoSeat {
			for seat := range teams {
				if seat != mode.ArmutSeat && seat != mode.AcceptedBySeat {
					teams[seat] = StandingKontra
				}
			}
			teams[mode.ArmutSeat] = StandingRe
			teams[mode.AcceptedBySeat] = StandingRe
			return teams
		}
	}

	// Normal game (or an unexchanged poverty): start from the bot's own hand.
	ownQueens := 0
	for _, card := range view.Hand {
		if card.Suit == domain.SuitClubs && card.Rank == domain.RankQueen {
			ownQueens++
		}
	}
	switch ownQueens {
	case 2:
		// Silent solo: everyone else is Kontra.
		for seat := range teams {
			teams[seat] = StandingKontra
		}
		teams[view.Seat] = StandingRe
		return teams
	case 1:
		teams[view.Seat] = StandingRe
	default:
		teams[view.Seat] = StandingKontra
	}

	// Public queen plays pin seats down.
	var queenPlays [domain.NumSeats]int
	forEachPlay(view, func(play domain.TrickPlay) {
		if play.Card.Suit == domain.SuitClubs && play.Card.Rank == domain.RankQueen {
			queenPlays[play.Seat]++
		}
	})

	reSeats := make([]int, 0, 2)
	for seat, count := range queenPlays {
		if count == 0 {
			continue
		}
		if count == 2 {
			// Both queens from one seat: a revealed silent solo.
			for s := range teams {
				teams[s] = StandingKontra
			}
			teams[seat] = StandingRe
			return teams
		}
		teams[seat] = StandingRe
		reSeats = append(reSeats, seat)
	}
	if ownQueens == 1 && !containsSeat(reSeats, view.Seat) {
		reSeats = append(reSeats, view.Seat)
	}

	if len(reSeats) == 2 {
		// Both Re seats identified: the remaining two are Kontra.
		for seat := range teams {
			if !containsSeat(reSeats, seat) {
				teams[seat] = StandingKontra
			}
		}
		return teams
	}

	// Soft read: a seat that keeps leading trump is probably pulling for Re.
	var trumpLeads [domain.NumSeats]int
	for _, trick := range view.CompletedTricks {
		if len(trick.Plays) == 0 {
			continue
		}
		lead := trick.Plays[0]
		if domain.IsTrump(lead.Card, view.Mode) {
			trumpLeads[lead.Seat]++
		}
	}
	for seat := range teams {
		if teams[seat] == StandingUnknown && trumpLeads[seat] >= 2 {
			teams[seat] = StandingLikelyRe
		}
	}

	return teams
}

func forEachPlay(view View, fn func(domain.TrickPlay)) {
	for _, trick := range view.CompletedTricks {
		for _, play := range trick.Plays {
			fn(play)
		}
	}
	for _, play := range view.CurrentTrick {
		fn(play)
	}
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}

// sameTeam treats the soft likely_re read as Re. That is deliberately
// approximate; a wrong read costs the bot a smeared trick, not the game.
func sameTeam(a, b Standing) bool {
	if a == StandingUnknown || b == StandingUnknown {
		return false
	}
	return normalize(a) == normalize(b)
}

// opponents is not the negation of sameTeam: unknown seats are neither.
func opponents(a, b Standing) bool {
	if a == StandingUnknown || b == StandingUnknown {
		return false
	}
	return normalize(a) != normalize(b)
}

func normalize(s Standing) Standing {
	if s == StandingLikelyRe {
		return StandingRe
	}
	return s
}
