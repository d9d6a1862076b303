package bot

import (
	"fmt"
	"math"

	"doppelkopf/internal/domain"
)

// trickStatus is what the current trick looks like for one candidate card:
// who holds the trick right now, its point value, and whether playing the
// candidate would take it.
type trickStatus struct {
	winnerSeat int
	points     int
	wouldWin   bool
}

func isDulle(card domain.Card) bool {
	return card.Suit == domain.SuitHearts && card.Rank == domain.RankTen
}

func isFox(card domain.Card) bool {
	return card.Suit == domain.SuitDiamonds && card.Rank == domain.RankAce
}

// evaluateTrick replays the visible trick to find the current winner and
// whether the candidate would beat it.
func evaluateTrick(view View, candidate domain.Card) trickStatus {
	schweineSeat := view.SchweineActiveSeat

	if len(view.CurrentTrick) == 0 {
		return trickStatus{winnerSeat: view.Seat, wouldWin: true}
	}

	lead := view.CurrentTrick[0].Card
	winner := view.CurrentTrick[0]

	for _, play := range view.CurrentTrick[1:] {
		playTrump := domain.IsTrump(play.Card, view.Mode)
		winnerTrump := domain.IsTrump(winner.Card, view.Mode)

		switch {
		case playTrump && !winnerTrump:
			winner = play
		case !playTrump && winnerTrump:
		case playTrump && winnerTrump:
			if domain.CompareSameTrack(play, winner, view.TrickIndex, schweineSeat, view.Ruleset, view.Mode) {
				winner = play
			}
		case play.Card.Suit != lead.Suit:
		default:
			if domain.SuitRankPower(play.Card.Rank) > domain.SuitRankPower(winner.Card.Rank) {
				winner = play
			}
		}
	}

	points := domain.TrickPoints(view.CurrentTrick)

	candidateTrump := domain.IsTrump(candidate, view.Mode)
	winnerTrump := domain.IsTrump(winner.Card, view.Mode)

	wouldWin := false
	switch {
	case candidateTrump && !winnerTrump:
		wouldWin = true
	case !candidateTrump && winnerTrump:
	case candidateTrump && winnerTrump:
		challenger := domain.TrickPlay{Seat: view.Seat, Card: candidate}
		wouldWin = domain.CompareSameTrack(challenger, winner, view.TrickIndex, schweineSeat, view.Ruleset, view.Mode)
	case candidate.Suit == lead.Suit:
		wouldWin = domain.SuitRankPower(candidate.Rank) > domain.SuitRankPower(winner.Card.Rank)
	}

	return trickStatus{winnerSeat: winner.Seat, points: points, wouldWin: wouldWin}
}

// scoreCandidate builds the additive score of one legal card under the
// current view and team beliefs.
func scoreCandidate(view View, card domain.Card, teams [domain.NumSeats]Standing, tuning Tuning) float64 {
	status := evaluateTrick(view, card)
	myTeam := teams[view.Seat]
	winnerTeam := teams[status.winnerSeat]
	isLastPlayer := len(view.CurrentTrick) == domain.NumSeats-1
	trickIsTrump := len(view.CurrentTrick) > 0 && domain.IsTrump(view.CurrentTrick[0].Card, view.Mode)
	schweineSeat := view.SchweineActiveSeat

	score := 0.0

	// Conservation cost: quadratic, so the top trumps are expensive to spend
	// and low trumps are nearly free.
	power := float64(domain.SuitRankPower(card.Rank))
	if domain.IsTrump(card, view.Mode) {
		power = float64(domain.TrumpPower(card, schweineSeat, view.Seat, view.Ruleset, view.Mode))
	}
	score -= math.Pow(power/tuning.ConservationDivisor, 2)

	switch {
	case len(view.CurrentTrick) == 0:
		// Leading.
		if domain.IsTrump(card, view.Mode) {
			score += tuning.LeadTrumpBonus
			if isFox(card) && view.Mode.Kind() != domain.ModeSolo {
				score += tuning.LeadFoxBonus
			}
			if isDulle(card) {
				score += tuning.LeadDulleBonus
			}
		} else {
			if card.Rank == domain.RankAce {
				score += tuning.LeadAceBonus
			}
			if card.Rank == domain.RankTen {
				score += tuning.LeadTenBonus
			}
			if card.Rank == domain.RankNine {
				score -= tuning.LeadNinePenalty
			}
		}

	case status.wouldWin:
		score += tuning.WinBase
		score += float64(status.points) * tuning.WinPointsWeight

		// Trumping a plain-suit trick.
		if !trickIsTrump && domain.IsTrump(card, view.Mode) {
			score += tuning.StechenBonus
		}

		// A Dulle on the table must be contested.
		for _, play := range view.CurrentTrick {
			if isDulle(play.Card) && domain.IsTrump(play.Card, view.Mode) {
				score += tuning.DulleOnTableBonus
				break
			}
		}

		score += float64(domain.CardPoints(card.Rank)) * tuning.WinCardPointsWeight

		if sameTeam(myTeam, winnerTeam) {
			// Over-trumping a teammate who already holds the trick.
			if isLastPlayer {
				score -= tuning.OverTrumpLastPenalty
			} else if status.points < tuning.CheapTrickThreshold {
				score -= tuning.OverTrumpCheapPenalty
			} else {
				score -= tuning.OverTrumpPenalty
			}
		} else if opponents(myTeam, winnerTeam) {
			score += tuning.TakeFromOpponentBonus
		}

	default:
		// Cannot win: decide what to throw away.
		cardVal := float64(domain.CardPoints(card.Rank))
		fox := isFox(card)

		switch {
		case sameTeam(myTeam, winnerTeam):
			score += cardVal * tuning.SmearWeight
			if fox {
				score += tuning.SmearFoxBonus
			}
		case winnerTeam == StandingUnknown:
			score -= cardVal * tuning.UnknownDropWeight
			if fox {
				score -= tuning.UnknownFoxPenalty
			}
		case opponents(myTeam, winnerTeam):
			score -= cardVal * tuning.OpponentDropWeight
			if fox {
				score -= tuning.OpponentFoxPenalty
			}
		}

		if card.Rank == domain.RankNine {
			score += tuning.NineDumpBonus
		}
		if domain.IsTrump(card, view.Mode) {
			score -= tuning.TrumpWastePenalty
		}
	}

	// In the final tricks conservation matters less.
	if view.TrickIndex >= tuning.EndgameFromTrick {
		score += power * tuning.EndgameRelief
	}

	return score
}

// PickCard scores every legal card and returns the id of the strictly best
// one. Ties resolve to the earliest candidate in the legal-card list, which
// keeps the choice deterministic. A view with no legal cards is a caller
// contract violation.
func PickCard(view View) string {
	if len(view.LegalCards) == 0 {
		panic(fmt.Sprintf("bot: seat %d has no legal cards", view.Seat))
	}

	teams := InferTeams(view)

	best := view.LegalCards[0]
	bestScore := math.Inf(-1)
	for _, card := range view.LegalCards {
		if score := scoreCandidate(view, card, teams, DefaultTuning); score > bestScore {
			bestScore = score
			best = card
		}
	}

	return best.ID()
}

// ScoreCandidates exposes the per-card scores for harnesses that audit the
// bot's decisions. The order matches view.LegalCards.
func ScoreCandidates(view View) []float64 {
	teams := InferTeams(view)
	scores := make([]float64, len(view.LegalCards))
	for i, card := range view.LegalCards {
		scores[i] = scoreCandidate(view, card, teams, DefaultTuning)
	}
	return scores
}
