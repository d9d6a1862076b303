package bot

import (
	"testing"

	"doppelkopf/internal/domain"
	"doppelkopf/internal/engine"
)

func card(suit domain.Suit, rank domain.Rank) domain.Card {
	return domain.Card{Suit: suit, Rank: rank, Copy: 0}
}

func baseView(seat int) View {
	return View{
		Seat:               seat,
		Mode:               domain.Normal{},
		TrickIndex:         1,
		SchweineActiveSeat: domain.NoSeat,
		Ruleset:            domain.RulesetStandard(),
	}
}

func TestInferTeamsSolo(t *testing.T) {
	view := baseView(0)
	view.Mode = domain.Solo{SoloSeat: 2, SoloType: domain.SoloHearts}

	teams := InferTeams(view)
	expected := [domain.NumSeats]Standing{StandingKontra, StandingKontra, StandingRe, StandingKontra}
	if teams != expected {
		t.Errorf("teams = %v, want %v", teams, expected)
	}
}

func TestInferTeamsHochzeit(t *testing.T) {
	view := baseView(0)
	view.Mode = domain.Hochzeit{HolderSeat: 1, PartnerSeat: domain.NoSeat, ClarificationEndsAtTrick: 3}

	teams := InferTeams(view)
	if teams[1] != StandingRe {
		t.Errorf("holder should be Re, got %s", teams[1])
	}
	for _, seat := range []int{0, 2, 3} {
		if teams[seat] != StandingUnknown {
			t.Errorf("seat %d should be unknown before the partner is found, got %s", seat, teams[seat])
		}
	}

	view.Mode = domain.Hochzeit{HolderSeat: 1, PartnerSeat: 3, ClarificationEndsAtTrick: 3}
	teams = InferTeams(view)
	expected := [domain.NumSeats]Standing{StandingKontra, StandingRe, StandingKontra, StandingRe}
	if teams != expected {
		t.Errorf("teams = %v, want %v", teams, expected)
	}
}

func TestInferTeamsOwnQueens(t *testing.T) {
	tests := []struct {
		name     string
		hand     []domain.Card
		expected Standing
	}{
		{
			name:     "One club queen means Re",
			hand:     []domain.Card{card(domain.SuitClubs, domain.RankQueen), card(domain.SuitHearts, domain.RankNine)},
			expected: StandingRe,
		},
		{
			name:     "No club queen means Kontra",
			hand:     []domain.Card{card(domain.SuitSpades, domain.RankQueen), card(domain.SuitHearts, domain.RankNine)},
			expected: StandingKontra,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := baseView(0)
			view.Hand = tt.hand
			teams := InferTeams(view)
			if teams[0] != tt.expected {
				t.Errorf("own standing = %s, want %s", teams[0], tt.expected)
			}
		})
	}
}

func TestInferTeamsSilentSoloFromOwnHand(t *testing.T) {
	view := baseView(0)
	view.Hand = []domain.Card{
		{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 0},
		{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 1},
	}

	teams := InferTeams(view)
	expected := [domain.NumSeats]Standing{StandingRe, StandingKontra, StandingKontra, StandingKontra}
	if teams != expected {
		t.Errorf("teams = %v, want %v", teams, expected)
	}
}

func TestInferTeamsFromPublicQueenPlays(t *testing.T) {
	view := baseView(0)
	view.Hand = []domain.Card{card(domain.SuitHearts, domain.RankNine)}
	view.CompletedTricks = []domain.TrickResult{
		{
			Index: 1,
			Plays: []domain.TrickPlay{
				{Seat: 1, Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 0}},
				{Seat: 2, Card: card(domain.SuitSpades, domain.RankNine)},
				{Seat: 3, Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 1}},
				{Seat: 0, Card: card(domain.SuitDiamonds, domain.RankNine)},
			},
			Winner: 1,
		},
	}

	teams := InferTeams(view)
	expected := [domain.NumSeats]Standing{StandingKontra, StandingRe, StandingKontra, StandingRe}
	if teams != expected {
		t.Errorf("teams = %v, want %v", teams, expected)
	}
}

func TestInferTeamsRevealedSilentSolo(t *testing.T) {
	view := baseView(0)
	view.Hand = []domain.Card{card(domain.SuitHearts, domain.RankNine)}
	view.CompletedTricks = []domain.TrickResult{
		{
			Index: 1,
			Plays: []domain.TrickPlay{
				{Seat: 2, Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 0}},
				{Seat: 3, Card: card(domain.SuitSpades, domain.RankNine)},
				{Seat: 0, Card: card(domain.SuitDiamonds, domain.RankNine)},
				{Seat: 1, Card: card(domain.SuitHearts, domain.RankKing)},
			},
			Winner: 2,
		},
		{
			Index: 2,
			Plays: []domain.TrickPlay{
				{Seat: 2, Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 1}},
				{Seat: 3, Card: card(domain.SuitSpades, domain.RankKing)},
				{Seat: 0, Card: card(domain.SuitDiamonds, domain.RankKing)},
				{Seat: 1, Card: card(domain.SuitHearts, domain.RankAce)},
			},
			Winner: 2,
		},
	}

	teams := InferTeams(view)
	expected := [domain.NumSeats]Standing{StandingKontra, StandingKontra, StandingRe, StandingKontra}
	if teams != expected {
		t.Errorf("teams = %v, want %v", teams, expected)
	}
}

func TestInferTeamsSoftTrumpLeadRead(t *testing.T) {
	view := baseView(0)
	view.Hand = []domain.Card{card(domain.SuitClubs, domain.RankQueen)}
	view.CompletedTricks = []domain.TrickResult{
		{
			Index: 1,
			Plays: []domain.TrickPlay{
				{Seat: 3, Card: card(domain.SuitDiamonds, domain.RankNine)},
				{Seat: 0, Card: card(domain.SuitDiamonds, domain.RankKing)},
				{Seat: 1, Card: card(domain.SuitDiamonds, domain.RankTen)},
				{Seat: 2, Card: card(domain.SuitDiamonds, domain.RankAce)},
			},
			Winner: 2,
		},
		{
			Index: 2,
			Plays: []domain.TrickPlay{
				{Seat: 3, Card: card(domain.SuitSpades, domain.RankJack)},
				{Seat: 0, Card: card(domain.SuitHearts, domain.RankJack)},
				{Seat: 1, Card: card(domain.SuitDiamonds, domain.RankQueen)},
				{Seat: 2, Card: card(domain.SuitClubs, domain.RankJack)},
			},
			Winner: 2,
		},
	}

	teams := InferTeams(view)
	if teams[3] != StandingLikelyRe {
		t.Errorf("repeated trump leader should read likely_re, got %s", teams[3])
	}
	if teams[0] != StandingRe {
		t.Errorf("own queen should still pin the bot itself, got %s", teams[0])
	}
}

func TestStandingBlending(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Standing
		same, opp bool
	}{
		{"Re with Re", StandingRe, StandingRe, true, false},
		{"Re with Kontra", StandingRe, StandingKontra, false, true},
		{"Likely Re counts as Re", StandingLikelyRe, StandingRe, true, false},
		{"Likely Re against Kontra", StandingLikelyRe, StandingKontra, false, true},
		{"Unknown is neither", StandingUnknown, StandingRe, false, false},
		{"Both unknown", StandingUnknown, StandingUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameTeam(tt.a, tt.b); got != tt.same {
				t.Errorf("sameTeam(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.same)
			}
			if got := opponents(tt.a, tt.b); got != tt.opp {
				t.Errorf("opponents(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.opp)
			}
		})
	}
}

func TestPickCardPanicsWithoutLegalCards(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on empty legal cards")
		}
	}()
	PickCard(baseView(0))
}

func TestPickCardReturnsBestScore(t *testing.T) {
	rs := domain.RulesetStandard()
	state, _ := engine.StartHand(808, rs)
	if mode, ok := state.Mode.(domain.Armut); ok && !mode.ExchangeCompleted {
		t.Skipf("seed 808 no longer deals a playable opening")
	}

	view := ViewFor(state, state.CurrentSeat, rs)
	chosenID := PickCard(view)
	scores := ScoreCandidates(view)

	chosenScore := 0.0
	found := false
	for i, c := range view.LegalCards {
		if c.ID() == chosenID {
			chosenScore = scores[i]
			found = true
		}
	}
	if !found {
		t.Fatalf("chosen card %s is not among the legal cards", chosenID)
	}
	for i, score := range scores {
		if score > chosenScore {
			t.Errorf("card %s scores %f above chosen %f", view.LegalCards[i].ID(), score, chosenScore)
		}
	}
}

func TestPickCardDeterministic(t *testing.T) {
	rs := domain.RulesetSimplified()
	state, _ := engine.StartHand(4242, rs)
	view := ViewFor(state, state.CurrentSeat, rs)

	first := PickCard(view)
	for i := 0; i < 5; i++ {
		if got := PickCard(view); got != first {
			t.Fatalf("PickCard not deterministic: %s vs %s", got, first)
		}
	}
}

func TestBotPlaysFullHand(t *testing.T) {
	rs := domain.RulesetSimplified()
	state, _ := engine.StartHand(1337, rs)

	for !state.Finished {
		seat := state.CurrentSeat
		view := ViewFor(state, seat, rs)
		cardID := PickCard(view)
		_, events := engine.Reduce(state, engine.Action{
			Type: engine.ActionPlayCard, Seat: seat, CardID: cardID,
		}, rs)
		if len(events) == 0 {
			t.Fatalf("bot picked a rejected card %s for seat %d", cardID, seat)
		}
	}

	if len(state.CompletedTricks) != 12 {
		t.Errorf("bot hand finished after %d tricks", len(state.CompletedTricks))
	}
}

func TestSmearVersusDumpPreference(t *testing.T) {
	// Seat 3 cannot win the heart trick. With a Re teammate holding it the
	// bot should smear the ace; with an opponent holding it the bot should
	// throw the worthless nine.
	makeView := func(holderQueen bool) View {
		view := baseView(3)
		view.Hand = []domain.Card{
			card(domain.SuitSpades, domain.RankAce),
			card(domain.SuitSpades, domain.RankNine),
		}
		view.LegalCards = view.Hand
		view.TrickIndex = 2
		leadPlays := []domain.TrickPlay{
			{Seat: 0, Card: card(domain.SuitHearts, domain.RankAce)},
			{Seat: 1, Card: card(domain.SuitHearts, domain.RankNine)},
			{Seat: 2, Card: card(domain.SuitHearts, domain.RankKing)},
		}
		view.CurrentTrick = leadPlays

		firstTrick := domain.TrickResult{
			Index: 1,
			Plays: []domain.TrickPlay{
				{Seat: 0, Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 0}},
				{Seat: 1, Card: card(domain.SuitDiamonds, domain.RankNine)},
				{Seat: 2, Card: card(domain.SuitDiamonds, domain.RankKing)},
				{Seat: 3, Card: card(domain.SuitDiamonds, domain.RankTen)},
			},
			Winner: 0,
		}
		if holderQueen {
			// Seat 3 also holds a queen: seat 0 is a known teammate.
			view.Hand = append(view.Hand, domain.Card{Suit: domain.SuitClubs, Rank: domain.RankQueen, Copy: 1})
			view.LegalCards = view.Hand[:2]
		}
		view.CompletedTricks = []domain.TrickResult{firstTrick}
		return view
	}

	smearView := makeView(true)
	if got := PickCard(smearView); got != "spades-A-0" {
		t.Errorf("teammate trick: picked %s, want the smeared ace", got)
	}

	dumpView := makeView(false)
	if got := PickCard(dumpView); got != "spades-9-0" {
		t.Errorf("opponent trick: picked %s, want the cheap nine", got)
	}
}
