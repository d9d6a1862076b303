// Package engine implements the deterministic Doppelkopf hand reducer: one
// action in, the mutated state plus an ordered event list out. The rule
// oracle in internal/domain answers all legality and trick questions; the
// engine owns team discovery, renonce bookkeeping and scoring.
package engine

import (
	"fmt"
	"math/rand"

	"doppelkopf/internal/domain"
)

// RandomSeed draws a 32-bit seed for hands started without one.
func RandomSeed() uint32 {
	return rand.Uint32()
}

// detectInitialMode picks the opening mode by priority: marriage first, then
// poverty (if the ruleset keeps it), else normal. Teams are fixed where the
// mode implies them and follow the club queens otherwise.
func detectInitialMode(hands [domain.NumSeats][]domain.Card, rs domain.Ruleset) (domain.GameMode, [domain.NumSeats]domain.Team) {
	hochzeitSeat := domain.FindHochzeitSeat(hands)
	armutSeat := domain.FindArmutSeat(hands, rs)

	if hochzeitSeat != domain.NoSeat {
		if rs.Hochzeit == domain.HochzeitAsSolo {
			mode := domain.Solo{SoloSeat: hochzeitSeat, SoloType: domain.SoloForcedHochzeit}
			return mode, domain.SoloTeams(hochzeitSeat)
		}

		mode := domain.Hochzeit{
			HolderSeat:               hochzeitSeat,
			PartnerSeat:              domain.NoSeat,
			ClarificationEndsAtTrick: 3,
		}
		// Until a partner is found the holder stands alone.
		return mode, domain.SoloTeams(hochzeitSeat)
	}

	if armutSeat != domain.NoSeat && rs.Armut == domain.ArmutNormal {
		mode := domain.Armut{ArmutSeat: armutSeat, AcceptedBySeat: domain.NoSeat}
		return mode, domain.ComputeTeamsByQueens(hands)
	}

	return domain.Normal{}, domain.ComputeTeamsByQueens(hands)
}

// StartHand seeds, shuffles, deals and resolves the opening mode, returning
// the initial state and its events.
func StartHand(seed uint32, rs domain.Ruleset) (*GameState, []Event) {
	deck := domain.ShuffleDeck(seed)
	hands := domain.DealHands(deck)
	mode, teams := detectInitialMode(hands, rs)

	owners := make(map[string]int, domain.DeckSize)
	for seat := 0; seat < domain.NumSeats; seat++ {
		for _, card := range hands[seat] {
			owners[card.ID()] = seat
		}
	}

	state := &GameState{
		Seed:                  seed,
		Mode:                  mode,
		SchweineHolderSeat:    domain.FindSchweineSeat(hands),
		SchweineActiveSeat:    domain.NoSeat,
		Hands:                 hands,
		TrickIndex:            1,
		TeamBySeat:            teams,
		CurrentSeat:           0,
		ForfeitSeat:           domain.NoSeat,
		SeenCards:             make(map[string]bool, domain.DeckSize),
		OriginalOwnerByCardID: owners,
	}

	events := []Event{
		{Kind: EventHandStarted, Payload: HandStartedPayload{Seed: seed}},
		{Kind: EventGameModeInitialized, Payload: GameModeInitializedPayload{ModeKind: mode.Kind(), Mode: mode}},
	}

	if rs.Schweine.Mode == domain.SchweineAtStart && rs.Schweine.Announce == domain.SchweineAuto {
		if state.SchweineHolderSeat != domain.NoSeat {
			announceSchweine(state, rs, state.SchweineHolderSeat, SchweineTimingStart, &events)
		}
	}

	return state, events
}

// Reduce applies one action to the state and returns the resulting state and
// events. Invalid player actions are silent no-ops: unchanged state, empty
// event list.
func Reduce(state *GameState, action Action, rs domain.Ruleset) (*GameState, []Event) {
	switch action.Type {
	case ActionStartHand:
		seed := RandomSeed()
		if action.Seed != nil {
			seed = *action.Seed
		}
		return StartHand(seed, rs)

	case ActionAnnounceSchweine:
		var events []Event
		timing := SchweineTimingDuring
		if rs.Schweine.Mode == domain.SchweineAtStart {
			timing = SchweineTimingStart
		}
		announceSchweine(state, rs, action.Seat, timing, &events)
		return state, events

	case ActionAnnounce:
		return state, announceDeclaration(state, rs, action.Seat, action.Declaration)

	case ActionAcceptArmut:
		return state, acceptArmut(state, action.Seat)

	case ActionExchangeArmutCards:
		return state, exchangeArmutCards(state, action)

	case ActionPlayCard:
		return state, playCard(state, action.Seat, action.CardID, rs)
	}

	return state, nil
}

// LegalMoves returns the card ids the seat may currently play, empty unless
// it is that seat's turn in an unfinished hand.
func LegalMoves(state *GameState, seat int) []string {
	if state.Finished || seat != state.CurrentSeat {
		return nil
	}
	legal := domain.LegalCardsForPlay(state.Hands[seat], state.Trick, state.Mode)
	ids := make([]string, len(legal))
	for i, card := range legal {
		ids[i] = card.ID()
	}
	return ids
}

// ComputePublicScore recomputes both teams' authoritative totals from
// captured cards.
func ComputePublicScore(state *GameState) map[domain.Team]TeamTotals {
	return teamPoints(state)
}

func seatHasBothDiamondAces(hand []domain.Card) bool {
	count := 0
	for _, card := range hand {
		if card.Suit == domain.SuitDiamonds && card.Rank == domain.RankAce {
			count++
		}
	}
	return count == 2
}

func canAnnounceSchweine(state *GameState, rs domain.Ruleset, seat int, timing SchweineTiming) bool {
	if rs.Schweine.Mode == domain.SchweineDisabled {
		return false
	}
	if state.SchweineActiveSeat != domain.NoSeat {
		return false
	}
	if state.SchweineHolderSeat == domain.NoSeat || seat != state.SchweineHolderSeat {
		return false
	}
	if !seatHasBothDiamondAces(state.Hands[seat]) {
		return false
	}

	if timing == SchweineTimingStart {
		if rs.Schweine.Mode != domain.SchweineAtStart {
			return false
		}
		return len(state.CompletedTricks) == 0 && len(state.Trick) == 0 && state.TrickIndex == 1
	}

	if rs.Schweine.Mode != domain.SchweineWhilePlaying {
		return false
	}
	return seat == state.CurrentSeat && !state.Finished
}

func announceSchweine(state *GameState, rs domain.Ruleset, seat int, timing SchweineTiming, events *[]Event) {
	if !canAnnounceSchweine(state, rs, seat, timing) {
		return
	}

	state.SchweineActiveSeat = seat
	*events = append(*events, Event{
		Kind:    EventSchweineAnnounced,
		Payload: SchweineAnnouncedPayload{Seat: seat, Timing: timing},
	})

	if rs.EnableCallouts {
		callout := SpecialCallout{
			Kind: CalloutSchweine,
			Seat: seat,
			Text: fmt.Sprintf("SCHWEINE! Seat %d.", seat+1),
		}
		state.SpecialCallouts = append(state.SpecialCallouts, callout)
		*events = append(*events, Event{Kind: EventSpecialCallout, Payload: SpecialCalloutPayload{Callout: callout}})
	}
}

func canAnnounceDeclaration(state *GameState, rs domain.Ruleset, seat int, declaration domain.AnnouncementDeclaration) bool {
	if !rs.Announcements.Allows(declaration) {
		return false
	}
	if state.Finished || seat != state.CurrentSeat {
		return false
	}

	team := state.TeamBySeat[seat]
	if declaration == domain.DeclareRe && team != domain.TeamRe {
		return false
	}
	if declaration == domain.DeclareKontra && team != domain.TeamKontra {
		return false
	}

	for _, entry := range state.Announcements {
		if entry.Team == team && entry.Declaration == declaration {
			return false
		}
	}
	return true
}

func announceDeclaration(state *GameState, rs domain.Ruleset, seat int, declaration domain.AnnouncementDeclaration) []Event {
	if !canAnnounceDeclaration(state, rs, seat, declaration) {
		return nil
	}

	team := state.TeamBySeat[seat]
	record := AnnouncementRecord{
		Seat:        seat,
		Team:        team,
		Declaration: declaration,
		TrickIndex:  state.TrickIndex,
	}
	state.Announcements = append(state.Announcements, record)

	return []Event{{
		Kind: EventAnnouncementMade,
		Payload: AnnouncementMadePayload{
			Seat:        seat,
			Team:        team,
			Declaration: declaration,
			TrickIndex:  state.TrickIndex,
		},
	}}
}

func acceptArmut(state *GameState, seat int) []Event {
	if state.Finished || len(state.Trick) > 0 || len(state.CompletedTricks) > 0 {
		return nil
	}
	mode, ok := state.Mode.(domain.Armut)
	if !ok || mode.AcceptedBySeat != domain.NoSeat || mode.ArmutSeat == seat {
		return nil
	}

	mode.AcceptedBySeat = seat
	state.Mode = mode

	return []Event{{
		Kind:    EventArmutAccepted,
		Payload: ArmutAcceptedPayload{ArmutSeat: mode.ArmutSeat, AcceptedBySeat: seat},
	}}
}

// takeCardsByIDs removes the identified cards from the hand, returning nil
// (and leaving the hand untouched) if any id is missing.
func takeCardsByIDs(hand []domain.Card, ids [3]string) ([]domain.Card, []domain.Card) {
	taken := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, card := range hand {
			if card.ID() == id {
				taken = append(taken, card)
				found = true
				break
			}
		}
		if !found {
			return nil, hand
		}
	}

	remaining := make([]domain.Card, 0, len(hand)-len(ids))
	for _, card := range hand {
		skip := false
		for _, id := range ids {
			if card.ID() == id {
				skip = true
				break
			}
		}
		if !skip {
			remaining = append(remaining, card)
		}
	}
	return taken, remaining
}

func exchangeArmutCards(state *GameState, action Action) []Event {
	if state.Finished || len(state.Trick) > 0 || len(state.CompletedTricks) > 0 {
		return nil
	}
	mode, ok := state.Mode.(domain.Armut)
	if !ok || mode.ExchangeCompleted {
		return nil
	}
	if mode.ArmutSeat != action.ArmutSeat || mode.AcceptedBySeat != action.AcceptedBySeat {
		return nil
	}

	armutOut, armutRest := takeCardsByIDs(state.Hands[mode.ArmutSeat], action.FromArmutCardIDs)
	acceptedOut, acceptedRest := takeCardsByIDs(state.Hands[mode.AcceptedBySeat], action.FromAcceptedCardIDs)
	if armutOut == nil || acceptedOut == nil {
		return nil
	}

	state.Hands[mode.ArmutSeat] = append(armutRest, acceptedOut...)
	state.Hands[mode.AcceptedBySeat] = append(acceptedRest, armutOut...)

	mode.ExchangeCompleted = true
	state.Mode = mode
	state.TeamBySeat = domain.PairTeams(mode.ArmutSeat, mode.AcceptedBySeat)

	return []Event{{
		Kind: EventArmutExchanged,
		Payload: ArmutExchangedPayload{
			ArmutSeat:      mode.ArmutSeat,
			AcceptedBySeat: mode.AcceptedBySeat,
			CardsEachWay:   3,
		},
	}}
}

func hasPlayedClubQueen(state *GameState, seat int) bool {
	for _, trick := range state.CompletedTricks {
		for _, play := range trick.Plays {
			if play.Seat == seat && play.Card.Suit == domain.SuitClubs && play.Card.Rank == domain.RankQueen {
				return true
			}
		}
	}
	for _, play := range state.Trick {
		if play.Seat == seat && play.Card.Suit == domain.SuitClubs && play.Card.Rank == domain.RankQueen {
			return true
		}
	}
	return false
}

// teamsPubliclyKnown reports whether the Re/Kontra split is provable from
// public information alone.
func teamsPubliclyKnown(state *GameState) bool {
	switch mode := state.Mode.(type) {
	case domain.Solo:
		return true
	case domain.Hochzeit:
		return mode.PartnerSeat != domain.NoSeat
	case domain.Normal:
		seatsWithRe := 0
		for seat := 0; seat < domain.NumSeats; seat++ {
			if hasPlayedClubQueen(state, seat) {
				seatsWithRe++
			}
		}
		return seatsWithRe >= 2
	default:
		return false
	}
}

// evaluateRenonceProofs checks the seat's outstanding renonce records
// against the card it just played. A match proves the earlier violation and
// forfeits the hand.
func evaluateRenonceProofs(state *GameState, seat int, playedCardID string, events *[]Event) {
	for i := range state.RenonceRecords {
		record := &state.RenonceRecords[i]
		if record.Proved || record.Seat != seat {
			continue
		}

		matched := false
		for _, id := range record.LegalCardIDsAtTime {
			if id == playedCardID {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		record.Proved = true
		record.ProvedAtTrickIndex = state.TrickIndex
		state.ForfeitSeat = record.Seat

		*events = append(*events, Event{
			Kind: EventRenonceProved,
			Payload: RenonceProvedPayload{
				Seat:            record.Seat,
				TrickIndex:      record.TrickIndex,
				ProofTrickIndex: state.TrickIndex,
				Text: fmt.Sprintf("Renonce proved: Seat %d ignored obligation in trick %d.",
					record.Seat+1, record.TrickIndex),
			},
		})
	}
}

// evaluateSpecialCallouts detects Doppelkopf, Fuchs gefangen and Karlchen on
// a completed trick. The fox callout is suppressed only when the capture is
// friendly and the friendship is publicly provable; the ambiguity of a fox
// smeared to a secret partner is preserved on purpose.
func evaluateSpecialCallouts(state *GameState, winnerSeat int, events *[]Event, emit bool) {
	plays := state.Trick
	winnerTeam := state.TeamBySeat[winnerSeat]

	if points := domain.TrickPoints(plays); points >= 40 {
		callout := SpecialCallout{
			Kind: CalloutDoppelkopf,
			Seat: winnerSeat,
			Text: fmt.Sprintf("Doppelkopf! Seat %d captured %d points in one trick.", winnerSeat+1, points),
		}
		state.SpecialCallouts = append(state.SpecialCallouts, callout)
		if emit {
			*events = append(*events, Event{Kind: EventSpecialCallout, Payload: SpecialCalloutPayload{Callout: callout}})
		}
	}

	for _, play := range plays {
		if play.Card.Suit != domain.SuitDiamonds || play.Card.Rank != domain.RankAce {
			continue
		}

		ownerSeat := state.OriginalOwnerByCardID[play.Card.ID()]
		if ownerSeat == winnerSeat {
			continue
		}

		friendly := state.TeamBySeat[ownerSeat] == winnerTeam
		if friendly && teamsPubliclyKnown(state) {
			continue
		}

		callout := SpecialCallout{
			Kind: CalloutFuchsGefangen,
			Seat: winnerSeat,
			Text: fmt.Sprintf("Fuchs gefangen: Seat %d caught %s.", winnerSeat+1, domain.CardLabel(play.Card)),
		}
		state.SpecialCallouts = append(state.SpecialCallouts, callout)
		if emit {
			*events = append(*events, Event{Kind: EventSpecialCallout, Payload: SpecialCalloutPayload{Callout: callout}})
		}
	}

	if state.TrickIndex == 12 {
		for _, play := range plays {
			if play.Seat != winnerSeat {
				continue
			}
			if play.Card.Suit == domain.SuitClubs && play.Card.Rank == domain.RankJack {
				callout := SpecialCallout{
					Kind: CalloutKarlchen,
					Seat: winnerSeat,
					Text: fmt.Sprintf("Karlchen! Seat %d wins the final trick with Jack of Clubs.", winnerSeat+1),
				}
				state.SpecialCallouts = append(state.SpecialCallouts, callout)
				if emit {
					*events = append(*events, Event{Kind: EventSpecialCallout, Payload: SpecialCalloutPayload{Callout: callout}})
				}
			}
			break
		}
	}
}

// maybeResolveHochzeit evaluates the marriage partner search after a trick.
// A non-holder winner becomes the partner; if the holder keeps winning past
// the clarification deadline it is forced solo.
func maybeResolveHochzeit(state *GameState, winnerSeat, justFinishedTrick int, events *[]Event) {
	mode, ok := state.Mode.(domain.Hochzeit)
	if !ok || mode.PartnerSeat != domain.NoSeat {
		return
	}

	if winnerSeat != mode.HolderSeat {
		mode.PartnerSeat = winnerSeat
		state.Mode = mode
		state.TeamBySeat = domain.PairTeams(mode.HolderSeat, winnerSeat)
		*events = append(*events, Event{
			Kind: EventHochzeitPartnerFound,
			Payload: HochzeitPartnerFoundPayload{
				HolderSeat:  mode.HolderSeat,
				PartnerSeat: winnerSeat,
				TrickIndex:  justFinishedTrick,
			},
		})
		return
	}

	if justFinishedTrick >= mode.ClarificationEndsAtTrick {
		state.Mode = domain.Solo{SoloSeat: mode.HolderSeat, SoloType: domain.SoloForcedHochzeit}
		state.TeamBySeat = domain.SoloTeams(mode.HolderSeat)
		*events = append(*events, Event{
			Kind: EventHochzeitForcedSolo,
			Payload: HochzeitForcedSoloPayload{
				HolderSeat: mode.HolderSeat,
				TrickIndex: justFinishedTrick,
			},
		})
	}
}

// teamPoints aggregates authoritative totals from captured cards. Fox
// captures come from the original-owner map, Doppelkopf and Karlchen from
// the recorded callouts (those are unambiguous when detected).
func teamPoints(state *GameState) map[domain.Team]TeamTotals {
	totals := map[domain.Team]TeamTotals{
		domain.TeamRe:     {},
		domain.TeamKontra: {},
	}

	for seat := 0; seat < domain.NumSeats; seat++ {
		team := state.TeamBySeat[seat]
		entry := totals[team]
		for _, card := range state.CapturedBySeat[seat] {
			entry.CardPoints += domain.CardPoints(card.Rank)

			if card.Suit == domain.SuitDiamonds && card.Rank == domain.RankAce {
				ownerSeat := state.OriginalOwnerByCardID[card.ID()]
				if state.TeamBySeat[ownerSeat] != team {
					entry.FuchsCaught++
				}
			}
		}
		totals[team] = entry
	}

	// Fox callouts may contain false positives for secret partners, so only
	// the card check above counts them.
	for _, callout := range state.SpecialCallouts {
		team := state.TeamBySeat[callout.Seat]
		entry := totals[team]
		switch callout.Kind {
		case CalloutDoppelkopf:
			entry.Doppelkopf++
		case CalloutKarlchen:
			entry.Karlchen++
		}
		totals[team] = entry
	}

	return totals
}

func buildScore(team, winner domain.Team, totals map[domain.Team]TeamTotals) TeamScore {
	mine := totals[team]
	opp := totals[team.Opponent()]

	points := 0
	var details []string
	if winner == team {
		points++
		details = append(details, "Game won")
	}

	if opp.CardPoints < 90 {
		points++
		details = append(details, "Opponent under 90")
	}
	if opp.CardPoints < 60 {
		points++
		details = append(details, "Opponent under 60")
	}
	if opp.CardPoints < 30 {
		points++
		details = append(details, "Opponent under 30")
	}
	if opp.CardPoints == 0 {
		points++
		details = append(details, "Schwarz")
	}

	if mine.Doppelkopf > 0 {
		points += mine.Doppelkopf
		details = append(details, fmt.Sprintf("Doppelkopf x%d", mine.Doppelkopf))
	}
	if mine.FuchsCaught > 0 {
		points += mine.FuchsCaught
		details = append(details, fmt.Sprintf("Fuchs gefangen x%d", mine.FuchsCaught))
	}
	if mine.Karlchen > 0 {
		points += mine.Karlchen
		details = append(details, fmt.Sprintf("Karlchen x%d", mine.Karlchen))
	}

	return TeamScore{Team: team, GamePoints: points, Details: details}
}

// resolveHand finalizes the hand: either a fixed 3-0 forfeit split or
// card-point scoring with bonus game points.
func resolveHand(state *GameState) Event {
	totals := teamPoints(state)

	if state.ForfeitSeat != domain.NoSeat {
		losingTeam := state.TeamBySeat[state.ForfeitSeat]
		winningTeam := losingTeam.Opponent()

		forfeitScore := func(team domain.Team) *TeamScore {
			if team == winningTeam {
				return &TeamScore{Team: team, GamePoints: 3, Details: []string{"Win by renonce forfeit"}}
			}
			return &TeamScore{Team: team, GamePoints: 0, Details: []string{"Forfeit due to renonce"}}
		}
		state.ScoreRe = forfeitScore(domain.TeamRe)
		state.ScoreKontra = forfeitScore(domain.TeamKontra)
		state.Finished = true

		return Event{
			Kind: EventHandFinished,
			Payload: HandFinishedPayload{
				WinningTeam:      winningTeam,
				ScoreRe:          *state.ScoreRe,
				ScoreKontra:      *state.ScoreKontra,
				CardPointsRe:     totals[domain.TeamRe].CardPoints,
				CardPointsKontra: totals[domain.TeamKontra].CardPoints,
				ForfeitSeat:      state.ForfeitSeat,
			},
		}
	}

	winningTeam := domain.TeamKontra
	if totals[domain.TeamRe].CardPoints > totals[domain.TeamKontra].CardPoints {
		winningTeam = domain.TeamRe
	}

	scoreRe := buildScore(domain.TeamRe, winningTeam, totals)
	scoreKontra := buildScore(domain.TeamKontra, winningTeam, totals)
	state.ScoreRe = &scoreRe
	state.ScoreKontra = &scoreKontra
	state.Finished = true

	return Event{
		Kind: EventHandFinished,
		Payload: HandFinishedPayload{
			WinningTeam:      winningTeam,
			ScoreRe:          scoreRe,
			ScoreKontra:      scoreKontra,
			CardPointsRe:     totals[domain.TeamRe].CardPoints,
			CardPointsKontra: totals[domain.TeamKontra].CardPoints,
			ForfeitSeat:      domain.NoSeat,
		},
	}
}

func playCard(state *GameState, seat int, cardID string, rs domain.Ruleset) []Event {
	if state.Finished {
		return nil
	}
	if mode, ok := state.Mode.(domain.Armut); ok && !mode.ExchangeCompleted {
		return nil
	}
	if seat != state.CurrentSeat {
		return nil
	}

	cardIndex := state.handIndex(seat, cardID)
	if cardIndex < 0 {
		return nil
	}

	hand := state.Hands[seat]
	card := hand[cardIndex]
	legal := domain.IsLegalPlay(hand, state.Trick, cardID, state.Mode)
	if !legal && !rs.AllowIllegalPlays {
		return nil
	}

	var events []Event
	if rs.Schweine.Mode == domain.SchweineWhilePlaying && rs.Schweine.Announce == domain.SchweineAuto {
		announceSchweine(state, rs, seat, SchweineTimingDuring, &events)
	}

	if !legal {
		// Record the obligation: every card that would have satisfied the
		// lead track at this moment.
		legalCards := domain.LegalCardsForPlay(hand, state.Trick, state.Mode)
		legalIDs := make([]string, 0, len(legalCards))
		for _, c := range legalCards {
			legalIDs = append(legalIDs, c.ID())
		}

		record := RenonceRecord{
			Seat:               seat,
			TrickIndex:         state.TrickIndex,
			LeadKind:           LeadSuit,
			LegalCardIDsAtTime: legalIDs,
			ProvedAtTrickIndex: domain.NoSeat,
		}
		if len(state.Trick) > 0 {
			lead := state.Trick[0].Card
			if domain.IsTrump(lead, state.Mode) {
				record.LeadKind = LeadTrump
			} else {
				record.LeadSuit = lead.Suit
			}
		}
		state.RenonceRecords = append(state.RenonceRecords, record)

		events = append(events, Event{
			Kind:    EventIllegalPlayRecorded,
			Payload: IllegalPlayRecordedPayload{Seat: seat, TrickIndex: state.TrickIndex},
		})
	}

	state.Hands[seat] = append(hand[:cardIndex], hand[cardIndex+1:]...)
	state.Trick = append(state.Trick, domain.TrickPlay{Seat: seat, Card: card, WasLegal: legal})
	state.SeenCards[card.ID()] = true
	events = append(events, Event{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, CardID: card.ID(), WasLegal: legal},
	})

	evaluateRenonceProofs(state, seat, card.ID(), &events)
	if state.ForfeitSeat != domain.NoSeat {
		// A proved renonce ends the hand on the spot.
		events = append(events, resolveHand(state))
		return events
	}

	if len(state.Trick) < domain.NumSeats {
		state.CurrentSeat = nextSeat(seat)
		return events
	}

	winnerPlay := domain.WinnerOfTrick(state.Trick, state.TrickIndex, state.SchweineActiveSeat, rs, state.Mode)
	points := domain.TrickPoints(state.Trick)

	trickCopy := make([]domain.TrickPlay, len(state.Trick))
	copy(trickCopy, state.Trick)
	state.CompletedTricks = append(state.CompletedTricks, domain.TrickResult{
		Index:  state.TrickIndex,
		Plays:  trickCopy,
		Winner: winnerPlay.Seat,
		Points: points,
	})

	for _, play := range state.Trick {
		state.CapturedBySeat[winnerPlay.Seat] = append(state.CapturedBySeat[winnerPlay.Seat], play.Card)
	}

	events = append(events, Event{
		Kind:    EventTrickWon,
		Payload: TrickWonPayload{TrickIndex: state.TrickIndex, Winner: winnerPlay.Seat, Points: points},
	})

	maybeResolveHochzeit(state, winnerPlay.Seat, state.TrickIndex, &events)
	evaluateSpecialCallouts(state, winnerPlay.Seat, &events, rs.EnableCallouts)

	state.Trick = nil
	state.CurrentSeat = winnerPlay.Seat
	state.TrickIndex++

	if len(state.CompletedTricks) == 12 {
		events = append(events, resolveHand(state))
	}

	return events
}
