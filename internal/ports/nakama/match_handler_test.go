package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"doppelkopf/internal/app"
	"doppelkopf/internal/domain"
	"doppelkopf/internal/engine"
	"doppelkopf/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

type mockEconomy struct {
	balances map[string]int64
	updates  []ports.WalletUpdate
	calls    map[string]int
}

func (me *mockEconomy) GetBalance(ctx context.Context, userID string) (int64, error) {
	if me.calls == nil {
		me.calls = make(map[string]int)
	}
	me.calls[userID]++
	if balance, ok := me.balances[userID]; ok {
		return balance, nil
	}
	return 0, errors.New("balance not found")
}

func (me *mockEconomy) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	me.updates = append(me.updates, updates...)
	return nil
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot0 := botUserID(0)
	bot1 := botUserID(1)

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot0, "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot0, bot1, "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot0, "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{botUserID(0), botUserID(1), botUserID(2), botUserID(3)},
			want:  true,
		},
		{
			name:  "BotsAndEmpty",
			seats: []string{botUserID(0), "", botUserID(2), ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{botUserID(0), "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestTableLabelMarshal(t *testing.T) {
	tests := []struct {
		name     string
		label    tableLabel
		expected string
	}{
		{
			name:     "LobbyState",
			label:    tableLabel{Open: 3, State: "lobby", Game: "doppelkopf", Preset: "standard"},
			expected: `{"open":3,"state":"lobby","game":"doppelkopf","preset":"standard"}`,
		},
		{
			name:     "PlayingState",
			label:    tableLabel{Open: 0, State: "playing", Game: "doppelkopf", Preset: "simplified"},
			expected: `{"open":0,"state":"playing","game":"doppelkopf","preset":"simplified"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := json.Marshal(test.label)
			if err != nil {
				t.Fatalf("Failed to marshal label: %v", err)
			}
			if string(payload) != test.expected {
				t.Errorf("Got %s, want %s", payload, test.expected)
			}
		})
	}
}

func TestProcessBots_FillsOpenSeatsAfterDelay(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := &MatchState{
		Seats:               [domain.NumSeats]string{"user-1", "", "", ""},
		Presences:           make(map[string]runtime.Presence),
		BotAutoFillDelay:    2,
		LastSingleHumanTick: 8,
		Tick:                10,
	}

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if isBotUserId(seat) {
			botCount++
		}
	}

	if botCount != 3 {
		t.Fatalf("Expected 3 bots, got %d", botCount)
	}
	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("Expected no open seats after auto-fill, got %d", state.GetOpenSeatsCount())
	}
	if state.LastSingleHumanTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSingleHumanTick)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected table snapshot broadcast and label update after auto-fill")
	}
}

func TestProcessBots_BotPlaysAfterDelay(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	seats := [domain.NumSeats]string{botUserID(0), "user-1", botUserID(2), botUserID(3)}

	table := app.NewTableService(domain.RulesetSimplified())
	seed := uint32(7)
	game, _ := table.StartHand(seats, &seed)

	state := &MatchState{
		Seats:             seats,
		Presences:         make(map[string]runtime.Presence),
		Table:             table,
		Game:              game,
		BotPlayDelayTicks: 2,
		Tick:              100,
	}

	if !isBotUserId(state.Seats[game.CurrentSeat]) {
		t.Skipf("seed 7 opens on a human seat in this layout")
	}

	// First pass arms the delay.
	handler.processBots(context.Background(), state, dispatcher, noopLogger{})
	if state.BotWaitUntil != 102 {
		t.Fatalf("BotWaitUntil = %d, want 102", state.BotWaitUntil)
	}
	if len(state.Game.Trick) != 0 {
		t.Fatalf("bot played before its delay elapsed")
	}

	// Second pass at the due tick plays a card.
	state.Tick = 102
	handler.processBots(context.Background(), state, dispatcher, noopLogger{})
	if len(state.Game.Trick) != 1 {
		t.Fatalf("trick plays = %d, want 1", len(state.Game.Trick))
	}
	if state.ActionCount != 1 {
		t.Fatalf("ActionCount = %d, want 1", state.ActionCount)
	}
	if dispatcher.broadcastCount == 0 {
		t.Fatalf("Expected card play events to be dispatched")
	}
}

func TestBroadcastTableSnapshot_IncludesBalances(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := botUserID(1)
	economy := &mockEconomy{
		balances: map[string]int64{
			"user-1": 1200,
			botID:    5000,
		},
	}
	state := &MatchState{
		Seats:     [domain.NumSeats]string{"user-1", botID, "", ""},
		OwnerSeat: 0,
		Tick:      42,
		Presences: make(map[string]runtime.Presence),
		Economy:   economy,
	}

	handler.broadcastTableSnapshot(context.Background(), state, dispatcher, noopLogger{})

	if dispatcher.lastOpCode != OpTableSnapshot {
		t.Fatalf("Expected opcode %d, got %d", OpTableSnapshot, dispatcher.lastOpCode)
	}

	var snapshot tableSnapshot
	if err := json.Unmarshal(dispatcher.lastData, &snapshot); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}

	balances := make(map[string]int64)
	bots := make(map[string]bool)
	for _, player := range snapshot.Players {
		balances[player.UserID] = player.Balance
		bots[player.UserID] = player.IsBot
	}

	if got := balances["user-1"]; got != 1200 {
		t.Fatalf("Expected human balance 1200, got %d", got)
	}
	if got := balances[botID]; got != 5000 {
		t.Fatalf("Expected bot balance 5000, got %d", got)
	}
	if bots["user-1"] || !bots[botID] {
		t.Fatalf("IsBot flags wrong: %v", bots)
	}
	if economy.calls["user-1"] != 1 {
		t.Fatalf("Expected balance lookup for human, got %d", economy.calls["user-1"])
	}
}

func TestArmutExchangePickers(t *testing.T) {
	rs := domain.RulesetStandard()
	card := func(suit domain.Suit, rank domain.Rank) domain.Card {
		return domain.Card{Suit: suit, Rank: rank}
	}

	// The poor seat hands over its trumps first, then the cheapest side cards.
	give := pickArmutGive([]domain.Card{
		card(domain.SuitClubs, domain.RankNine),
		card(domain.SuitDiamonds, domain.RankAce),
		card(domain.SuitHearts, domain.RankKing),
		card(domain.SuitDiamonds, domain.RankJack),
	}, 0, rs)
	wantGive := [3]string{
		card(domain.SuitDiamonds, domain.RankJack).ID(),
		card(domain.SuitDiamonds, domain.RankAce).ID(),
		card(domain.SuitClubs, domain.RankNine).ID(),
	}
	if give != wantGive {
		t.Fatalf("pickArmutGive = %v, want %v", give, wantGive)
	}

	// The acceptor keeps its trumps and returns the cheapest side cards.
	back := pickArmutReturn([]domain.Card{
		card(domain.SuitDiamonds, domain.RankAce),
		card(domain.SuitHearts, domain.RankAce),
		card(domain.SuitClubs, domain.RankNine),
		card(domain.SuitSpades, domain.RankKing),
	}, 1, rs)
	wantBack := [3]string{
		card(domain.SuitClubs, domain.RankNine).ID(),
		card(domain.SuitSpades, domain.RankKing).ID(),
		card(domain.SuitHearts, domain.RankAce).ID(),
	}
	if back != wantBack {
		t.Fatalf("pickArmutReturn = %v, want %v", back, wantBack)
	}
}

func TestSettleHandPaysWinnersAndSkipsBots(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	economy := &mockEconomy{balances: map[string]int64{}}

	game := &engine.GameState{
		Seed:     99,
		Finished: true,
		TeamBySeat: [domain.NumSeats]domain.Team{
			domain.TeamRe, domain.TeamKontra, domain.TeamRe, domain.TeamKontra,
		},
	}
	state := &MatchState{
		Seats:       [domain.NumSeats]string{"user-0", "user-1", botUserID(2), "user-3"},
		Presences:   make(map[string]runtime.Presence),
		Game:        game,
		ActionCount: 48,
		Economy:     economy,
	}

	events := []app.Event{{
		Kind: app.EventKind(engine.EventHandFinished),
		Payload: engine.HandFinishedPayload{
			WinningTeam: domain.TeamRe,
			ScoreRe:     engine.TeamScore{Team: domain.TeamRe, GamePoints: 3},
			ScoreKontra: engine.TeamScore{Team: domain.TeamKontra},
			ForfeitSeat: domain.NoSeat,
		},
	}}

	handler.settleHand(context.Background(), state, dispatcher, noopLogger{}, events)

	if state.Game != nil {
		t.Fatalf("Expected table back in lobby after settlement")
	}
	if state.LastHandSeed != 99 || state.LastHandActions != 48 {
		t.Fatalf("Replay summary = (%d, %d), want (99, 48)", state.LastHandSeed, state.LastHandActions)
	}

	got := make(map[string]int64)
	for _, update := range economy.updates {
		got[update.UserID] = update.Amount
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 wallet updates (bots skipped), got %d", len(got))
	}
	if got["user-0"] != 300 || got["user-1"] != -300 || got["user-3"] != -300 {
		t.Fatalf("Wallet amounts wrong: %v", got)
	}
}
