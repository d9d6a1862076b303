package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"doppelkopf/internal/app"
	"doppelkopf/internal/bot"
	"doppelkopf/internal/config"
	"doppelkopf/internal/domain"
	"doppelkopf/internal/engine"
	"doppelkopf/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	MatchLabelKey_OpenSeats = "open" // Key for the open seats in the match label

	botUserPrefix = "bot:"

	// goldPerGamePoint converts a hand's game points into wallet gold.
	goldPerGamePoint = 100
)

var botDisplayNames = [domain.NumSeats]string{"Anna", "Bernd", "Clara", "Dieter"}

// tableLabel is the JSON match label advertised for listing queries.
type tableLabel struct {
	Open   int    `json:"open"`
	State  string `json:"state"`
	Game   string `json:"game"`
	Preset string `json:"preset"`
}

// playerState is one seat's entry in the broadcast table snapshot.
type playerState struct {
	UserID         string `json:"userId"`
	Seat           int    `json:"seat"`
	IsOwner        bool   `json:"isOwner"`
	IsBot          bool   `json:"isBot"`
	CardsRemaining int    `json:"cardsRemaining"`
	DisplayName    string `json:"displayName"`
	Balance        int64  `json:"balance"`
}

type tableSnapshot struct {
	Seats     []string      `json:"seats"`
	OwnerSeat int           `json:"ownerSeat"`
	Tick      int64         `json:"tick"`
	Players   []playerState `json:"players"`
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [domain.NumSeats]string     `json:"seats"`      // Array of user IDs, empty string means seat is empty
	OwnerSeat int                         `json:"owner_seat"` // Seat index of the match owner
	Preset    string                      `json:"preset"`     // Table preset id resolved at init
	Tick      int64                       `json:"tick"`       // Current tick of the match for turn-based logic
	Presences map[string]runtime.Presence `json:"-"`          // Map UserId -> Presence for targeted messaging
	Table     *app.TableService           `json:"-"`          // Table service driving the hand reducer
	Game      *engine.GameState           `json:"-"`          // Current active hand state (nil if in lobby)

	ActionCount int `json:"action_count"` // Reducer actions applied to the current hand

	// LastHandSeed/LastHandActions describe the most recently finished hand
	// so the replay token RPC can sign it.
	LastHandSeed    uint32 `json:"last_hand_seed"`
	LastHandActions int    `json:"last_hand_actions"`

	BotAutoFillDelay    int64 `json:"bot_auto_fill_delay"` // Ticks to wait before auto-filling with bots
	BotPlayDelayTicks   int64 `json:"bot_play_delay"`      // Ticks a bot waits before acting
	BotWaitUntil        int64 `json:"bot_wait_until"`      // Tick when the bot should act
	LastSingleHumanTick int64 `json:"last_single_human_tick"`

	Economy ports.EconomyPort `json:"-"` // Interface to Nakama wallet
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seatUserID := range ms.Seats {
		if seatUserID != "" && seatUserID == userID {
			return i
		}
	}
	return domain.NoSeat
}

func botUserID(seat int) string {
	return fmt.Sprintf("%sseat-%d", botUserPrefix, seat)
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return strings.HasPrefix(userId, botUserPrefix)
}

func botDisplayName(seat int) string {
	return botDisplayNames[seat%len(botDisplayNames)]
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	preset := ""
	if p, ok := params["preset"].(string); ok {
		preset = p
	}

	state := &MatchState{
		Tick:              time.Now().Unix(),
		Presences:         make(map[string]runtime.Presence),
		Preset:            preset,
		Table:             app.NewTableService(config.GetRuleset(preset)),
		OwnerSeat:         -1,
		BotAutoFillDelay:  5,
		BotPlayDelayTicks: 2,
		Economy:           NewNakamaEconomyAdapter(nk),
	}

	if cfg := config.GetGameConfig(); cfg != nil {
		if cfg.BotAutoFillDelaySeconds > 0 {
			state.BotAutoFillDelay = int64(cfg.BotAutoFillDelaySeconds)
		}
		if cfg.BotPlayDelayTicks > 0 {
			state.BotPlayDelayTicks = int64(cfg.BotPlayDelayTicks)
		}
		if preset == "" {
			state.Preset = cfg.DefaultPreset
		}
	}

	labelBytes, err := json.Marshal(tableLabel{
		Open:   state.GetOpenSeatsCount(),
		State:  "lobby",
		Game:   "doppelkopf",
		Preset: state.Preset,
	})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1 // 1 tick per second
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if no hand is running)
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Table full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign seat: try empty seats first, then bots (if lobby)
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastTableSnapshot(ctx, matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserId := range matchState.Seats {
			if seatUserId != p.GetUserId() {
				continue
			}
			if matchState.Game != nil && !matchState.Game.Finished {
				// A running hand must stay four-handed; a bot takes over.
				matchState.Seats[i] = botUserID(i)
				logger.Info("MatchLeave: User %s left mid-hand, bot takes seat %d.", p.GetUserId(), i)
			} else {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
			}
			break
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartHand:
			mh.handleStartHand(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		case OpAnnounce:
			mh.handleAnnounce(ctx, matchState, dispatcher, logger, msg)
		case OpAnnounceSchweine:
			mh.handleAnnounceSchweine(ctx, matchState, dispatcher, logger, msg)
		case OpAcceptArmut:
			mh.handleAcceptArmut(ctx, matchState, dispatcher, logger, msg)
		case OpExchangeArmutCards:
			mh.handleExchangeArmutCards(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processBots(ctx, matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill the lobby with bots once humans have waited long enough.
	if state.Game == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount >= 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSingleHumanTick == 0 {
				state.LastSingleHumanTick = state.Tick
				logger.Debug("processBots: Waiting humans detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSingleHumanTick >= state.BotAutoFillDelay {
				added := false
				for i, seat := range state.Seats {
					if seat == "" {
						state.Seats[i] = botUserID(i)
						logger.Info("processBots: Added bot %s (%s) to seat %d", botDisplayName(i), state.Seats[i], i)
						added = true
					}
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastTableSnapshot(ctx, state, dispatcher, logger)
				}
				state.LastSingleHumanTick = 0
			}
		} else {
			state.LastSingleHumanTick = 0
		}
		return
	}

	if state.Game.Finished {
		return
	}

	// 2. Poverty negotiation cannot wait on seats nobody sits behind.
	if mh.processBotArmut(ctx, state, dispatcher, logger) {
		return
	}

	// 3. Bot card plays on the bot's turn, throttled so humans can follow.
	currentSeat := state.Game.CurrentSeat
	currentUserID := state.Seats[currentSeat]
	if !isBotUserId(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		state.BotWaitUntil = state.Tick + state.BotPlayDelayTicks
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d (current %d)", currentUserID, currentSeat, state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	if len(engine.LegalMoves(state.Game, currentSeat)) == 0 {
		return
	}

	view := bot.ViewFor(state.Game, currentSeat, state.Table.Ruleset())
	cardID := bot.PickCard(view)
	mh.applyAction(ctx, state, dispatcher, logger, currentUserID, engine.Action{
		Type:   engine.ActionPlayCard,
		Seat:   currentSeat,
		CardID: cardID,
	})
}

// processBotArmut resolves poverty acceptance and exchange for bot seats.
// Returns true when it acted this tick.
func (mh *matchHandler) processBotArmut(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) bool {
	mode, ok := state.Game.Mode.(domain.Armut)
	if !ok {
		return false
	}
	rs := state.Table.Ruleset()

	if mode.AcceptedBySeat == domain.NoSeat {
		// A bot accepts only when no human seat remains that could still
		// claim the exchange; the strongest bot hand takes it.
		for seat := 0; seat < domain.NumSeats; seat++ {
			if seat != mode.ArmutSeat && isHumanSeat(state.Seats[:], seat) {
				return false
			}
		}
		best, bestTrumps := domain.NoSeat, -1
		for seat := 0; seat < domain.NumSeats; seat++ {
			if seat == mode.ArmutSeat || !isBotUserId(state.Seats[seat]) {
				continue
			}
			if trumps := domain.CountTrumps(state.Game.Hands[seat], domain.NoSeat, seat, rs); trumps > bestTrumps {
				best, bestTrumps = seat, trumps
			}
		}
		if best == domain.NoSeat {
			return false
		}
		mh.applyAction(ctx, state, dispatcher, logger, state.Seats[best], engine.Action{
			Type: engine.ActionAcceptArmut,
			Seat: best,
		})
		return true
	}

	if !mode.ExchangeCompleted && isBotUserId(state.Seats[mode.ArmutSeat]) {
		give := pickArmutGive(state.Game.Hands[mode.ArmutSeat], mode.ArmutSeat, rs)
		back := pickArmutReturn(state.Game.Hands[mode.AcceptedBySeat], mode.AcceptedBySeat, rs)
		mh.applyAction(ctx, state, dispatcher, logger, state.Seats[mode.ArmutSeat], engine.Action{
			Type:                engine.ActionExchangeArmutCards,
			ArmutSeat:           mode.ArmutSeat,
			AcceptedBySeat:      mode.AcceptedBySeat,
			FromArmutCardIDs:    give,
			FromAcceptedCardIDs: back,
		})
		return true
	}

	return false
}

// pickArmutGive chooses the poor seat's three outgoing cards: all trumps
// first, then the cheapest side cards to fill up.
func pickArmutGive(hand []domain.Card, seat int, rs domain.Ruleset) [3]string {
	ordered := append([]domain.Card(nil), hand...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti := domain.TrumpPower(ordered[i], domain.NoSeat, seat, rs, domain.Normal{}) > 0
		tj := domain.TrumpPower(ordered[j], domain.NoSeat, seat, rs, domain.Normal{}) > 0
		if ti != tj {
			return ti
		}
		return domain.CardPoints(ordered[i].Rank) < domain.CardPoints(ordered[j].Rank)
	})

	var ids [3]string
	for i := 0; i < 3; i++ {
		ids[i] = ordered[i].ID()
	}
	return ids
}

// pickArmutReturn chooses the acceptor's three cards back: the cheapest
// non-trumps it can spare.
func pickArmutReturn(hand []domain.Card, seat int, rs domain.Ruleset) [3]string {
	ordered := append([]domain.Card(nil), hand...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti := domain.TrumpPower(ordered[i], domain.NoSeat, seat, rs, domain.Normal{}) > 0
		tj := domain.TrumpPower(ordered[j], domain.NoSeat, seat, rs, domain.Normal{}) > 0
		if ti != tj {
			return tj
		}
		return domain.CardPoints(ordered[i].Rank) < domain.CardPoints(ordered[j].Rank)
	})

	var ids [3]string
	for i := 0; i < 3; i++ {
		ids[i] = ordered[i].ID()
	}
	return ids
}

func (mh *matchHandler) handleStartHand(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartHand: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if state.Game != nil && !state.Game.Finished {
		logger.Warn("StartHand: Hand already in progress.")
		return
	}

	var request startHandRequest
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartHand: Invalid request from %s: %v", senderID, err)
			return
		}
	}

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartHand: User %s tried to deal but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}

	if state.GetHumanPlayerCount() < app.MinHumansToStartHand {
		logger.Warn("StartHand: Cannot deal with %d humans. Need at least %d.", state.GetHumanPlayerCount(), app.MinHumansToStartHand)
		return
	}

	// The hand is always four-handed; any still-empty seat gets a bot now.
	for i, seat := range state.Seats {
		if seat == "" {
			state.Seats[i] = botUserID(i)
		}
	}

	game, events := state.Table.StartHand(state.Seats, request.Seed)
	state.Game = game
	state.ActionCount = 0

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastTableSnapshot(ctx, state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)

	logger.Info("StartHand: Hand dealt with seed %d.", game.Seed)
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	var request playCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCard: Invalid request from %s: %v", senderID, err)
		return
	}

	mh.applyAction(ctx, state, dispatcher, logger, senderID, engine.Action{
		Type:   engine.ActionPlayCard,
		Seat:   state.seatOf(senderID),
		CardID: request.CardID,
	})
}

func (mh *matchHandler) handleAnnounce(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	var request announceRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleAnnounce: Invalid request from %s: %v", senderID, err)
		return
	}

	declaration, ok := parseDeclaration(request.Declaration)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, 400, "unknown declaration")
		return
	}

	mh.applyAction(ctx, state, dispatcher, logger, senderID, engine.Action{
		Type:        engine.ActionAnnounce,
		Seat:        state.seatOf(senderID),
		Declaration: declaration,
	})
}

func (mh *matchHandler) handleAnnounceSchweine(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	mh.applyAction(ctx, state, dispatcher, logger, senderID, engine.Action{
		Type: engine.ActionAnnounceSchweine,
		Seat: state.seatOf(senderID),
	})
}

func (mh *matchHandler) handleAcceptArmut(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	mh.applyAction(ctx, state, dispatcher, logger, senderID, engine.Action{
		Type: engine.ActionAcceptArmut,
		Seat: state.seatOf(senderID),
	})
}

func (mh *matchHandler) handleExchangeArmutCards(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	var request exchangeArmutRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleExchangeArmutCards: Invalid request from %s: %v", senderID, err)
		return
	}

	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, app.ErrNoActiveHand.Error())
		return
	}
	mode, ok := state.Game.Mode.(domain.Armut)
	if !ok || state.seatOf(senderID) != mode.ArmutSeat {
		mh.sendError(state, dispatcher, logger, senderID, 400, app.ErrActionRejected.Error())
		return
	}

	// A bot acceptor cannot choose its return cards over the wire.
	if mode.AcceptedBySeat != domain.NoSeat && isBotUserId(state.Seats[mode.AcceptedBySeat]) {
		request.FromAcceptedCardIDs = pickArmutReturn(state.Game.Hands[mode.AcceptedBySeat], mode.AcceptedBySeat, state.Table.Ruleset())
	}

	mh.applyAction(ctx, state, dispatcher, logger, senderID, engine.Action{
		Type:                engine.ActionExchangeArmutCards,
		ArmutSeat:           mode.ArmutSeat,
		AcceptedBySeat:      mode.AcceptedBySeat,
		FromArmutCardIDs:    request.FromArmutCardIDs,
		FromAcceptedCardIDs: request.FromAcceptedCardIDs,
	})
}

// applyAction runs one reducer action through the table service and
// dispatches the resulting events. Hand completion settles wallets and drops
// the table back into lobby state.
func (mh *matchHandler) applyAction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, action engine.Action) {
	events, err := state.Table.Apply(state.Game, state.Seats, action)
	if err != nil {
		logger.Warn("applyAction: User %s action %d rejected: %v", senderID, action.Type, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	state.ActionCount++

	mh.dispatchEvents(state, dispatcher, logger, events)

	if state.Game.Finished {
		mh.settleHand(ctx, state, dispatcher, logger, events)
	}
}

// settleHand converts the finished hand's game points into wallet updates
// and returns the table to the lobby.
func (mh *matchHandler) settleHand(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	var finished *engine.HandFinishedPayload
	for _, ev := range events {
		if ev.Kind == app.EventKind(engine.EventHandFinished) {
			p := ev.Payload.(engine.HandFinishedPayload)
			finished = &p
			break
		}
	}
	if finished == nil {
		return
	}

	winnerScore := finished.ScoreRe
	if finished.WinningTeam == domain.TeamKontra {
		winnerScore = finished.ScoreKontra
	}

	if state.Economy != nil && winnerScore.GamePoints > 0 {
		updates := make([]ports.WalletUpdate, 0, domain.NumSeats)
		for seat := 0; seat < domain.NumSeats; seat++ {
			userID := state.Seats[seat]
			if isBotUserId(userID) {
				continue
			}
			amount := int64(winnerScore.GamePoints) * goldPerGamePoint
			if state.Game.TeamBySeat[seat] != finished.WinningTeam {
				amount = -amount
			}
			updates = append(updates, ports.WalletUpdate{
				UserID: userID,
				Amount: amount,
				Metadata: map[string]interface{}{
					"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
					"reason":   "hand_settlement",
				},
			})
		}
		if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
			logger.Error("settleHand: Failed to update balances: %v", err)
		}
	}

	state.LastHandSeed = state.Game.Seed
	state.LastHandActions = state.ActionCount
	state.Game = nil
	state.BotWaitUntil = 0
	mh.updateLabel(state, dispatcher, logger)
}

// dispatchEvents marshals and broadcasts table events, honoring recipients.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		data, err := marshalEvent(ev)
		if err != nil {
			logger.Error("dispatchEvents: Failed to marshal event %s: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := state.Presences[uid]; ok {
					recipients = append(recipients, p)
				}
			}

			// If we had intended recipients but none are connected (e.g. they are bots),
			// we MUST NOT broadcast to everyone else.
			if len(recipients) == 0 {
				continue
			}
		}

		dispatcher.BroadcastMessage(opCodeFor(ev), data, recipients, nil, true)
	}
}

func (mh *matchHandler) broadcastTableSnapshot(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []playerState
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}

		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if isBotUserId(userId) {
			displayName = botDisplayName(i)
		}

		cardsRemaining := 0
		if state.Game != nil {
			cardsRemaining = len(state.Game.Hands[i])
		}

		var balance int64
		if state.Economy != nil {
			if b, err := state.Economy.GetBalance(ctx, userId); err == nil {
				balance = b
			}
		}

		players = append(players, playerState{
			UserID:         userId,
			Seat:           i,
			IsOwner:        i == state.OwnerSeat,
			IsBot:          isBotUserId(userId),
			CardsRemaining: cardsRemaining,
			DisplayName:    displayName,
			Balance:        balance,
		})
	}

	snapshot := tableSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Players:   players,
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastTableSnapshot: Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpTableSnapshot, data, nil, nil, true)
}

// sendError sends a game error payload to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	if isBotUserId(userID) {
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"code":    code,
		"message": message,
	})
	if err != nil {
		logger.Error("sendError: Failed to marshal error payload: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	matchState := "lobby"
	if state.Game != nil && !state.Game.Finished {
		matchState = "playing"
	}

	labelBytes, err := json.Marshal(tableLabel{
		Open:   state.GetOpenSeatsCount(),
		State:  matchState,
		Game:   "doppelkopf",
		Preset: state.Preset,
	})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
