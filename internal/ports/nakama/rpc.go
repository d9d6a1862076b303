package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

// FindTableResponse is the payload returned to clients looking for a table.
type FindTableResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcFindTable, rpcFindTable); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcReplayToken, rpcReplayToken)
}

// rpcFindTable searches for an open lobby table and falls back to creating
// one. Payload: (optional) {"preset": "standard"|"simplified"}.
func rpcFindTable(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userId, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req struct {
		Preset string `json:"preset"`
	}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	// Filter on the "open" key in the JSON label: at least one free seat on a
	// doppelkopf lobby table.
	query := fmt.Sprintf("+label.%s:>=1 +label.game:doppelkopf +label.state:lobby", MatchLabelKey_OpenSeats)
	if req.Preset != "" {
		query += " +label.preset:" + req.Preset
	}

	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 3 // ensure an open seat remains

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcFindTable [User:%s]: Failed to list matches: %v", userId, err)
		return "", err
	}

	if len(matches) > 0 {
		logger.Info("rpcFindTable [User:%s]: Found existing table %s", userId, matches[0].MatchId)
		b, _ := json.Marshal(FindTableResponse{MatchID: matches[0].MatchId, IsNew: false})
		return string(b), nil
	}

	// Create a new table; seat/owner assignment happens in MatchJoin (server-authoritative).
	params := map[string]interface{}{}
	if req.Preset != "" {
		params["preset"] = req.Preset
	}
	matchID, err := nk.MatchCreate(ctx, MatchNameDoppelkopf, params)
	if err != nil {
		logger.Error("rpcFindTable [User:%s]: Failed to create table: %v", userId, err)
		return "", err
	}

	logger.Info("rpcFindTable [User:%s]: Created new table %s", userId, matchID)
	b, _ := json.Marshal(FindTableResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}
