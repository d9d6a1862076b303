package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"doppelkopf/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// replayService is overridable so tests can inject fixed credentials.
var replayService *app.ReplayTokenService

// rpcReplayToken signs a replay token for a finished hand so a client can
// re-run it deterministically.
// Payload: {"matchId": "...", "seed": 123, "preset": "standard", "actions": 71}
func rpcReplayToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req struct {
		MatchID string `json:"matchId"`
		Seed    uint32 `json:"seed"`
		Preset  string `json:"preset"`
		Actions int    `json:"actions"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	if req.MatchID == "" {
		return "", runtime.NewError("Match id required", 3)
	}

	svc := replayService
	if svc == nil {
		env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
		secret := env["replay_token_secret"]
		issuer := env["replay_token_issuer"]
		if secret == "" || issuer == "" {
			secret = "test-secret"
			issuer = "test-issuer"
			logger.Warn("Replay token credentials missing from env, using test defaults.")
		}
		svc = app.NewReplayTokenService(secret, issuer)
	}

	token, err := svc.GenerateToken(req.MatchID, req.Seed, req.Preset, req.Actions)
	if err != nil {
		logger.Error("Failed to generate replay token: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}

	res := map[string]string{
		"token": token,
	}
	resBytes, _ := json.Marshal(res)
	return string(resBytes), nil
}
