package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ReplayTokenService signs replay tokens for finished hands. A token carries
// everything a spectator client needs to re-run the hand deterministically:
// the seed, the ruleset preset and how many actions to replay.
type ReplayTokenService struct {
	replaySecret string
	replayIssuer string
}

const replayTokenTTL = 24 * time.Hour

func NewReplayTokenService(secret, issuer string) *ReplayTokenService {
	return &ReplayTokenService{
		replaySecret: secret,
		replayIssuer: issuer,
	}
}

func (s *ReplayTokenService) GenerateToken(matchID string, seed uint32, preset string, actionCount int) (string, error) {
	if s == nil {
		return "", fmt.Errorf("replay token service is nil")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if actionCount < 0 {
		return "", fmt.Errorf("action count must not be negative")
	}
	if s.replaySecret == "" || s.replayIssuer == "" {
		return "", fmt.Errorf("replay token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss":     s.replayIssuer,
		"sub":     matchID,
		"exp":     time.Now().Add(replayTokenTTL).Unix(),
		"seed":    seed,
		"preset":  preset,
		"actions": actionCount,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.replaySecret))
}
