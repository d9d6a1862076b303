package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"doppelkopf/internal/domain"
)

type TablePreset struct {
	ID string `json:"id"`
	// Ruleset selects the preset name: "standard" or "simplified".
	Ruleset string `json:"ruleset"`
}

type GameConfig struct {
	DefaultPreset       string        `json:"default_preset"`
	Presets             []TablePreset `json:"presets"`
	TurnDurationSeconds int           `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotPlayDelayTicks throttles bot card plays so humans can follow the table.
	BotPlayDelayTicks int `json:"bot_play_delay_ticks"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetRuleset resolves a preset ID to its ruleset, falling back to the default
// preset and finally to the standard rules.
func GetRuleset(presetID string) domain.Ruleset {
	if cfg == nil {
		return domain.RulesetStandard()
	}

	target := presetID
	if target == "" {
		target = cfg.DefaultPreset
	}

	for _, preset := range cfg.Presets {
		if preset.ID == target {
			return rulesetByName(preset.Ruleset)
		}
	}

	// Fallback to default preset if specific ID not found
	for _, preset := range cfg.Presets {
		if preset.ID == cfg.DefaultPreset {
			return rulesetByName(preset.Ruleset)
		}
	}

	return domain.RulesetStandard()
}

func rulesetByName(name string) domain.Ruleset {
	if name == "simplified" {
		return domain.RulesetSimplified()
	}
	return domain.RulesetStandard()
}
