package config

import (
	"testing"

	"doppelkopf/internal/domain"
)

func TestGetRulesetFallsBackWithoutConfig(t *testing.T) {
	if cfg != nil {
		t.Skip("game config already loaded in this process")
	}

	rs := GetRuleset("anything")
	if rs.Announcements.Enabled != domain.RulesetStandard().Announcements.Enabled {
		t.Fatalf("expected standard ruleset fallback")
	}
}

func TestGetRulesetResolvesPresets(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })

	cfg = &GameConfig{
		DefaultPreset: "casual",
		Presets: []TablePreset{
			{ID: "casual", Ruleset: "simplified"},
			{ID: "club", Ruleset: "standard"},
		},
	}

	tests := []struct {
		name     string
		presetID string
		want     domain.Ruleset
	}{
		{name: "TargetPreset", presetID: "club", want: domain.RulesetStandard()},
		{name: "EmptyUsesDefault", presetID: "", want: domain.RulesetSimplified()},
		{name: "UnknownUsesDefault", presetID: "nope", want: domain.RulesetSimplified()},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := GetRuleset(test.presetID)
			if got.Announcements.Enabled != test.want.Announcements.Enabled ||
				got.AllowIllegalPlays != test.want.AllowIllegalPlays ||
				got.Hochzeit != test.want.Hochzeit {
				t.Fatalf("GetRuleset(%q) resolved the wrong ruleset", test.presetID)
			}
		})
	}
}
