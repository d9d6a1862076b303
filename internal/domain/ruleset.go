package domain

// AnnouncementDeclaration is a team declaration available at the table.
type AnnouncementDeclaration string

const (
	DeclareRe      AnnouncementDeclaration = "Re"
	DeclareKontra  AnnouncementDeclaration = "Kontra"
	DeclareNo90    AnnouncementDeclaration = "No90"
	DeclareNo60    AnnouncementDeclaration = "No60"
	DeclareNo30    AnnouncementDeclaration = "No30"
	DeclareSchwarz AnnouncementDeclaration = "Schwarz"
	DeclareNo9     AnnouncementDeclaration = "No9"
)

// AnnouncementPolicy configures whether declarations are available and which
// ones are allowed.
type AnnouncementPolicy struct {
	Enabled      bool                      `json:"enabled"`
	Declarations []AnnouncementDeclaration `json:"declarations,omitempty"`
}

// Allows reports whether the declaration is available under this policy.
func (p AnnouncementPolicy) Allows(d AnnouncementDeclaration) bool {
	if !p.Enabled {
		return false
	}
	for _, allowed := range p.Declarations {
		if allowed == d {
			return true
		}
	}
	return false
}

// SchweineMode selects when a Schweine declaration may happen.
type SchweineMode string

const (
	SchweineDisabled     SchweineMode = "disabled"
	SchweineAtStart      SchweineMode = "announce_at_start"
	SchweineWhilePlaying SchweineMode = "announce_while_playing"
)

// SchweineAnnounce selects who triggers the declaration.
type SchweineAnnounce string

const (
	SchweineManual SchweineAnnounce = "manual"
	SchweineAuto   SchweineAnnounce = "auto"
)

// SchweinePolicy configures the Schweine subsystem.
type SchweinePolicy struct {
	Mode     SchweineMode     `json:"mode"`
	Announce SchweineAnnounce `json:"announce,omitempty"`
}

// HochzeitMode selects full partner search or the simplified treat-as-solo
// behaviour.
type HochzeitMode string

const (
	HochzeitNormal HochzeitMode = "normal"
	HochzeitAsSolo HochzeitMode = "solo"
)

// ArmutMode selects the full exchange or ignoring poverty entirely.
type ArmutMode string

const (
	ArmutNormal        ArmutMode = "normal"
	ArmutAsRegularGame ArmutMode = "as_regular_game"
)

// SoloPolicy configures solo availability.
type SoloPolicy struct {
	Enabled bool       `json:"enabled"`
	Allowed []SoloType `json:"allowed,omitempty"`
}

// DullePolicy decides whether a second Dulle beats the first.
type DullePolicy string

const (
	DulleNeverBeats      DullePolicy = "disabled"
	DulleAlwaysBeats     DullePolicy = "always"
	DulleExceptLastTrick DullePolicy = "except_last_trick"
)

// Ruleset is the declarative configuration for one table. It is pure data;
// the engine and rule oracle consume it without modification.
type Ruleset struct {
	Announcements AnnouncementPolicy `json:"announcements"`
	Schweine      SchweinePolicy     `json:"schweine"`
	Hochzeit      HochzeitMode       `json:"hochzeit"`
	Armut         ArmutMode          `json:"armut"`
	Solo          SoloPolicy         `json:"solo"`
	// AllowIllegalPlays tolerates rule violations and records them for later
	// proof instead of rejecting the play outright.
	AllowIllegalPlays bool `json:"allowIllegalPlays"`
	// EnableCallouts emits non-authoritative table hints (Schweine, Fuchs
	// gefangen, Doppelkopf, Karlchen). Scoring never depends on them.
	EnableCallouts  bool        `json:"enableCallouts"`
	DulleBeatsDulle DullePolicy `json:"dulleBeatsDulle"`
}

// RulesetStandard enables every subsystem: all declarations, full marriage
// and poverty handling, all solo variants.
func RulesetStandard() Ruleset {
	return Ruleset{
		Announcements: AnnouncementPolicy{
			Enabled: true,
			Declarations: []AnnouncementDeclaration{
				DeclareRe, DeclareKontra, DeclareNo90, DeclareNo60,
				DeclareNo30, DeclareSchwarz, DeclareNo9,
			},
		},
		Schweine: SchweinePolicy{Mode: SchweineDisabled},
		Hochzeit: HochzeitNormal,
		Armut:    ArmutNormal,
		Solo: SoloPolicy{
			Enabled: true,
			Allowed: []SoloType{
				SoloQueenJack, SoloJack, SoloQueen,
				SoloClubs, SoloSpades, SoloHearts, SoloDiamonds,
			},
		},
		AllowIllegalPlays: false,
		EnableCallouts:    true,
		DulleBeatsDulle:   DulleExceptLastTrick,
	}
}

// RulesetSimplified strips the meta systems for single-mode deployments:
// no announcements or callouts, marriages become solos, poverty is ignored.
func RulesetSimplified() Ruleset {
	return Ruleset{
		Announcements:     AnnouncementPolicy{Enabled: false},
		Schweine:          SchweinePolicy{Mode: SchweineDisabled},
		Hochzeit:          HochzeitAsSolo,
		Armut:             ArmutAsRegularGame,
		Solo:              SoloPolicy{Enabled: false},
		AllowIllegalPlays: false,
		EnableCallouts:    false,
		DulleBeatsDulle:   DulleExceptLastTrick,
	}
}
