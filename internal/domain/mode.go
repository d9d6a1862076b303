package domain

// Team labels the two sides of a hand. "Re" holds the club queens (or is the
// solo player, marriage pair or poverty pair), "Kontra" is everyone else.
type Team string

const (
	TeamRe     Team = "re"
	TeamKontra Team = "kontra"
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamRe {
		return TeamKontra
	}
	return TeamRe
}

// ModeKind discriminates the game-mode variants.
type ModeKind string

const (
	ModeNormal   ModeKind = "normal"
	ModeHochzeit ModeKind = "hochzeit"
	ModeArmut    ModeKind = "armut"
	ModeSolo     ModeKind = "solo"
)

// SoloType names the restricted trump set of a solo.
type SoloType string

const (
	SoloQueenJack      SoloType = "queen_jack"
	SoloJack           SoloType = "jack"
	SoloQueen          SoloType = "queen"
	SoloClubs          SoloType = "clubs"
	SoloSpades         SoloType = "spades"
	SoloHearts         SoloType = "hearts"
	SoloDiamonds       SoloType = "diamonds"
	SoloFleischlos     SoloType = "fleischlos"
	SoloForcedHochzeit SoloType = "forced_hochzeit"
	SoloForcedArmut    SoloType = "forced_armut"
)

// IsSuitSolo reports whether the solo type is a Farbsolo (one suit joins the
// queen/jack trump ladder).
func (s SoloType) IsSuitSolo() bool {
	switch s {
	case SoloClubs, SoloSpades, SoloHearts, SoloDiamonds:
		return true
	}
	return false
}

// GameMode is a closed sum over the four hand variants. Exactly one mode is
// active per hand; consumers switch exhaustively on the concrete type.
type GameMode interface {
	Kind() ModeKind
}

// Normal is the base game: diamonds, queens, jacks and the Dulle are trump,
// teams follow the club queens.
type Normal struct{}

// Hochzeit is the marriage variant: the holder of both club queens seeks a
// partner via the first trick it does not win.
type Hochzeit struct {
	HolderSeat int `json:"holderSeat"`
	// PartnerSeat is -1 until the partner search resolves.
	PartnerSeat int `json:"partnerSeat"`
	// ClarificationEndsAtTrick is the last trick index that may still reveal
	// a partner before the holder is forced solo.
	ClarificationEndsAtTrick int `json:"clarificationEndsAtTrick"`
}

// Armut is the poverty variant: a trump-poor seat trades three cards with an
// accepting ally before play starts.
type Armut struct {
	ArmutSeat int `json:"armutSeat"`
	// AcceptedBySeat is -1 until another seat accepts.
	AcceptedBySeat    int  `json:"acceptedBySeat"`
	ExchangeCompleted bool `json:"exchangeCompleted"`
}

// Solo pits one seat against the other three under a restricted trump set.
type Solo struct {
	SoloSeat int      `json:"soloSeat"`
	SoloType SoloType `json:"soloType"`
}

func (Normal) Kind() ModeKind   { return ModeNormal }
func (Hochzeit) Kind() ModeKind { return ModeHochzeit }
func (Armut) Kind() ModeKind    { return ModeArmut }
func (Solo) Kind() ModeKind     { return ModeSolo }

// SoloTeams assigns the solo seat to Re and everyone else to Kontra.
func SoloTeams(soloSeat int) [NumSeats]Team {
	var teams [NumSeats]Team
	for seat := 0; seat < NumSeats; seat++ {
		if seat == soloSeat {
			teams[seat] = TeamRe
		} else {
			teams[seat] = TeamKontra
		}
	}
	return teams
}

// PairTeams assigns two allied seats to Re and the rest to Kontra. Used for
// resolved marriages and completed poverty exchanges.
func PairTeams(a, b int) [NumSeats]Team {
	var teams [NumSeats]Team
	for seat := 0; seat < NumSeats; seat++ {
		if seat == a || seat == b {
			teams[seat] = TeamRe
		} else {
			teams[seat] = TeamKontra
		}
	}
	return teams
}
