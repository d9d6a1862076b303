package engine

import "doppelkopf/internal/domain"

// EventKind identifies emitted engine events. The ordered event list is the
// only externally observable audit trail of a hand.
type EventKind string

const (
	EventHandStarted          EventKind = "hand_started"
	EventGameModeInitialized  EventKind = "game_mode_initialized"
	EventHochzeitPartnerFound EventKind = "hochzeit_partner_found"
	EventHochzeitForcedSolo   EventKind = "hochzeit_forced_solo"
	EventArmutAccepted        EventKind = "armut_accepted"
	EventArmutExchanged       EventKind = "armut_exchanged"
	EventAnnouncementMade     EventKind = "announcement_made"
	EventSchweineAnnounced    EventKind = "schweine_announced"
	EventCardPlayed           EventKind = "card_played"
	EventIllegalPlayRecorded  EventKind = "illegal_play_recorded"
	EventRenonceProved        EventKind = "renonce_proved"
	EventTrickWon             EventKind = "trick_won"
	EventSpecialCallout       EventKind = "special_callout"
	EventHandFinished         EventKind = "hand_finished"
)

// Event pairs a kind with its typed payload.
type Event struct {
	Kind    EventKind `json:"kind"`
	Payload any       `json:"payload"`
}

type HandStartedPayload struct {
	Seed uint32 `json:"seed"`
}

type GameModeInitializedPayload struct {
	ModeKind domain.ModeKind `json:"modeKind"`
	Mode     domain.GameMode `json:"mode"`
}

type HochzeitPartnerFoundPayload struct {
	HolderSeat  int `json:"holderSeat"`
	PartnerSeat int `json:"partnerSeat"`
	TrickIndex  int `json:"trickIndex"`
}

type HochzeitForcedSoloPayload struct {
	HolderSeat int `json:"holderSeat"`
	TrickIndex int `json:"trickIndex"`
}

type ArmutAcceptedPayload struct {
	ArmutSeat      int `json:"armutSeat"`
	AcceptedBySeat int `json:"acceptedBySeat"`
}

type ArmutExchangedPayload struct {
	ArmutSeat      int `json:"armutSeat"`
	AcceptedBySeat int `json:"acceptedBySeat"`
	CardsEachWay   int `json:"cardsEachWay"`
}

type AnnouncementMadePayload struct {
	Seat        int                            `json:"seat"`
	Team        domain.Team                    `json:"team"`
	Declaration domain.AnnouncementDeclaration `json:"declaration"`
	TrickIndex  int                            `json:"trickIndex"`
}

// SchweineTiming distinguishes hand-start declarations from in-play ones.
type SchweineTiming string

const (
	SchweineTimingStart  SchweineTiming = "start"
	SchweineTimingDuring SchweineTiming = "during"
)

type SchweineAnnouncedPayload struct {
	Seat   int            `json:"seat"`
	Timing SchweineTiming `json:"timing"`
}

type CardPlayedPayload struct {
	Seat     int    `json:"seat"`
	CardID   string `json:"cardId"`
	WasLegal bool   `json:"wasLegal"`
}

type IllegalPlayRecordedPayload struct {
	Seat       int `json:"seat"`
	TrickIndex int `json:"trickIndex"`
}

type RenonceProvedPayload struct {
	Seat            int    `json:"seat"`
	TrickIndex      int    `json:"trickIndex"`
	ProofTrickIndex int    `json:"proofTrickIndex"`
	Text            string `json:"text"`
}

type TrickWonPayload struct {
	TrickIndex int `json:"trickIndex"`
	Winner     int `json:"winner"`
	Points     int `json:"points"`
}

type SpecialCalloutPayload struct {
	Callout SpecialCallout `json:"callout"`
}

type HandFinishedPayload struct {
	WinningTeam      domain.Team `json:"winningTeam"`
	ScoreRe          TeamScore   `json:"scoreRe"`
	ScoreKontra      TeamScore   `json:"scoreKontra"`
	CardPointsRe     int         `json:"cardPointsRe"`
	CardPointsKontra int         `json:"cardPointsKontra"`
	// ForfeitSeat is domain.NoSeat unless a proved renonce ended the hand.
	ForfeitSeat int `json:"forfeitSeat"`
}
