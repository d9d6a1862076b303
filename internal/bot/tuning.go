package bot

// Tuning carries the additive scoring weights of the heuristic. The defaults
// are deliberately imperfect; they set the bot's difficulty and should not
// be sharpened without re-balancing against human play.
type Tuning struct {
	// ConservationDivisor scales the quadratic cost of spending trump power.
	ConservationDivisor float64

	// Leading a trick.
	LeadTrumpBonus  float64
	LeadFoxBonus    float64
	LeadDulleBonus  float64
	LeadAceBonus    float64
	LeadTenBonus    float64
	LeadNinePenalty float64

	// Winning the trick.
	WinBase               float64
	WinPointsWeight       float64
	StechenBonus          float64
	DulleOnTableBonus     float64
	WinCardPointsWeight   float64
	OverTrumpLastPenalty  float64
	OverTrumpCheapPenalty float64
	OverTrumpPenalty      float64
	CheapTrickThreshold   int
	TakeFromOpponentBonus float64

	// Unable to win the trick.
	SmearWeight        float64
	SmearFoxBonus      float64
	UnknownDropWeight  float64
	UnknownFoxPenalty  float64
	OpponentDropWeight float64
	OpponentFoxPenalty float64
	NineDumpBonus      float64
	TrumpWastePenalty  float64

	// Endgame urgency.
	EndgameFromTrick int
	EndgameRelief    float64
}

// DefaultTuning is the shipping difficulty.
var DefaultTuning = Tuning{
	ConservationDivisor: 220,

	LeadTrumpBonus:  2,
	LeadFoxBonus:    3,
	LeadDulleBonus:  5,
	LeadAceBonus:    4,
	LeadTenBonus:    2,
	LeadNinePenalty: 2,

	WinBase:               15,
	WinPointsWeight:       0.8,
	StechenBonus:          10,
	DulleOnTableBonus:     30,
	WinCardPointsWeight:   0.2,
	OverTrumpLastPenalty:  40,
	OverTrumpCheapPenalty: 20,
	OverTrumpPenalty:      10,
	CheapTrickThreshold:   10,
	TakeFromOpponentBonus: 15,

	SmearWeight:        1.0,
	SmearFoxBonus:      15,
	UnknownDropWeight:  1.5,
	UnknownFoxPenalty:  40,
	OpponentDropWeight: 2.5,
	OpponentFoxPenalty: 80,
	NineDumpBonus:      8,
	TrumpWastePenalty:  10,

	EndgameFromTrick: 10,
	EndgameRelief:    0.02,
}
