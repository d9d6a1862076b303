package domain

// TrickPlay is one card laid into the current trick.
type TrickPlay struct {
	Seat     int  `json:"seat"`
	Card     Card `json:"card"`
	WasLegal bool `json:"wasLegal"`
}

// TrickResult is an immutable completed trick with its computed winner and
// point total.
type TrickResult struct {
	Index  int         `json:"index"`
	Plays  []TrickPlay `json:"plays"`
	Winner int         `json:"winner"`
	Points int         `json:"points"`
}

// TrickPoints sums the card points of the plays in a trick.
func TrickPoints(plays []TrickPlay) int {
	sum := 0
	for _, play := range plays {
		sum += CardPoints(play.Card.Rank)
	}
	return sum
}
