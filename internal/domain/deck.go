package domain

// NumSeats is the fixed table size. Turn order is seat+1 mod 4.
const NumSeats = 4

// HandSize is the number of cards dealt to each seat.
const HandSize = 12

// DeckSize is the full double-deck size.
const DeckSize = NumSeats * HandSize

// Mulberry32 returns a deterministic PRNG over [0,1) seeded with a 32-bit
// integer. The generator matches the widely used mulberry32 stream so the
// same seed reproduces the same deal everywhere.
func Mulberry32(seed uint32) func() float64 {
	t := seed
	return func() float64 {
		t += 0x6d2b79f5
		x := t
		x = (x ^ (x >> 15)) * (x | 1)
		x ^= x + (x^(x>>7))*(x|61)
		return float64(x^(x>>14)) / 4294967296.0
	}
}

// BuildDeck returns the 48-card double deck in canonical order.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			for copyIdx := 0; copyIdx < 2; copyIdx++ {
				deck = append(deck, Card{Suit: suit, Rank: rank, Copy: copyIdx})
			}
		}
	}
	return deck
}

// ShuffleDeck builds the canonical deck and applies a seeded Fisher-Yates
// shuffle. Identical seeds produce identical decks.
func ShuffleDeck(seed uint32) []Card {
	rng := Mulberry32(seed)
	deck := BuildDeck()
	for i := len(deck) - 1; i > 0; i-- {
		j := int(rng() * float64(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// DealHands splits a full deck into four consecutive 12-card hands by seat
// order. A deck of the wrong size is a caller bug.
func DealHands(deck []Card) [NumSeats][]Card {
	if len(deck) != DeckSize {
		panic("domain: DealHands requires a 48-card deck")
	}

	var hands [NumSeats][]Card
	for seat := 0; seat < NumSeats; seat++ {
		hand := make([]Card, HandSize)
		copy(hand, deck[seat*HandSize:(seat+1)*HandSize])
		hands[seat] = hand
	}
	return hands
}
