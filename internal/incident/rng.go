package incident

// lehmerRNG is a minimal-standard Lehmer generator (16807 mod 2^31-1). The
// stream matches the reference status-board generator so seeded timelines
// replay identically.
type lehmerRNG struct {
	state int64
}

func newLehmerRNG(seed int64) *lehmerRNG {
	state := seed % 2147483647
	if state <= 0 {
		state += 2147483646
	}
	return &lehmerRNG{state: state}
}

func (r *lehmerRNG) next() int64 {
	r.state = (r.state * 16807) % 2147483647
	return r.state
}

// float returns a draw in [0,1).
func (r *lehmerRNG) float() float64 {
	return float64(r.next()-1) / 2147483646.0
}

func (r *lehmerRNG) pick(items []string) string {
	return items[int(r.float()*float64(len(items)))]
}

// seedFromDate hashes a date string with 32-bit wrapping, the same
// (h<<5)-h+c accumulation the board has always used.
func seedFromDate(dateString string) int64 {
	var h int32
	for _, c := range []byte(dateString) {
		h = (h << 5) - h + int32(c)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return seed
}
