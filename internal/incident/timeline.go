package incident

// GenerateTimeline builds the day's incident sequence from a date string.
// The timeline always opens with the latency event at t=0, runs 6 to 10
// weighted steps 30 to 90 seconds apart, and closes with a stabilization
// event that leaves every touched service degraded rather than healed.
func GenerateTimeline(dateString string) []Event {
	rng := newLehmerRNG(seedFromDate(dateString))

	state := make(SystemState, len(ServiceKeys))
	for _, key := range ServiceKeys {
		state[key] = StateOperational
	}

	var events []Event

	start := findDef("latency_start").effect(rng, state)
	applyChanges(state, start.Changes)
	start.TimeOffset = 0
	events = append(events, start)

	currentTime := 0
	steps := 6 + int(rng.float()*5)
	for i := 0; i < steps; i++ {
		currentTime += 30 + int(rng.float()*60)

		candidates := make([]eventDef, 0, len(eventDefs))
		for _, def := range eventDefs {
			if def.id == "latency_start" {
				continue
			}
			if def.minTime > 0 && currentTime < def.minTime {
				continue
			}
			if def.isValid(state) {
				candidates = append(candidates, def)
			}
		}
		if len(candidates) == 0 {
			break
		}

		totalWeight := 0
		for _, def := range candidates {
			totalWeight += def.weight
		}
		r := rng.float() * float64(totalWeight)
		picked := candidates[0]
		for _, def := range candidates {
			r -= float64(def.weight)
			if r <= 0 {
				picked = def
				break
			}
		}

		event := picked.effect(rng, state)

		// Drop no-op transitions so the board never reports a change to the
		// state a service is already in.
		filtered := event.Changes[:0:0]
		for _, change := range event.Changes {
			if state[change.Key] != change.State {
				filtered = append(filtered, change)
			}
		}
		if len(filtered) == 0 && event.Update.Text == "" {
			continue
		}
		applyChanges(state, filtered)
		event.Changes = filtered
		event.TimeOffset = currentTime
		events = append(events, event)
	}

	// Nothing comes out of a Monday fully healed.
	var finalChanges []ServiceUpdate
	for _, key := range ServiceKeys {
		if state[key] != StateOperational && state[key] != StateDegraded {
			finalChanges = append(finalChanges, ServiceUpdate{
				Key:   key,
				State: StateDegraded,
				Label: "Traumatized",
			})
		}
	}

	events = append(events, Event{
		TimeOffset: currentTime + 60,
		Stabilized: true,
		Overall:    Overall{State: StateDegraded, Code: "SEA", Text: "Incident stabilized. Tuesday looks promising."},
		Update:     Update{Kind: UpdateOK, Text: "Monday is nearly over. Full postmortem scheduled."},
		Changes:    finalChanges,
	})

	return events
}

func findDef(id string) eventDef {
	for _, def := range eventDefs {
		if def.id == id {
			return def
		}
	}
	panic("incident: unknown event definition " + id)
}

func applyChanges(state SystemState, changes []ServiceUpdate) {
	for _, change := range changes {
		state[change.Key] = change.State
	}
}
