package incident

import (
	"encoding/json"
	"testing"
)

func TestGenerateTimelineDeterministic(t *testing.T) {
	a, err := json.Marshal(GenerateTimeline("2026-02-09"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(GenerateTimeline("2026-02-09"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("same date produced different timelines")
	}

	c, err := json.Marshal(GenerateTimeline("2026-02-16"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) == string(c) {
		t.Errorf("different dates produced identical timelines")
	}
}

func TestGenerateTimelineShape(t *testing.T) {
	for _, date := range []string{"2026-02-09", "2026-03-02", "2026-06-01", "2026-11-30"} {
		events := GenerateTimeline(date)

		// Forced opening plus at most 10 steps plus the stabilization event.
		if len(events) < 2 || len(events) > 12 {
			t.Fatalf("%s: %d events outside expected bounds", date, len(events))
		}

		first := events[0]
		if first.TimeOffset != 0 {
			t.Errorf("%s: first event at offset %d, want 0", date, first.TimeOffset)
		}
		if first.Overall.Code != "LAT" {
			t.Errorf("%s: first event code %s, want LAT", date, first.Overall.Code)
		}

		last := events[len(events)-1]
		if !last.Stabilized {
			t.Errorf("%s: final event is not the stabilization event", date)
		}

		prev := -1
		for i, ev := range events {
			if ev.TimeOffset <= prev && i > 0 {
				t.Errorf("%s: event %d offset %d does not advance past %d", date, i, ev.TimeOffset, prev)
			}
			prev = ev.TimeOffset
		}
	}
}

func TestTimelineChangesAreRealTransitions(t *testing.T) {
	events := GenerateTimeline("2026-02-09")

	state := make(SystemState, len(ServiceKeys))
	for _, key := range ServiceKeys {
		state[key] = StateOperational
	}

	for i, ev := range events {
		for _, change := range ev.Changes {
			if state[change.Key] == change.State {
				t.Errorf("event %d (%s) reports a no-op change for %s", i, ev.Overall.Code, change.Key)
			}
			state[change.Key] = change.State
		}
	}

	// The stabilization event leaves no service in outage.
	for _, key := range ServiceKeys {
		if state[key] == StateOutage {
			t.Errorf("service %s still in outage after stabilization", key)
		}
	}
}

func TestTimelineChangesStayOnRoster(t *testing.T) {
	known := make(map[string]bool, len(ServiceKeys))
	for _, key := range ServiceKeys {
		known[key] = true
	}

	for _, date := range []string{"2026-02-09", "2026-02-10", "2026-02-11"} {
		for _, ev := range GenerateTimeline(date) {
			for _, change := range ev.Changes {
				if !known[change.Key] {
					t.Errorf("%s: change references unknown service %s", date, change.Key)
				}
			}
		}
	}
}

func TestEventRosterComplete(t *testing.T) {
	ids := make(map[string]bool, len(eventDefs))
	for _, def := range eventDefs {
		if ids[def.id] {
			t.Errorf("duplicate event definition %s", def.id)
		}
		ids[def.id] = true
		if def.weight <= 0 {
			t.Errorf("event %s has non-positive weight", def.id)
		}
		if def.isValid == nil || def.effect == nil {
			t.Errorf("event %s is missing its predicate or effect", def.id)
		}
	}

	if len(eventDefs) != 96 {
		t.Errorf("event roster has %d definitions, want 96", len(eventDefs))
	}

	// Multi-step arcs keep their escalation and recovery halves.
	for _, id := range []string{
		"oracle_gcp_handshake", "oracle_gcp_cold_war", "oracle_gcp_detente",
		"azure_iot_edge_gremlins", "azure_iot_edge_firmware", "azure_iot_edge_roll_back",
		"aws_robomaker_unionizes", "aws_robomaker_walkout", "aws_robomaker_back_to_work",
		"flux_capacitor_overclock", "flux_capacitor_paradox", "flux_capacitor_recalibrate",
		"nt_eventlog_rehydration", "nt_eventlog_amnesia",
		"incident_channel_memes", "fast_fix_makes_it_worse", "everything_is_fine_banner",
	} {
		if !ids[id] {
			t.Errorf("event roster is missing %s", id)
		}
	}
}

func TestSeedFromDate(t *testing.T) {
	if seedFromDate("2026-02-09") != seedFromDate("2026-02-09") {
		t.Errorf("seed is not stable for the same input")
	}
	if seedFromDate("2026-02-09") == seedFromDate("2026-02-10") {
		t.Errorf("seed collision between adjacent dates")
	}
	if seedFromDate("x") <= 0 {
		t.Errorf("seed must be positive")
	}
}

func TestLehmerRNGRange(t *testing.T) {
	rng := newLehmerRNG(1)
	for i := 0; i < 10000; i++ {
		v := rng.float()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %f", i, v)
		}
	}
}
