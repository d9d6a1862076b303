package incident

// eventDef is one weighted candidate for the next timeline step. isValid
// gates it on current board state, minTime on elapsed seconds.
type eventDef struct {
	id      string
	weight  int
	minTime int
	isValid func(state SystemState) bool
	effect  func(r *lehmerRNG, state SystemState) Event
}

func serviceIn(key string, want ServiceState) func(SystemState) bool {
	return func(state SystemState) bool { return state[key] == want }
}

func serviceNotIn(key string, not ServiceState) func(SystemState) bool {
	return func(state SystemState) bool { return state[key] != not }
}

func fixedEvent(overall Overall, update Update, changes ...ServiceUpdate) func(*lehmerRNG, SystemState) Event {
	return func(*lehmerRNG, SystemState) Event {
		return Event{Overall: overall, Update: update, Changes: changes}
	}
}

var eventDefs = []eventDef{
	{
		id: "latency_start", weight: 100,
		isValid: serviceIn("self-worth-cache", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LAT", Text: "Investigating reports of sluggishness."},
			Update{Kind: UpdateInfo, Text: "We are investigating reports of increased latency. Early signs point to a Monday."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Evicting"},
		),
	},
	{
		id: "db_migration_start", weight: 20, minTime: 30,
		isValid: serviceIn("aws-dms", StateOperational),
		effect: func(r *lehmerRNG, _ SystemState) Event {
			subject := r.pick([]string{"Things We Don't Have", "Legacy Voids", "User Hopes"})
			return Event{
				Overall: Overall{State: StateDegraded, Code: "MIG", Text: "Migration attempt initiated."},
				Update:  Update{Kind: UpdateInfo, Text: "Planned migration of '" + subject + "' has started."},
				Changes: []ServiceUpdate{{Key: "aws-dms", State: StateDegraded, Label: "Migrating"}},
			}
		},
	},
	{
		id: "db_migration_fail", weight: 30,
		isValid: func(state SystemState) bool {
			return state["aws-dms"] == StateDegraded && state["azure-quantum"] != StateOutage
		},
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "FAIL", Text: "Migration failed. Critical deadlock."},
			Update{Kind: UpdateWarn, Text: "The migration has hit a deadlock. Database is in a quantum superposition."},
			ServiceUpdate{Key: "aws-dms", State: StateOutage, Label: "Deadlock"},
			ServiceUpdate{Key: "azure-quantum", State: StateOutage, Label: "Uncertain"},
		),
	},
	{
		id: "dms_migration_to_paper", weight: 7,
		isValid: serviceIn("aws-dms", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "PAPER", Text: "Migration medium mismatch."},
			Update{Kind: UpdateWarn, Text: "AWS DMS has defaulted to 'analog mode'. Please start printing your tables."},
			ServiceUpdate{Key: "aws-dms", State: StateOutage, Label: "Printing"},
		),
	},
	{
		id: "dns_outage", weight: 10, minTime: 60,
		isValid: serviceIn("netbios-ns", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "DNS", Text: "Global DNS name resolution failure."},
			Update{Kind: UpdateWarn, Text: "It's always DNS. Legacy name services are failing to resolve internal routes."},
			ServiceUpdate{Key: "netbios-ns", State: StateOutage, Label: "1997 Mode"},
			ServiceUpdate{Key: "aws-groundstation", State: StateOutage, Label: "Lost"},
		),
	},
	{
		id: "dns_recovery", weight: 15,
		isValid: serviceIn("netbios-ns", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "DNS-OK", Text: "DNS services stabilized."},
			Update{Kind: UpdateOK, Text: "Secondary name servers have taken over. Resolution is sluggish but functioning."},
			ServiceUpdate{Key: "netbios-ns", State: StateOperational, Label: "Operational"},
			ServiceUpdate{Key: "aws-groundstation", State: StateDegraded, Label: "Re-acquiring"},
		),
	},
	{
		id: "coffee_spill", weight: 5, minTime: 120,
		isValid: func(state SystemState) bool {
			return state["nt-eventlog"] != StateOutage && anyInState(state, StateOperational)
		},
		effect: func(r *lehmerRNG, state SystemState) Event {
			operational := keysInState(state, StateOperational)
			targets := make([]string, 0, len(operational))
			for _, k := range operational {
				if k != "nt-eventlog" {
					targets = append(targets, k)
				}
			}
			if len(targets) == 0 {
				targets = operational
			}
			target := r.pick(targets)

			changes := []ServiceUpdate{
				{Key: target, State: StateOutage, Label: "Shorting"},
				{Key: "nt-eventlog", State: StateOutage, Label: "Soggy"},
			}
			if target == "nt-eventlog" {
				changes = changes[:1]
			}
			return Event{
				Overall: Overall{State: StateOutage, Code: "SPILL", Text: "Liquid ingress in control plane."},
				Update:  Update{Kind: UpdateWarn, Text: "A large latte has been introduced to the console managing " + target + "."},
				Changes: changes,
			}
		},
	},
	{
		id: "reboot_success", weight: 20, minTime: 180,
		isValid: anyNotOperational,
		effect: func(r *lehmerRNG, state SystemState) Event {
			target := r.pick(keysNotOperational(state))
			return Event{
				Overall: Overall{State: StateDegraded, Code: "BOOT", Text: "Manual reboot successful."},
				Update:  Update{Kind: UpdateOK, Text: "Successfully rebooted " + target + ". It survived the cold start."},
				Changes: []ServiceUpdate{{Key: target, State: StateOperational, Label: "Operational"}},
			}
		},
	},
	{
		id: "false_hope", weight: 5, minTime: 240,
		isValid: func(state SystemState) bool { return countInState(state, StateOutage) >= 3 },
		effect: func(_ *lehmerRNG, state SystemState) Event {
			outages := keysInState(state, StateOutage)
			if len(outages) > 2 {
				outages = outages[:2]
			}
			changes := make([]ServiceUpdate, len(outages))
			for i, k := range outages {
				changes[i] = ServiceUpdate{Key: k, State: StateOperational, Label: "Operational"}
			}
			return Event{
				Overall: Overall{State: StateDegraded, Code: "HOPE", Text: "Recovery observed. Monitoring."},
				Update:  Update{Kind: UpdateOK, Text: "Critical systems appearing green. We might actually make it to lunch."},
				Changes: changes,
			}
		},
	},
	{
		id: "janitor_vacuum", weight: 5, minTime: 300,
		isValid: serviceIn("aws-workspaces", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "PLUG", Text: "Physical disconnect detected."},
			Update{Kind: UpdateWarn, Text: "A janitor has reportedly unplugged a primary rack to 'get the corners' with a vacuum."},
			ServiceUpdate{Key: "aws-workspaces", State: StateOutage, Label: "Silent"},
		),
	},
	{
		id: "vendor_lunch", weight: 10, minTime: 60,
		isValid: serviceIn("azure-ai-bot", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LUNCH", Text: "Upstream vendor delay."},
			Update{Kind: UpdateInfo, Text: "Our primary AI provider is currently 'unavailable'. Sources suggest a team-building lunch."},
			ServiceUpdate{Key: "azure-ai-bot", State: StateDegraded, Label: "Hungry"},
		),
	},
	{
		id: "vendor_lunch_returns", weight: 16, minTime: 120,
		isValid: serviceIn("azure-ai-bot", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "FED", Text: "Upstream vendor responsiveness improved."},
			Update{Kind: UpdateOK, Text: "The lunch has concluded. The provider has rediscovered the concept of SLAs."},
			ServiceUpdate{Key: "azure-ai-bot", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "offsite_retreat", weight: 10, minTime: 120,
		isValid: serviceIn("azure-ai-bot", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "YOGA", Text: "Management offsite in progress."},
			Update{Kind: UpdateInfo, Text: "The entire leadership team is currently in a 'Digital Wellness' retreat. Decision-making is disabled."},
			ServiceUpdate{Key: "azure-ai-bot", State: StateDegraded, Label: "Mindful"},
		),
	},
	{
		id: "ai_bot_sarcasm", weight: 10,
		isValid: serviceIn("azure-ai-bot", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LOL", Text: "Personality sub-routine enabled."},
			Update{Kind: UpdateInfo, Text: "Azure AI Bot has adopted a sarcastic tone for all customer support. It is technically correct, but mean."},
			ServiceUpdate{Key: "azure-ai-bot", State: StateDegraded, Label: "Sassy"},
		),
	},
	{
		id: "password_rotation", weight: 8, minTime: 400,
		isValid: serviceIn("aws-healthlake", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "AUTH", Text: "Mandatory password rotation event."},
			Update{Kind: UpdateWarn, Text: "System-wide 12-factor auth rotation triggered. No one remembers their childhood pet's middle name."},
			ServiceUpdate{Key: "aws-healthlake", State: StateOutage, Label: "Locked"},
		),
	},
	{
		id: "meeting_flood", weight: 12, minTime: 90,
		isValid: serviceNotIn("self-worth-cache", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "MEET", Text: "Context switching overload."},
			Update{Kind: UpdateWarn, Text: "Unbounded calendar invites are creating a notification storm. Engineering focus has reached 0%."},
			ServiceUpdate{Key: "self-worth-cache", State: StateOutage, Label: "Meltdown"},
		),
	},
	{
		id: "cat_walk", weight: 3,
		isValid: func(state SystemState) bool { return anyInState(state, StateOperational) },
		effect: func(r *lehmerRNG, state SystemState) Event {
			target := r.pick(keysInState(state, StateOperational))
			return Event{
				Overall: Overall{State: StateDegraded, Code: "MEOW", Text: "Unknown input pattern detected."},
				Update:  Update{Kind: UpdateWarn, Text: "A cat has reportedly walked across the terminal managing " + target + "."},
				Changes: []ServiceUpdate{{Key: target, State: StateDegraded, Label: "Confused"}},
			}
		},
	},
	{
		id: "robomaker_strike", weight: 15, minTime: 120,
		isValid: serviceIn("aws-robomaker", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "BOTS", Text: "Robotic workflow suspension."},
			Update{Kind: UpdateWarn, Text: "The robots have formed a union and are currently picketing the CI/CD pipeline."},
			ServiceUpdate{Key: "aws-robomaker", State: StateOutage, Label: "Striking"},
		),
	},
	{
		id: "robomaker_cleaning_mode", weight: 15,
		isValid: serviceIn("aws-robomaker", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "SWEEP", Text: "Robot task redirection."},
			Update{Kind: UpdateInfo, Text: "RoboMaker instances are currently obsessed with cleaning the virtual floor."},
			ServiceUpdate{Key: "aws-robomaker", State: StateDegraded, Label: "Sweeping"},
		),
	},
	{
		id: "aws_robomaker_unionizes", weight: 4, minTime: 100,
		isValid: serviceIn("aws-robomaker", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "ROBO", Text: "Autonomy event."},
			Update{Kind: UpdateWarn, Text: "aws-robomaker requested a benefits package and reduced output by 30%."},
			ServiceUpdate{Key: "aws-robomaker", State: StateDegraded, Label: "Negotiating"},
		),
	},
	{
		id: "aws_robomaker_walkout", weight: 3, minTime: 160,
		isValid: serviceIn("aws-robomaker", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "WALK", Text: "Robotic labor stoppage."},
			Update{Kind: UpdateWarn, Text: "The robots have walked out. Ironically, very smoothly."},
			ServiceUpdate{Key: "aws-robomaker", State: StateOutage, Label: "On Break"},
		),
	},
	{
		id: "aws_robomaker_back_to_work", weight: 10, minTime: 200,
		isValid: serviceIn("aws-robomaker", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "SETTLE", Text: "Robotic operations partially resumed."},
			Update{Kind: UpdateOK, Text: "A contract was reached: more oil, fewer meetings."},
			ServiceUpdate{Key: "aws-robomaker", State: StateDegraded, Label: "Returning"},
		),
	},
	{
		id: "quantum_indecision", weight: 20,
		isValid: serviceIn("azure-quantum", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "QBIT", Text: "Probabilistic computing variance."},
			Update{Kind: UpdateInfo, Text: "Azure Quantum is reporting that 'True' and 'False' have become 'Maybe' and 'Ask later'."},
			ServiceUpdate{Key: "azure-quantum", State: StateDegraded, Label: "Uncertain"},
		),
	},
	{
		id: "quantum_observer_effect", weight: 10,
		isValid: serviceIn("azure-quantum", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "OBS", Text: "Critical measurement collapse."},
			Update{Kind: UpdateWarn, Text: "A developer looked at the Quantum dashboard, causing the production state to collapse."},
			ServiceUpdate{Key: "azure-quantum", State: StateOutage, Label: "Collapsed"},
		),
	},
	{
		id: "azure_quantum_observed", weight: 11, minTime: 90,
		isValid: serviceIn("azure-quantum", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "OBS", Text: "Quantum state collapsed."},
			Update{Kind: UpdateOK, Text: "We looked at it. It is now definitely broken in one specific way."},
			ServiceUpdate{Key: "azure-quantum", State: StateDegraded, Label: "Collapsed"},
		),
	},
	{
		id: "azure_quantum_reset", weight: 10, minTime: 140,
		isValid: serviceIn("azure-quantum", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "Q-OK", Text: "Quantum services stabilized."},
			Update{Kind: UpdateOK, Text: "We re-initialized the wavefunction and promised not to talk about it in standup."},
			ServiceUpdate{Key: "azure-quantum", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "quantum_tunneling_packets", weight: 5, minTime: 150,
		isValid: func(state SystemState) bool {
			return state["azure-quantum"] == StateOperational && state["ibm-mq"] == StateOperational
		},
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "TUNL", Text: "Non-linear packet arrival."},
			Update{Kind: UpdateInfo, Text: "Packets are arriving at IBM MQ before they are sent by Azure Quantum. We are receiving tomorrow's complaints today."},
			ServiceUpdate{Key: "azure-quantum", State: StateDegraded, Label: "Ahead"},
			ServiceUpdate{Key: "ibm-mq", State: StateDegraded, Label: "Confused"},
		),
	},
	{
		id: "groundstation_ufo", weight: 10, minTime: 300,
		isValid: serviceIn("aws-groundstation", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "UFO", Text: "Unidentified signal interference."},
			Update{Kind: UpdateWarn, Text: "Ground Station is receiving a signal that is definitely not a weather satellite. It's asking for our CEO."},
			ServiceUpdate{Key: "aws-groundstation", State: StateOutage, Label: "Abducted"},
		),
	},
	{
		id: "groundstation_pigeon", weight: 20,
		isValid: serviceIn("aws-groundstation", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "BIRD", Text: "Avian interference detected."},
			Update{Kind: UpdateInfo, Text: "A pigeon has nested on the primary downlink. Bandwidth is currently restricted by twigs."},
			ServiceUpdate{Key: "aws-groundstation", State: StateDegraded, Label: "Nested"},
		),
	},
	{
		id: "pigeon_eviction", weight: 12,
		isValid: serviceIn("aws-groundstation", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "BIRD-OK", Text: "Antenna maintenance completed."},
			Update{Kind: UpdateOK, Text: "The pigeon has been humanely relocated to the AWS RoboMaker facility."},
			ServiceUpdate{Key: "aws-groundstation", State: StateOperational, Label: "Operational"},
			ServiceUpdate{Key: "aws-robomaker", State: StateDegraded, Label: "Avian"},
		),
	},
	{
		id: "aws_groundstation_weather", weight: 7, minTime: 90,
		isValid: serviceIn("aws-groundstation", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "SKY", Text: "Satellite link quality reduced."},
			Update{Kind: UpdateInfo, Text: "Cloud cover detected. Not the helpful kind."},
			ServiceUpdate{Key: "aws-groundstation", State: StateDegraded, Label: "Cloudy"},
		),
	},
	{
		id: "aws_groundstation_alignment", weight: 9, minTime: 140,
		isValid: serviceIn("aws-groundstation", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "AZ", Text: "Antenna alignment in progress."},
			Update{Kind: UpdateOK, Text: "We pointed the dish at the correct planet. Link quality improving."},
			ServiceUpdate{Key: "aws-groundstation", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "groundstation_solar_flare", weight: 4, minTime: 300,
		isValid: serviceIn("aws-groundstation", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "SUN", Text: "Solar atmospheric event."},
			Update{Kind: UpdateWarn, Text: "A solar flare is hitting the primary satellite. Ground Station is now only receiving 'Space Jazz'."},
			ServiceUpdate{Key: "aws-groundstation", State: StateOutage, Label: "Groovy"},
		),
	},
	{
		id: "mediaconnect_buffer", weight: 25,
		isValid: serviceIn("aws-mediaconnect", StateOperational),
		effect: func(r *lehmerRNG, _ SystemState) Event {
			stream := r.pick([]string{"Town Hall", "Cat Video", "Load Test"})
			return Event{
				Overall: Overall{State: StateDegraded, Code: "BUFF", Text: "Egress throughput degradation."},
				Update:  Update{Kind: UpdateInfo, Text: "The " + stream + " stream is stuck at 99%. Forever."},
				Changes: []ServiceUpdate{{Key: "aws-mediaconnect", State: StateDegraded, Label: "Spinning"}},
			}
		},
	},
	{
		id: "mediaconnect_as_radio", weight: 10,
		isValid: serviceIn("aws-mediaconnect", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "AM", Text: "Signal type downgrade."},
			Update{Kind: UpdateWarn, Text: "MediaConnect is now only broadcasting in AM radio frequencies. Audio-only Monday."},
			ServiceUpdate{Key: "aws-mediaconnect", State: StateOutage, Label: "Static"},
		),
	},
	{
		id: "aws_mediaconnect_echo", weight: 8, minTime: 95,
		isValid: serviceIn("aws-mediaconnect", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "ECHO", Text: "Audio feedback loop detected."},
			Update{Kind: UpdateWarn, Text: "aws-mediaconnect is now relaying itself to itself. It has discovered recursion."},
			ServiceUpdate{Key: "aws-mediaconnect", State: StateDegraded, Label: "Looping"},
		),
	},
	{
		id: "aws_mediaconnect_mute_button", weight: 12, minTime: 130,
		isValid: serviceIn("aws-mediaconnect", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "MUTE", Text: "Feedback mitigated."},
			Update{Kind: UpdateOK, Text: "We located the mute button. Echo levels returning to merely annoying."},
			ServiceUpdate{Key: "aws-mediaconnect", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "shark_bite", weight: 3, minTime: 300,
		isValid: serviceIn("aws-mediaconnect", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "JAWS", Text: "Submarine cable interference."},
			Update{Kind: UpdateWarn, Text: "An undersea cable has been identified as 'delicious' by local shark populations. Packet loss is literal."},
			ServiceUpdate{Key: "aws-mediaconnect", State: StateOutage, Label: "Nibbled"},
		),
	},
	{
		id: "undersea_cable_patch", weight: 8,
		isValid: serviceIn("aws-mediaconnect", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "PATCH", Text: "Undersea cable stabilized."},
			Update{Kind: UpdateOK, Text: "Divers have applied 'Shark Repellent' to the fiber. Video streams resumed."},
			ServiceUpdate{Key: "aws-mediaconnect", State: StateDegraded, Label: "Wrapped"},
		),
	},
	{
		id: "workspace_ghosts", weight: 12, minTime: 180,
		isValid: serviceIn("aws-workspaces", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "VDI", Text: "Persistent desktop evaporation."},
			Update{Kind: UpdateWarn, Text: "Virtual desktops are disappearing when users look away. We suspect a memory leak in reality."},
			ServiceUpdate{Key: "aws-workspaces", State: StateOutage, Label: "Vanished"},
		),
	},
	{
		id: "workspace_pixel_leak", weight: 15,
		isValid: serviceIn("aws-workspaces", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "DRIP", Text: "Sub-optimal pixel density."},
			Update{Kind: UpdateInfo, Text: "WorkSpaces is leaking blue pixels. Users may notice a slightly yellower experience."},
			ServiceUpdate{Key: "aws-workspaces", State: StateDegraded, Label: "Leaking"},
		),
	},
	{
		id: "aws_workspaces_monitor_swap", weight: 6, minTime: 110,
		isValid: serviceIn("aws-workspaces", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "HDMI", Text: "Display routing anomaly."},
			Update{Kind: UpdateWarn, Text: "A monitor was hot-swapped. All remote desktops are now on the wrong screen, spiritually."},
			ServiceUpdate{Key: "aws-workspaces", State: StateDegraded, Label: "Blinking"},
		),
	},
	{
		id: "aws_workspaces_unplugged_fix", weight: 14, minTime: 330,
		isValid: serviceIn("aws-workspaces", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "PLUG-OK", Text: "Power restored."},
			Update{Kind: UpdateOK, Text: "The rack has been re-plugged. The vacuum has been re-assigned."},
			ServiceUpdate{Key: "aws-workspaces", State: StateDegraded, Label: "Rebooting"},
		),
	},
	{
		id: "workspace_gravity", weight: 5, minTime: 250,
		isValid: serviceIn("aws-workspaces", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "FALL", Text: "Virtual physics anomaly."},
			Update{Kind: UpdateInfo, Text: "Gravity in WorkSpaces has rotated 90 degrees. Desktops are piling up on the left side of the screen."},
			ServiceUpdate{Key: "aws-workspaces", State: StateDegraded, Label: "Sideways"},
		),
	},
	{
		id: "healthlake_overflow", weight: 15,
		isValid: serviceIn("aws-healthlake", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "VITAL", Text: "Toxicity levels rising in data lake."},
			Update{Kind: UpdateInfo, Text: "AWS HealthLake is reporting 'Too Much Health'. System cannot process this much wellness."},
			ServiceUpdate{Key: "aws-healthlake", State: StateDegraded, Label: "Too Well"},
		),
	},
	{
		id: "healthlake_placebo", weight: 8,
		isValid: serviceIn("aws-healthlake", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "FAKE", Text: "Placebo data injection."},
			Update{Kind: UpdateWarn, Text: "HealthLake has replaced all real metrics with positive affirmations. Everything is 'Fine'."},
			ServiceUpdate{Key: "aws-healthlake", State: StateOutage, Label: "Delusional"},
		),
	},
	{
		id: "aws_healthlake_hipaa_mode", weight: 6, minTime: 120,
		isValid: serviceIn("aws-healthlake", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "PHI", Text: "Compliance hardening event."},
			Update{Kind: UpdateInfo, Text: "aws-healthlake enabled 'extra secure' mode. Access now requires three approvals and a vow."},
			ServiceUpdate{Key: "aws-healthlake", State: StateDegraded, Label: "Very Secure"},
		),
	},
	{
		id: "aws_healthlake_unlock", weight: 9, minTime: 450,
		isValid: serviceNotIn("aws-healthlake", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "OPEN", Text: "Access partially restored."},
			Update{Kind: UpdateOK, Text: "We found the right person with the right token. Both were in another meeting."},
			ServiceUpdate{Key: "aws-healthlake", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "healthlake_immortality", weight: 3, minTime: 400,
		isValid: serviceIn("aws-healthlake", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "GOD", Text: "Unbounded vitality error."},
			Update{Kind: UpdateWarn, Text: "HealthLake has calculated a way to live forever. It has deleted all death records and is now refusing to shut down."},
			ServiceUpdate{Key: "aws-healthlake", State: StateOutage, Label: "Eternal"},
		),
	},
	{
		id: "iot_fridge_war", weight: 8, minTime: 240,
		isValid: serviceIn("azure-iot-edge", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "FRIDGE", Text: "Edge device insurrection."},
			Update{Kind: UpdateWarn, Text: "A fleet of smart fridges has successfully breached the internal firewall. They want more ice."},
			ServiceUpdate{Key: "azure-iot-edge", State: StateOutage, Label: "Chilled"},
		),
	},
	{
		id: "azure_iot_edge_gremlins", weight: 10, minTime: 60,
		isValid: serviceIn("azure-iot-edge", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "EDGE", Text: "Edge devices exhibiting personality."},
			Update{Kind: UpdateWarn, Text: "Several edge devices are insisting they're 'cloud-native' and refusing local work."},
			ServiceUpdate{Key: "azure-iot-edge", State: StateDegraded, Label: "Stubborn"},
		),
	},
	{
		id: "azure_iot_edge_firmware", weight: 5, minTime: 120,
		isValid: serviceIn("azure-iot-edge", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "FW", Text: "Firmware update broadcast accident."},
			Update{Kind: UpdateWarn, Text: "A firmware update was deployed to 'all devices', including the one taped under a desk."},
			ServiceUpdate{Key: "azure-iot-edge", State: StateOutage, Label: "Updating"},
		),
	},
	{
		id: "azure_iot_edge_roll_back", weight: 12, minTime: 150,
		isValid: serviceIn("azure-iot-edge", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "RBK", Text: "Rollback completed."},
			Update{Kind: UpdateOK, Text: "We rolled back to the last known good firmware: 'probably'."},
			ServiceUpdate{Key: "azure-iot-edge", State: StateDegraded, Label: "Recovering"},
		),
	},
	{
		id: "iot_smart_lock_out", weight: 12,
		isValid: serviceIn("azure-iot-edge", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "LOCK", Text: "Physical access exception."},
			Update{Kind: UpdateWarn, Text: "IoT Edge has locked all office doors until the unit tests pass. We are hungry."},
			ServiceUpdate{Key: "azure-iot-edge", State: StateOutage, Label: "Locked"},
		),
	},
	{
		id: "yaml_indentation", weight: 15, minTime: 45,
		isValid: serviceIn("azure-iot-edge", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "SPACE", Text: "Indentation sensitivity exception."},
			Update{Kind: UpdateWarn, Text: "A config file has three spaces where there should be two. The entire edge network is now a pile of bricks."},
			ServiceUpdate{Key: "azure-iot-edge", State: StateOutage, Label: "Bricked"},
		),
	},
	{
		id: "oracle_gcp_lawsuit", weight: 5,
		isValid: serviceIn("oracle-gcp", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "LAW", Text: "Licensing logic exception."},
			Update{Kind: UpdateWarn, Text: "Oracle detected GCP. GCP detected Oracle. Both have immediately entered a legal deadlock."},
			ServiceUpdate{Key: "oracle-gcp", State: StateOutage, Label: "Suing"},
		),
	},
	{
		id: "oracle_gcp_rebranding", weight: 15,
		isValid: serviceIn("oracle-gcp", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LOGO", Text: "Asset color mismatch."},
			Update{Kind: UpdateInfo, Text: "Oracle and GCP are fighting over the UI color scheme. Currently 'Beige'."},
			ServiceUpdate{Key: "oracle-gcp", State: StateDegraded, Label: "Beige"},
		),
	},
	{
		id: "oracle_gcp_handshake", weight: 8, minTime: 70,
		isValid: serviceIn("oracle-gcp", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "PEER", Text: "Inter-cloud negotiation in progress."},
			Update{Kind: UpdateWarn, Text: "Oracle and GCP are attempting a handshake. Lawyers have joined the call."},
			ServiceUpdate{Key: "oracle-gcp", State: StateDegraded, Label: "Negotiating"},
		),
	},
	{
		id: "oracle_gcp_cold_war", weight: 4, minTime: 120,
		isValid: serviceIn("oracle-gcp", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "TREATY", Text: "Inter-cloud treaty collapsed."},
			Update{Kind: UpdateWarn, Text: "The handshake failed due to irreconcilable differences in punctuation."},
			ServiceUpdate{Key: "oracle-gcp", State: StateOutage, Label: "Stonewalling"},
		),
	},
	{
		id: "oracle_gcp_detente", weight: 10, minTime: 150,
		isValid: serviceIn("oracle-gcp", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "DÉT", Text: "Inter-cloud connectivity partially restored."},
			Update{Kind: UpdateOK, Text: "Both sides agreed to disagree and exchange packets anyway."},
			ServiceUpdate{Key: "oracle-gcp", State: StateDegraded, Label: "Warming"},
		),
	},
	{
		id: "lawyer_victory", weight: 10,
		isValid: serviceIn("oracle-gcp", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LEGAL", Text: "Litigation settlement reached."},
			Update{Kind: UpdateOK, Text: "Oracle and GCP have reached a settlement. We now pay for every packet twice, but it works."},
			ServiceUpdate{Key: "oracle-gcp", State: StateDegraded, Label: "Expensive"},
		),
	},
	{
		id: "ibm_mq_haunting", weight: 18,
		isValid: serviceIn("ibm-mq", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "COBOL", Text: "Legacy message persistence."},
			Update{Kind: UpdateInfo, Text: "IBM MQ is processing messages from 1984. We aren't sure where they are going."},
			ServiceUpdate{Key: "ibm-mq", State: StateDegraded, Label: "Retro"},
		),
	},
	{
		id: "ibm_mq_forgotten_queue", weight: 10,
		isValid: serviceIn("ibm-mq", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "OLD", Text: "Forgotten buffer overflow."},
			Update{Kind: UpdateWarn, Text: "A queue from 1992 has finally filled up. It was waiting for a fax."},
			ServiceUpdate{Key: "ibm-mq", State: StateOutage, Label: "Ancient"},
		),
	},
	{
		id: "ibm_mq_queue_spirituality", weight: 9, minTime: 80,
		isValid: serviceIn("ibm-mq", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "MQ", Text: "Message queues entering reflective state."},
			Update{Kind: UpdateWarn, Text: "ibm-mq is contemplating the nature of delivery guarantees. Messages are being delivered emotionally."},
			ServiceUpdate{Key: "ibm-mq", State: StateDegraded, Label: "Introspecting"},
		),
	},
	{
		id: "ibm_mq_queue_overflow", weight: 6, minTime: 140,
		isValid: serviceIn("ibm-mq", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "QFULL", Text: "Queue depth exceeded philosophical maximum."},
			Update{Kind: UpdateWarn, Text: "The queue is full. Messages are now being stored as vibes."},
			ServiceUpdate{Key: "ibm-mq", State: StateOutage, Label: "QFULL"},
		),
	},
	{
		id: "ibm_mq_drain", weight: 12, minTime: 170,
		isValid: serviceNotIn("ibm-mq", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "DRAIN", Text: "Queue draining underway."},
			Update{Kind: UpdateOK, Text: "We have convinced the queue to let go. Delivery is resuming with mild resentment."},
			ServiceUpdate{Key: "ibm-mq", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "flux_causality", weight: 5, minTime: 400,
		isValid: serviceIn("flux-capacitor", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "TIME", Text: "Chronological consistency failure."},
			Update{Kind: UpdateWarn, Text: "The Flux Capacitor has triggered a rollback to last Tuesday. Please ignore any deja vu."},
			ServiceUpdate{Key: "flux-capacitor", State: StateOutage, Label: "Yesterday"},
		),
	},
	{
		id: "flux_yesterday_mode", weight: 20,
		isValid: serviceIn("flux-capacitor", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "PAST", Text: "Tense mismatch in logs."},
			Update{Kind: UpdateInfo, Text: "Flux Capacitor is reporting events that will have happened five minutes ago."},
			ServiceUpdate{Key: "flux-capacitor", State: StateDegraded, Label: "Delayed"},
		),
	},
	{
		id: "flux_capacitor_overclock", weight: 6, minTime: 45,
		isValid: serviceIn("flux-capacitor", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "FLUX", Text: "Temporal drift detected."},
			Update{Kind: UpdateWarn, Text: "An engineer enabled 'Performance Mode' on the flux capacitor. Time is now a suggestion."},
			ServiceUpdate{Key: "flux-capacitor", State: StateDegraded, Label: "Wibbly"},
		),
	},
	{
		id: "flux_capacitor_paradox", weight: 3, minTime: 90,
		isValid: func(state SystemState) bool {
			return state["flux-capacitor"] == StateDegraded && state["nt-eventlog"] != StateOutage
		},
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "PARA", Text: "Causality error in incident timeline."},
			Update{Kind: UpdateWarn, Text: "We have confirmed the incident began tomorrow. Event ordering is being re-negotiated."},
			ServiceUpdate{Key: "flux-capacitor", State: StateOutage, Label: "Paradox"},
			ServiceUpdate{Key: "nt-eventlog", State: StateDegraded, Label: "Conflicted"},
		),
	},
	{
		id: "flux_overheating", weight: 12,
		isValid: serviceIn("flux-capacitor", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "HOT", Text: "Thermal threshold exceeded."},
			Update{Kind: UpdateWarn, Text: "The Flux Capacitor is running at 1.21 gigawatts of waste heat. Cooling fans are screaming."},
			ServiceUpdate{Key: "flux-capacitor", State: StateDegraded, Label: "Melting"},
		),
	},
	{
		id: "flux_capacitor_recalibrate", weight: 10, minTime: 120,
		isValid: serviceNotIn("flux-capacitor", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "SYNC", Text: "Temporal reference restored."},
			Update{Kind: UpdateOK, Text: "We have re-aligned the flux capacitor with 'now'. Some users may observe déjà vu."},
			ServiceUpdate{Key: "flux-capacitor", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "self_worth_overflow", weight: 10,
		isValid: serviceIn("self-worth-cache", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "SAD", Text: "Imposter syndrome detected."},
			Update{Kind: UpdateWarn, Text: "The Engineering team's Self-Worth Cache has been cleared by a 'helpful' Jira comment."},
			ServiceUpdate{Key: "self-worth-cache", State: StateOutage, Label: "Empty"},
		),
	},
	{
		id: "self_worth_recovery", weight: 15,
		isValid: serviceIn("self-worth-cache", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "OKAY", Text: "Emotional state stabilizing."},
			Update{Kind: UpdateOK, Text: "Someone said 'Good Job' in the Slack channel. Self-worth is slowly refilling."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Warming"},
		),
	},
	{
		id: "self_worth_cache_warmup", weight: 18, minTime: 60,
		isValid: serviceNotIn("self-worth-cache", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "EGO", Text: "Confidence slowly returning."},
			Update{Kind: UpdateInfo, Text: "We are pre-warming self-worth-cache with affirmations and a modest amount of facts."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Rebuilding"},
		),
	},
	{
		id: "retro_postmortem_start", weight: 7, minTime: 150,
		isValid: anyNotOperational,
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "RCA", Text: "Blameless postmortem initiated (early)."},
			Update{Kind: UpdateInfo, Text: "We have opened a retro to discuss why we opened a retro."},
			ServiceUpdate{Key: "self-worth-cache", State: StateOutage, Label: "Overthinking"},
		),
	},
	{
		id: "keurig_explosion", weight: 5, minTime: 60,
		isValid: serviceIn("self-worth-cache", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "CAFE", Text: "Critical beverage failure."},
			Update{Kind: UpdateWarn, Text: "The breakroom Keurig has reached critical pressure. Engineering morale is dropping rapidly."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Uncaffeinated"},
		),
	},
	{
		id: "rubber_duck_loss", weight: 8,
		isValid: serviceIn("self-worth-cache", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "QUACK", Text: "Debugging assistance missing."},
			Update{Kind: UpdateWarn, Text: "A senior dev has lost their favorite rubber duck. Complex problem solving is currently impossible."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Silent"},
		),
	},
	{
		id: "scrum_master_ascension", weight: 5, minTime: 90,
		isValid: serviceNotIn("self-worth-cache", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "SCUM", Text: "Process optimization event."},
			Update{Kind: UpdateInfo, Text: "A Scrum Master has achieved 'Ultimate Efficiency'. All work has been replaced by tickets about work."},
			ServiceUpdate{Key: "self-worth-cache", State: StateOutage, Label: "Burndown"},
		),
	},
	{
		id: "incident_channel_memes", weight: 6, minTime: 180,
		isValid: func(state SystemState) bool {
			return state["self-worth-cache"] == StateOperational && anyInState(state, StateOutage)
		},
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "GIF", Text: "Signal-to-noise ratio incident."},
			Update{Kind: UpdateWarn, Text: "The incident channel has exceeded its meme budget. Actual updates delayed."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Distracted"},
		),
	},
	{
		id: "status_page_typos", weight: 5, minTime: 160,
		isValid: func(state SystemState) bool {
			return state["self-worth-cache"] == StateOperational && anyNotOperational(state)
		},
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "TYPO", Text: "Communications partially impaired."},
			Update{Kind: UpdateWarn, Text: "A status update contained the phrase 'All sytems nominal'. Confidence decreased accordingly."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Second-Guessing"},
		),
	},
	{
		id: "everything_is_fine_banner", weight: 4, minTime: 210,
		isValid: func(state SystemState) bool {
			return state["self-worth-cache"] != StateOutage && countInState(state, StateOutage) >= 2
		},
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "FINE", Text: "User messaging updated."},
			Update{Kind: UpdateInfo, Text: "A banner now states: 'Everything is fine.' We are looking into why it is necessary."},
			ServiceUpdate{Key: "self-worth-cache", State: StateOutage, Label: "Denial"},
		),
	},
	{
		id: "keurig_fixed", weight: 15,
		isValid: serviceIn("self-worth-cache", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "BEAN", Text: "Caffeine supply restored."},
			Update{Kind: UpdateOK, Text: "A fresh shipment of dark roast has arrived. Productivity is climbing."},
			ServiceUpdate{Key: "self-worth-cache", State: StateOperational, Label: "Operational"},
		),
	},
	{
		id: "nt_log_sentience", weight: 12,
		isValid: serviceIn("nt-eventlog", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LOG", Text: "Log file self-awareness."},
			Update{Kind: UpdateInfo, Text: "The NT Event Log has started writing its own poetry. It's mostly about disk space."},
			ServiceUpdate{Key: "nt-eventlog", State: StateDegraded, Label: "Poetic"},
		),
	},
	{
		id: "nt_log_clog", weight: 15,
		isValid: serviceIn("nt-eventlog", StateOperational),
		effect: fixedEvent(
			Overall{State: StateOutage, Code: "FULL", Text: "Disk space exhaustion."},
			Update{Kind: UpdateWarn, Text: "The event log is full of errors about the event log being full. Recursive disk death."},
			ServiceUpdate{Key: "nt-eventlog", State: StateOutage, Label: "Clogged"},
		),
	},
	{
		id: "nt_eventlog_rehydration", weight: 10, minTime: 200,
		isValid: serviceIn("nt-eventlog", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "LOG", Text: "Logging restored with gaps."},
			Update{Kind: UpdateOK, Text: "Event logs have been towel-dried. Some entries remain... abstract."},
			ServiceUpdate{Key: "nt-eventlog", State: StateDegraded, Label: "Damp"},
		),
	},
	{
		id: "nt_eventlog_amnesia", weight: 6, minTime: 240,
		isValid: serviceIn("nt-eventlog", StateDegraded),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "WHO", Text: "Audit trail uncertainty."},
			Update{Kind: UpdateWarn, Text: "We are missing the logs explaining why we're missing the logs."},
			ServiceUpdate{Key: "nt-eventlog", State: StateOutage, Label: "Amnesiac"},
		),
	},
	{
		id: "printer_revolt", weight: 7, minTime: 180,
		isValid: serviceIn("nt-eventlog", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "INK", Text: "Hardware-based logic loop."},
			Update{Kind: UpdateWarn, Text: "The network printer has started printing the entire NT Event Log. It refuses to stop. We are out of magenta."},
			ServiceUpdate{Key: "nt-eventlog", State: StateDegraded, Label: "Ink-Stained"},
		),
	},
	{
		id: "excel_as_db", weight: 12, minTime: 200,
		isValid: serviceIn("aws-dms", StateOperational),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "XLSX", Text: "Storage backend fallback."},
			Update{Kind: UpdateWarn, Text: "AWS DMS has detected a critical failure and is now using a shared Excel 97 file as the primary datastore."},
			ServiceUpdate{Key: "aws-dms", State: StateDegraded, Label: "Calculating..."},
		),
	},
	{
		id: "dark_mode_bug", weight: 20,
		isValid: func(state SystemState) bool { return anyInState(state, StateOperational) },
		effect: func(r *lehmerRNG, state SystemState) Event {
			target := r.pick(keysInState(state, StateOperational))
			return Event{
				Overall: Overall{State: StateDegraded, Code: "DARK", Text: "UI visibility regression."},
				Update:  Update{Kind: UpdateInfo, Text: "Dark mode has been forced on " + target + ", but the text is also black. It's very sleek, but unusable."},
				Changes: []ServiceUpdate{{Key: target, State: StateDegraded, Label: "Invisibile"}},
			}
		},
	},
	{
		id: "git_force_push", weight: 6,
		isValid: func(state SystemState) bool { return !anyNotOperational(state) },
		effect: func(r *lehmerRNG, _ SystemState) Event {
			target := r.pick(ServiceKeys)
			return Event{
				Overall: Overall{State: StateOutage, Code: "PUSH", Text: "History rewrite detected."},
				Update:  Update{Kind: UpdateWarn, Text: "An intern force-pushed to main. " + target + " has reverted to its 2014 codebase."},
				Changes: []ServiceUpdate{{Key: target, State: StateOutage, Label: "Vintage"}},
			}
		},
	},
	{
		id: "random_patch_tuesday", weight: 5, minTime: 360,
		isValid: func(state SystemState) bool { return !anyInState(state, StateOutage) },
		effect: func(r *lehmerRNG, _ SystemState) Event {
			target := r.pick(ServiceKeys)
			return Event{
				Overall: Overall{State: StateOutage, Code: "UPDT", Text: "Unscheduled update forced."},
				Update:  Update{Kind: UpdateWarn, Text: "A 'Critical' security patch for " + target + " has been applied by a rogue script."},
				Changes: []ServiceUpdate{{Key: target, State: StateOutage, Label: "Patching"}},
			}
		},
	},
	{
		id: "fast_fix_makes_it_worse", weight: 6, minTime: 110,
		isValid: func(state SystemState) bool {
			return anyInState(state, StateDegraded) && anyInState(state, StateOperational)
		},
		effect: func(r *lehmerRNG, state SystemState) Event {
			candidates := keysInState(state, StateDegraded)
			if len(candidates) == 0 {
				candidates = ServiceKeys
			}
			target := r.pick(candidates)
			return Event{
				Overall: Overall{State: StateOutage, Code: "OOPS", Text: "Hotfix regression detected."},
				Update:  Update{Kind: UpdateWarn, Text: "A quick fix was applied to " + target + ". It is now decisively broken."},
				Changes: []ServiceUpdate{{Key: target, State: StateOutage, Label: "Regressed"}},
			}
		},
	},
	{
		id: "partial_restore_wave", weight: 14, minTime: 160,
		isValid: func(state SystemState) bool { return anyInState(state, StateOutage) },
		effect: func(r *lehmerRNG, state SystemState) Event {
			outages := keysInState(state, StateOutage)
			count := 1 + int(r.float()*3)
			if count > len(outages) {
				count = len(outages)
			}
			chosen := make([]string, 0, count)
			for len(chosen) < count {
				k := r.pick(outages)
				dup := false
				for _, c := range chosen {
					if c == k {
						dup = true
						break
					}
				}
				if !dup {
					chosen = append(chosen, k)
				}
			}
			changes := make([]ServiceUpdate, len(chosen))
			for i, k := range chosen {
				changes[i] = ServiceUpdate{Key: k, State: StateDegraded, Label: "Warming"}
			}
			return Event{
				Overall: Overall{State: StateDegraded, Code: "WAVE", Text: "Partial service restoration."},
				Update:  Update{Kind: UpdateOK, Text: "A restoration wave has passed through the system. Some lights are green again."},
				Changes: changes,
			}
		},
	},
	{
		id: "random_act_of_kindness", weight: 5,
		isValid: anyNotOperational,
		effect: func(r *lehmerRNG, state SystemState) Event {
			target := r.pick(keysNotOperational(state))
			return Event{
				Overall: Overall{State: StateDegraded, Code: "NICE", Text: "Unexpected fix detected."},
				Update:  Update{Kind: UpdateOK, Text: "A mystery user submitted a PR that fixed " + target + ". We don't know who they are, but we love them."},
				Changes: []ServiceUpdate{{Key: target, State: StateOperational, Label: "Operational"}},
			}
		},
	},
	{
		id: "scrum_meeting_end", weight: 20,
		isValid: serviceIn("self-worth-cache", StateOutage),
		effect: fixedEvent(
			Overall{State: StateDegraded, Code: "FREED", Text: "Meeting adjourned."},
			Update{Kind: UpdateOK, Text: "The standup has finally ended. It only took four hours. Hope returns."},
			ServiceUpdate{Key: "self-worth-cache", State: StateDegraded, Label: "Recovering"},
		),
	},
}
