// Package incident generates the deterministic Monday status-board timeline:
// a seeded sequence of weighted random events degrading and recovering a set
// of fictional services. The same date string always yields the same
// timeline.
package incident

// ServiceState is the health of one service on the board.
type ServiceState string

const (
	StateOperational ServiceState = "operational"
	StateDegraded    ServiceState = "degraded"
	StateOutage      ServiceState = "outage"
)

// UpdateKind colors the human-facing status update line.
type UpdateKind string

const (
	UpdateInfo UpdateKind = "info"
	UpdateWarn UpdateKind = "warn"
	UpdateOK   UpdateKind = "ok"
)

// ServiceUpdate is one service transition carried by an event.
type ServiceUpdate struct {
	Key   string       `json:"key"`
	State ServiceState `json:"state"`
	Label string       `json:"label"`
}

// Overall is the board-wide severity banner of an event.
type Overall struct {
	State ServiceState `json:"state"`
	Code  string       `json:"code"`
	Text  string       `json:"text"`
}

// Update is the narrative status line of an event.
type Update struct {
	Kind UpdateKind `json:"kind"`
	Text string     `json:"text"`
}

// Event is one timeline entry: a time offset in seconds from incident start,
// the banner, the narrative update and the service transitions it applies.
type Event struct {
	TimeOffset int             `json:"timeOffset"`
	Overall    Overall         `json:"overall"`
	Update     Update          `json:"update"`
	Changes    []ServiceUpdate `json:"changes"`
	Stabilized bool            `json:"isStabilized,omitempty"`
}

// SystemState maps service key to current health.
type SystemState map[string]ServiceState

// ServiceDef describes one board service.
type ServiceDef struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Services is the fixed board roster.
var Services = []ServiceDef{
	{Key: "aws-dms", Name: "AWS Database Migration Service", Description: "Moves databases between places we do not have."},
	{Key: "aws-mediaconnect", Name: "AWS MediaConnect", Description: "Transports live video streams we do not produce."},
	{Key: "aws-workspaces", Name: "AWS WorkSpaces", Description: "Provides desktops for users who do not exist."},
	{Key: "aws-healthlake", Name: "Amazon HealthLake", Description: "Stores health records we absolutely do not have."},
	{Key: "aws-robomaker", Name: "AWS RoboMaker", Description: "Simulates robots. We ship HTML."},
	{Key: "aws-groundstation", Name: "AWS Ground Station", Description: "Communicates with satellites. Our traffic is terrestrial."},
	{Key: "azure-ai-bot", Name: "Azure AI Bot Service", Description: "Chats on our behalf. Liability unclear."},
	{Key: "azure-iot-edge", Name: "Azure IoT Edge", Description: "Runs on devices we do not manufacture."},
	{Key: "azure-quantum", Name: "Azure Quantum", Description: "Accelerates problems we do not solve."},
	{Key: "oracle-gcp", Name: "Oracle Database@Google Cloud", Description: "Because the cloud wasn't complicated enough."},
	{Key: "ibm-mq", Name: "IBM MQ", Description: "Delivers messages between systems that should not meet."},
	{Key: "netbios-ns", Name: "NetBIOS Name Service", Description: "Resolves names from 1997. Still somehow in the path."},
	{Key: "nt-eventlog", Name: "Windows NT Event Log", Description: "Records failures with enterprise-grade permanence."},
	{Key: "self-worth-cache", Name: "Self-Worth Cache", Description: "Evicts aggressively under Monday load."},
	{Key: "flux-capacitor", Name: "Flux Capacitor", Description: "Enables time travel. Currently blocked by policy."},
}

// ServiceKeys lists the roster keys in board order.
var ServiceKeys = func() []string {
	keys := make([]string, len(Services))
	for i, s := range Services {
		keys[i] = s.Key
	}
	return keys
}()

func anyInState(state SystemState, target ServiceState) bool {
	for _, key := range ServiceKeys {
		if state[key] == target {
			return true
		}
	}
	return false
}

func anyNotOperational(state SystemState) bool {
	for _, key := range ServiceKeys {
		if state[key] != StateOperational {
			return true
		}
	}
	return false
}

func countInState(state SystemState, target ServiceState) int {
	n := 0
	for _, key := range ServiceKeys {
		if state[key] == target {
			n++
		}
	}
	return n
}

func keysInState(state SystemState, target ServiceState) []string {
	out := make([]string, 0, len(ServiceKeys))
	for _, key := range ServiceKeys {
		if state[key] == target {
			out = append(out, key)
		}
	}
	return out
}

func keysNotOperational(state SystemState) []string {
	out := make([]string, 0, len(ServiceKeys))
	for _, key := range ServiceKeys {
		if state[key] != StateOperational {
			out = append(out, key)
		}
	}
	return out
}
