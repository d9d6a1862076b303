package nakama

const (
	// RpcFindTable is the Nakama RPC id clients call to find or create a lobby-capable table.
	RpcFindTable = "find_table"

	// RpcReplayToken is the Nakama RPC id clients call to obtain a signed replay token.
	RpcReplayToken = "replay_token"

	// MatchNameDoppelkopf is the authoritative match handler name registered with Nakama.
	MatchNameDoppelkopf = "doppelkopf_table"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartHand          int64 = 1
	OpPlayCard           int64 = 2
	OpAnnounce           int64 = 3
	OpAnnounceSchweine   int64 = 4
	OpAcceptArmut        int64 = 5
	OpExchangeArmutCards int64 = 6

	// Server -> Client events
	OpTableSnapshot int64 = 101
	OpTableEvent    int64 = 102 // engine and table events, JSON envelope
	OpHandDealt     int64 = 103 // send privately
	OpGameError     int64 = 110
)
