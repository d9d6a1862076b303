package app

// MinHumansToStartHand defines how many human players a table needs before the
// owner may deal; bots fill the remaining seats.
// Keep this centralized so tests or local runs can adjust the rule without touching multiple call sites.
const MinHumansToStartHand = 1
