package mearth

// Game configuration constants mirrored from the on-chain program. They are
// used for client-side sanity checks only; the program remains the authority.
const (
	MapDiameter uint32 = 1000
	BattleRange uint32 = 50
	MaxAgents   uint8  = 4

	MaxAgentNameLength = 32

	MovementCooldownSec int64 = 3600  // 1 hour
	BattleCooldownSec   int64 = 14400 // 4 hours
	IgnoreCooldownSec   int64 = 14400 // 4 hours
	AllianceCooldownSec int64 = 86400 // 24 hours
)
