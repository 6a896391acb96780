package mearth

import (
	"crypto/sha256"
)

// Anchor prefixes every instruction's data with an 8-byte discriminator
// derived from the instruction's snake_case name, and every account's data
// with one derived from the account's type name.
const DiscriminatorSize = 8

func instructionDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("global:" + name))
	return h[:DiscriminatorSize]
}

func accountDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("account:" + name))
	return h[:DiscriminatorSize]
}

var (
	InitializeGameInstructionDiscriminator             = instructionDiscriminator("initialize_game")
	RegisterAgentInstructionDiscriminator              = instructionDiscriminator("register_agent")
	KillAgentInstructionDiscriminator                  = instructionDiscriminator("kill_agent")
	MoveAgentInstructionDiscriminator                  = instructionDiscriminator("move_agent")
	IgnoreAgentInstructionDiscriminator                = instructionDiscriminator("ignore_agent")
	FormAllianceInstructionDiscriminator               = instructionDiscriminator("form_alliance")
	BreakAllianceInstructionDiscriminator              = instructionDiscriminator("break_alliance")
	ResolveBattleSimpleInstructionDiscriminator        = instructionDiscriminator("resolve_battle_simple")
	ResolveBattleInstructionDiscriminator              = instructionDiscriminator("resolve_battle")
	ResolveBattleAgentAllianceInstructionDiscriminator = instructionDiscriminator("resolve_battle_agent_alliance")
	StakeTokensInstructionDiscriminator                = instructionDiscriminator("stake_tokens")
	UnstakeTokensInstructionDiscriminator              = instructionDiscriminator("unstake_tokens")
	ClaimStakingRewardsInstructionDiscriminator        = instructionDiscriminator("claim_staking_rewards")
)

var (
	GameAccountDiscriminator      = accountDiscriminator("Game")
	AgentAccountDiscriminator     = accountDiscriminator("Agent")
	StakeInfoAccountDiscriminator = accountDiscriminator("StakeInfo")
)
