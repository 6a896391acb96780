package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	IgnoreAgentInstructionArgsSize = 1 // target_agent_id
)

type IgnoreAgentInstructionArgs struct {
	TargetAgentID uint8
}

type IgnoreAgentInstructionAccounts struct {
	Agent     ed25519.PublicKey
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewIgnoreAgentInstruction(
	accounts *IgnoreAgentInstructionAccounts,
	args *IgnoreAgentInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+IgnoreAgentInstructionArgsSize)

	putDiscriminator(data, IgnoreAgentInstructionDiscriminator, &offset)
	putUint8(data, args.TargetAgentID, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Agent,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Game,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
		},
	}
}
