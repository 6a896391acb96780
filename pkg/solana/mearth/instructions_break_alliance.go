package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

type BreakAllianceInstructionAccounts struct {
	Initiator   ed25519.PublicKey
	TargetAgent ed25519.PublicKey
	Game        ed25519.PublicKey
	Authority   ed25519.PublicKey
}

func NewBreakAllianceInstruction(
	accounts *BreakAllianceInstructionAccounts,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize)

	putDiscriminator(data, BreakAllianceInstructionDiscriminator, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Initiator,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TargetAgent,
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
