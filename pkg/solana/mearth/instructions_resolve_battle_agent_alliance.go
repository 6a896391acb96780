package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	ResolveBattleAgentAllianceInstructionArgsSize = 8 // transfer_amount
)

type ResolveBattleAgentAllianceInstructionArgs struct {
	TransferAmount uint64
}

type ResolveBattleAgentAllianceInstructionAccounts struct {
	Winner    ed25519.PublicKey
	Loser     ed25519.PublicKey
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
}

// NewResolveBattleAgentAllianceInstruction settles a battle where the winner
// fought as part of an alliance. The account shape matches the plain battle
// resolution; only the instruction differs.
func NewResolveBattleAgentAllianceInstruction(
	accounts *ResolveBattleAgentAllianceInstructionAccounts,
	args *ResolveBattleAgentAllianceInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+ResolveBattleAgentAllianceInstructionArgsSize)

	putDiscriminator(data, ResolveBattleAgentAllianceInstructionDiscriminator, &offset)
	putUint64(data, args.TransferAmount, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Winner,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Loser,
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
