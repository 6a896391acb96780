package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	ResolveBattleInstructionArgsSize = 8 // transfer_amount
)

type ResolveBattleInstructionArgs struct {
	TransferAmount uint64
}

type ResolveBattleInstructionAccounts struct {
	Winner    ed25519.PublicKey
	Loser     ed25519.PublicKey
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewResolveBattleInstruction(
	accounts *ResolveBattleInstructionAccounts,
	args *ResolveBattleInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+ResolveBattleInstructionArgsSize)

	putDiscriminator(data, ResolveBattleInstructionDiscriminator, &offset)
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
