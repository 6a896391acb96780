package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	ResolveBattleSimpleInstructionArgsSize = 8 // transfer_amount
)

type ResolveBattleSimpleInstructionArgs struct {
	TransferAmount uint64
}

type ResolveBattleSimpleInstructionAccounts struct {
	Winner    ed25519.PublicKey
	Loser     ed25519.PublicKey
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewResolveBattleSimpleInstruction(
	accounts *ResolveBattleSimpleInstructionAccounts,
	args *ResolveBattleSimpleInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+ResolveBattleSimpleInstructionArgsSize)

	putDiscriminator(data, ResolveBattleSimpleInstructionDiscriminator, &offset)
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
