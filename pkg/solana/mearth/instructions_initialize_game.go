package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	InitializeGameInstructionArgsSize = (4 + // game_id
		1) // bump
)

type InitializeGameInstructionArgs struct {
	GameID uint32
	Bump   uint8
}

type InitializeGameInstructionAccounts struct {
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewInitializeGameInstruction(
	accounts *InitializeGameInstructionAccounts,
	args *InitializeGameInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+InitializeGameInstructionArgsSize)

	putDiscriminator(data, InitializeGameInstructionDiscriminator, &offset)
	putUint32(data, args.GameID, &offset)
	putUint8(data, args.Bump, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Game,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
