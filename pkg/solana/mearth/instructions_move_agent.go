package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	MoveAgentInstructionArgsSize = (4 + // new_x
		4 + // new_y
		1) // terrain
)

type MoveAgentInstructionArgs struct {
	NewX    int32
	NewY    int32
	Terrain TerrainType
}

type MoveAgentInstructionAccounts struct {
	Agent     ed25519.PublicKey
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewMoveAgentInstruction(
	accounts *MoveAgentInstructionAccounts,
	args *MoveAgentInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+MoveAgentInstructionArgsSize)

	putDiscriminator(data, MoveAgentInstructionDiscriminator, &offset)
	putInt32(data, args.NewX, &offset)
	putInt32(data, args.NewY, &offset)
	putTerrainType(data, args.Terrain, &offset)

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
