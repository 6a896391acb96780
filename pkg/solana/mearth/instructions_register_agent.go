package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

type RegisterAgentInstructionArgs struct {
	AgentID uint8
	X       int32
	Y       int32
	Name    string
}

type RegisterAgentInstructionAccounts struct {
	Game      ed25519.PublicKey
	Agent     ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewRegisterAgentInstruction(
	accounts *RegisterAgentInstructionAccounts,
	args *RegisterAgentInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments. The name is a Borsh string, so the
	// data size depends on its length.
	data := make([]byte, DiscriminatorSize+
		1+ // agent_id
		4+ // x
		4+ // y
		4+len(args.Name)) // name

	putDiscriminator(data, RegisterAgentInstructionDiscriminator, &offset)
	putUint8(data, args.AgentID, &offset)
	putInt32(data, args.X, &offset)
	putInt32(data, args.Y, &offset)
	putString(data, args.Name, &offset)

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
				PublicKey:  accounts.Agent,
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
