package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	StakeTokensInstructionArgsSize = 8 // deposit_amount
)

type StakeTokensInstructionArgs struct {
	DepositAmount uint64
}

type StakeTokensInstructionAccounts struct {
	Agent        ed25519.PublicKey
	Game         ed25519.PublicKey
	StakeInfo    ed25519.PublicKey
	StakerSource ed25519.PublicKey
	AgentVault   ed25519.PublicKey
	Authority    ed25519.PublicKey
}

func NewStakeTokensInstruction(
	accounts *StakeTokensInstructionAccounts,
	args *StakeTokensInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+StakeTokensInstructionArgsSize)

	putDiscriminator(data, StakeTokensInstructionDiscriminator, &offset)
	putUint64(data, args.DepositAmount, &offset)

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
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakeInfo,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakerSource,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.AgentVault,
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
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
