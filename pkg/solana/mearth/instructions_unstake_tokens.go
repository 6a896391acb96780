package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

const (
	UnstakeTokensInstructionArgsSize = 8 // shares_to_redeem
)

type UnstakeTokensInstructionArgs struct {
	SharesToRedeem uint64
}

type UnstakeTokensInstructionAccounts struct {
	Agent             ed25519.PublicKey
	Game              ed25519.PublicKey
	StakeInfo         ed25519.PublicKey
	AgentVault        ed25519.PublicKey
	AgentAuthority    ed25519.PublicKey
	StakerDestination ed25519.PublicKey
	Authority         ed25519.PublicKey
}

func NewUnstakeTokensInstruction(
	accounts *UnstakeTokensInstructionAccounts,
	args *UnstakeTokensInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize+UnstakeTokensInstructionArgsSize)

	putDiscriminator(data, UnstakeTokensInstructionDiscriminator, &offset)
	putUint64(data, args.SharesToRedeem, &offset)

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
				PublicKey:  accounts.AgentVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.AgentAuthority,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakerDestination,
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
