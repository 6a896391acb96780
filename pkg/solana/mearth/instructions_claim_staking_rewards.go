package mearth

import (
	"crypto/ed25519"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

type ClaimStakingRewardsInstructionAccounts struct {
	Agent             ed25519.PublicKey
	Game              ed25519.PublicKey
	StakeInfo         ed25519.PublicKey
	Mint              ed25519.PublicKey
	RewardsVault      ed25519.PublicKey
	RewardsAuthority  ed25519.PublicKey
	StakerDestination ed25519.PublicKey
	Authority         ed25519.PublicKey
}

func NewClaimStakingRewardsInstruction(
	accounts *ClaimStakingRewardsInstructionAccounts,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, DiscriminatorSize)

	putDiscriminator(data, ClaimStakingRewardsInstructionDiscriminator, &offset)

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
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardsVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardsAuthority,
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
