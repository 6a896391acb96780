package mearth

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

var (
	GamePrefix  = []byte("game")
	AgentPrefix = []byte("agent")
	StakePrefix = []byte("stake")
)

type GetGameAddressArgs struct {
	GameID uint32
}

// GetGameAddress derives the game account PDA from the numeric game id.
func GetGameAddress(args *GetGameAddressArgs) (ed25519.PublicKey, uint8, error) {
	gameID := make([]byte, 4)
	binary.LittleEndian.PutUint32(gameID, args.GameID)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		GamePrefix,
		gameID,
	)
}

type GetAgentAddressArgs struct {
	Game    ed25519.PublicKey
	AgentID uint8
}

// GetAgentAddress derives the agent account PDA from the game address and the
// single-byte agent id.
func GetAgentAddress(args *GetAgentAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		AgentPrefix,
		args.Game,
		[]byte{args.AgentID},
	)
}

type GetStakeInfoAddressArgs struct {
	Agent     ed25519.PublicKey
	Authority ed25519.PublicKey
}

// GetStakeInfoAddress derives the per-staker stake info PDA for an agent.
func GetStakeInfoAddress(args *GetStakeInfoAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		StakePrefix,
		args.Agent,
		args.Authority,
	)
}
