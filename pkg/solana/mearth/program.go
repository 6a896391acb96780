// Package mearth provides a client binding for the middle_earth_ai_program,
// an Anchor program that runs the Middle Earth AI game: agents move on a
// circular map, form and break alliances, ignore each other, and battle over
// token balances. This package derives the program's addresses, builds its
// instructions, and decodes its accounts; all game state transitions happen
// on chain.
package mearth

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("FE7WJhRY55XjHcR22ryA3tHLq6fkDNgZBpbh25tto67Q")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID    = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
)
