package mearth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/testutil"
)

func TestGameAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	expected := &GameAccount{
		GameID:          7,
		Authority:       keys[0],
		TokenMint:       keys[1],
		RewardsVault:    keys[2],
		MapDiameter:     MapDiameter,
		BattleRange:     BattleRange,
		IsActive:        true,
		LastUpdate:      1735689600,
		ReentrancyGuard: false,
		Bump:            254,
		Agents: []AgentInfo{
			{Key: keys[3], Name: "Scootles"},
			{Key: keys[4], Name: "Purrlock"},
		},
		TotalStakeAccounts: []StakerStake{
			{Staker: keys[0], TotalStake: 1_000_000},
		},
	}

	var actual GameAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, &actual)
}

func TestAgentAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 4)

	battleStart := int64(1735693200)

	expected := &AgentAccount{
		Game:               keys[0],
		Authority:          keys[1],
		ID:                 2,
		X:                  -150,
		Y:                  75,
		IsAlive:            true,
		LastMove:           1735689600,
		LastBattle:         1735686000,
		CurrentBattleStart: &battleStart,
		AllianceWith:       keys[2],
		AllianceTimestamp:  1735682400,
		IgnoreCooldowns: []IgnoreCooldown{
			{AgentID: 3, Timestamp: 1735678800},
			{AgentID: 4, Timestamp: 1735675200},
		},
		TokenBalance:       5_000,
		StakedBalance:      2_500,
		LastRewardClaim:    1735671600,
		TotalShares:        NewUint128(12345, 1),
		LastAttack:         1735668000,
		LastIgnore:         1735664400,
		LastAlliance:       1735660800,
		NextMoveTime:       1735693200,
		LastAllianceAgent:  keys[3],
		LastAllianceBroken: 1735657200,
		VaultBump:          251,
	}

	var actual AgentAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, &actual)
}

func TestAgentAccount_RoundTripNoneOptions(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	expected := &AgentAccount{
		Game:      keys[0],
		Authority: keys[1],
		ID:        1,
		X:         0,
		Y:         0,
		IsAlive:   true,
	}

	var actual AgentAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))

	assert.Nil(t, actual.CurrentBattleStart)
	assert.Nil(t, actual.AllianceWith)
	assert.Nil(t, actual.LastAllianceAgent)
	assert.Empty(t, actual.IgnoreCooldowns)
}

func TestAgentAccount_IsIgnoring(t *testing.T) {
	agent := &AgentAccount{
		IgnoreCooldowns: []IgnoreCooldown{
			{AgentID: 2, Timestamp: 1735689600},
		},
	}

	assert.True(t, agent.IsIgnoring(2))
	assert.False(t, agent.IsIgnoring(3))
}

func TestStakeInfoAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	expected := &StakeInfoAccount{
		Agent:               keys[0],
		Staker:              keys[1],
		Amount:              777,
		Shares:              NewUint128(777, 0),
		LastRewardTimestamp: 1735689600,
		CooldownEndsAt:      1735776000,
		IsInitialized:       true,
	}

	var actual StakeInfoAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, &actual)
}

func TestAccount_InvalidData(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	agent := &AgentAccount{
		Game:      keys[0],
		Authority: keys[1],
		ID:        1,
	}
	data := agent.Marshal()

	// Discriminator mismatch: agent data is not a game account.
	var game GameAccount
	assert.Equal(t, ErrInvalidAccountData, game.Unmarshal(data))

	// Truncated data.
	var truncated AgentAccount
	assert.Equal(t, ErrInvalidAccountData, truncated.Unmarshal(data[:len(data)-8]))

	// A vector length that exceeds the remaining data must be rejected
	// before any allocation happens.
	gameData := (&GameAccount{Authority: keys[0], TokenMint: keys[1]}).Marshal()
	corrupt := append([]byte{}, gameData...)
	corrupt[len(corrupt)-8] = 0xff
	corrupt[len(corrupt)-7] = 0xff
	var empty GameAccount
	assert.Equal(t, ErrInvalidAccountData, empty.Unmarshal(corrupt))
}
