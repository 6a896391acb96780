package scenario

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana/mearth"
	_ "github.com/MiddleEarthAI/middle-earth-ai-program/pkg/testutil"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8899", config.Endpoint)
	assert.EqualValues(t, 10_000_000_000, config.AirdropLamports)
	assert.EqualValues(t, 1, config.GameID)
}

// TestScenario_FullGame drives one complete game against a cluster that has
// the program deployed: initialize, register agents, move, ignore, ally,
// break the alliance, and settle a battle.
func TestScenario_FullGame(t *testing.T) {
	if os.Getenv("ENABLE_SCENARIO_TESTS") == "" {
		t.Skip("requires a local validator with the program deployed; set ENABLE_SCENARIO_TESTS=1")
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	err = Run("full_game", config, func(env *Env) error {
		game, err := InitializeGame(env)
		if err != nil {
			return err
		}

		agents, err := RegisterAgents(env, game, DefaultSpawns)
		if err != nil {
			return err
		}

		if err := MoveAgent(env, game, agents[0], 110, 110, mearth.TerrainTypePlain); err != nil {
			return err
		}

		if err := IgnoreAgent(env, game, agents[0], DefaultSpawns[1].ID); err != nil {
			return err
		}

		if err := FormAlliance(env, game, agents[2], agents[3]); err != nil {
			return err
		}
		if err := BreakAlliance(env, game, agents[2], agents[3]); err != nil {
			return err
		}

		return ResolveBattle(env, game, agents[2], agents[3], 100)
	})
	require.NoError(t, err)
}

// TestScenario_ReleasesConnectionOnFailure verifies the environment's client
// is released even when the scenario body fails.
func TestScenario_ReleasesConnectionOnFailure(t *testing.T) {
	if os.Getenv("ENABLE_SCENARIO_TESTS") == "" {
		t.Skip("requires a local validator; set ENABLE_SCENARIO_TESTS=1")
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	scenarioErr := assert.AnError
	err = Run("fails", config, func(env *Env) error {
		return scenarioErr
	})
	assert.Equal(t, scenarioErr, err)
}
