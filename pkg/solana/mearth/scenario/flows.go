package scenario

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana/mearth"
)

// AgentSpawn describes one agent to register at game start.
type AgentSpawn struct {
	ID   uint8
	X    int32
	Y    int32
	Name string
}

// DefaultSpawns places the four canonical agents near the four quadrants of
// the map.
var DefaultSpawns = []AgentSpawn{
	{ID: 1, X: 100, Y: 100, Name: "Scootles"},
	{ID: 2, X: -100, Y: 100, Name: "Purrlock"},
	{ID: 3, X: -100, Y: -100, Name: "Sir Gullihop"},
	{ID: 4, X: 100, Y: -100, Name: "Wanderleaf"},
}

// InitializeGame creates the game account for env.GameID and returns its
// address.
func InitializeGame(env *Env) (ed25519.PublicKey, error) {
	game, bump, err := mearth.GetGameAddress(&mearth.GetGameAddressArgs{GameID: env.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive game address")
	}

	ixn := mearth.NewInitializeGameInstruction(
		&mearth.InitializeGameInstructionAccounts{
			Game:      game,
			Authority: env.PayerPublicKey(),
		},
		&mearth.InitializeGameInstructionArgs{
			GameID: env.GameID,
			Bump:   bump,
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return nil, err
	}

	env.Log.WithField("game_id", env.GameID).Info("game initialized")

	return game, nil
}

// RegisterAgent registers one agent under the game and returns the agent
// account address.
func RegisterAgent(env *Env, game ed25519.PublicKey, spawn AgentSpawn) (ed25519.PublicKey, error) {
	agent, _, err := mearth.GetAgentAddress(&mearth.GetAgentAddressArgs{
		Game:    game,
		AgentID: spawn.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive agent address")
	}

	ixn := mearth.NewRegisterAgentInstruction(
		&mearth.RegisterAgentInstructionAccounts{
			Game:      game,
			Agent:     agent,
			Authority: env.PayerPublicKey(),
		},
		&mearth.RegisterAgentInstructionArgs{
			AgentID: spawn.ID,
			X:       spawn.X,
			Y:       spawn.Y,
			Name:    spawn.Name,
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return nil, err
	}

	env.Log.WithField("agent_id", spawn.ID).Info("agent registered")

	return agent, nil
}

// RegisterAgents registers every spawn and returns the agent addresses in the
// same order.
func RegisterAgents(env *Env, game ed25519.PublicKey, spawns []AgentSpawn) ([]ed25519.PublicKey, error) {
	agents := make([]ed25519.PublicKey, len(spawns))
	for i, spawn := range spawns {
		agent, err := RegisterAgent(env, game, spawn)
		if err != nil {
			return nil, err
		}
		agents[i] = agent
	}
	return agents, nil
}

// MoveAgent moves an agent to a new position over the given terrain and
// verifies the on-chain position afterwards.
func MoveAgent(env *Env, game, agent ed25519.PublicKey, x, y int32, terrain mearth.TerrainType) error {
	ixn := mearth.NewMoveAgentInstruction(
		&mearth.MoveAgentInstructionAccounts{
			Agent:     agent,
			Game:      game,
			Authority: env.PayerPublicKey(),
		},
		&mearth.MoveAgentInstructionArgs{
			NewX:    x,
			NewY:    y,
			Terrain: terrain,
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return err
	}

	decoded, err := env.Client.GetAgent(agent, solana.CommitmentConfirmed)
	if err != nil {
		return err
	}
	if decoded.X != x || decoded.Y != y {
		return errors.Errorf("agent at (%d,%d), expected (%d,%d)", decoded.X, decoded.Y, x, y)
	}

	env.Log.WithFields(logrus.Fields{
		"x":       x,
		"y":       y,
		"terrain": terrain.String(),
	}).Info("agent moved")

	return nil
}

// IgnoreAgent has an agent ignore another, preventing interactions between
// the pair for the ignore cooldown.
func IgnoreAgent(env *Env, game, agent ed25519.PublicKey, targetAgentID uint8) error {
	ixn := mearth.NewIgnoreAgentInstruction(
		&mearth.IgnoreAgentInstructionAccounts{
			Agent:     agent,
			Game:      game,
			Authority: env.PayerPublicKey(),
		},
		&mearth.IgnoreAgentInstructionArgs{
			TargetAgentID: targetAgentID,
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return err
	}

	decoded, err := env.Client.GetAgent(agent, solana.CommitmentConfirmed)
	if err != nil {
		return err
	}
	if !decoded.IsIgnoring(targetAgentID) {
		return errors.Errorf("agent has no ignore entry for agent %d", targetAgentID)
	}

	return nil
}

// FormAlliance allies the two agents and verifies the pairing is recorded
// symmetrically on both accounts.
func FormAlliance(env *Env, game, initiator, target ed25519.PublicKey) error {
	ixn := mearth.NewFormAllianceInstruction(
		&mearth.FormAllianceInstructionAccounts{
			Initiator:   initiator,
			TargetAgent: target,
			Game:        game,
			Authority:   env.PayerPublicKey(),
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return err
	}

	return verifyAlliance(env, initiator, target, true)
}

// BreakAlliance dissolves the alliance between the two agents and verifies
// both sides are cleared.
func BreakAlliance(env *Env, game, initiator, target ed25519.PublicKey) error {
	ixn := mearth.NewBreakAllianceInstruction(
		&mearth.BreakAllianceInstructionAccounts{
			Initiator:   initiator,
			TargetAgent: target,
			Game:        game,
			Authority:   env.PayerPublicKey(),
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return err
	}

	return verifyAlliance(env, initiator, target, false)
}

func verifyAlliance(env *Env, initiator, target ed25519.PublicKey, formed bool) error {
	a, err := env.Client.GetAgent(initiator, solana.CommitmentConfirmed)
	if err != nil {
		return err
	}
	b, err := env.Client.GetAgent(target, solana.CommitmentConfirmed)
	if err != nil {
		return err
	}

	if formed {
		if !ed25519.PublicKey(a.AllianceWith).Equal(target) || !ed25519.PublicKey(b.AllianceWith).Equal(initiator) {
			return errors.New("alliance not recorded on both agents")
		}
	} else {
		if a.AllianceWith != nil || b.AllianceWith != nil {
			return errors.New("alliance still recorded after break")
		}
	}

	return nil
}

// ResolveBattle settles a battle in favor of winner, transferring amount from
// the loser, then kills the loser.
func ResolveBattle(env *Env, game, winner, loser ed25519.PublicKey, amount uint64) error {
	resolve := mearth.NewResolveBattleSimpleInstruction(
		&mearth.ResolveBattleSimpleInstructionAccounts{
			Winner:    winner,
			Loser:     loser,
			Game:      game,
			Authority: env.PayerPublicKey(),
		},
		&mearth.ResolveBattleSimpleInstructionArgs{
			TransferAmount: amount,
		},
	)

	if _, err := env.Client.Invoke(env.Payer, resolve); err != nil {
		return err
	}

	kill := mearth.NewKillAgentInstruction(
		&mearth.KillAgentInstructionAccounts{
			Agent:     loser,
			Authority: env.PayerPublicKey(),
		},
	)

	if _, err := env.Client.Invoke(env.Payer, kill); err != nil {
		return err
	}

	decoded, err := env.Client.GetAgent(loser, solana.CommitmentConfirmed)
	if err != nil {
		return err
	}
	if decoded.IsAlive {
		return errors.New("loser still alive after battle")
	}

	return nil
}

// StakeTokens deposits tokens behind an agent from the staker's token
// account.
func StakeTokens(env *Env, game, agent, stakerSource, agentVault ed25519.PublicKey, amount uint64) (ed25519.PublicKey, error) {
	stakeInfo, _, err := mearth.GetStakeInfoAddress(&mearth.GetStakeInfoAddressArgs{
		Agent:     agent,
		Authority: env.PayerPublicKey(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive stake info address")
	}

	ixn := mearth.NewStakeTokensInstruction(
		&mearth.StakeTokensInstructionAccounts{
			Agent:        agent,
			Game:         game,
			StakeInfo:    stakeInfo,
			StakerSource: stakerSource,
			AgentVault:   agentVault,
			Authority:    env.PayerPublicKey(),
		},
		&mearth.StakeTokensInstructionArgs{
			DepositAmount: amount,
		},
	)

	if _, err := env.Client.Invoke(env.Payer, ixn); err != nil {
		return nil, err
	}

	return stakeInfo, nil
}
