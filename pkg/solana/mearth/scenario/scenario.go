// Package scenario runs end to end game flows against a live cluster. Each
// run owns its RPC connection for the duration of the scenario and releases
// it when the scenario returns, successfully or not.
package scenario

import (
	"crypto/ed25519"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana/mearth"
)

// Env is the environment a scenario executes in. The client is scoped to the
// run; scenarios must not retain it past their return.
type Env struct {
	RunID  string
	Log    *logrus.Entry
	Client *mearth.Client
	Payer  ed25519.PrivateKey
	GameID uint32
}

// PayerPublicKey returns the public half of the scenario payer, which acts as
// the authority for every instruction the scenario submits.
func (e *Env) PayerPublicKey() ed25519.PublicKey {
	return e.Payer.Public().(ed25519.PublicKey)
}

// Run executes fn inside a fresh environment. The RPC connection is acquired
// up front and released when Run returns, on every exit path, including when
// fn fails or funding the payer fails.
func Run(name string, config *Config, fn func(*Env) error) error {
	runID := uuid.New().String()

	log := logrus.StandardLogger().WithFields(logrus.Fields{
		"type":     "mearth/scenario",
		"scenario": name,
		"run":      runID,
	})

	client := mearth.NewClient(config.Endpoint)
	defer client.Close()

	_, payer, err := ed25519.GenerateKey(nil)
	if err != nil {
		return errors.Wrap(err, "failed to generate payer")
	}

	env := &Env{
		RunID:  runID,
		Log:    log,
		Client: client,
		Payer:  payer,
		GameID: config.GameID,
	}

	if err := client.Airdrop(env.PayerPublicKey(), config.AirdropLamports); err != nil {
		return errors.Wrap(err, "failed to fund payer")
	}

	start := time.Now()
	log.Info("scenario started")

	if err := fn(env); err != nil {
		log.WithError(err).Warn("scenario failed")
		return err
	}

	log.WithField("duration", time.Since(start)).Info("scenario finished")

	return nil
}
