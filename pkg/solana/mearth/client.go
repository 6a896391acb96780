package mearth

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/MiddleEarthAI/middle-earth-ai-program/pkg/solana"
)

// ErrAccountNotFound indicates the requested account does not exist on chain
// at the queried commitment.
var ErrAccountNotFound = errors.New("account not found")

// Client is a high level client for the middle_earth_ai_program. It submits
// instructions and fetches decoded program accounts over a single underlying
// RPC connection.
type Client struct {
	log *logrus.Entry
	sc  solana.Client
}

// NewClient returns a client that owns a connection to the specified RPC
// endpoint. Callers must Close the client to release the connection.
func NewClient(endpoint string) *Client {
	return NewClientWithRPC(solana.New(endpoint))
}

// NewClientWithRPC returns a client on top of an existing RPC client. Close
// releases the provided client.
func NewClientWithRPC(sc solana.Client) *Client {
	return &Client{
		log: logrus.StandardLogger().WithField("type", "mearth/client"),
		sc:  sc,
	}
}

func (c *Client) Close() {
	c.sc.Close()
}

// Invoke submits a transaction containing the provided instructions, paid for
// and signed by payer, plus any additional signers, and waits for confirmed
// commitment.
//
// A rejection by the program is returned as a *solana.TransactionError,
// unchanged from what the cluster reported. No resubmission is attempted;
// whether to retry is the caller's decision.
func (c *Client) Invoke(payer ed25519.PrivateKey, instructions ...solana.Instruction) (solana.Signature, error) {
	return c.InvokeWithSigners(payer, nil, instructions...)
}

// InvokeWithSigners is Invoke with additional required signers beyond the
// payer.
func (c *Client) InvokeWithSigners(payer ed25519.PrivateKey, signers []ed25519.PrivateKey, instructions ...solana.Instruction) (solana.Signature, error) {
	var sig solana.Signature

	bh, err := c.sc.GetLatestBlockhash()
	if err != nil {
		return sig, errors.Wrap(err, "failed to get latest blockhash")
	}

	txn := solana.NewTransaction(payer.Public().(ed25519.PublicKey), instructions...)
	txn.SetBlockhash(bh)

	if err := txn.Sign(append([]ed25519.PrivateKey{payer}, signers...)...); err != nil {
		return sig, errors.Wrap(err, "failed to sign transaction")
	}

	sig, err = c.sc.SubmitTransaction(txn, solana.CommitmentConfirmed)
	if err != nil {
		return sig, err
	}

	if _, err := c.sc.GetSignatureStatus(sig, solana.CommitmentConfirmed); err != nil {
		return sig, err
	}

	c.log.WithField("signature", base58.Encode(sig[:])).Debug("transaction confirmed")

	return sig, nil
}

// Airdrop requests lamports for account and waits for the transfer to reach
// confirmed commitment. Only test clusters fund airdrops.
func (c *Client) Airdrop(account ed25519.PublicKey, lamports uint64) error {
	sig, err := c.sc.RequestAirdrop(account, lamports, solana.CommitmentConfirmed)
	if err != nil {
		return errors.Wrap(err, "failed to request airdrop")
	}

	if _, err := c.sc.GetSignatureStatus(sig, solana.CommitmentConfirmed); err != nil {
		return errors.Wrap(err, "airdrop not confirmed")
	}

	return nil
}

// GetGame fetches and decodes the game account at the provided address.
func (c *Client) GetGame(address ed25519.PublicKey, commitment solana.Commitment) (*GameAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var game GameAccount
	if err := game.Unmarshal(data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal game account")
	}

	return &game, nil
}

// GetAgent fetches and decodes the agent account at the provided address.
func (c *Client) GetAgent(address ed25519.PublicKey, commitment solana.Commitment) (*AgentAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var agent AgentAccount
	if err := agent.Unmarshal(data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal agent account")
	}

	return &agent, nil
}

// GetStakeInfo fetches and decodes the stake info account at the provided
// address.
func (c *Client) GetStakeInfo(address ed25519.PublicKey, commitment solana.Commitment) (*StakeInfoAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var stakeInfo StakeInfoAccount
	if err := stakeInfo.Unmarshal(data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal stake info account")
	}

	return &stakeInfo, nil
}

func (c *Client) getProgramAccountData(address ed25519.PublicKey, commitment solana.Commitment) ([]byte, error) {
	info, err := c.sc.GetAccountInfo(address, commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get account info")
	}

	if !info.Owner.Equal(PROGRAM_ID) {
		return nil, ErrInvalidProgram
	}

	return info.Data, nil
}
