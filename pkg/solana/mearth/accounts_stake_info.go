package mearth

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// StakeInfoAccount is the decoded per-staker deposit record for one agent.
type StakeInfoAccount struct {
	Agent               ed25519.PublicKey
	Staker              ed25519.PublicKey
	Amount              uint64
	Shares              Uint128
	LastRewardTimestamp int64
	CooldownEndsAt      int64
	IsInitialized       bool
}

func (obj *StakeInfoAccount) Marshal() []byte {
	var e accountEncoder

	e.writeDiscriminator(StakeInfoAccountDiscriminator)
	e.writeKey(obj.Agent)
	e.writeKey(obj.Staker)
	e.writeUint64(obj.Amount)
	e.writeUint128(obj.Shares)
	e.writeInt64(obj.LastRewardTimestamp)
	e.writeInt64(obj.CooldownEndsAt)
	e.writeBool(obj.IsInitialized)

	return e.bytes()
}

func (obj *StakeInfoAccount) Unmarshal(data []byte) error {
	d := newAccountDecoder(data)

	d.readDiscriminator(StakeInfoAccountDiscriminator)
	d.readKey(&obj.Agent)
	d.readKey(&obj.Staker)
	d.readUint64(&obj.Amount)
	d.readUint128(&obj.Shares)
	d.readInt64(&obj.LastRewardTimestamp)
	d.readInt64(&obj.CooldownEndsAt)
	d.readBool(&obj.IsInitialized)

	return d.err
}

func (obj *StakeInfoAccount) String() string {
	return fmt.Sprintf(
		"StakeInfoAccount{agent=%s,staker=%s,amount=%d,shares=%s}",
		base58.Encode(obj.Agent),
		base58.Encode(obj.Staker),
		obj.Amount,
		obj.Shares.String(),
	)
}
