package mearth

import (
	"crypto/ed25519"
)

// StakerStake is the game account's aggregate stake entry for one staker.
type StakerStake struct {
	Staker     ed25519.PublicKey
	TotalStake uint64
}

func (e *accountEncoder) writeStakerStake(v StakerStake) {
	e.writeKey(v.Staker)
	e.writeUint64(v.TotalStake)
}

func (d *accountDecoder) readStakerStake(dst *StakerStake) {
	d.readKey(&dst.Staker)
	d.readUint64(&dst.TotalStake)
}
