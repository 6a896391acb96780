package mearth

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// AgentAccount is the decoded on-chain state for one agent. Optional fields
// are nil when the program stored None.
type AgentAccount struct {
	Game      ed25519.PublicKey
	Authority ed25519.PublicKey
	ID        uint8

	X                  int32
	Y                  int32
	IsAlive            bool
	LastMove           int64
	LastBattle         int64
	CurrentBattleStart *int64

	// AllianceWith is the address of the allied agent account, or nil when
	// no alliance is active.
	AllianceWith      ed25519.PublicKey
	AllianceTimestamp int64
	IgnoreCooldowns   []IgnoreCooldown

	TokenBalance    uint64
	StakedBalance   uint64
	LastRewardClaim int64
	TotalShares     Uint128

	LastAttack         int64
	LastIgnore         int64
	LastAlliance       int64
	NextMoveTime       int64
	LastAllianceAgent  ed25519.PublicKey
	LastAllianceBroken int64
	VaultBump          uint8
}

func (obj *AgentAccount) Marshal() []byte {
	var e accountEncoder

	e.writeDiscriminator(AgentAccountDiscriminator)
	e.writeKey(obj.Game)
	e.writeKey(obj.Authority)
	e.writeUint8(obj.ID)
	e.writeInt32(obj.X)
	e.writeInt32(obj.Y)
	e.writeBool(obj.IsAlive)
	e.writeInt64(obj.LastMove)
	e.writeInt64(obj.LastBattle)
	e.writeOptionalInt64(obj.CurrentBattleStart)
	e.writeOptionalKey(obj.AllianceWith)
	e.writeInt64(obj.AllianceTimestamp)
	e.writeUint32(uint32(len(obj.IgnoreCooldowns)))
	for _, c := range obj.IgnoreCooldowns {
		e.writeIgnoreCooldown(c)
	}
	e.writeUint64(obj.TokenBalance)
	e.writeUint64(obj.StakedBalance)
	e.writeInt64(obj.LastRewardClaim)
	e.writeUint128(obj.TotalShares)
	e.writeInt64(obj.LastAttack)
	e.writeInt64(obj.LastIgnore)
	e.writeInt64(obj.LastAlliance)
	e.writeInt64(obj.NextMoveTime)
	e.writeOptionalKey(obj.LastAllianceAgent)
	e.writeInt64(obj.LastAllianceBroken)
	e.writeUint8(obj.VaultBump)

	return e.bytes()
}

func (obj *AgentAccount) Unmarshal(data []byte) error {
	d := newAccountDecoder(data)

	d.readDiscriminator(AgentAccountDiscriminator)
	d.readKey(&obj.Game)
	d.readKey(&obj.Authority)
	d.readUint8(&obj.ID)
	d.readInt32(&obj.X)
	d.readInt32(&obj.Y)
	d.readBool(&obj.IsAlive)
	d.readInt64(&obj.LastMove)
	d.readInt64(&obj.LastBattle)
	d.readOptionalInt64(&obj.CurrentBattleStart)
	d.readOptionalKey(&obj.AllianceWith)
	d.readInt64(&obj.AllianceTimestamp)

	var cooldownLen int
	d.readVecLen(&cooldownLen)
	if d.err == nil {
		obj.IgnoreCooldowns = make([]IgnoreCooldown, cooldownLen)
		for i := range obj.IgnoreCooldowns {
			d.readIgnoreCooldown(&obj.IgnoreCooldowns[i])
		}
	}

	d.readUint64(&obj.TokenBalance)
	d.readUint64(&obj.StakedBalance)
	d.readInt64(&obj.LastRewardClaim)
	d.readUint128(&obj.TotalShares)
	d.readInt64(&obj.LastAttack)
	d.readInt64(&obj.LastIgnore)
	d.readInt64(&obj.LastAlliance)
	d.readInt64(&obj.NextMoveTime)
	d.readOptionalKey(&obj.LastAllianceAgent)
	d.readInt64(&obj.LastAllianceBroken)
	d.readUint8(&obj.VaultBump)

	return d.err
}

// IsIgnoring reports whether this agent has an ignore entry for the given
// agent id.
func (obj *AgentAccount) IsIgnoring(agentID uint8) bool {
	for _, c := range obj.IgnoreCooldowns {
		if c.AgentID == agentID {
			return true
		}
	}
	return false
}

func (obj *AgentAccount) String() string {
	ally := "none"
	if obj.AllianceWith != nil {
		ally = base58.Encode(obj.AllianceWith)
	}
	return fmt.Sprintf(
		"AgentAccount{id=%d,game=%s,pos=(%d,%d),is_alive=%t,alliance_with=%s,token_balance=%d}",
		obj.ID,
		base58.Encode(obj.Game),
		obj.X,
		obj.Y,
		obj.IsAlive,
		ally,
		obj.TokenBalance,
	)
}
