package mearth

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// GameAccount is the decoded on-chain state for one game instance. It is a
// read-only snapshot: each fetch reflects the chain as of that call only.
//
// The trailing registry vectors are not part of the program's published
// struct declaration but are written by its handlers; they decode after the
// declared fields.
type GameAccount struct {
	GameID          uint64
	Authority       ed25519.PublicKey
	TokenMint       ed25519.PublicKey
	RewardsVault    ed25519.PublicKey
	MapDiameter     uint32
	BattleRange     uint32
	IsActive        bool
	LastUpdate      int64
	ReentrancyGuard bool
	Bump            uint8

	Agents             []AgentInfo
	TotalStakeAccounts []StakerStake
}

func (obj *GameAccount) Marshal() []byte {
	var e accountEncoder

	e.writeDiscriminator(GameAccountDiscriminator)
	e.writeUint64(obj.GameID)
	e.writeKey(obj.Authority)
	e.writeKey(obj.TokenMint)
	e.writeKey(obj.RewardsVault)
	e.writeUint32(obj.MapDiameter)
	e.writeUint32(obj.BattleRange)
	e.writeBool(obj.IsActive)
	e.writeInt64(obj.LastUpdate)
	e.writeBool(obj.ReentrancyGuard)
	e.writeUint8(obj.Bump)
	e.writeUint32(uint32(len(obj.Agents)))
	for _, a := range obj.Agents {
		e.writeAgentInfo(a)
	}
	e.writeUint32(uint32(len(obj.TotalStakeAccounts)))
	for _, s := range obj.TotalStakeAccounts {
		e.writeStakerStake(s)
	}

	return e.bytes()
}

func (obj *GameAccount) Unmarshal(data []byte) error {
	d := newAccountDecoder(data)

	d.readDiscriminator(GameAccountDiscriminator)
	d.readUint64(&obj.GameID)
	d.readKey(&obj.Authority)
	d.readKey(&obj.TokenMint)
	d.readKey(&obj.RewardsVault)
	d.readUint32(&obj.MapDiameter)
	d.readUint32(&obj.BattleRange)
	d.readBool(&obj.IsActive)
	d.readInt64(&obj.LastUpdate)
	d.readBool(&obj.ReentrancyGuard)
	d.readUint8(&obj.Bump)

	var agentLen int
	d.readVecLen(&agentLen)
	if d.err == nil {
		obj.Agents = make([]AgentInfo, agentLen)
		for i := range obj.Agents {
			d.readAgentInfo(&obj.Agents[i])
		}
	}

	var stakeLen int
	d.readVecLen(&stakeLen)
	if d.err == nil {
		obj.TotalStakeAccounts = make([]StakerStake, stakeLen)
		for i := range obj.TotalStakeAccounts {
			d.readStakerStake(&obj.TotalStakeAccounts[i])
		}
	}

	return d.err
}

func (obj *GameAccount) String() string {
	return fmt.Sprintf(
		"GameAccount{game_id=%d,authority=%s,is_active=%t,map_diameter=%d,battle_range=%d,agents=%d,bump=%d}",
		obj.GameID,
		base58.Encode(obj.Authority),
		obj.IsActive,
		obj.MapDiameter,
		obj.BattleRange,
		len(obj.Agents),
		obj.Bump,
	)
}
