package mearth

import (
	"crypto/ed25519"
)

// AgentInfo is the game account's registry entry for a registered agent.
type AgentInfo struct {
	Key  ed25519.PublicKey
	Name string
}

func (e *accountEncoder) writeAgentInfo(v AgentInfo) {
	e.writeKey(v.Key)
	e.writeString(v.Name)
}

func (d *accountDecoder) readAgentInfo(dst *AgentInfo) {
	d.readKey(&dst.Key)
	d.readString(&dst.Name)
}
