package mearth

// IgnoreCooldown records that an agent has ignored another agent, and when.
type IgnoreCooldown struct {
	AgentID   uint8
	Timestamp int64
}

func (e *accountEncoder) writeIgnoreCooldown(v IgnoreCooldown) {
	e.writeUint8(v.AgentID)
	e.writeInt64(v.Timestamp)
}

func (d *accountDecoder) readIgnoreCooldown(dst *IgnoreCooldown) {
	d.readUint8(&dst.AgentID)
	d.readInt64(&dst.Timestamp)
}
