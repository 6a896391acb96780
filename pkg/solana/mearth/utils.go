package mearth

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// put* helpers write Borsh-encoded values into pre-sized buffers. They are
// used for instruction data, whose sizes are known up front.

func putDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += DiscriminatorSize
}

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func putInt32(dst []byte, v int32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], uint32(v))
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func putString(dst []byte, src string, offset *int) {
	putUint32(dst, uint32(len(src)), offset)
	copy(dst[*offset:], src)
	*offset += len(src)
}

// accountEncoder builds Borsh-encoded account data. Accounts carry
// variable-length vectors and options, so a growing buffer is used instead
// of the pre-sized instruction helpers.
type accountEncoder struct {
	buf bytes.Buffer
}

func (e *accountEncoder) writeDiscriminator(v []byte) {
	e.buf.Write(v)
}

func (e *accountEncoder) writeKey(v ed25519.PublicKey) {
	if len(v) == 0 {
		v = make([]byte, ed25519.PublicKeySize)
	}
	e.buf.Write(v)
}

func (e *accountEncoder) writeUint8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *accountEncoder) writeBool(v bool) {
	if v {
		e.buf.WriteByte(1)
	} else {
		e.buf.WriteByte(0)
	}
}

func (e *accountEncoder) writeUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *accountEncoder) writeInt32(v int32) {
	e.writeUint32(uint32(v))
}

func (e *accountEncoder) writeUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *accountEncoder) writeInt64(v int64) {
	e.writeUint64(uint64(v))
}

func (e *accountEncoder) writeUint128(v Uint128) {
	e.writeUint64(v.Lo)
	e.writeUint64(v.Hi)
}

func (e *accountEncoder) writeString(v string) {
	e.writeUint32(uint32(len(v)))
	e.buf.WriteString(v)
}

func (e *accountEncoder) writeOptionalKey(v ed25519.PublicKey) {
	if v == nil {
		e.buf.WriteByte(0)
		return
	}
	e.buf.WriteByte(1)
	e.writeKey(v)
}

func (e *accountEncoder) writeOptionalInt64(v *int64) {
	if v == nil {
		e.buf.WriteByte(0)
		return
	}
	e.buf.WriteByte(1)
	e.writeInt64(*v)
}

func (e *accountEncoder) bytes() []byte {
	return e.buf.Bytes()
}

// accountDecoder reads Borsh-encoded account data with bounds checking. The
// first decode failure sticks; callers check err once at the end.
type accountDecoder struct {
	data   []byte
	offset int
	err    error
}

func newAccountDecoder(data []byte) *accountDecoder {
	return &accountDecoder{data: data}
}

func (d *accountDecoder) remaining(n int) bool {
	if d.err != nil {
		return false
	}
	if d.offset+n > len(d.data) {
		d.err = ErrInvalidAccountData
		return false
	}
	return true
}

func (d *accountDecoder) readDiscriminator(expected []byte) {
	if !d.remaining(DiscriminatorSize) {
		return
	}
	if !bytes.Equal(d.data[d.offset:d.offset+DiscriminatorSize], expected) {
		d.err = ErrInvalidAccountData
		return
	}
	d.offset += DiscriminatorSize
}

func (d *accountDecoder) readKey(dst *ed25519.PublicKey) {
	if !d.remaining(ed25519.PublicKeySize) {
		return
	}
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, d.data[d.offset:])
	d.offset += ed25519.PublicKeySize
}

func (d *accountDecoder) readUint8(dst *uint8) {
	if !d.remaining(1) {
		return
	}
	*dst = d.data[d.offset]
	d.offset += 1
}

func (d *accountDecoder) readBool(dst *bool) {
	if !d.remaining(1) {
		return
	}
	*dst = d.data[d.offset] == 1
	d.offset += 1
}

func (d *accountDecoder) readUint32(dst *uint32) {
	if !d.remaining(4) {
		return
	}
	*dst = binary.LittleEndian.Uint32(d.data[d.offset:])
	d.offset += 4
}

func (d *accountDecoder) readInt32(dst *int32) {
	var v uint32
	d.readUint32(&v)
	*dst = int32(v)
}

func (d *accountDecoder) readUint64(dst *uint64) {
	if !d.remaining(8) {
		return
	}
	*dst = binary.LittleEndian.Uint64(d.data[d.offset:])
	d.offset += 8
}

func (d *accountDecoder) readInt64(dst *int64) {
	var v uint64
	d.readUint64(&v)
	*dst = int64(v)
}

func (d *accountDecoder) readUint128(dst *Uint128) {
	d.readUint64(&dst.Lo)
	d.readUint64(&dst.Hi)
}

func (d *accountDecoder) readString(dst *string) {
	var length uint32
	d.readUint32(&length)
	if !d.remaining(int(length)) {
		return
	}
	*dst = string(d.data[d.offset : d.offset+int(length)])
	d.offset += int(length)
}

func (d *accountDecoder) readOptionalKey(dst *ed25519.PublicKey) {
	var present bool
	d.readBool(&present)
	if d.err != nil || !present {
		*dst = nil
		return
	}
	d.readKey(dst)
}

func (d *accountDecoder) readOptionalInt64(dst **int64) {
	var present bool
	d.readBool(&present)
	if d.err != nil || !present {
		*dst = nil
		return
	}
	var v int64
	d.readInt64(&v)
	*dst = &v
}

func (d *accountDecoder) readVecLen(dst *int) {
	var length uint32
	d.readUint32(&length)
	// A vector can't be longer than the remaining data.
	if d.err == nil && int(length) > len(d.data)-d.offset {
		d.err = ErrInvalidAccountData
		return
	}
	*dst = int(length)
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
