package bcs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"sync"
)

// DefaultDepthLimit bounds how many named containers (structs and enum
// variants) may nest inside one another. It guards against stack
// exhaustion from malicious or accidental unbounded recursion; BCS itself
// places no limit on container depth.
const DefaultDepthLimit = 500

// MaxSequenceLength is the largest length BCS permits for any sequence,
// map, string, or byte vector: 2^31 - 1.
const MaxSequenceLength = 1<<31 - 1

// Serializer writes BCS-encoded values to a sink. Once any method sets an
// error, every subsequent call on the Serializer is a no-op; check Error
// after a top-level encode to learn whether it succeeded.
type Serializer struct {
	w              io.Writer
	buf            *bytes.Buffer // non-nil when the sink is an owned buffer
	err            error
	remainingDepth int
	depthLimit     int
	containerStack []bool
}

// NewSerializer creates a buffer-backed Serializer with the default
// container depth limit. ToBytes retrieves the accumulated output.
func NewSerializer() *Serializer {
	return NewSerializerWithLimit(DefaultDepthLimit)
}

// NewSerializerWithLimit creates a buffer-backed Serializer with a custom
// container depth limit.
func NewSerializerWithLimit(limit int) *Serializer {
	buf := &bytes.Buffer{}
	return &Serializer{w: buf, buf: buf, remainingDepth: limit, depthLimit: limit}
}

// newStreamingSerializer wraps an arbitrary sink, used by EncodeInto.
func newStreamingSerializer(w io.Writer, limit int) *Serializer {
	return &Serializer{w: w, remainingDepth: limit, depthLimit: limit}
}

// serializerPool recycles buffer-backed Serializers to reduce allocations
// on hot encode paths.
var serializerPool = sync.Pool{
	New: func() interface{} { return NewSerializer() },
}

// AcquireSerializer returns a Serializer from the pool, reset and ready to
// use. Call ReleaseSerializer when done to return it to the pool.
func AcquireSerializer() *Serializer {
	s := serializerPool.Get().(*Serializer)
	s.buf.Reset()
	s.err = nil
	s.remainingDepth = DefaultDepthLimit
	s.depthLimit = DefaultDepthLimit
	s.containerStack = s.containerStack[:0]
	return s
}

// ReleaseSerializer returns a Serializer to the pool. Do not use the
// Serializer, or any slice returned from ToBytes, after releasing it.
func ReleaseSerializer(s *Serializer) {
	serializerPool.Put(s)
}

// Error returns any error that occurred during serialization.
func (s *Serializer) Error() error {
	return s.err
}

// SetError sets an error on the serializer. Once set, subsequent operations
// are no-ops.
func (s *Serializer) SetError(err error) {
	if s.err == nil {
		s.err = err
	}
}

// ToBytes returns the serialized bytes. Returns nil if the Serializer was
// not buffer-backed (see EncodeInto) or if an error occurred.
func (s *Serializer) ToBytes() []byte {
	if s.err != nil || s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// IsHumanReadable reports whether this format is human-readable. BCS never
// is: field names, type tags, and map structure all collapse to raw bytes.
func (s *Serializer) IsHumanReadable() bool {
	return false
}

func (s *Serializer) write(p []byte) {
	if s.err != nil || len(p) == 0 {
		return
	}
	if _, err := s.w.Write(p); err != nil {
		s.SetError(newIOError(err))
	}
}

// Bool serializes a boolean value.
// BCS: 0x00 for false, 0x01 for true
func (s *Serializer) Bool(v bool) {
	if s.err != nil {
		return
	}
	if v {
		s.write([]byte{0x01})
	} else {
		s.write([]byte{0x00})
	}
}

// U8 serializes an unsigned 8-bit integer.
func (s *Serializer) U8(v uint8) {
	s.write([]byte{v})
}

// U16 serializes an unsigned 16-bit integer in little-endian format.
func (s *Serializer) U16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	s.write(buf[:])
}

// U32 serializes an unsigned 32-bit integer in little-endian format.
func (s *Serializer) U32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	s.write(buf[:])
}

// U64 serializes an unsigned 64-bit integer in little-endian format.
func (s *Serializer) U64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	s.write(buf[:])
}

// U128 serializes a 128-bit unsigned integer in little-endian format.
func (s *Serializer) U128(v *big.Int) {
	if s.err != nil {
		return
	}
	if v == nil {
		s.SetError(newError(ErrNotSupported, "U128 value is nil"))
		return
	}
	if v.Sign() < 0 {
		s.SetError(newError(ErrNotSupported, "U128 value is negative"))
		return
	}
	be := v.Bytes()
	if len(be) > 16 {
		s.SetError(newError(ErrExceededMaxLen, "U128 value too large"))
		return
	}
	var buf [16]byte
	for i, b := range be {
		buf[len(be)-1-i] = b
	}
	s.write(buf[:])
}

// U256 serializes a 256-bit unsigned integer in little-endian format.
func (s *Serializer) U256(v *big.Int) {
	if s.err != nil {
		return
	}
	if v == nil {
		s.SetError(newError(ErrNotSupported, "U256 value is nil"))
		return
	}
	if v.Sign() < 0 {
		s.SetError(newError(ErrNotSupported, "U256 value is negative"))
		return
	}
	be := v.Bytes()
	if len(be) > 32 {
		s.SetError(newError(ErrExceededMaxLen, "U256 value too large"))
		return
	}
	var buf [32]byte
	for i, b := range be {
		buf[len(be)-1-i] = b
	}
	s.write(buf[:])
}

// Float32, Float64, and Char are not part of BCS. They always fail with
// ErrNotSupported so that a Marshaler cannot silently produce
// non-canonical output.

// Float32 always fails: BCS has no floating-point representation.
func (s *Serializer) Float32(float32) {
	s.SetError(newError(ErrNotSupported, "float32 is not representable in BCS"))
}

// Float64 always fails: BCS has no floating-point representation.
func (s *Serializer) Float64(float64) {
	s.SetError(newError(ErrNotSupported, "float64 is not representable in BCS"))
}

// Char always fails: BCS has no standalone character representation.
func (s *Serializer) Char(rune) {
	s.SetError(newError(ErrNotSupported, "char is not representable in BCS"))
}

// Uleb128 serializes an unsigned integer using ULEB128 variable-length
// encoding. Used for sequence/map lengths and enum variant indices.
func (s *Serializer) Uleb128(v uint32) {
	if s.err != nil {
		return
	}
	var buf [5]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}
	s.write(buf[:n])
}

// Bytes serializes a byte slice with a ULEB128 length prefix.
func (s *Serializer) Bytes(v []byte) {
	if s.err != nil {
		return
	}
	if len(v) > MaxSequenceLength {
		s.SetError(newError(ErrExceededMaxLen, fmt.Sprintf("byte vector length %d exceeds max %d", len(v), MaxSequenceLength)))
		return
	}
	s.Uleb128(uint32(len(v)))
	s.write(v)
}

// FixedBytes serializes a byte slice without a length prefix. Use for
// fixed-size types like account addresses or signatures.
func (s *Serializer) FixedBytes(v []byte) {
	s.write(v)
}

// String serializes a UTF-8 string with a ULEB128 length prefix.
func (s *Serializer) String(v string) {
	s.Bytes([]byte(v))
}

// Struct dispatches to a Marshaler's own MarshalBCS. The Marshaler is
// responsible for wrapping its field writes in BeginStruct/EndStruct.
func (s *Serializer) Struct(v Marshaler) {
	if s.err != nil {
		return
	}
	v.MarshalBCS(s)
}

// BeginStruct marks the start of a named container (a struct, or an enum
// variant) and charges it against the depth budget.
// Every BeginStruct must be paired with an EndStruct, even if an error
// occurred in between: EndStruct is always safe to call.
func (s *Serializer) BeginStruct() {
	if s.err != nil {
		s.containerStack = append(s.containerStack, false)
		return
	}
	if s.remainingDepth <= 0 {
		s.SetError(newError(ErrExceededContainerDepthLimit, fmt.Sprintf("exceeded max container depth of %d", s.depthLimit)))
		s.containerStack = append(s.containerStack, false)
		return
	}
	s.remainingDepth--
	s.containerStack = append(s.containerStack, true)
}

// EndStruct closes the named container opened by the matching BeginStruct,
// restoring one unit of depth budget.
func (s *Serializer) EndStruct() {
	n := len(s.containerStack)
	if n == 0 {
		return
	}
	entered := s.containerStack[n-1]
	s.containerStack = s.containerStack[:n-1]
	if entered {
		s.remainingDepth++
	}
}

// VariantIndex writes the ULEB128 tag selecting an enum variant. Every
// enum variant is a named container per the depth invariant, including
// unit variants that carry no payload fields: the caller must wrap the
// variant's full encode (the VariantIndex call plus whatever payload
// follows it) in a matching BeginStruct/EndStruct pair. VariantIndex does
// not do this itself because a multi-field record variant already charges
// depth once for its own BeginStruct/EndStruct; doubling that charge here
// would count the same container twice.
func (s *Serializer) VariantIndex(v uint32) {
	s.Uleb128(v)
}

// BeginSeq writes a sequence's ULEB128 length prefix after checking it
// against MaxSequenceLength. Sequences are not named containers, so this
// does not consume depth budget; the caller writes n elements and then
// calls EndSeq.
func (s *Serializer) BeginSeq(n int) {
	if s.err != nil {
		return
	}
	if n < 0 || n > MaxSequenceLength {
		s.SetError(newError(ErrExceededMaxLen, fmt.Sprintf("sequence length %d exceeds max %d", n, MaxSequenceLength)))
		return
	}
	s.Uleb128(uint32(n))
}

// EndSeq closes a sequence opened by BeginSeq. Sequences carry no depth
// state, so this exists purely for symmetry with BeginSeq.
func (s *Serializer) EndSeq() {}

// BeginMap starts a canonical map encode: keys and values are buffered and
// written in sorted, deduplicated order by MapEncoder.End.
func (s *Serializer) BeginMap() *MapEncoder {
	return &MapEncoder{parent: s}
}

// SerializeSequence serializes a slice of Marshaler elements as a BCS
// sequence: ULEB128 length followed by each element.
func SerializeSequence[T Marshaler](s *Serializer, items []T) {
	if s.err != nil {
		return
	}
	s.BeginSeq(len(items))
	for _, item := range items {
		if s.err != nil {
			return
		}
		item.MarshalBCS(s)
	}
	s.EndSeq()
}

// SerializeOption serializes an optional value: 0x00 for nil (None), or
// 0x01 followed by the value (Some).
func SerializeOption[T Marshaler](s *Serializer, opt *T) {
	if s.err != nil {
		return
	}
	if opt == nil {
		s.U8(0)
	} else {
		s.U8(1)
		(*opt).MarshalBCS(s)
	}
}

// Serialize encodes v to a new byte slice using the default depth limit.
func Serialize(v Marshaler) ([]byte, error) {
	return SerializeWithLimit(v, DefaultDepthLimit)
}

// SerializeWithLimit encodes v to a new byte slice using a custom
// container depth limit.
func SerializeWithLimit(v Marshaler, limit int) ([]byte, error) {
	if limit > DefaultDepthLimit {
		return nil, newError(ErrNotSupported, fmt.Sprintf("depth limit %d exceeds default %d", limit, DefaultDepthLimit))
	}
	s := NewSerializerWithLimit(limit)
	v.MarshalBCS(s)
	if s.err != nil {
		return nil, s.err
	}
	return s.ToBytes(), nil
}

// Encode is an alias for Serialize, matching the vocabulary of the BCS
// wire-format contract: encode a value into a byte sink.
func Encode(v Marshaler) ([]byte, error) {
	return Serialize(v)
}

// EncodeInto streams v's BCS encoding directly into w, without buffering
// the whole output in memory first.
func EncodeInto(w io.Writer, v Marshaler) error {
	return EncodeIntoWithLimit(w, v, DefaultDepthLimit)
}

// EncodeIntoWithLimit streams v's BCS encoding into w using a custom
// container depth limit.
func EncodeIntoWithLimit(w io.Writer, v Marshaler, limit int) error {
	if limit > DefaultDepthLimit {
		return newError(ErrNotSupported, fmt.Sprintf("depth limit %d exceeds default %d", limit, DefaultDepthLimit))
	}
	s := newStreamingSerializer(w, limit)
	v.MarshalBCS(s)
	return s.err
}

// countingWriter discards bytes, counting them. Used by EncodedSize so
// callers can size a buffer (or check a message against a limit) before
// paying for the real encode.
type countingWriter struct{ n int }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

// EncodedSize returns the number of bytes v would occupy once BCS-encoded,
// without allocating that many bytes.
func EncodedSize(v Marshaler) (int, error) {
	cw := &countingWriter{}
	if err := EncodeInto(cw, v); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// SerializeU8 serializes a uint8 to bytes.
func SerializeU8(v uint8) []byte {
	return []byte{v}
}

// SerializeU64 serializes a uint64 to bytes.
func SerializeU64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// SerializeString serializes a string to bytes.
func SerializeString(v string) []byte {
	s := NewSerializer()
	s.String(v)
	return s.ToBytes()
}
