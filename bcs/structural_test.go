package bcs

import (
	"bytes"
	"errors"
	"testing"
)

// nestedStruct wraps a single child field n levels deep, used to probe the
// container depth budget.
type nestedStruct struct {
	child *nestedStruct
	leaf  uint8
}

func (n *nestedStruct) MarshalBCS(ser *Serializer) {
	ser.BeginStruct()
	defer ser.EndStruct()
	if n.child != nil {
		n.child.MarshalBCS(ser)
		return
	}
	ser.U8(n.leaf)
}

func buildNested(depth int) *nestedStruct {
	root := &nestedStruct{leaf: 0x42}
	cur := root
	for i := 1; i < depth; i++ {
		next := &nestedStruct{leaf: 0x42}
		cur.child = next
		cur = next
	}
	return root
}

func TestDepthLimitAllowsExactBudget(t *testing.T) {
	v := buildNested(DefaultDepthLimit)
	if _, err := Serialize(v); err != nil {
		t.Fatalf("expected depth %d to fit the default budget, got %v", DefaultDepthLimit, err)
	}
}

func TestDepthLimitRejectsOverBudget(t *testing.T) {
	v := buildNested(DefaultDepthLimit + 1)
	_, err := Serialize(v)
	if err == nil {
		t.Fatal("expected an error for a container nested one level past the budget")
	}
	if !IsExceededDepthLimit(err) {
		t.Errorf("got %v, want ErrExceededContainerDepthLimit", err)
	}
	if !errors.Is(err, SentinelExceededDepthLimit) {
		t.Error("errors.Is should match SentinelExceededDepthLimit")
	}
}

func TestBeginSeqRejectsOversizedLength(t *testing.T) {
	s := NewSerializer()
	s.BeginSeq(MaxSequenceLength + 1)
	if s.Error() == nil {
		t.Fatal("expected an error for a sequence length above MaxSequenceLength")
	}
	if !IsExceededMaxLen(s.Error()) {
		t.Errorf("got %v, want ErrExceededMaxLen", s.Error())
	}
}

func TestBeginSeqAcceptsMaxLength(t *testing.T) {
	s := NewSerializer()
	s.BeginSeq(MaxSequenceLength)
	s.EndSeq()
	if s.Error() != nil {
		t.Fatalf("MaxSequenceLength itself must be legal: %v", s.Error())
	}
}

type u8kv struct {
	k, v uint8
}

func encodeCanonicalMap(t *testing.T, entries []u8kv) []byte {
	t.Helper()
	s := NewSerializer()
	m := s.BeginMap()
	for _, e := range entries {
		e := e
		m.Key(func(ks *Serializer) { ks.U8(e.k) })
		m.Value(func(vs *Serializer) { vs.U8(e.v) })
	}
	m.End()
	if s.Error() != nil {
		t.Fatalf("map encode error: %v", s.Error())
	}
	return s.ToBytes()
}

func TestMapCanonicalOrdering(t *testing.T) {
	want := []byte{0x03, 0x01, 0x0a, 0x02, 0x14, 0x03, 0x1e}
	got := encodeCanonicalMap(t, []u8kv{{2, 20}, {1, 10}, {3, 30}})
	if !bytes.Equal(got, want) {
		t.Errorf("map encode = % x, want % x", got, want)
	}
}

func TestMapOrderIndependentOfInsertion(t *testing.T) {
	a := encodeCanonicalMap(t, []u8kv{{2, 20}, {1, 10}, {3, 30}})
	b := encodeCanonicalMap(t, []u8kv{{3, 30}, {1, 10}, {2, 20}})
	if !bytes.Equal(a, b) {
		t.Errorf("map encoding must not depend on insertion order: % x vs % x", a, b)
	}
}

func TestMapDedupesKeepingFirst(t *testing.T) {
	got := encodeCanonicalMap(t, []u8kv{{1, 10}, {1, 99}})
	want := []byte{0x01, 0x01, 0x0a}
	if !bytes.Equal(got, want) {
		t.Errorf("duplicate key should keep first value: % x, want % x", got, want)
	}
}

func TestMapValueWithoutKeyErrors(t *testing.T) {
	s := NewSerializer()
	m := s.BeginMap()
	m.Value(func(vs *Serializer) { vs.U8(1) })
	if s.Error() == nil {
		t.Fatal("expected ErrExpectedMapKey")
	}
}

func TestMapEndWithPendingKeyErrors(t *testing.T) {
	s := NewSerializer()
	m := s.BeginMap()
	m.Key(func(ks *Serializer) { ks.U8(1) })
	m.End()
	if s.Error() == nil {
		t.Fatal("expected ErrExpectedMapValue")
	}
}

func TestFloatsAndCharAreNotSupported(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		s := NewSerializer()
		s.Float32(1.5)
		if !IsNotSupported(s.Error()) {
			t.Errorf("got %v, want ErrNotSupported", s.Error())
		}
	})
	t.Run("float64", func(t *testing.T) {
		s := NewSerializer()
		s.Float64(1.5)
		if !IsNotSupported(s.Error()) {
			t.Errorf("got %v, want ErrNotSupported", s.Error())
		}
	})
	t.Run("char", func(t *testing.T) {
		s := NewSerializer()
		s.Char('a')
		if !IsNotSupported(s.Error()) {
			t.Errorf("got %v, want ErrNotSupported", s.Error())
		}
	})
}

func TestIsHumanReadableIsAlwaysFalse(t *testing.T) {
	if NewSerializer().IsHumanReadable() {
		t.Error("BCS is never human readable")
	}
}

func TestEncodeIntoStreamsWithoutBuffering(t *testing.T) {
	v := buildNested(3)
	var buf bytes.Buffer
	if err := EncodeInto(&buf, v); err != nil {
		t.Fatalf("EncodeInto: %v", err)
	}
	want, err := Serialize(v)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("EncodeInto produced % x, want % x", buf.Bytes(), want)
	}
}

func TestEncodedSizeMatchesActualEncoding(t *testing.T) {
	v := buildNested(5)
	want, err := Serialize(v)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := EncodedSize(v)
	if err != nil {
		t.Fatalf("EncodedSize: %v", err)
	}
	if got != len(want) {
		t.Errorf("EncodedSize = %d, want %d", got, len(want))
	}
}

func TestSerializeSequenceUsesDepthNeutralLengthPrefix(t *testing.T) {
	s := NewSerializer()
	SerializeSequence(s, []Marshaler{boolVal(true), boolVal(false)})
	want := []byte{0x02, 0x01, 0x00}
	if !bytes.Equal(s.ToBytes(), want) {
		t.Errorf("SerializeSequence = % x, want % x", s.ToBytes(), want)
	}
	if s.remainingDepth != DefaultDepthLimit {
		t.Errorf("remaining depth after sequence = %d, want %d", s.remainingDepth, DefaultDepthLimit)
	}
}

type boolVal bool

func (b boolVal) MarshalBCS(ser *Serializer) { ser.Bool(bool(b)) }

func TestSerializeOptionNoneAndSome(t *testing.T) {
	var none *boolVal
	s := NewSerializer()
	SerializeOption(s, none)
	if !bytes.Equal(s.ToBytes(), []byte{0x00}) {
		t.Errorf("None = % x, want 00", s.ToBytes())
	}

	some := boolVal(true)
	s2 := NewSerializer()
	SerializeOption(s2, &some)
	if !bytes.Equal(s2.ToBytes(), []byte{0x01, 0x01}) {
		t.Errorf("Some(true) = % x, want 01 01", s2.ToBytes())
	}
}

func TestSerializeWithLimitAboveDefaultIsNotSupported(t *testing.T) {
	v := buildNested(1)
	_, err := SerializeWithLimit(v, DefaultDepthLimit+1)
	if !IsNotSupported(err) {
		t.Errorf("got %v, want ErrNotSupported for a limit above the default", err)
	}

	var buf bytes.Buffer
	err = EncodeIntoWithLimit(&buf, v, DefaultDepthLimit+1)
	if !IsNotSupported(err) {
		t.Errorf("got %v, want ErrNotSupported for a limit above the default", err)
	}
}

// networkConfig exercises a record with a fixed array, a sequence, an
// option, and a bool in one struct, matching spec.md §8 scenario 1.
type networkConfig struct {
	ip      [4]byte
	port    []uint16
	connMax *uint32
	enabled bool
}

func (c *networkConfig) MarshalBCS(ser *Serializer) {
	ser.BeginStruct()
	defer ser.EndStruct()
	ser.FixedBytes(c.ip[:])
	ser.BeginSeq(len(c.port))
	for _, p := range c.port {
		ser.U16(p)
	}
	ser.EndSeq()
	if c.connMax == nil {
		ser.U8(0)
	} else {
		ser.U8(1)
		ser.U32(*c.connMax)
	}
	ser.Bool(c.enabled)
}

func TestStructLiteralBytesScenario(t *testing.T) {
	connMax := uint32(5000)
	v := &networkConfig{
		ip:      [4]byte{192, 168, 1, 1},
		port:    []uint16{8001, 8002, 8003},
		connMax: &connMax,
		enabled: false,
	}
	got, err := Serialize(v)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0xc0, 0xa8, 0x01, 0x01, 0x03, 0x41, 0x1f, 0x42, 0x1f, 0x43, 0x1f, 0x01, 0x88, 0x13, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("struct encode = % x, want % x", got, want)
	}
}

// fourVariantEnum is a four-variant enum whose third variant (index 2)
// carries a single u32 payload, matching spec.md §8 scenario 5.
type fourVariantEnum struct {
	variant uint32
	payload uint32
}

func (e *fourVariantEnum) MarshalBCS(ser *Serializer) {
	ser.BeginStruct()
	defer ser.EndStruct()
	ser.VariantIndex(e.variant)
	switch e.variant {
	case 2:
		ser.U32(e.payload)
	}
}

func TestEnumVariantLiteralBytesScenario(t *testing.T) {
	v := &fourVariantEnum{variant: 2, payload: 1}
	got, err := Serialize(v)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0x02, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("enum encode = % x, want % x", got, want)
	}
}

func TestByteStringLiteralBytesScenario(t *testing.T) {
	s := NewSerializer()
	s.Bytes([]byte("hi"))
	if s.Error() != nil {
		t.Fatalf("Bytes: %v", s.Error())
	}
	want := []byte{0x02, 0x68, 0x69}
	if !bytes.Equal(s.ToBytes(), want) {
		t.Errorf("byte string encode = % x, want % x", s.ToBytes(), want)
	}
}

func TestUleb128RejectsNonMinimalEncoding(t *testing.T) {
	// 0x80 0x00 re-encodes 0 using two bytes instead of the minimal one.
	d := NewDeserializer([]byte{0x80, 0x00})
	d.Uleb128()
	if d.Error() == nil {
		t.Fatal("expected an error for a non-minimal ULEB128 encoding")
	}
}

func TestUleb128AcceptsMinimalEncoding(t *testing.T) {
	d := NewDeserializer([]byte{0x80, 0x01})
	got := d.Uleb128()
	if d.Error() != nil {
		t.Fatalf("minimal two-byte encoding of 128 must decode cleanly: %v", d.Error())
	}
	if got != 128 {
		t.Errorf("Uleb128() = %d, want 128", got)
	}
}

func TestAcquireReleaseSerializerRoundTrip(t *testing.T) {
	s := AcquireSerializer()
	s.U64(0x123456789abcdef0)
	got := append([]byte(nil), s.ToBytes()...)
	ReleaseSerializer(s)

	want := []byte{0xf0, 0xde, 0xbc, 0x9a, 0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(got, want) {
		t.Errorf("AcquireSerializer round trip = % x, want % x", got, want)
	}
}
