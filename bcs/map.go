package bcs

import (
	"bytes"
	"sort"
)

type mapEntry struct {
	key   []byte
	value []byte
}

// MapEncoder buffers a map's key-value pairs so they can be emitted in
// BCS canonical order: sorted by serialized key bytes, with duplicate
// keys collapsed to the first occurrence. Obtain one from
// Serializer.BeginMap.
type MapEncoder struct {
	parent        *Serializer
	entries       []mapEntry
	pendingKey    []byte
	hasPendingKey bool
}

// subSerializer encodes a key or value into its own buffer, sharing the
// parent's current remaining depth budget so nested structs inside map
// entries are still bounded.
func (m *MapEncoder) subSerializer() *Serializer {
	buf := &bytes.Buffer{}
	return &Serializer{w: buf, buf: buf, remainingDepth: m.parent.remainingDepth, depthLimit: m.parent.depthLimit}
}

// Key encodes the next entry's key by invoking fn with a scratch
// Serializer. Must be followed by a matching Value before another Key or
// End.
func (m *MapEncoder) Key(fn func(*Serializer)) {
	if m.parent.err != nil {
		return
	}
	if m.hasPendingKey {
		m.parent.SetError(newError(ErrExpectedMapValue, "Key called before the previous key's Value"))
		return
	}
	sub := m.subSerializer()
	fn(sub)
	if sub.err != nil {
		m.parent.SetError(sub.err)
		return
	}
	m.pendingKey = sub.ToBytes()
	m.hasPendingKey = true
}

// Value encodes the value paired with the most recent Key.
func (m *MapEncoder) Value(fn func(*Serializer)) {
	if m.parent.err != nil {
		return
	}
	if !m.hasPendingKey {
		m.parent.SetError(newError(ErrExpectedMapKey, "Value called without a preceding Key"))
		return
	}
	sub := m.subSerializer()
	fn(sub)
	if sub.err != nil {
		m.parent.SetError(sub.err)
		return
	}
	m.entries = append(m.entries, mapEntry{key: m.pendingKey, value: sub.ToBytes()})
	m.pendingKey = nil
	m.hasPendingKey = false
}

// End sorts the buffered entries by key bytes, drops duplicate keys
// (keeping the first occurrence), and writes the ULEB128 count followed
// by each key/value pair to the parent Serializer.
func (m *MapEncoder) End() {
	if m.parent.err != nil {
		return
	}
	if m.hasPendingKey {
		m.parent.SetError(newError(ErrExpectedMapValue, "End called with a key missing its value"))
		return
	}

	sort.SliceStable(m.entries, func(i, j int) bool {
		return bytes.Compare(m.entries[i].key, m.entries[j].key) < 0
	})
	deduped := m.entries[:0]
	for i, e := range m.entries {
		if i > 0 && bytes.Equal(e.key, deduped[len(deduped)-1].key) {
			continue
		}
		deduped = append(deduped, e)
	}
	m.entries = deduped

	m.parent.Uleb128(uint32(len(m.entries)))
	for _, e := range m.entries {
		m.parent.write(e.key)
		m.parent.write(e.value)
	}
}
