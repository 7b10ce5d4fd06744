package registry

import (
	"io"
	"sort"

	"github.com/francoispqt/gojay"
	"github.com/viant/registry/contract"
	"github.com/viant/registry/entry"
)

// EntryState describes one registry entry at snapshot time.
type EntryState struct {
	Key   string
	Kind  string
	Owner bool
	Alive bool
	Type  string
}

// MarshalJSONObject implements MarshalerJSONObject
func (e *EntryState) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("key", e.Key)
	enc.StringKey("kind", e.Kind)
	enc.BoolKey("owner", e.Owner)
	enc.BoolKey("alive", e.Alive)
	enc.StringKey("type", e.Type)
}

// IsNil checks if instance is nil
func (e *EntryState) IsNil() bool {
	return e == nil
}

// Snapshot returns the state of every entry in lexical key order.
func (s *Service) Snapshot() []*EntryState {
	s.rLock()
	defer s.rUnlock()
	var ret []*EntryState
	s.entries.each(func(key contract.Key, managed *entry.Managed) bool {
		ret = append(ret, &EntryState{
			Key:   key.String(),
			Kind:  managed.Kind().String(),
			Owner: managed.Owner(),
			Alive: managed.IsAlive(),
			Type:  managed.Type().String(),
		})
		return true
	})
	sort.Slice(ret, func(i, j int) bool { return ret[i].Key < ret[j].Key })
	return ret
}

// Dump writes one JSON line per entry to the writer.
func (s *Service) Dump(writer io.Writer) error {
	for _, state := range s.Snapshot() {
		data, err := gojay.Marshal(state)
		if err != nil {
			return err
		}
		if _, err = writer.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}
