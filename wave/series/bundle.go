package series

import (
	"fmt"
	"sort"
)

// Bundle is an ordered set of modes keyed by (l,m).
//
// Keys are kept sorted by l, then m. The zero value is an empty bundle ready
// for use.
type Bundle struct {
	keys  []ModeKey
	modes map[ModeKey]Mode
}

// NewBundle builds a bundle from modes. Duplicate or invalid keys are rejected.
func NewBundle(modes ...Mode) (*Bundle, error) {
	b := &Bundle{}
	for _, m := range modes {
		if err := b.Add(m); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Add inserts m, keeping key order.
func (b *Bundle) Add(m Mode) error {
	if !m.Key.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidMode, m.Key)
	}
	if b.modes == nil {
		b.modes = make(map[ModeKey]Mode)
	}
	if _, ok := b.modes[m.Key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateMode, m.Key)
	}

	b.modes[m.Key] = m
	i := sort.Search(len(b.keys), func(i int) bool { return !b.keys[i].Less(m.Key) })
	b.keys = append(b.keys, ModeKey{})
	copy(b.keys[i+1:], b.keys[i:])
	b.keys[i] = m.Key
	return nil
}

// Len returns the number of modes.
func (b *Bundle) Len() int { return len(b.keys) }

// Keys returns the mode keys in (l, m) order.
func (b *Bundle) Keys() []ModeKey {
	return append([]ModeKey(nil), b.keys...)
}

// Get returns the mode stored under key.
func (b *Bundle) Get(key ModeKey) (Mode, bool) {
	m, ok := b.modes[key]
	return m, ok
}

// Lookup returns the mode stored under key or an error wrapping
// [ErrModeNotFound].
func (b *Bundle) Lookup(key ModeKey) (Mode, error) {
	m, ok := b.modes[key]
	if !ok {
		return Mode{}, fmt.Errorf("%w: %v", ErrModeNotFound, key)
	}
	return m, nil
}

// Modes returns the modes in key order.
func (b *Bundle) Modes() []Mode {
	out := make([]Mode, len(b.keys))
	for i, k := range b.keys {
		out[i] = b.modes[k]
	}
	return out
}

// LValues returns the distinct l values in ascending order.
func (b *Bundle) LValues() []int {
	return distinct(b.keys, func(k ModeKey) int { return k.L })
}

// MValues returns the distinct m values in ascending order.
func (b *Bundle) MValues() []int {
	return distinct(b.keys, func(k ModeKey) int { return k.M })
}

func distinct(keys []ModeKey, pick func(ModeKey) int) []int {
	seen := make(map[int]struct{}, len(keys))
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		v := pick(k)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
