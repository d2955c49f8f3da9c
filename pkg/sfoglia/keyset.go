package sfoglia

// KeySet is an ordered set of route keys. Insertion order is preserved
// so derived render output stays deterministic. The zero value is an
// empty, usable set.
type KeySet struct {
	keys  []string
	index map[string]struct{}
}

// Has reports whether key is in the set.
func (s *KeySet) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Add inserts key if absent.
func (s *KeySet) Add(key string) {
	if s.Has(key) {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[key] = struct{}{}
	s.keys = append(s.keys, key)
}

// Remove deletes key if present.
func (s *KeySet) Remove(key string) {
	if !s.Has(key) {
		return
	}
	delete(s.index, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	return len(s.keys)
}

// Empty reports whether the set has no keys.
func (s *KeySet) Empty() bool {
	return len(s.keys) == 0
}

// Keys returns the keys in insertion order. The returned slice is a
// copy.
func (s *KeySet) Keys() []string {
	return append([]string(nil), s.keys...)
}

// clear removes every key.
func (s *KeySet) clear() {
	s.keys = s.keys[:0]
	for k := range s.index {
		delete(s.index, k)
	}
}

// clone returns an independent copy of the set.
func (s *KeySet) clone() KeySet {
	out := KeySet{}
	for _, k := range s.keys {
		out.Add(k)
	}
	return out
}
