package ui

// StateKey identifies an entry in a StateMap.
type StateKey uint64

// Key hashes name with 64-bit FNV-1a.
func Key(name string) StateKey {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= prime
	}
	return StateKey(h)
}

// KeyInt derives a key from an integer id, for callers that number their
// widgets. Distinct ids give distinct keys.
func KeyInt(id int) StateKey {
	// splitmix64 finalizer, a bijection on uint64.
	z := uint64(id) + 0x9e3779b97f4a7c15
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return StateKey(z ^ z>>31)
}

// StateMap holds state that survives across frames. Entries stay until the
// application deletes them. The zero value is ready to use.
type StateMap struct {
	m map[StateKey]any
}

func NewStateMap() *StateMap {
	return &StateMap{m: make(map[StateKey]any, 64)}
}

func (s *StateMap) Get(key StateKey) (any, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *StateMap) Set(key StateKey, v any) {
	if s.m == nil {
		s.m = make(map[StateKey]any)
	}
	s.m[key] = v
}

func (s *StateMap) Delete(key StateKey) { delete(s.m, key) }
func (s *StateMap) Len() int            { return len(s.m) }

// GetState returns the entry for key when it holds a T.
func GetState[T any](s *StateMap, key StateKey) (T, bool) {
	v, ok := s.m[key]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Interaction is the pointer state of an Interactable as of the last End.
type Interaction struct {
	Hovered bool
	// Pressed is set while the pointer went down inside the element and has
	// not been released yet.
	Pressed bool
	// Clicked is set for the single frame in which a press that started
	// inside the element was released inside it.
	Clicked bool
}
