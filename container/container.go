// Package container tracks the depth stack and key/value grammar state
// shared by the encoder and decoder. The depth stack is a slice sized
// once at construction rather than grown dynamically.
//
// State is intentionally a pure bookkeeping type: it exposes getters for
// every grammar predicate (depth bound, key position, top level
// completion, dangling map key) and two mutators, Push/Pop, that assume
// the caller already checked those predicates. The encoder and decoder
// each run their own preflight using the getters and translate a failed
// predicate into their own status/error type, rather than hiding the
// grammar behind a single shared error type.
package container

// State is the grammar state machine for one encode or decode process.
type State struct {
	maxDepth  int
	level     int
	nextIsKey bool
	isMap     []bool // isMap[i] records whether the container at depth i+1 is a map
	topDone   bool   // true once the single top-level value has been written
}

// New allocates a State bounded to maxDepth nested containers.
func New(maxDepth int) *State {
	return &State{
		maxDepth: maxDepth,
		isMap:    make([]bool, maxDepth),
	}
}

// Reset returns the state to its just-constructed condition, keeping the
// already-allocated depth stack (mirrors Encoder.Begin / Decoder.Begin
// reusing caller-owned storage rather than reallocating).
func (s *State) Reset() {
	s.level = 0
	s.nextIsKey = false
	s.topDone = false
	for i := range s.isMap {
		s.isMap[i] = false
	}
}

// Level returns the current container nesting depth (0 at top level).
func (s *State) Level() int { return s.level }

// MaxDepth returns the maximum nesting depth this state was built for.
func (s *State) MaxDepth() int { return s.maxDepth }

// AtTop reports whether no container is currently open.
func (s *State) AtTop() bool { return s.level == 0 }

// InMap reports whether the currently open container (if any) is a map.
func (s *State) InMap() bool {
	return s.level > 0 && s.isMap[s.level-1]
}

// ExpectingKey returns the raw key/value parity bit, regardless of
// whether the current container is a map. Used only by the container_end
// dangling-key check; ordinary value preflight should use NextIsKey.
func (s *State) ExpectingKey() bool { return s.nextIsKey }

// NextIsKey reports whether the next value at the current level must
// occupy a map key position (always false outside of a map).
func (s *State) NextIsKey() bool { return s.InMap() && s.nextIsKey }

// TopLevelDone reports whether the document's single top-level value has
// already been written.
func (s *State) TopLevelDone() bool { return s.topDone }

// ValueCompleted must be called immediately after any value (scalar,
// array field, or container begin/end) finishes at the current position.
// It toggles the map key/value parity and, at top level, marks the
// document's value as written.
func (s *State) ValueCompleted() {
	if s.level == 0 {
		s.topDone = true
		return
	}

	if s.isMap[s.level-1] {
		s.nextIsKey = !s.nextIsKey
	}
}

// Push opens a new container. The caller must already have checked
// Level() < MaxDepth(), the top-level/key-position predicates, via
// NextIsKey()/TopLevelDone() before calling Push.
func (s *State) Push(isMap bool) {
	// Opening a container consumes a value slot at the current level,
	// exactly like a scalar would.
	s.ValueCompleted()

	s.isMap[s.level] = isMap
	s.level++
	s.nextIsKey = isMap
}

// Pop closes the current container. The caller must already have checked
// Level() > 0 and !(InMap() && !ExpectingKey()) before calling Pop.
func (s *State) Pop() {
	s.level--
	if s.level > 0 && s.isMap[s.level-1] {
		s.nextIsKey = true
	} else {
		s.nextIsKey = false
	}
}
