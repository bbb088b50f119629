package rhmap

// New constructs an empty Map with the given options applied over the
// defaults: capacity 8, max load factor 0.75, lexicographic byte comparator,
// FNV-1a hasher, no key/value copy or dispose callbacks.
func New[V any](opts ...Option[V]) *Map[V] {
	cfg := defaultConfig[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < 1 {
		cfg.capacity = 1
	}
	return &Map[V]{
		slots: make([]slot[V], cfg.capacity),
		cfg:   cfg,
	}
}

// Len reports the number of stored entries.
func (m *Map[V]) Len() int { return m.size }

// Cap reports the current slot count.
func (m *Map[V]) Cap() int { return len(m.slots) }

// LoadFactor reports size/capacity.
func (m *Map[V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.slots))
}

func (m *Map[V]) homeIndex(hash uint64) int {
	return int(hash % uint64(len(m.slots)))
}

// Get looks up key, returning its value and true if present. Lookup stops as
// soon as it reaches a slot whose displacement is smaller than the probe's
// current displacement, since key (were it present) would have stolen that
// slot during insertion.
func (m *Map[V]) Get(key []byte) (V, bool) {
	var zero V
	if len(m.slots) == 0 {
		return zero, false
	}
	h := m.cfg.hash(key)
	idx := m.homeIndex(h)
	var disp int32
	n := len(m.slots)
	for {
		s := &m.slots[idx]
		if !s.used {
			return zero, false
		}
		if s.disp < disp {
			return zero, false
		}
		if s.hash == h && m.cfg.cmp(s.key, key) == 0 {
			return s.value, true
		}
		idx = (idx + 1) % n
		disp++
		if disp > int32(n) {
			// Defensive: every slot visited without resolution means the
			// table is corrupt (should be unreachable under the invariant).
			return zero, false
		}
	}
}

// Has reports whether key is present.
func (m *Map[V]) Has(key []byte) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts or replaces the value for key. It returns false if a
// required resize failed to allocate (the table is left at its prior
// capacity) or if the key copier failed; either way the Put did not take
// effect.
//
// Probing is linear from the home slot. At each slot: empty places the
// incoming element; an equal key replaces the value in place (displacement
// unchanged); an occupant with strictly smaller displacement than the
// incoming element's current displacement is stolen from (Robin-Hood swap)
// and the displaced occupant continues the insertion walk.
func (m *Map[V]) Put(key []byte, value V) bool {
	if float64(m.size+1)/float64(len(m.slots)) > m.cfg.maxLoad {
		if !m.grow(len(m.slots) * 2) {
			return false
		}
	}

	storeKey := key
	if m.cfg.keyCopier != nil {
		cp, ok := m.cfg.keyCopier(key)
		if !ok {
			return false
		}
		storeKey = cp
	}

	h := m.cfg.hash(key)
	m.insert(storeKey, value, h)
	return true
}

// insert performs the Robin-Hood probe-and-steal walk for an already-owned
// key/value/hash triple. It assumes capacity headroom has already been
// secured by the caller.
func (m *Map[V]) insert(key []byte, value V, h uint64) {
	idx := m.homeIndex(h)
	n := len(m.slots)
	incKey, incVal, incHash := key, value, h
	var incDisp int32

	for {
		s := &m.slots[idx]
		if !s.used {
			s.key, s.value, s.hash, s.disp, s.used = incKey, incVal, incHash, incDisp, true
			m.size++
			return
		}
		if s.hash == incHash && m.cfg.cmp(s.key, incKey) == 0 {
			// Replacing an existing key: dispose the old value/key if owned,
			// then overwrite in place.
			if m.cfg.valDisposer != nil {
				m.cfg.valDisposer(s.value)
			}
			if m.cfg.keyDisposer != nil && m.cfg.keyCopier != nil {
				m.cfg.keyDisposer(s.key)
			}
			s.key, s.value = incKey, incVal
			return
		}
		if s.disp < incDisp {
			// Robin-Hood steal: the occupant is "richer" (closer to home)
			// than the element we're inserting, so it yields its slot.
			s.key, incKey = incKey, s.key
			s.value, incVal = incVal, s.value
			s.hash, incHash = incHash, s.hash
			s.disp, incDisp = incDisp, s.disp
		}
		idx = (idx + 1) % n
		incDisp++
	}
}

// Delete removes key if present, backward-shifting the probe chain to avoid
// tombstones. Returns true if a key was removed.
func (m *Map[V]) Delete(key []byte) bool {
	if len(m.slots) == 0 {
		return false
	}
	h := m.cfg.hash(key)
	idx := m.homeIndex(h)
	n := len(m.slots)
	var disp int32
	for {
		s := &m.slots[idx]
		if !s.used || s.disp < disp {
			return false
		}
		if s.hash == h && m.cfg.cmp(s.key, key) == 0 {
			if m.cfg.valDisposer != nil {
				m.cfg.valDisposer(s.value)
			}
			if m.cfg.keyDisposer != nil {
				m.cfg.keyDisposer(s.key)
			}
			m.backwardShift(idx)
			m.size--
			return true
		}
		idx = (idx + 1) % n
		disp++
	}
}

// backwardShift fills the vacated slot at idx by pulling the following
// probe-chain elements back one position each, stopping at the first empty
// slot or a slot whose displacement is already zero (it is already home and
// has nothing to gain from moving).
func (m *Map[V]) backwardShift(idx int) {
	n := len(m.slots)
	cur := idx
	for {
		next := (cur + 1) % n
		ns := &m.slots[next]
		if !ns.used || ns.disp == 0 {
			m.slots[cur] = slot[V]{}
			return
		}
		m.slots[cur] = *ns
		m.slots[cur].disp--
		cur = next
	}
}

// grow rebuilds the table at the given capacity (lower-bounded at 1),
// reinserting every live entry. Returns false if the new
// backing array could not be allocated (practically unreachable in Go but
// kept for symmetry with the rest of the module's failure semantics).
func (m *Map[V]) grow(newCap int) (ok bool) {
	if newCap < 1 {
		newCap = 1
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	old := m.slots
	m.slots = make([]slot[V], newCap)
	m.size = 0
	for i := range old {
		if old[i].used {
			m.insert(old[i].key, old[i].value, old[i].hash)
		}
	}
	return true
}

// Clear empties the table, disposing every stored key/value if disposers are
// configured, and resets capacity to the initial capacity the Map was
// constructed with.
func (m *Map[V]) Clear() {
	if m.cfg.valDisposer != nil || m.cfg.keyDisposer != nil {
		for i := range m.slots {
			if m.slots[i].used {
				if m.cfg.valDisposer != nil {
					m.cfg.valDisposer(m.slots[i].value)
				}
				if m.cfg.keyDisposer != nil {
					m.cfg.keyDisposer(m.slots[i].key)
				}
			}
		}
	}
	cap0 := m.cfg.capacity
	if cap0 < 1 {
		cap0 = DefaultCapacity
	}
	m.slots = make([]slot[V], cap0)
	m.size = 0
}

// Range calls fn for every entry in slot order (deterministic given a fixed
// insertion/resize history, per the module's ordering guarantees). Stops
// early if fn returns false.
func (m *Map[V]) Range(fn func(key []byte, value V) bool) {
	for i := range m.slots {
		if m.slots[i].used {
			if !fn(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Entries returns a snapshot of all entries in slot order.
func (m *Map[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, m.size)
	m.Range(func(k []byte, v V) bool {
		out = append(out, Entry[V]{Key: k, Value: v})
		return true
	})
	return out
}

// Displacement returns the recorded displacement of key's slot and whether
// key is present. Exposed for testing the Robin-Hood invariant; not part of
// the ordinary lookup path.
func (m *Map[V]) Displacement(key []byte) (int32, bool) {
	h := m.cfg.hash(key)
	idx := m.homeIndex(h)
	n := len(m.slots)
	var disp int32
	for {
		s := &m.slots[idx]
		if !s.used || s.disp < disp {
			return 0, false
		}
		if s.hash == h && m.cfg.cmp(s.key, key) == 0 {
			return s.disp, true
		}
		idx = (idx + 1) % n
		disp++
	}
}
