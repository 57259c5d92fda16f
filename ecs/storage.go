package ecs

// entityStore tracks slot generations and recycled ids. Slot ids start at 1.
type entityStore struct {
	gen  []generation
	free []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		id = entityID(len(s.gen))
	}
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.id()-1]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || !e.Valid() || int(e.id()) > len(s.gen) {
		return false
	}
	return s.gen[e.id()-1] == e.generation()
}

func (s *entityStore) alive() []Entity {
	out := make([]Entity, 0, len(s.gen)-len(s.free))
	for i, g := range s.gen {
		e := makeEntity(entityID(i+1), g)
		if s.isFree(e.id()) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *entityStore) isFree(id entityID) bool {
	for _, f := range s.free {
		if f == id {
			return true
		}
	}
	return false
}
