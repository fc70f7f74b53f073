package schedule

// identityMap holds the bidirectional person-name/agent-id mapping for
// one submission. Names are stored normalized (trimmed, lower-cased).
type identityMap struct {
	nameToID map[string]string
	idToName map[string]string
}

func newIdentityMap() *identityMap {
	return &identityMap{
		nameToID: map[string]string{},
		idToName: map[string]string{},
	}
}

// register records one (person, agentId) pair, reporting whether it
// contradicts an earlier pair in either direction.
func (m *identityMap) register(person, agentID string) bool {
	name := NormalizeName(person)
	if name == "" || agentID == "" {
		return true
	}
	if id, ok := m.nameToID[name]; ok && id != agentID {
		return false
	}
	if n, ok := m.idToName[agentID]; ok && n != name {
		return false
	}
	m.nameToID[name] = agentID
	m.idToName[agentID] = name
	return true
}

// lookup resolves a person to an id, preferring pairs from this
// submission over the previously persisted index.
func (m *identityMap) lookup(person string, prevIndex map[string]string) string {
	name := NormalizeName(person)
	if name == "" {
		return ""
	}
	if id, ok := m.nameToID[name]; ok {
		return id
	}
	return prevIndex[name]
}

// buildIdentityMap walks shifts, then pto, then calendar segments, then
// overrides, registering every explicit (person, agentId) pair. The
// first conflicting pair aborts the walk: a conflict invalidates the
// whole submission, so continuing cannot improve the diagnostic.
func buildIdentityMap(doc *Document) (*identityMap, *MappingConflictError) {
	m := newIdentityMap()
	for _, s := range doc.Shifts {
		if !m.register(s.Person, s.AgentID) {
			return nil, &MappingConflictError{Conflict: MappingConflict{
				Where: "shifts", ID: s.ID, Person: s.Person, AgentID: s.AgentID,
			}}
		}
	}
	for _, p := range doc.PTO {
		if !m.register(p.Person, p.AgentID) {
			return nil, &MappingConflictError{Conflict: MappingConflict{
				Where: "pto", ID: p.ID, Person: p.Person, AgentID: p.AgentID,
			}}
		}
	}
	for _, cs := range doc.CalendarSegs {
		if !m.register(cs.Person, cs.AgentID) {
			return nil, &MappingConflictError{Conflict: MappingConflict{
				Where: "calendarSegs", Person: cs.Person, AgentID: cs.AgentID,
			}}
		}
	}
	for _, o := range doc.Overrides {
		if !m.register(o.Person, o.AgentID) {
			return nil, &MappingConflictError{Conflict: MappingConflict{
				Where: "overrides", ID: o.ID, Person: o.Person, AgentID: o.AgentID,
			}}
		}
	}
	return m, nil
}

// backfillAgentIDs fills missing agentId fields in place from the
// submission's own pairs first, then from the previous document's
// index. Names never paired with an id anywhere stay without one;
// that is not an error.
func backfillAgentIDs(doc *Document, m *identityMap, prevIndex map[string]string) {
	for i := range doc.Shifts {
		if doc.Shifts[i].AgentID == "" {
			doc.Shifts[i].AgentID = m.lookup(doc.Shifts[i].Person, prevIndex)
		}
	}
	for i := range doc.PTO {
		if doc.PTO[i].AgentID == "" {
			doc.PTO[i].AgentID = m.lookup(doc.PTO[i].Person, prevIndex)
		}
	}
	for i := range doc.CalendarSegs {
		if doc.CalendarSegs[i].AgentID == "" {
			doc.CalendarSegs[i].AgentID = m.lookup(doc.CalendarSegs[i].Person, prevIndex)
		}
	}
	for i := range doc.Overrides {
		if doc.Overrides[i].AgentID == "" {
			doc.Overrides[i].AgentID = m.lookup(doc.Overrides[i].Person, prevIndex)
		}
	}
}

// agentsIndex derives the persisted name-to-id index: every pair
// registered from the submission, plus each agent's full name when not
// already a key. The previous document's index is never copied in.
func (m *identityMap) agentsIndex(agents []Agent) map[string]string {
	index := make(map[string]string, len(m.nameToID)+len(agents))
	for name, id := range m.nameToID {
		index[name] = id
	}
	for _, a := range agents {
		name := NormalizeName(a.FullName())
		if name == "" || a.ID == "" {
			continue
		}
		if _, ok := index[name]; !ok {
			index[name] = a.ID
		}
	}
	return index
}

// BuildAgentsIndex rebuilds the index for a document outside the full
// validation pipeline (agent upserts, shift batches). Pairs are taken
// first-seen-wins from the schedule records, then agent full names.
func BuildAgentsIndex(doc *Document) map[string]string {
	m := newIdentityMap()
	for _, s := range doc.Shifts {
		m.register(s.Person, s.AgentID)
	}
	for _, p := range doc.PTO {
		m.register(p.Person, p.AgentID)
	}
	for _, cs := range doc.CalendarSegs {
		m.register(cs.Person, cs.AgentID)
	}
	for _, o := range doc.Overrides {
		m.register(o.Person, o.AgentID)
	}
	return m.agentsIndex(doc.Agents)
}
