package domain

// ScopeKind discriminates the scope selector union.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeAgent
	ScopeArea
	ScopeCollector
)

// ScopeSelector narrows a report to a set of agents. Exactly one selection
// dimension is active at a time; the unexported fields make that a
// construction-time invariant rather than a convention.
type ScopeSelector struct {
	kind ScopeKind
	id   string
}

// SelectAll selects every agent known to the directory.
func SelectAll() ScopeSelector {
	return ScopeSelector{kind: ScopeAll}
}

// SelectAgent selects a single agent.
func SelectAgent(id string) ScopeSelector {
	return ScopeSelector{kind: ScopeAgent, id: id}
}

// SelectArea selects all agents registered under an area.
func SelectArea(id string) ScopeSelector {
	return ScopeSelector{kind: ScopeArea, id: id}
}

// SelectCollector selects all agents under the areas a collector services.
// The collector itself is never part of the resulting scope; ledgers track
// tellers only.
func SelectCollector(id string) ScopeSelector {
	return ScopeSelector{kind: ScopeCollector, id: id}
}

// ResolveSelector builds a selector from raw, possibly overlapping inputs.
// A specific agent wins over everything; collector wins over area, matching
// the last-selection-wins behavior of the dashboard the engine backs.
func ResolveSelector(agentID, areaID, collectorID string) ScopeSelector {
	switch {
	case agentID != "":
		return SelectAgent(agentID)
	case collectorID != "":
		return SelectCollector(collectorID)
	case areaID != "":
		return SelectArea(areaID)
	default:
		return SelectAll()
	}
}

// Kind returns the active selection dimension.
func (s ScopeSelector) Kind() ScopeKind { return s.kind }

// ID returns the selected id; empty for ScopeAll.
func (s ScopeSelector) ID() string { return s.id }
