package progress

import (
	"slices"

	"github.com/shinypath/shinypath/internal/catalog"
)

// Status is a lesson node's position on the path.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusUnlocked  Status = "unlocked"
	StatusCompleted Status = "completed"
)

// Icon returns the map marker for the status.
func (s Status) Icon() string {
	switch s {
	case StatusCompleted:
		return "★"
	case StatusUnlocked:
		return "○"
	default:
		return "🔒"
	}
}

// Node is one lesson's progression record.
type Node struct {
	ID      string
	Name    string
	Kind    catalog.Kind
	Section catalog.SectionID
	Status  Status
}

// Tracker holds lesson statuses for one session. Sections and nodes keep
// catalog declaration order. Operations never fail: unknown ids are no-ops.
type Tracker struct {
	sections []catalog.SectionID
	nodes    []Node
	index    map[string]int
	// bySection holds node indices per section, in order.
	bySection map[catalog.SectionID][]int
	initial   []Status
}

// NewTracker builds a tracker from the catalog. The first lesson of the
// first section starts unlocked; everything else starts locked.
func NewTracker(cat *catalog.Catalog) *Tracker {
	t := &Tracker{
		index:     make(map[string]int),
		bySection: make(map[catalog.SectionID][]int),
	}
	for _, sec := range cat.Sections {
		t.sections = append(t.sections, sec.ID)
		for _, l := range sec.Lessons {
			i := len(t.nodes)
			t.nodes = append(t.nodes, Node{
				ID:      l.ID,
				Name:    l.Name,
				Kind:    l.Kind,
				Section: sec.ID,
				Status:  StatusLocked,
			})
			t.index[l.ID] = i
			t.bySection[sec.ID] = append(t.bySection[sec.ID], i)
		}
	}
	if len(t.nodes) > 0 {
		t.nodes[0].Status = StatusUnlocked
	}

	t.initial = make([]Status, len(t.nodes))
	for i, n := range t.nodes {
		t.initial[i] = n.Status
	}
	return t
}

// CompleteNode marks the node completed.
func (t *Tracker) CompleteNode(id string) {
	i, ok := t.index[id]
	if !ok {
		return
	}
	t.nodes[i].Status = StatusCompleted
}

// UnlockNext unlocks the node after id and returns its id, or "" when
// nothing changed. After the last node of a section the first node of the
// following section is opened, unless it is already open or completed.
// The last node of the last section is terminal.
func (t *Tracker) UnlockNext(id string) string {
	i, ok := t.index[id]
	if !ok {
		return ""
	}
	sec := t.nodes[i].Section
	members := t.bySection[sec]
	pos := slices.Index(members, i)

	var next int
	switch {
	case pos < len(members)-1:
		next = members[pos+1]
	default:
		si := slices.Index(t.sections, sec)
		if si < 0 || si == len(t.sections)-1 {
			return ""
		}
		following := t.bySection[t.sections[si+1]]
		if len(following) == 0 {
			return ""
		}
		next = following[0]
	}

	if t.nodes[next].Status != StatusLocked {
		return ""
	}
	t.nodes[next].Status = StatusUnlocked
	return t.nodes[next].ID
}

// Status returns the node's status. Unknown ids are locked.
func (t *Tracker) Status(id string) Status {
	i, ok := t.index[id]
	if !ok {
		return StatusLocked
	}
	return t.nodes[i].Status
}

// CurrentSection returns the first section with an uncompleted node, or
// the last section when the whole path is complete.
func (t *Tracker) CurrentSection() catalog.SectionID {
	for _, sec := range t.sections {
		done, total := t.SectionProgress(sec)
		if done < total {
			return sec
		}
	}
	if len(t.sections) == 0 {
		return ""
	}
	return t.sections[len(t.sections)-1]
}

// Sections returns the section ids in path order.
func (t *Tracker) Sections() []catalog.SectionID {
	return slices.Clone(t.sections)
}

// Nodes returns a copy of every node in path order.
func (t *Tracker) Nodes() []Node {
	return slices.Clone(t.nodes)
}

// SectionNodes returns a copy of the section's nodes in order.
func (t *Tracker) SectionNodes(sec catalog.SectionID) []Node {
	idx := t.bySection[sec]
	out := make([]Node, len(idx))
	for j, i := range idx {
		out[j] = t.nodes[i]
	}
	return out
}

// Frontier returns the first unlocked (not yet completed) node in the section.
func (t *Tracker) Frontier(sec catalog.SectionID) (Node, bool) {
	for _, i := range t.bySection[sec] {
		if t.nodes[i].Status == StatusUnlocked {
			return t.nodes[i], true
		}
	}
	return Node{}, false
}

// SectionProgress returns completed and total node counts for the section.
func (t *Tracker) SectionProgress(sec catalog.SectionID) (completed, total int) {
	for _, i := range t.bySection[sec] {
		total++
		if t.nodes[i].Status == StatusCompleted {
			completed++
		}
	}
	return completed, total
}

// IsComplete reports whether every node on the path is completed.
func (t *Tracker) IsComplete() bool {
	for _, n := range t.nodes {
		if n.Status != StatusCompleted {
			return false
		}
	}
	return len(t.nodes) > 0
}

// Reset restores the statuses the tracker was created with.
func (t *Tracker) Reset() {
	for i := range t.nodes {
		t.nodes[i].Status = t.initial[i]
	}
}
