// Package scope resolves the optional project restriction shared by the
// search and statistics reads, and turns it into a per-entity SQL predicate.
package scope

// Scope is an optional restriction of every read to one project.
// The zero value matches everything.
type Scope struct {
	projectID  string
	restricted bool
}

// All returns the unrestricted scope.
func All() Scope {
	return Scope{}
}

// Resolve builds a Scope from an optional project identifier. An empty id
// means no restriction. The id is treated as opaque and is not checked for
// existence: an unknown project simply matches no rows.
func Resolve(projectID string) Scope {
	if projectID == "" {
		return Scope{}
	}
	return Scope{projectID: projectID, restricted: true}
}

// Restricted reports whether the scope targets a single project.
func (s Scope) Restricted() bool {
	return s.restricted
}

// ProjectID returns the targeted project and whether there is one.
func (s Scope) ProjectID() (string, bool) {
	return s.projectID, s.restricted
}

// Predicate is a WHERE-clause fragment with its bound arguments.
// The zero Predicate matches every row.
type Predicate struct {
	Clause string
	Args   []any
}

// IsZero reports whether p filters nothing.
func (p Predicate) IsZero() bool {
	return p.Clause == ""
}

// Column references used by the predicate builders. Store queries alias
// each table with the same letter.
const (
	taskColumn     = "t.project_id"
	ideaColumn     = "i.project_id"
	noteColumn     = "n.project_id"
	resourceColumn = "r.project_id"
	projectColumn  = "p.id"
)

// ForTasks filters tasks (alias t) by owning project.
func ForTasks(s Scope) Predicate { return s.on(taskColumn) }

// ForIdeas filters ideas (alias i) by owning project.
func ForIdeas(s Scope) Predicate { return s.on(ideaColumn) }

// ForNotes filters notes (alias n) by owning project.
func ForNotes(s Scope) Predicate { return s.on(noteColumn) }

// ForResources filters resources (alias r) by owning project.
func ForResources(s Scope) Predicate { return s.on(resourceColumn) }

// ForProjects filters projects (alias p) down to the targeted project itself.
func ForProjects(s Scope) Predicate { return s.on(projectColumn) }

func (s Scope) on(column string) Predicate {
	if !s.restricted {
		return Predicate{}
	}
	return Predicate{Clause: column + " = ?", Args: []any{s.projectID}}
}
