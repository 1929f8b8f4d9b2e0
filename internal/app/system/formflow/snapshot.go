// internal/app/system/formflow/snapshot.go
package formflow

import "maps"

// Snapshot is the serialisable form state kept in the visitor's session
// between requests.
type Snapshot struct {
	Form   string     `json:"form"`
	Step   int        `json:"step"`
	State  State      `json:"state"`
	Data   FormData   `json:"data"`
	Errors FormErrors `json:"errors,omitempty"`
}

// Snapshot captures the controller state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Form:   c.def.Name,
		Step:   c.step,
		State:  c.state,
		Data:   c.data.Clone(),
		Errors: maps.Clone(c.errors),
	}
}

// Restore rebuilds a controller for def from s. A snapshot for another form
// yields a fresh controller. The step is clamped into range and an
// interrupted Submitting state reverts to Editing.
func Restore(def Definition, s Snapshot) *Controller {
	c := New(def)
	if s.Form != def.Name {
		return c
	}
	c.step = min(max(s.Step, 1), c.lastStep())
	c.state = s.State
	if c.state == Submitting || c.state < Editing || c.state > Submitted {
		c.state = Editing
	}
	c.data = s.Data.Clone()
	if c.data.Values == nil {
		c.data.Values = map[Field]string{}
	}
	if s.Errors != nil {
		c.errors = maps.Clone(s.Errors)
	}
	return c
}
