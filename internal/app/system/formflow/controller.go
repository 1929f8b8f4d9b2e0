// Package formflow drives multi-step forms: it tracks the active step,
// validates only that step's fields, and runs an injected submit function.
//
// A Controller belongs to one visitor and is not safe for concurrent use.
// Handlers rebuild it from a Snapshot on every request.
package formflow

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/dalemusser/orsonvision/internal/domain/models"
)

// State is the controller's lifecycle position.
type State int

const (
	Editing State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

// SubmitFunc delivers completed form data somewhere (database, mail, API).
type SubmitFunc func(ctx context.Context, data FormData) error

// DefaultSimulatedDelay is used by Submit when no SubmitFunc is given.
const DefaultSimulatedDelay = time.Second

// ErrNotEditing is returned by Submit when the form is already submitting
// or has been submitted.
var ErrNotEditing = errors.New("formflow: form is not being edited")

// ErrInvalid is returned by Submit when validation stopped the submission.
var ErrInvalid = errors.New("formflow: form has validation errors")

// Controller is the state machine for one form.
type Controller struct {
	def    Definition
	step   int
	state  State
	data   FormData
	errors FormErrors

	// SimulatedDelay is how long Submit waits when called with a nil
	// SubmitFunc.
	SimulatedDelay time.Duration

	// OnSubmitted, if set, is called once with the submitted data after a
	// successful Submit.
	OnSubmitted func(FormData)
}

// New returns a controller editing step 1 with empty data.
func New(def Definition) *Controller {
	return &Controller{
		def:            def,
		step:           1,
		state:          Editing,
		data:           FormData{Values: map[Field]string{}},
		errors:         FormErrors{},
		SimulatedDelay: DefaultSimulatedDelay,
	}
}

func (c *Controller) Definition() Definition { return c.def }
func (c *Controller) Step() int              { return c.step }
func (c *Controller) StepCount() int         { return c.def.StepCount() }
func (c *Controller) State() State           { return c.state }
func (c *Controller) IsFirstStep() bool      { return c.step == 1 }
func (c *Controller) IsLastStep() bool       { return c.step == c.lastStep() }
func (c *Controller) IsSubmitting() bool     { return c.state == Submitting }
func (c *Controller) IsSubmitted() bool      { return c.state == Submitted }

// CurrentStep returns the definition of the active step.
func (c *Controller) CurrentStep() StepDef {
	return c.def.Steps[c.step-1]
}

// Data returns a copy of the form data.
func (c *Controller) Data() FormData { return c.data.Clone() }

// Errors returns a copy of the errors currently on display.
func (c *Controller) Errors() FormErrors { return maps.Clone(c.errors) }

func (c *Controller) lastStep() int {
	if n := c.def.StepCount(); n > 0 {
		return n
	}
	return 1
}

// Set stores a field value. Ignored unless the form is being edited.
func (c *Controller) Set(f Field, v string) {
	if c.state != Editing {
		return
	}
	if c.data.Values == nil {
		c.data.Values = map[Field]string{}
	}
	c.data.Values[f] = v
}

// AddFile attaches an uploaded file. Ignored unless the form is being edited.
func (c *Controller) AddFile(a models.Attachment) {
	if c.state != Editing {
		return
	}
	c.data.Files = append(c.data.Files, a)
}

// ValidateStep checks only the fields declared for step. Steps outside the
// definition have no rules and yield no errors.
func (c *Controller) ValidateStep(step int) FormErrors {
	if step < 1 || step > c.def.StepCount() {
		return FormErrors{}
	}
	return validateRules(c.def.Steps[step-1].Rules, c.data)
}

// Advance validates the active step. On success it moves forward (never
// past the last step) and clears displayed errors; otherwise the errors are
// displayed and the step is unchanged.
func (c *Controller) Advance() bool {
	if c.state != Editing {
		return false
	}
	errs := c.ValidateStep(c.step)
	c.errors = errs
	if !errs.Empty() {
		return false
	}
	if c.step < c.lastStep() {
		c.step++
	}
	return true
}

// Retreat moves back one step without validating, never below step 1.
func (c *Controller) Retreat() {
	if c.state != Editing {
		return
	}
	if c.step > 1 {
		c.step--
	}
	c.errors = FormErrors{}
}

// Submit validates the final step, then runs submit (or a simulated delay when
// submit is nil). On success the state becomes Submitted and OnSubmitted is
// called. On failure the form returns to editing its last step with the
// generic submit message, and the cause is returned for logging.
func (c *Controller) Submit(ctx context.Context, submit SubmitFunc) error {
	if c.state != Editing {
		return ErrNotEditing
	}
	// Earlier steps were checked by Advance on the way here.
	last := c.lastStep()
	if errs := c.ValidateStep(last); !errs.Empty() {
		c.step = last
		c.errors = errs
		return ErrInvalid
	}

	c.state = Submitting
	c.errors = FormErrors{}

	var err error
	if submit != nil {
		err = submit(ctx, c.data.Clone())
	} else {
		err = simulate(ctx, c.SimulatedDelay)
	}
	if err != nil {
		c.state = Editing
		c.step = c.lastStep()
		c.errors = FormErrors{SubmitErrorKey: SubmitErrorMessage}
		return err
	}

	c.state = Submitted
	if c.OnSubmitted != nil {
		c.OnSubmitted(c.data.Clone())
	}
	return nil
}

func simulate(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset clears all data and returns to editing step 1 ("send another").
func (c *Controller) Reset() {
	c.step = 1
	c.state = Editing
	c.data = FormData{Values: map[Field]string{}}
	c.errors = FormErrors{}
}
