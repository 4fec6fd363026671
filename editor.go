package assetbook

import "context"

// EditState is the state of the Editor.
type EditState int

const (
	Closed EditState = iota
	Editing
)

func (s EditState) String() string {
	if s == Editing {
		return "editing"
	}
	return "closed"
}

// Editor is the edit form of a Session.
//
//	Closed  --Open-->   Editing (form filled from the row snapshot)
//	Editing --Submit--> Closed and cache refreshed, or Editing on failure
//	Editing --Cancel--> Closed, form reset to defaults
//
// It is not safe for concurrent use.
type Editor struct {
	session *Session
	state   EditState
	id      ID
	form    Form
}

func (e *Editor) State() EditState { return e.state }

// ID returns the id of the asset being edited.
func (e *Editor) ID() ID { return e.id }

// Form returns a copy of the form.
func (e *Editor) Form() Form { return e.form }

// Open starts editing a. The form is filled from a as given, the asset is
// not fetched again.
func (e *Editor) Open(a Asset) {
	e.state = Editing
	e.id = a.ID
	e.form = FormOf(a)
}

// Set changes a form field.
func (e *Editor) Set(field, value string) error {
	if e.state != Editing {
		return ErrNotEditing
	}
	return e.form.Set(field, value)
}

// Submit sends the form as a full replacement of the edited asset. On
// success the editor closes and the collection is fetched again. On failure
// it stays open with the form untouched.
func (e *Editor) Submit(ctx context.Context) error {
	if e.state != Editing {
		return ErrNotEditing
	}
	in, err := e.form.Input()
	if err != nil {
		e.session.notifier.Error(err)
		return err
	}
	if _, err := e.session.Update(ctx, e.id, in); err != nil {
		e.session.notifier.Error(err)
		return err
	}
	e.session.notifier.Notify(MsgUpdated, Success)
	e.Cancel()
	return e.session.FetchAll(ctx)
}

// Cancel closes the editor and resets the form to its defaults.
func (e *Editor) Cancel() {
	e.state = Closed
	e.id = ""
	e.form = DefaultForm()
}
