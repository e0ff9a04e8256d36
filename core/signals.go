package core

type Signal any

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type SaveSignal struct {
	path string
}

func (s SaveSignal) Value() string {
	return s.path
}

type CreateSignal struct {
	path string
}

func (c CreateSignal) Value() string {
	return c.path
}

type FocusSignal struct {
	focus Focus
}

func (f FocusSignal) Value() Focus {
	return f.focus
}

type QuitSignal struct{}

type ErrorSignal EditorError

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
