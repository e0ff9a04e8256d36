package core

import (
	"errors"
	"log/slog"
)

var (
	ErrEndOfBuffer          = errors.New("end of buffer")
	ErrStartOfBuffer        = errors.New("start of buffer")
	ErrEndOfLine            = errors.New("end of line")
	ErrStartOfLine          = errors.New("start of line")
	ErrInvalidPosition      = errors.New("invalid position")
	ErrInvalidMode          = errors.New("invalid mode")
	ErrNoResults            = errors.New("no search results")
	ErrNoSelection          = errors.New("no note selected")
	ErrNoNoteOpen           = errors.New("no note open")
	ErrInvalidNoteName      = errors.New("invalid note name")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

type ErrorId int

const (
	ErrEndOfBufferId ErrorId = iota
	ErrStartOfBufferId
	ErrEndOfLineId
	ErrStartOfLineId
	ErrInvalidPositionId
	ErrInvalidModeId
	ErrNoResultsId
	ErrNoSelectionId
	ErrNoNoteOpenId
	ErrInvalidNoteNameId
	ErrFailedToListId
	ErrFailedToReadId
	ErrFailedToSaveId
	ErrFailedToCreateId
	ErrCopyFailedId
	ErrPasteFailedId
)

// EditorError pairs an error with the id consumers use to classify it.
type EditorError struct {
	id  ErrorId
	err error
}

func (e *EditorError) ID() ErrorId { return e.id }

func (e *EditorError) Error() error { return e.err }

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		e.logger.Warn("signal channel is full, dropping error signal", slog.Any("error", err))
	}
}

var errorIds = map[error]ErrorId{
	ErrEndOfBuffer:     ErrEndOfBufferId,
	ErrStartOfBuffer:   ErrStartOfBufferId,
	ErrEndOfLine:       ErrEndOfLineId,
	ErrStartOfLine:     ErrStartOfLineId,
	ErrInvalidPosition: ErrInvalidPositionId,
	ErrInvalidMode:     ErrInvalidModeId,
	ErrNoResults:       ErrNoResultsId,
	ErrNoSelection:     ErrNoSelectionId,
	ErrNoNoteOpen:      ErrNoNoteOpenId,
	ErrInvalidNoteName: ErrInvalidNoteNameId,
}

// newEditorError classifies err by the sentinel it wraps. It returns nil for a
// nil err.
func newEditorError(err error) *EditorError {
	if err == nil {
		return nil
	}
	for sentinel, id := range errorIds {
		if errors.Is(err, sentinel) {
			return &EditorError{id: id, err: err}
		}
	}
	return &EditorError{id: ErrInvalidPositionId, err: err}
}
