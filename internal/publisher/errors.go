package publisher

import (
	"errors"
	"fmt"
)

var (
	ErrNoInput   = errors.New("no input for the day")
	ErrLoadState = errors.New("load sent state failed")
	ErrClassify  = errors.New("classifier failed")
	ErrSummarize = errors.New("summarizer failed")
	ErrSend      = errors.New("send failed")
	ErrPersist   = errors.New("persist sent state failed")
)

// StageError says which stage aborted the run and for which posting.
type StageError struct {
	Stage   error
	Link    string
	BaseErr error
}

func (e *StageError) Error() string {
	if e.Link != "" {
		return fmt.Sprintf("%v (link: %s): %v", e.Stage, e.Link, e.BaseErr)
	}
	return fmt.Sprintf("%v: %v", e.Stage, e.BaseErr)
}

func (e *StageError) Unwrap() []error {
	return []error{e.Stage, e.BaseErr}
}

func stageErr(stage error, link string, err error) error {
	return &StageError{Stage: stage, Link: link, BaseErr: err}
}
