package shop

import "fmt"

// ErrSessionStart indicates the browser session could not be
// provisioned or launched. Fatal — nothing is collected.
type ErrSessionStart struct {
	Err error
}

func (e ErrSessionStart) Error() string {
	return fmt.Errorf("session start: %w", e.Err).Error()
}

func (e ErrSessionStart) Unwrap() error {
	return e.Err
}

// ErrSessionLost indicates the session died mid-run. Fatal — the run
// aborts and no output document is written.
type ErrSessionLost struct {
	Err error
}

func (e ErrSessionLost) Error() string {
	return fmt.Errorf("session lost: %w", e.Err).Error()
}

func (e ErrSessionLost) Unwrap() error {
	return e.Err
}
