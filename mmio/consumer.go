package mmio

import "fmt"

// Consumer is the error/warning sink a Read call reports every diagnostic
// to. A diagnostic reported through Error always aborts the read, whatever
// Error returns. Warning returns
// a non-nil error to abort the read immediately; a nil return lets Read
// continue past the condition that triggered the call.
type Consumer interface {
	Error(msg string) error
	Warning(msg string) error
}

// ThrowingConsumer is the default consumer: both Error and Warning abort
// the read (Warning forwards straight to Error).
type ThrowingConsumer struct{}

func (ThrowingConsumer) Error(msg string) error {
	return fmt.Errorf("mmio: %s: %w", msg, ErrIoError)
}

func (c ThrowingConsumer) Warning(msg string) error {
	return c.Error(msg)
}

// IgnoringConsumer discards every diagnostic and never aborts.
type IgnoringConsumer struct{}

func (IgnoringConsumer) Error(string) error   { return nil }
func (IgnoringConsumer) Warning(string) error { return nil }
