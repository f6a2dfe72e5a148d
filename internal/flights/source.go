package flights

import (
	"context"
	"errors"
	"fmt"
)

// Source fetches the ordered flight list for a view.
type Source interface {
	Fetch(ctx context.Context, view ViewMode) ([]Record, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, view ViewMode) ([]Record, error)

// Fetch calls f(ctx, view).
func (f SourceFunc) Fetch(ctx context.Context, view ViewMode) ([]Record, error) {
	return f(ctx, view)
}

// FetchError is the single failure kind at the source boundary. Transport
// failures, bad status codes, malformed payloads and timeouts all map here.
type FetchError struct {
	View ViewMode
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s failed", e.View)
	}
	return fmt.Sprintf("fetch %s: %v", e.View, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchError(view ViewMode, err error) error {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{View: view, Err: err}
}
