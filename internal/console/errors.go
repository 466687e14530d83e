package console

import "fmt"

// FetchError reports a failed route list load. The previously fetched
// collection stays in place.
type FetchError struct{ Err error }

func (e *FetchError) Error() string { return fmt.Sprintf("fetch routes: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError blocks a submission. The reason is user-facing text.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

// SubmissionError reports a create/update that failed in transport. The
// draft is preserved so nothing the user typed is lost.
type SubmissionError struct{ Err error }

func (e *SubmissionError) Error() string { return fmt.Sprintf("submit route: %v", e.Err) }
func (e *SubmissionError) Unwrap() error { return e.Err }

// DeletionError reports a failed delete. The displayed list stays stale
// until the next successful load; there is no retry.
type DeletionError struct{ Err error }

func (e *DeletionError) Error() string { return fmt.Sprintf("delete route: %v", e.Err) }
func (e *DeletionError) Unwrap() error { return e.Err }
