package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Cause classifies why an entry was excluded from the catalog
type Cause string

// Rejection causes
const (
	// CauseMissingField marks a required manifest or header field that is
	// absent or empty
	CauseMissingField Cause = "missing_field"
	// CauseDuplicateName marks a plugin or skill name collision; the
	// first-discovered entry in lexicographic path order wins
	CauseDuplicateName Cause = "duplicate_name"
	// CauseUnreadablePath marks a file that exists but could not be parsed
	// as the expected format
	CauseUnreadablePath Cause = "unreadable_path"
)

// Rejection records a single excluded entry with its path and cause.
// Callers decide whether any rejection is fatal for their use case.
type Rejection struct {
	Path  string
	Cause Cause
	Err   error
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s: %s (%s)", r.Path, r.Err, r.Cause)
}

// Rejections is the ordered list of rejection records from a load
type Rejections []Rejection

// Err aggregates all rejections into a single error, or nil when the load
// was clean. Useful for callers that treat any rejection as fatal.
func (rs Rejections) Err() error {
	var result *multierror.Error
	for _, r := range rs {
		result = multierror.Append(result, errors.Wrap(r.Err, r.Path))
	}
	return result.ErrorOrNil()
}

// ByCause returns the rejections matching the given cause
func (rs Rejections) ByCause(cause Cause) Rejections {
	var out Rejections
	for _, r := range rs {
		if r.Cause == cause {
			out = append(out, r)
		}
	}
	return out
}

// causeError ties an underlying error to its rejection cause
type causeError struct {
	cause Cause
	err   error
}

func (e *causeError) Error() string { return e.err.Error() }

func (e *causeError) Unwrap() error { return e.err }

func missingFieldError(field string) error {
	return &causeError{
		cause: CauseMissingField,
		err:   errors.Errorf("missing required field %q", field),
	}
}

func duplicateNameError(kind, name string) error {
	return &causeError{
		cause: CauseDuplicateName,
		err:   errors.Errorf("duplicate %s name %q", kind, name),
	}
}

func unreadableError(err error) error {
	return &causeError{
		cause: CauseUnreadablePath,
		err:   err,
	}
}

// CauseOf extracts the rejection cause from an error produced during a
// load. Unclassified errors fall back to CauseUnreadablePath.
func CauseOf(err error) Cause {
	var ce *causeError
	if errors.As(err, &ce) {
		return ce.cause
	}
	return CauseUnreadablePath
}
