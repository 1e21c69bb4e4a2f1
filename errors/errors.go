package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseImport Phase = "import" // foreign import entry points
	PhaseCopy   Phase = "copy"   // copy-on-mutate conversion
	PhaseDecode Phase = "decode" // decoding a scene graph out of foreign memory
	PhaseAccess Phase = "access" // handle and entity access
	PhaseFree   Phase = "free"   // release of an owned scene
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation  Kind = "allocation"
	KindNotFound    Kind = "not_found"
	KindInvalidData Kind = "invalid_data"
	KindUnsupported Kind = "unsupported"
	KindOutOfRange  Kind = "out_of_range"
	KindClosed      Kind = "closed"
	KindIO          Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Entity string // entity kind involved ("mesh", "node", ...), if any
	File   string // source file being imported, if any
	Detail string
	Index  int // entity index involved; -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Entity != "" {
		b.WriteString(" at ")
		b.WriteString(e.Entity)
		if e.Index >= 0 {
			fmt.Fprintf(&b, "[%d]", e.Index)
		}
	}

	if e.File != "" {
		b.WriteString(" (")
		b.WriteString(e.File)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Index: -1,
		},
	}
}

// Entity sets the entity kind involved
func (b *Builder) Entity(kind string) *Builder {
	b.err.Entity = kind
	return b
}

// Index sets the entity index involved
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// File sets the source file being imported
func (b *Builder) File(path string) *Builder {
	b.err.File = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %s", what),
		Index:  -1,
	}
}

// OutOfRange creates an out of range error
func OutOfRange(phase Phase, entity string, index, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Entity: entity,
		Index:  index,
		Detail: fmt.Sprintf("index %d out of range (count %d)", index, count),
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, file string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindNotFound,
		File:  file,
		Index: -1,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
		Index:  -1,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
		Index:  -1,
	}
}

// Closed creates an error for operations on a released handle
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "scene handle already closed",
		Index:  -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Index:  -1,
	}
}
