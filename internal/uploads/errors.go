package uploads

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies upload failures at the source, so callers map a kind
// to a user-facing message instead of matching substrings of error text.
type ErrorKind string

const (
	KindStorage      ErrorKind = "storage"
	KindNetwork      ErrorKind = "network"
	KindQuota        ErrorKind = "quota"
	KindUnauthorized ErrorKind = "unauthorized"
	KindCORS         ErrorKind = "cors"
	KindCanceled     ErrorKind = "canceled"
	KindUnknown      ErrorKind = "unknown"
)

// Error is an upload failure tagged with its kind.
type Error struct {
	Kind   ErrorKind
	Detail error
}

func (e *Error) Error() string {
	if e.Detail == nil {
		return fmt.Sprintf("upload failed (%s)", e.Kind)
	}
	return fmt.Sprintf("upload failed (%s): %v", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Detail
}

// NewError wraps detail with a kind.
func NewError(kind ErrorKind, detail error) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// KindOf extracts the kind from an error chain, KindUnknown if untagged.
func KindOf(err error) ErrorKind {
	var uploadErr *Error
	if errors.As(err, &uploadErr) {
		return uploadErr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	return KindUnknown
}

// IsCancellation reports whether the failure is a user cancellation or
// timeout, which callers treat as a benign no-op rather than an error.
func IsCancellation(err error) bool {
	return KindOf(err) == KindCanceled
}

// UserMessage renders a kind as the message shown to the user.
func UserMessage(kind ErrorKind) string {
	switch kind {
	case KindStorage:
		return "Image storage is currently unavailable. Please try again later."
	case KindNetwork:
		return "Network connection lost while uploading. Check your connection and try again."
	case KindQuota:
		return "Storage quota exceeded. Remove unused images and try again."
	case KindUnauthorized:
		return "You are not authorized to upload images."
	case KindCORS:
		return "Upload was blocked by browser security policy. Please contact support."
	default:
		return "Image upload failed. Please try again."
	}
}
