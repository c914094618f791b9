package viewstate

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/five82/gallery/internal/rest"
)

// Action is a retry callback. It runs the fetch it is bound to.
type Action func(ctx context.Context)

// PresentableError is the user-facing form of a failure.
type PresentableError struct {
	Header      string
	Description string
	Button      string
	Retry       Action
	// Cause is the error that was presented, kept for logs.
	Cause error
}

// Equal compares the displayed texts only.
func (e PresentableError) Equal(other PresentableError) bool {
	return e.Header == other.Header &&
		e.Description == other.Description &&
		e.Button == other.Button
}

const (
	offlineHeader      = "You are offline!"
	offlineDescription = "Please check your internet connection and try again."
	genericHeader      = "Oops!"
	genericDescription = "Something wrong happened try again."
	retryButton        = "Retry"
)

// Present maps err to display text and binds retry. Offline errors get the
// connectivity message; everything else gets the generic one.
func Present(err error, retry Action) PresentableError {
	pe := PresentableError{
		Header:      genericHeader,
		Description: genericDescription,
		Button:      retryButton,
		Retry:       retry,
		Cause:       err,
	}
	if errors.Is(err, rest.ErrOffline) {
		pe.Header = offlineHeader
		pe.Description = offlineDescription
	}
	return pe
}
