package checkers

import (
	"github.com/grovesocial/grove/pkg/internal/localize"
	"golang.org/x/text/language"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindPermissionDenied
	KindNotFound
	KindAuthenticationFailed
)

// Error is the failure surface of the checker layer. Key is a catalogue key
// from the localize package; the rendered string is returned verbatim to
// clients.
type Error struct {
	Kind ErrorKind
	Key  string
	Args []any
}

func (e *Error) Error() string {
	return localize.Render(language.English, e.Key, e.Args...)
}

// Localize renders the message for the given language tag.
func (e *Error) Localize(tag language.Tag) string {
	return localize.Render(tag, e.Key, e.Args...)
}

func newValidation(key string, args ...any) *Error {
	return &Error{Kind: KindValidation, Key: key, Args: args}
}

func newPermissionDenied(key string, args ...any) *Error {
	return &Error{Kind: KindPermissionDenied, Key: key, Args: args}
}

func newNotFound(key string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Key: key, Args: args}
}

func newAuthenticationFailed(key string, args ...any) *Error {
	return &Error{Kind: KindAuthenticationFailed, Key: key, Args: args}
}
