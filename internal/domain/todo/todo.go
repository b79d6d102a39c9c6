// Package todo defines the Todo entity: a validated, immutable task item.
package todo

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
)

// Params holds the raw attributes a Todo is constructed from.
// Completed defaults to false when omitted.
type Params struct {
	ID        string
	Title     string
	Completed bool
}

// Todo represents one task. Values are only obtainable through New, so every
// Todo in the system has a non-empty ID and a trimmed, non-empty Title.
// Fields are unexported to keep a constructed Todo immutable.
type Todo struct {
	id        string
	title     string
	completed bool
}

// New validates p and returns the Todo it describes. The title is stored
// trimmed. Returns a *domain.ValidationError (wrapping domain.ErrValidation)
// keyed by "id" and/or "title" when p is invalid.
func New(p Params) (Todo, error) {
	t := Todo{
		id:        p.ID,
		title:     TrimTitle(p.Title),
		completed: p.Completed,
	}
	if err := t.Validate(); err != nil {
		return Todo{}, err
	}
	return t, nil
}

// TrimTitle strips leading and trailing white space, byte order marks
// included.
func TrimTitle(s string) string {
	return strings.TrimFunc(s, isTitleSpace)
}

func isTitleSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ID returns the externally generated identifier.
func (t Todo) ID() string { return t.id }

// Title returns the trimmed title.
func (t Todo) Title() string { return t.title }

// Completed reports whether the task is done.
func (t Todo) Completed() bool { return t.completed }

// Equal reports whether t and other have the same attributes.
func (t Todo) Equal(other Todo) bool {
	return t == other
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. The zero Todo is invalid.
func (t Todo) Validate() error {
	fields := make(map[string]string)

	switch {
	case t.id == "":
		fields["id"] = domain.MsgRequired
	case !utf8.ValidString(t.id):
		fields["id"] = domain.MsgInvalidUTF8
	}
	switch {
	case TrimTitle(t.title) == "":
		fields["title"] = domain.MsgRequired
	case !utf8.ValidString(t.title):
		fields["title"] = domain.MsgInvalidUTF8
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
