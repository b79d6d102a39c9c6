package todo

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("New() error = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		params        Params
		wantTitle     string
		wantCompleted bool
	}{
		{
			name:      "plain title",
			params:    Params{ID: "id-1", Title: "Buy milk"},
			wantTitle: "Buy milk",
		},
		{
			name:      "title is trimmed",
			params:    Params{ID: "id-1", Title: "  Buy milk  "},
			wantTitle: "Buy milk",
		},
		{
			name:      "tabs and newlines are trimmed",
			params:    Params{ID: "id-1", Title: "\t Buy milk\n"},
			wantTitle: "Buy milk",
		},
		{
			name:      "inner whitespace is kept",
			params:    Params{ID: "id-1", Title: "Buy   oat milk"},
			wantTitle: "Buy   oat milk",
		},
		{
			name:          "completed is carried over",
			params:        Params{ID: "id-1", Title: "Done thing", Completed: true},
			wantTitle:     "Done thing",
			wantCompleted: true,
		},
		{
			name:      "byte order marks are trimmed",
			params:    Params{ID: "id-1", Title: "\uFEFF Buy milk\uFEFF"},
			wantTitle: "Buy milk",
		},
		{
			name:      "non-breaking spaces are trimmed",
			params:    Params{ID: "id-1", Title: "\u00a0Buy milk\u3000"},
			wantTitle: "Buy milk",
		},
		{
			name:      "multibyte title is kept",
			params:    Params{ID: "id-1", Title: "café 🥛"},
			wantTitle: "café 🥛",
		},
		{
			name:      "whitespace id is accepted",
			params:    Params{ID: " ", Title: "x"},
			wantTitle: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.params)
			if err != nil {
				t.Fatalf("New() error = %v, want nil", err)
			}
			if got.ID() != tt.params.ID {
				t.Errorf("ID() = %q, want %q", got.ID(), tt.params.ID)
			}
			if got.Title() != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got.Title(), tt.wantTitle)
			}
			if got.Completed() != tt.wantCompleted {
				t.Errorf("Completed() = %v, want %v", got.Completed(), tt.wantCompleted)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() on constructed Todo = %v, want nil", err)
			}
		})
	}
}

func TestNew_CompletedDefaultsToFalse(t *testing.T) {
	t.Parallel()

	got, err := New(Params{ID: "id-1", Title: "Buy milk"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got.Completed() {
		t.Error("Completed() = true, want false by default")
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		params     Params
		wantFields []string
	}{
		{
			name:       "empty title",
			params:     Params{ID: "id-1", Title: ""},
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title",
			params:     Params{ID: "id-1", Title: "   "},
			wantFields: []string{"title"},
		},
		{
			name:       "tab and newline title",
			params:     Params{ID: "id-1", Title: "\t\n"},
			wantFields: []string{"title"},
		},
		{
			name:       "byte order mark only title",
			params:     Params{ID: "id-1", Title: "\uFEFF"},
			wantFields: []string{"title"},
		},
		{
			name:       "invalid UTF-8 title",
			params:     Params{ID: "id-1", Title: "caf\xe9"},
			wantFields: []string{"title"},
		},
		{
			name:       "invalid UTF-8 id",
			params:     Params{ID: "id-\xff", Title: "Buy milk"},
			wantFields: []string{"id"},
		},
		{
			name:       "missing id",
			params:     Params{Title: "Buy milk"},
			wantFields: []string{"id"},
		},
		{
			name:       "missing both",
			params:     Params{},
			wantFields: []string{"id", "title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.params)
			for _, field := range tt.wantFields {
				requireValidationField(t, err, field)
			}
			if got != (Todo{}) {
				t.Errorf("New() returned %+v alongside error, want zero Todo", got)
			}
		})
	}
}

func TestTodo_ZeroValueIsInvalid(t *testing.T) {
	t.Parallel()

	var zero Todo
	requireValidationField(t, zero.Validate(), "id")
	requireValidationField(t, zero.Validate(), "title")
}

func TestTodo_Equal(t *testing.T) {
	t.Parallel()

	a, _ := New(Params{ID: "id-1", Title: " Buy milk "})
	b, _ := New(Params{ID: "id-1", Title: "Buy milk"})
	c, _ := New(Params{ID: "id-2", Title: "Buy milk"})
	d, _ := New(Params{ID: "id-1", Title: "Buy milk", Completed: true})

	if !a.Equal(b) {
		t.Error("a.Equal(b) = false, want true (same attributes after trimming)")
	}
	if a.Equal(c) {
		t.Error("a.Equal(c) = true, want false (different id)")
	}
	if a.Equal(d) {
		t.Error("a.Equal(d) = true, want false (different completed)")
	}
}

func TestNew_ValidationMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		want   map[string]string
	}{
		{
			name:   "blank title",
			params: Params{ID: "id-1", Title: "\uFEFF \t"},
			want:   map[string]string{"title": domain.MsgRequired},
		},
		{
			name:   "invalid UTF-8 in both",
			params: Params{ID: "\xc3", Title: "caf\xe9"},
			want:   map[string]string{"id": domain.MsgInvalidUTF8, "title": domain.MsgInvalidUTF8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.params)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New() error = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.want) {
				t.Errorf("Fields = %v, want %v", verr.Fields, tt.want)
			}
			for field, msg := range tt.want {
				if verr.Fields[field] != msg {
					t.Errorf("Fields[%q] = %q, want %q", field, verr.Fields[field], msg)
				}
			}
		})
	}
}

func TestTrimTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  Buy milk  ":         "Buy milk",
		"\uFEFFBuy milk":       "Buy milk",
		"\uFEFF\u00a0\n":       "",
		"Buy\uFEFFmilk":        "Buy\uFEFFmilk",
		"\u2028Buy milk\u2029": "Buy milk",
	}
	for in, want := range tests {
		if got := TrimTitle(in); got != want {
			t.Errorf("TrimTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
