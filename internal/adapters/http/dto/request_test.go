package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-core/internal/domain"
)

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.CreateTodoRequest
		wantErr bool
	}{
		{name: "valid title", req: dto.CreateTodoRequest{Title: "Buy milk"}},
		{name: "padded title", req: dto.CreateTodoRequest{Title: "  Buy milk  "}},
		{name: "empty title", req: dto.CreateTodoRequest{Title: ""}, wantErr: true},
		{name: "whitespace title", req: dto.CreateTodoRequest{Title: " \t\n "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if verr.Fields["title"] != domain.MsgRequired {
				t.Errorf("Fields[title] = %q, want %q", verr.Fields["title"], domain.MsgRequired)
			}
		})
	}
}
