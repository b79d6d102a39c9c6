// Package idgen provides ports.IDGenerator implementations.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// UUID returns a random (version 4) UUID string. It is the production
// generator for todo ids.
func UUID() string {
	return uuid.NewString()
}

// Sequence returns a deterministic generator yielding prefix-1, prefix-2, ...
// It is safe for concurrent use.
func Sequence(prefix string) ports.IDGenerator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
