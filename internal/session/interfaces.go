package session

import (
	"context"

	"github.com/Cyclone1070/finch/internal/enumerate"
)

// Enumerator starts one filesystem enumeration and exposes its output as a
// cancellable line stream. Satisfied by *enumerate.Enumerator.
type Enumerator interface {
	Enumerate(ctx context.Context, root, query string, opts enumerate.Options) (enumerate.LineStream, error)
}
