// Package session coordinates asynchronous fuzzy file-path searches. A
// session owns a mutable search root and runs at most one enumeration at a
// time; each new request supersedes the previous one, and only the newest
// request's outcome is ever surfaced.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Cyclone1070/finch/internal/config"
	"github.com/Cyclone1070/finch/internal/enumerate"
	"github.com/Cyclone1070/finch/internal/rank"
	"github.com/Cyclone1070/finch/internal/workspace"
)

// Session runs searches against a registry-held root. Safe for concurrent
// use; independent sessions never share state.
type Session struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc

	reg    *workspace.Registry
	enum   Enumerator
	cfg    config.SearchConfig
	scorer rank.Scorer
}

// New creates a session searching from the registry's current root with the
// given validated search settings.
func New(reg *workspace.Registry, enum Enumerator, cfg config.SearchConfig) *Session {
	return &Session{reg: reg, enum: enum, cfg: cfg}
}

// UseScorer installs an optional re-ranking scorer. A nil scorer keeps the
// enumeration tool's native output order. Not safe to call concurrently with
// Search.
func (s *Session) UseScorer(sc rank.Scorer) {
	s.scorer = sc
}

// SetRoot validates and swaps the search root. An empty path resets to the
// session's working directory. In-flight requests keep the root they captured
// at submission.
func (s *Session) SetRoot(path string) (string, error) {
	return s.reg.Set(path)
}

// Root returns the active search root.
func (s *Session) Root() string {
	return s.reg.Current()
}

// Search submits a request and returns a channel that yields at most one
// Result. The previous request, if still running, is cancelled and its
// process killed; its channel is closed without a value. The search root is
// captured at submission, so a concurrent SetRoot does not affect this
// request.
func (s *Session) Search(ctx context.Context, req Request) <-chan Result {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	root := s.reg.Current()
	s.mu.Unlock()

	slog.Debug("search submitted",
		"generation", gen,
		"root", root,
		"query", req.Query,
	)

	out := make(chan Result, 1)
	go s.run(runCtx, cancel, gen, root, req, out)
	return out
}

func (s *Session) run(ctx context.Context, cancel context.CancelFunc, gen uint64, root string, req Request, out chan Result) {
	defer cancel()

	refDir := req.ReferenceDir
	if refDir == "" {
		refDir = root
	}

	stream, err := s.enum.Enumerate(ctx, root, req.Query, enumerate.OptionsFrom(s.cfg))
	if err != nil {
		s.deliver(gen, out, Result{Err: err})
		return
	}

	acc := rank.NewAccumulator(root, refDir, s.cfg.MaxResults)
	for stream.Scan() {
		if ctx.Err() != nil {
			stream.Cancel()
			break
		}
		if !acc.Add(stream.Text()) {
			// Cap reached; stop the tool instead of draining it.
			stream.Cancel()
			break
		}
	}
	closeErr := stream.Close()

	if ctx.Err() != nil {
		s.deliver(gen, out, Result{Err: ctx.Err()})
		return
	}
	if closeErr != nil {
		s.deliver(gen, out, Result{Err: closeErr})
		return
	}

	candidates := acc.Candidates()
	rank.Order(candidates, req.Query, s.scorer)
	s.deliver(gen, out, Result{Candidates: candidates})
}

// deliver surfaces the result only if the request is still the newest one.
// Superseded channels are closed without a value, so receivers observe
// `_, ok := <-ch` with ok == false. The lock is held across the send so a
// concurrent Search cannot supersede this request between the staleness
// check and the delivery; out is buffered, so the send never blocks.
func (s *Session) deliver(gen uint64, out chan Result, res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		slog.Debug("search superseded", "generation", gen)
		close(out)
		return
	}
	out <- res
	close(out)
}
