// Package assist defines the optional text-generation collaborator used by
// anthology segmentation, plus an Ollama-backed implementation. The core
// pipeline never requires an assistant; everything degrades to the
// deterministic path when none is configured or a call fails.
package assist

import (
	"context"
	"fmt"
)

// TextAssistant produces a best-effort natural-language completion for a
// prompt. Implementations own their transport and timeouts beyond the
// supplied context. Output is untrusted text; callers are responsible for
// filtering it.
type TextAssistant interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Error wraps a failure from an assistant backend with enough context to
// log which backend and operation failed.
type Error struct {
	Backend string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("assist(%s): %s: %v", e.Backend, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
