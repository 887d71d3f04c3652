package service

import "context"

// TextGenerator completes a single prompt.
//
// An empty completion is returned as "" with a nil error; callers choose the fallback text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
