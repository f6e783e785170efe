package pipeline

import "context"

// Stage names a point in the document pipeline where registered hooks may
// mutate in-flight content.
type Stage string

// Pipeline stages, in firing order.
const (
	StageFileLoad Stage = "fileload" // raw file content, before front-matter handling
	StageMarkdown Stage = "markdown" // markdown body, after front-matter extraction
	StageHTML     Stage = "html"     // converted HTML, before token rendering
)

// FileContext identifies the document a hook is operating on. It is
// threaded explicitly through every stage so per-file processing can run
// concurrently without shared state.
type FileContext struct {
	// Path is the absolute path of the source file.
	Path string
	// Dir is the directory containing the source file, used for
	// relative link resolution.
	Dir string
}

// Hook mutates stage content for a single file. It receives the current
// payload and returns the replacement; returning the payload unchanged is
// a no-op.
type Hook func(ctx context.Context, fctx FileContext, payload string) (string, error)

// Hooks maps each stage to an ordered list of mutators. The zero value
// is ready to use: every stage passes content through unchanged.
type Hooks struct {
	registry map[Stage][]Hook
}

// NewHooks returns an empty hook registry.
func NewHooks() *Hooks {
	return &Hooks{registry: make(map[Stage][]Hook)}
}

// Register appends a hook to the stage's list. Hooks fire in
// registration order.
func (h *Hooks) Register(stage Stage, hook Hook) {
	if h.registry == nil {
		h.registry = make(map[Stage][]Hook)
	}
	h.registry[stage] = append(h.registry[stage], hook)
}

// Fire folds the payload through every hook registered for the stage.
// With no hooks registered the payload is returned unchanged.
func (h *Hooks) Fire(ctx context.Context, stage Stage, fctx FileContext, payload string) (string, error) {
	if h == nil {
		return payload, nil
	}
	for _, hook := range h.registry[stage] {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var err error
		payload, err = hook(ctx, fctx, payload)
		if err != nil {
			return "", err
		}
	}
	return payload, nil
}
