package codegen

import (
	"fmt"

	"github.com/agentic-research/faceplate/internal/model"
)

// GenerationError reports an element a generator cannot render. It is
// raised by panic from inside the generators and recovered by Guard.
type GenerationError struct {
	Artifact  string // "html", "css", "bindings"
	Kind      model.Kind
	ElementID string
	Reason    string
}

func (e *GenerationError) Error() string {
	if e.ElementID == "" {
		return fmt.Sprintf("generate %s: %s", e.Artifact, e.Reason)
	}
	return fmt.Sprintf("generate %s: element %q (%s): %s", e.Artifact, e.ElementID, e.Kind, e.Reason)
}

func unhandled(artifact string, el model.Element) {
	panic(&GenerationError{
		Artifact:  artifact,
		Kind:      el.Kind(),
		ElementID: el.Base().ID,
		Reason:    fmt.Sprintf("no %s generator for element type %T", artifact, el),
	})
}

// Guard runs fn and converts any panic raised inside it into an error.
// A GenerationError is returned as is; other panic values are wrapped.
func Guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ge, ok := r.(*GenerationError); ok {
			err = ge
			return
		}
		err = &GenerationError{Artifact: "bundle", Reason: fmt.Sprint(r)}
	}()
	return fn()
}
