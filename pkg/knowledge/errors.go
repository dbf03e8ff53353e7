package knowledge

import "fmt"

// LoadError signals that the knowledge base source could not be turned into a
// usable store (missing file, invalid JSON, wrong top-level shape). Individual
// malformed entries never produce a LoadError; they are skipped with a warning.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("knowledge base %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("knowledge base %q could not be loaded", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
