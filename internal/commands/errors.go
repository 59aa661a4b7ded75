package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
)

type problemJSON struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// problems flattens criterio field errors into path/message pairs. Other
// errors become a single pathless problem.
func problems(err error) []problemJSON {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []problemJSON{{Message: err.Error()}}
	}
	out := make([]problemJSON, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, problemJSON{Path: fe.Field, Message: fe.Err.Error()})
	}
	return out
}

// writeErrors prints one problem per line.
func writeErrors(w io.Writer, err error) {
	for _, p := range problems(err) {
		if p.Path == "" {
			fmt.Fprintf(w, "  %s\n", p.Message)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", p.Path, p.Message)
	}
}
