package diff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Render writes a human-readable change list comparing leftEnv (left)
// to rightEnv (right).
func Render(w io.Writer, leftEnv, rightEnv string, changes []Change) {
	if len(changes) == 0 {
		fmt.Fprintln(w, color.YellowString("No differences found between '%s' and '%s'.", leftEnv, rightEnv))
		return
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "Differences between '%s' (left) and '%s' (right):\n", leftEnv, rightEnv)

	for _, c := range changes {
		switch c.Op {
		case OpModified:
			fmt.Fprintf(w, "%s from %s to %s\n",
				color.YellowString("~ Modified: %s", c.Path),
				color.RedString("%v", c.Old),
				color.GreenString("%v", c.New))
		case OpAdded:
			fmt.Fprintln(w, color.GreenString("+ Added:    %s with value %v", c.Path, c.New))
		case OpRemoved:
			fmt.Fprintln(w, color.RedString("- Removed:  %s with value %v", c.Path, c.Old))
		}
	}
}
