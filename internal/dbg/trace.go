package dbg

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
)

// Trace prints one colorized step-by-step tracing line to stderr, in the
// same register as the teacher's aurora-colored console dumps: the label
// in cyan, the detail in the default color.
func Trace(label string, detail string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Cyan(label), detail)
}
