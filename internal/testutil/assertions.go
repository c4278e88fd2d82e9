package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertTaskResult checks that the run printed "Task <n>: <want>" as a
// complete line.
func AssertTaskResult(t *testing.T, result *HarnessResult, task int, want int) {
	t.Helper()

	line := fmt.Sprintf("Task %d: %d", task, want)
	for _, got := range strings.Split(result.Output, "\n") {
		if got == line {
			return
		}
	}
	require.Failf(t, "task result not printed", "expected line %q in output:\n%s", line, result.Output)
}
