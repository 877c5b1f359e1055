// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"fmt"
	"strings"
	"unicode"
)

// wcCommand reports line, word, and non-space character counts per file.
type wcCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newWcCommand())
}

func newWcCommand() *wcCommand {
	return &wcCommand{
		baseCommand: baseCommand{
			name:    "wc",
			usage:   "wc <file>...",
			summary: "count lines, words, and non-space characters",
		},
	}
}

// Run executes the wc command.
func (c *wcCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return usageError(c.name, "wc: missing argument")
	}

	lines := make([]string, 0, len(args))
	for _, token := range args {
		data, cerr := readRegularFile(s, c.name, token)
		if cerr != nil {
			return partialFailure(lines, cerr)
		}
		counts := countText(string(data))
		lines = append(lines, fmt.Sprintf("%d %d %d %s", counts.lines, counts.words, counts.chars, token))
	}
	return successLines(lines)
}

type textCounts struct {
	lines int
	words int
	chars int
}

// countText counts lines the way a line reader sees them (a final line
// without a newline still counts), whitespace-separated words, and
// characters that are not whitespace.
func countText(text string) textCounts {
	var tc textCounts
	tc.lines = strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		tc.lines++
	}
	tc.words = len(strings.Fields(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			tc.chars++
		}
	}
	return tc
}
