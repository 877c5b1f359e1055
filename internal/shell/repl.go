// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultPrompt is printed before each line when the prompt is shown.
	DefaultPrompt = "> "

	bannerStart = "Type 'exit' to quit."
	bannerEnd   = "Program exited."
)

type (
	// Styles decorates loop output. The zero value renders plain text.
	Styles struct {
		Prompt  lipgloss.Style
		Failure lipgloss.Style
		Banner  lipgloss.Style
	}

	// LoopOptions configures a Loop.
	LoopOptions struct {
		In  io.Reader
		Out io.Writer

		// Prompt defaults to DefaultPrompt.
		Prompt string
		// ShowPrompt prints Prompt before every read.
		ShowPrompt bool
		// Banner prints the greeting and farewell lines.
		Banner bool
		// Styles is applied when non-nil.
		Styles *Styles
	}

	// Loop reads lines, dispatches them, and prints each result until exit
	// or end of input.
	Loop struct {
		dispatcher *Dispatcher
		in         *bufio.Reader
		out        io.Writer
		prompt     string
		showPrompt bool
		banner     bool
		styles     *Styles
	}
)

// NewLoop creates a Loop driving d.
func NewLoop(d *Dispatcher, opts LoopOptions) *Loop {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	return &Loop{
		dispatcher: d,
		in:         bufio.NewReader(opts.In),
		out:        opts.Out,
		prompt:     opts.Prompt,
		showPrompt: opts.ShowPrompt,
		banner:     opts.Banner,
		styles:     opts.Styles,
	}
}

// Run processes input until the exit command, end of input, or ctx is done.
// Command failures are printed and never end the loop; only a read failure
// or ctx cancellation is returned.
func (l *Loop) Run(ctx context.Context) error {
	if l.banner {
		l.println(l.render(bannerStart, l.bannerStyle()))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.showPrompt {
			_, _ = fmt.Fprint(l.out, l.render(l.prompt, l.promptStyle()))
		}

		line, err := l.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := err != nil

		if line != "" {
			res := l.dispatcher.Execute(strings.TrimRight(line, "\r\n"))
			l.print(res)
			if res.Exit {
				break
			}
		}
		if eof {
			if l.showPrompt && line == "" {
				l.println("")
			}
			break
		}
	}

	if l.banner {
		l.println(l.render(bannerEnd, l.bannerStyle()))
	}
	return nil
}

func (l *Loop) print(res Result) {
	text := res.Text()
	if text == "" {
		return
	}
	if !res.Failed() || l.styles == nil {
		l.println(text)
		return
	}

	// Styled per line so multi-line reports are not padded into a block.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = l.styles.Failure.Render(line)
	}
	l.println(strings.Join(lines, "\n"))
}

func (l *Loop) println(s string) {
	_, _ = fmt.Fprintln(l.out, s)
}

func (l *Loop) render(s string, style *lipgloss.Style) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}

func (l *Loop) promptStyle() *lipgloss.Style {
	if l.styles == nil {
		return nil
	}
	return &l.styles.Prompt
}

func (l *Loop) bannerStyle() *lipgloss.Style {
	if l.styles == nil {
		return nil
	}
	return &l.styles.Banner
}
