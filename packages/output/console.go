package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/respec/packages/core/render"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	quiet   bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithQuiet(q bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.quiet = q
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatRun(run *Run) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if !f.quiet {
		title := run.Name
		if title == "" {
			title = run.File
		}
		fmt.Fprintf(f.writer, "\n%s\n\n", bold(title))

		for _, line := range run.Lines {
			fmt.Fprintf(f.writer, "%s\n", colorizeLine(line, green, red, yellow))
		}
	}

	fmt.Fprintf(f.writer, "\nExamples: ")
	if run.Passed > 0 {
		fmt.Fprintf(f.writer, "%s, ", green(fmt.Sprintf("%d passed", run.Passed)))
	}
	if run.Failed > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", run.Failed)))
	}
	if run.Skipped > 0 {
		fmt.Fprintf(f.writer, "%s, ", yellow(fmt.Sprintf("%d skipped", run.Skipped)))
	}
	fmt.Fprintf(f.writer, "%d total\n", run.Total())
	if run.Duration > 0 {
		fmt.Fprintf(f.writer, "Time:     %dms\n", run.Duration.Milliseconds())
	}
	fmt.Fprintf(f.writer, "\n")
}

// colorizeLine colors example glyphs in a rendered line. The core emits
// plain text; color is applied here and only here.
func colorizeLine(line string, green, red, yellow func(a ...interface{}) string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	switch {
	case strings.HasPrefix(trimmed, render.GlyphPassed+" "):
		return indent + green(render.GlyphPassed) + trimmed[len(render.GlyphPassed):]
	case strings.HasPrefix(trimmed, render.GlyphFailed+" "):
		rest := trimmed[len(render.GlyphFailed):]
		return indent + red(render.GlyphFailed+rest)
	case strings.HasPrefix(trimmed, render.GlyphSkipped+" "):
		return indent + yellow(render.GlyphSkipped) + trimmed[len(render.GlyphSkipped):]
	}
	return line
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	if f.quiet {
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("respec"), version)
}
