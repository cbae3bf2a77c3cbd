package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	writtenBannerFormat = "Project print written to %s"
	warningPrefix       = "Warning: "
)

// reporter prints the human-facing run outcome. Color is used only when the
// writer is a terminal and NO_COLOR is not set.
type reporter struct {
	writer       io.Writer
	colorEnabled bool
}

func newReporter(writer io.Writer) *reporter {
	return &reporter{writer: writer, colorEnabled: isTerminal(writer) && !color.NoColor}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

func (r *reporter) paint(text string, attributes ...color.Attribute) string {
	if !r.colorEnabled {
		return text
	}
	painter := color.New(attributes...)
	painter.EnableColor()
	return painter.Sprint(text)
}

func (r *reporter) written(outputPath string, summaryLine string) {
	fmt.Fprintln(r.writer, r.paint(fmt.Sprintf(writtenBannerFormat, outputPath), color.FgGreen, color.Bold))
	fmt.Fprintln(r.writer, r.paint(summaryLine, color.FgCyan))
}

func (r *reporter) warning(message string) {
	fmt.Fprintln(r.writer, r.paint(warningPrefix+message, color.FgYellow))
}
