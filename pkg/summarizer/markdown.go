package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Timelapse Summary"))

	if s.Error != "" {
		status := t("Failed")
		if s.Video.Partial {
			status = t("Partial")
		}
		fmt.Fprintf(&b, "> **%s**: %s\n\n", status, s.Error)
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	writeTable(&b, t,
		row{t("Directory"), code(s.Input.Dir)},
		row{t("Images"), fmt.Sprintf("%d", s.Input.ImageCount)},
		row{t("Skipped Files"), fmt.Sprintf("%d", s.Input.SkippedFiles)},
	)

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	rows := []row{
		{t("Frame Rate"), fmt.Sprintf("%d fps", s.Settings.FPS)},
		{t("Codec"), s.Settings.Codec},
		{"CRF", fmt.Sprintf("%d", s.Settings.CRF)},
	}
	if s.Settings.Quality != "" {
		rows = append(rows, row{t("Quality"), s.Settings.Quality})
	}
	if s.Settings.Sort != "" {
		rows = append(rows, row{t("Sort Order"), s.Settings.Sort})
	}
	writeTable(&b, t, rows...)

	fmt.Fprintf(&b, "## %s\n\n", t("Video"))
	v := s.Video
	rows = []row{
		{t("Output"), code(v.OutputPath)},
		{t("Frame Size"), fmt.Sprintf("%dx%d", v.Width, v.Height)},
		{t("Frames"), fmt.Sprintf("%d (%d + %d %s)", v.FramesWritten, v.SourceFrames, v.HoldFrames, t("hold"))},
		{t("Duration"), formatDuration(v.DurationMs)},
		{t("File Size"), formatBytes(v.FileSize)},
	}
	if v.Overwrote {
		rows = append(rows, row{t("Overwritten"), t("yes")})
	}
	if v.Partial {
		rows = append(rows, row{t("Partial"), t("yes")})
	}
	writeTable(&b, t, rows...)

	if s.Probe != nil {
		p := s.Probe
		fmt.Fprintf(&b, "## %s\n\n", t("Container"))
		writeTable(&b, t,
			row{t("Codec"), p.Codec},
			row{t("Frame Size"), fmt.Sprintf("%dx%d", p.Width, p.Height)},
			row{t("Frames"), fmt.Sprintf("%d", p.Frames)},
			row{t("Duration"), formatDuration(int(p.DurationMs))},
		)
	}

	fmt.Fprintf(&b, "---\n\n%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		fmt.Fprintf(&b, " (timelapse %s)", f.version)
	}
	b.WriteString("\n")

	return b.String()
}

type row struct {
	label string
	value string
}

func writeTable(b *strings.Builder, t func(string) string, rows ...row) {
	fmt.Fprintf(b, "| %s | %s |\n", t("Item"), t("Value"))
	b.WriteString("|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", r.label, r.value)
	}
	b.WriteString("\n")
}

func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}

func formatDuration(ms int) string {
	if ms < 1000 {
		return fmt.Sprintf("%d ms", ms)
	}
	return fmt.Sprintf("%.2f s", float64(ms)/1000)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
