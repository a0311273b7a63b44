package summarizer

// Formatter renders a run Summary for a report file.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc lets a plain function render summaries, e.g. a one-line status for tests or logs.
type FormatFunc func(summary *Summary) string

func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}
