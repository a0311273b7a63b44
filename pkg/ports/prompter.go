package ports

// Prompter asks the user a yes/no question.
type Prompter interface {
	// Confirm returns true only for an affirmative answer.
	Confirm(question string) (bool, error)
}
