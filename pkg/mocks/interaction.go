package mocks

import (
	"github.com/user/timelapse/pkg/ports"
)

// Prompter is a mock implementation of ports.Prompter.
type Prompter struct {
	Answer      bool
	Err         error
	ConfirmFunc func(question string) (bool, error)

	Questions []string
}

func (m *Prompter) Confirm(question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(question)
	}
	return m.Answer, m.Err
}

// ProgressObserver records progress notifications.
type ProgressObserver struct {
	Total    int
	Advances int
	Started  int
	Finished int
}

func (m *ProgressObserver) Start(total int) {
	m.Started++
	m.Total = total
}

func (m *ProgressObserver) Advance() { m.Advances++ }

func (m *ProgressObserver) Finish() { m.Finished++ }

var (
	_ ports.Prompter         = (*Prompter)(nil)
	_ ports.ProgressObserver = (*ProgressObserver)(nil)
)
