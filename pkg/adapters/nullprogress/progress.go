// Package nullprogress provides a progress observer that discards updates.
package nullprogress

import "github.com/user/timelapse/pkg/ports"

// Observer ignores all progress notifications.
type Observer struct{}

// New creates a new Observer.
func New() *Observer {
	return &Observer{}
}

func (o *Observer) Start(total int) {}
func (o *Observer) Advance()        {}
func (o *Observer) Finish()         {}

var _ ports.ProgressObserver = (*Observer)(nil)
