package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"todo-web/pkg/log"
	"todo-web/pkg/msg"
)

// Sweeper drops expired sessions and reports how many were removed
type Sweeper interface {
	Sweep() int
}

type SessionScheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
}

func NewSessionScheduler(sweeper Sweeper) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), sweeper: sweeper}
}

// InitSessionScheduleTasks registers the sweep on spec and starts the scheduler
func (scheduler *SessionScheduler) InitSessionScheduleTasks(spec string) error {
	if _, err := scheduler.cron.AddFunc(spec, scheduler.SweepExpiredSessions); err != nil {
		return fmt.Errorf("schedule session sweep %q: %w", spec, err)
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *SessionScheduler) SweepExpiredSessions() {
	log.Info(msg.GetMessage("session.cron.start"))

	removed := scheduler.sweeper.Sweep()

	log.Info(msg.GetMessage("session.cron.end", removed))
}

// Stop stops the scheduler and returns a context done once a running sweep has finished
func (scheduler *SessionScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}
