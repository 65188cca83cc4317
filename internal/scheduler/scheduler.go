// Package scheduler runs the nightly alert sweep on a cron schedule.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron     *cron.Cron
	alertSvc *service.AlertService
	log      *logrus.Logger
}

// New creates a Scheduler wired to the alert service.
func New(alertSvc *service.AlertService, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		alertSvc: alertSvc,
		log:      log,
	}
}

// Start registers the alert sweep under the given cron spec and starts the
// runner.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		alerts, err := s.alertSvc.Run()
		if err != nil {
			s.log.WithError(err).Error("alert sweep failed")
			return
		}
		s.log.WithField("alerts", len(alerts)).Info("alert sweep completed")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.WithField("spec", spec).Info("scheduler started")

	return nil
}

// Stop halts the runner and waits for any in-flight job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
