package jobs

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	ledgerService "frontdesk/internal/domains/ledger/service"
	sharedLogger "frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic ledger sweep.
type Scheduler struct {
	cron   *cron.Cron
	ledger ledgerService.Ledger
}

func New(cfg *config.Config, ledger ledgerService.Ledger) (*Scheduler, error) {
	logger := cronLogger{log: sharedLogger.Component("cron")}

	c := cron.New(
		cron.WithLocation(timezone.GetLocation()),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{cron: c, ledger: ledger}

	if cfg.Ledger.ReconcileCron != "" {
		if _, err := c.AddFunc(cfg.Ledger.ReconcileCron, s.Reconcile); err != nil {
			return nil, fmt.Errorf("scheduling reconciliation %q: %w", cfg.Ledger.ReconcileCron, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()

	log.Info().Int("jobs", len(s.cron.Entries())).Msg("cron jobs started")
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("cron jobs still running at shutdown")
	}
}

// Reconcile re-derives every invoice's paid status from its payments.
func (s *Scheduler) Reconcile() {
	started := time.Now()

	changed, err := s.ledger.ReconcileAll(context.Background())
	if err != nil {
		log.Error().Err(err).Int("changed", changed).Msg("reconciliation sweep finished with errors")

		return
	}

	log.Info().Int("changed", changed).Dur("took", time.Since(started)).Msg("reconciliation sweep finished")
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
