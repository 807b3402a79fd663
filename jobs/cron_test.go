package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	ledgerMocks "frontdesk/internal/domains/ledger/mocks"
	"frontdesk/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler_InvalidSpec(t *testing.T) {
	cfg := &config.Config{}
	cfg.Ledger.ReconcileCron = "not a schedule"

	_, err := jobs.New(cfg, ledgerMocks.NewMockLedger(gomock.NewController(t)))
	assert.Error(t, err)
}

func TestScheduler_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := ledgerMocks.NewMockLedger(ctrl)

	cfg := &config.Config{}
	cfg.Ledger.ReconcileCron = "@every 1h"

	scheduler, err := jobs.New(cfg, ledger)
	require.NoError(t, err)

	gomock.InOrder(
		ledger.EXPECT().ReconcileAll(gomock.Any()).Return(2, nil),
		ledger.EXPECT().ReconcileAll(gomock.Any()).Return(1, errors.New("invoice store down")),
	)

	scheduler.Reconcile()
	scheduler.Reconcile()
}

func TestScheduler_StartStop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Ledger.ReconcileCron = "@every 1h"

	scheduler, err := jobs.New(cfg, ledgerMocks.NewMockLedger(gomock.NewController(t)))
	require.NoError(t, err)

	scheduler.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	scheduler.Stop(ctx)
	assert.NoError(t, ctx.Err())
}
