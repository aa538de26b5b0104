package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newReportSnapshotSyncService(t *testing.T, lookBack int) (*ReportSnapshotSyncService, *mocks.MockSnapshotManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	snapshots := mocks.NewMockSnapshotManager(ctrl)

	return &ReportSnapshotSyncService{
		config:    ReportSnapshotSyncConfig{SyncEnabled: true, MonthLookBack: lookBack},
		snapshots: snapshots,
		now:       func() time.Time { return time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC) },
	}, snapshots
}

func TestReportSnapshotSyncService_monthsToProcess(t *testing.T) {
	tests := []struct {
		name     string
		lookBack int
		expected []time.Time
	}{
		{
			name:     "último mês fechado",
			lookBack: 1,
			expected: []time.Time{time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "três meses atravessando o ano",
			lookBack: 3,
			expected: []time.Time{
				time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "valor inválido usa um mês",
			lookBack: 0,
			expected: []time.Time{time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newReportSnapshotSyncService(t, tt.lookBack)
			assert.Equal(t, tt.expected, service.monthsToProcess())
		})
	}
}

func TestReportSnapshotSyncService_RunSnapshots(t *testing.T) {
	service, snapshots := newReportSnapshotSyncService(t, 2)

	gomock.InOrder(
		snapshots.EXPECT().SaveMonthlySnapshots(gomock.Any(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Return(nil),
		snapshots.EXPECT().SaveMonthlySnapshots(gomock.Any(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).Return(nil),
	)

	require.NoError(t, service.RunSnapshots(context.Background()))
	assert.Equal(t, "", service.GetStatus()["last_error"])
}

func TestReportSnapshotSyncService_RunSnapshots_ContinuesAfterError(t *testing.T) {
	service, snapshots := newReportSnapshotSyncService(t, 2)

	snapshots.EXPECT().SaveMonthlySnapshots(gomock.Any(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Return(errors.New("db down"))
	snapshots.EXPECT().SaveMonthlySnapshots(gomock.Any(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).Return(nil)

	err := service.RunSnapshots(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, service.GetStatus()["last_error"], "db down")
}

func TestReportSnapshotSyncService_AlreadyRunning(t *testing.T) {
	service, _ := newReportSnapshotSyncService(t, 1)
	require.True(t, service.state.begin(service.now()))

	assert.ErrorIs(t, service.RunSnapshots(context.Background()), ErrJobRunning)
	assert.False(t, service.TriggerManualSync())
}
