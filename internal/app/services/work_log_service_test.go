package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/app/services"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
	"github.com/minjaecho/teacherdesk/internal/testutil/testdb"
)

func TestUpsertWorkLog_SameDateYieldsSingleRow(t *testing.T) {
	store := testdb.Open(t)
	repo := repositories.NewWorkLogRepository(store.DB)
	svc := services.NewWorkLogService(repo)
	ctx := context.Background()

	first, err := svc.UpsertWorkLog(ctx, &dto.WorkLogRequest{Date: "2024-05-01", Content: "first"})
	require.NoError(t, err)

	second, err := svc.UpsertWorkLog(ctx, &dto.WorkLogRequest{Date: "2024-05-01", Content: "second"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "second", second.Content)

	logs, err := svc.ListWorkLogs(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "second", logs[0].Content)
}

func TestUpsertWorkLog_RejectsMalformedDate(t *testing.T) {
	store := testdb.Open(t)
	svc := services.NewWorkLogService(repositories.NewWorkLogRepository(store.DB))

	_, err := svc.UpsertWorkLog(context.Background(), &dto.WorkLogRequest{Date: "01/05/2024", Content: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetWorkLogByDate_Missing(t *testing.T) {
	store := testdb.Open(t)
	svc := services.NewWorkLogService(repositories.NewWorkLogRepository(store.DB))

	_, err := svc.GetWorkLogByDate(context.Background(), "2024-05-02")
	assert.ErrorIs(t, err, apperrors.ErrWorkLogNotFound)
}
