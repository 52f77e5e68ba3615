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

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestUpdateTodo_CompletionOnlyLeavesContent(t *testing.T) {
	store := testdb.Open(t)
	svc := services.NewTodoService(repositories.NewTodoRepository(store.DB))
	ctx := context.Background()

	item, err := svc.CreateTodo(ctx, &dto.CreateToDoItemRequest{Content: "grade homework"})
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(ctx, item.ID, &dto.UpdateToDoItemRequest{IsCompleted: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "grade homework", updated.Content)
	assert.True(t, updated.IsCompleted)
}

func TestUpdateTodo_NoFieldsLeavesRowUnchanged(t *testing.T) {
	store := testdb.Open(t)
	svc := services.NewTodoService(repositories.NewTodoRepository(store.DB))
	ctx := context.Background()

	item, err := svc.CreateTodo(ctx, &dto.CreateToDoItemRequest{Content: "plan field trip"})
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(ctx, item.ID, &dto.UpdateToDoItemRequest{})
	require.NoError(t, err)
	assert.Equal(t, item.Content, updated.Content)
	assert.Equal(t, item.IsCompleted, updated.IsCompleted)
}

func TestUpdateTodo_ContentOnlyLeavesCompletion(t *testing.T) {
	store := testdb.Open(t)
	svc := services.NewTodoService(repositories.NewTodoRepository(store.DB))
	ctx := context.Background()

	item, err := svc.CreateTodo(ctx, &dto.CreateToDoItemRequest{Content: "old", IsCompleted: true})
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(ctx, item.ID, &dto.UpdateToDoItemRequest{Content: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	assert.True(t, updated.IsCompleted)
}

func TestUpdateTodo_Missing(t *testing.T) {
	store := testdb.Open(t)
	svc := services.NewTodoService(repositories.NewTodoRepository(store.DB))

	_, err := svc.UpdateTodo(context.Background(), 777, &dto.UpdateToDoItemRequest{IsCompleted: boolPtr(true)})
	assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)
}
