package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
	"github.com/minjaecho/teacherdesk/internal/testutil/testdb"
)

func TestTodoCreate_DefaultsIncomplete(t *testing.T) {
	store := testdb.Open(t)
	repo := repositories.NewTodoRepository(store.DB)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.ToDoItem{Content: "call parent"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "call parent", got.Content)
	assert.False(t, got.IsCompleted)
}

func TestTodoUpdate(t *testing.T) {
	store := testdb.Open(t)
	repo := repositories.NewTodoRepository(store.DB)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.ToDoItem{Content: "prepare class"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, &models.ToDoItem{ID: id, Content: "prepare class", IsCompleted: true}))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)

	err = repo.Update(ctx, &models.ToDoItem{ID: 9999, Content: "x"})
	assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)
}

func TestTodoDelete(t *testing.T) {
	store := testdb.Open(t)
	repo := repositories.NewTodoRepository(store.DB)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.ToDoItem{Content: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), apperrors.ErrTodoNotFound)
}

func TestTodoList_InsertionOrderWindow(t *testing.T) {
	store := testdb.Open(t)
	repo := repositories.NewTodoRepository(store.DB)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, &models.ToDoItem{Content: fmt.Sprintf("item %d", i)})
		require.NoError(t, err)
	}

	items, err := repo.List(ctx, 2, 100)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item 2", items[0].Content)
	assert.Equal(t, "item 3", items[1].Content)
}
