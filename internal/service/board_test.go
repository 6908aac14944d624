package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/internal/store"
)

func TestBoardLifecycle(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	boards := &service.BoardService{Store: st}
	ctx := t.Context()

	admin, err := auth.Register(ctx, "owner@x.com", "pw", "Owner")
	require.NoError(t, err)

	board, err := boards.CreateBoard(ctx, "Kitchen reno", admin)
	require.NoError(t, err)
	require.Equal(t, admin.ID, board.AdminID)

	t.Run("fetch and list", func(t *testing.T) {
		got, err := boards.GetBoard(ctx, board.ID)
		require.NoError(t, err)
		require.Equal(t, "Kitchen reno", got.Title)

		listed, err := boards.ListBoards(ctx, admin.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := boards.GetBoard(ctx, board.ID+99)
		require.ErrorIs(t, err, service.ErrBoardNotFound)
	})

	t.Run("delete cascades", func(t *testing.T) {
		scratch, err := boards.CreateBoard(ctx, "Scratch", admin)
		require.NoError(t, err)
		_, err = boards.AddStatus(ctx, scratch.ID, "Open")
		require.NoError(t, err)

		require.NoError(t, boards.DeleteBoard(ctx, scratch.ID))

		_, err = boards.GetBoard(ctx, scratch.ID)
		require.ErrorIs(t, err, service.ErrBoardNotFound)
	})
}

func TestBoardStatuses(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	boards := &service.BoardService{Store: st}
	items := &service.ItemService{Store: st}
	ctx := t.Context()

	admin, err := auth.Register(ctx, "owner@x.com", "pw", "Owner")
	require.NoError(t, err)
	board, err := boards.CreateBoard(ctx, "Tasks", admin)
	require.NoError(t, err)

	open, err := boards.AddStatus(ctx, board.ID, "Open")
	require.NoError(t, err)
	_, err = boards.AddStatus(ctx, board.ID, "Done")
	require.NoError(t, err)

	t.Run("names are unique per board", func(t *testing.T) {
		_, err := boards.AddStatus(ctx, board.ID, "Open")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("same name is fine on another board", func(t *testing.T) {
		other, err := boards.CreateBoard(ctx, "Other", admin)
		require.NoError(t, err)
		_, err = boards.AddStatus(ctx, other.ID, "Open")
		require.NoError(t, err)
	})

	t.Run("removing a status deletes its items", func(t *testing.T) {
		kept, err := items.CreateItem(ctx, service.CreateItemParams{
			BoardID: board.ID,
			Title:   "untracked chore",
		}, admin)
		require.NoError(t, err)

		doomed, err := items.CreateItem(ctx, service.CreateItemParams{
			BoardID:  board.ID,
			Title:    "open chore",
			StatusID: &open.ID,
		}, admin)
		require.NoError(t, err)

		require.NoError(t, boards.RemoveStatus(ctx, board.ID, "Open"))

		_, err = items.GetItem(ctx, doomed.ID)
		require.ErrorIs(t, err, service.ErrItemNotFound)

		_, err = items.GetItem(ctx, kept.ID)
		require.NoError(t, err, "items without the status survive")

		statuses, err := boards.ListStatuses(ctx, board.ID)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		require.Equal(t, "Done", statuses[0].Name)
	})

	t.Run("removing an unknown status", func(t *testing.T) {
		err := boards.RemoveStatus(ctx, board.ID, "Missing")
		require.ErrorIs(t, err, service.ErrStatusNotFound)
	})
}

func TestBoardTypes(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	boards := &service.BoardService{Store: st}
	ctx := t.Context()

	admin, err := auth.Register(ctx, "owner@x.com", "pw", "Owner")
	require.NoError(t, err)
	board, err := boards.CreateBoard(ctx, "Tasks", admin)
	require.NoError(t, err)

	bug, err := boards.AddType(ctx, board.ID, "Bug")
	require.NoError(t, err)
	require.Equal(t, board.ID, bug.BoardID)

	t.Run("duplicate type name", func(t *testing.T) {
		_, err := boards.AddType(ctx, board.ID, "Bug")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, boards.RemoveType(ctx, bug.ID))

		types, err := boards.ListTypes(ctx, board.ID)
		require.NoError(t, err)
		require.Empty(t, types)

		require.ErrorIs(t, boards.RemoveType(ctx, bug.ID), service.ErrTypeNotFound)
	})
}

func TestBoardRoleAssignmentCascade(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	boards := &service.BoardService{Store: st}
	roles := &service.RolesService{Store: st}
	ctx := t.Context()

	admin, err := auth.Register(ctx, "owner@x.com", "pw", "Owner")
	require.NoError(t, err)
	member, err := auth.Register(ctx, "member@x.com", "pw", "Member")
	require.NoError(t, err)

	board, err := boards.CreateBoard(ctx, "Temp", admin)
	require.NoError(t, err)
	_, err = roles.Assign(ctx, board.ID, member.ID, domain.RoleUser)
	require.NoError(t, err)

	require.NoError(t, boards.DeleteBoard(ctx, board.ID))

	_, ok, err := roles.RoleFor(ctx, board.ID, member.ID)
	require.NoError(t, err)
	require.False(t, ok, "grants die with their board")
}
