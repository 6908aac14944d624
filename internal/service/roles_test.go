package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/service"
)

func TestRoleAssignment(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	boards := &service.BoardService{Store: st}
	roles := &service.RolesService{Store: st}
	ctx := t.Context()

	admin, err := auth.Register(ctx, "admin@x.com", "pw", "Admin")
	require.NoError(t, err)
	member, err := auth.Register(ctx, "member@x.com", "pw", "Member")
	require.NoError(t, err)

	board, err := boards.CreateBoard(ctx, "Sprint board", admin)
	require.NoError(t, err)

	t.Run("creator is granted admin", func(t *testing.T) {
		role, ok, err := roles.RoleFor(ctx, board.ID, admin.ID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("assign grants the role", func(t *testing.T) {
		grant, err := roles.Assign(ctx, board.ID, member.ID, domain.RoleUser)
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, grant.Role)

		has, err := roles.HasRole(ctx, board.ID, member.ID, domain.RoleUser)
		require.NoError(t, err)
		require.True(t, has)
	})

	t.Run("reassigning replaces the previous grant", func(t *testing.T) {
		_, err := roles.Assign(ctx, board.ID, member.ID, domain.RoleLeader)
		require.NoError(t, err)

		role, ok, err := roles.RoleFor(ctx, board.ID, member.ID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.RoleLeader, role)

		grants, err := roles.ListAssignments(ctx, board.ID)
		require.NoError(t, err)
		require.Len(t, grants, 2, "one grant per user per board")
	})

	t.Run("role checks are exact, not hierarchical", func(t *testing.T) {
		has, err := roles.HasRole(ctx, board.ID, member.ID, domain.RoleUser)
		require.NoError(t, err)
		require.False(t, has, "LEADER does not imply USER")
	})

	t.Run("removing requires the exact role", func(t *testing.T) {
		removed, err := roles.Remove(ctx, board.ID, member.ID, domain.RoleUser)
		require.NoError(t, err)
		require.False(t, removed, "stored role is LEADER")

		removed, err = roles.Remove(ctx, board.ID, member.ID, domain.RoleLeader)
		require.NoError(t, err)
		require.True(t, removed)

		_, ok, err := roles.RoleFor(ctx, board.ID, member.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("removing an absent grant is a quiet no-op", func(t *testing.T) {
		removed, err := roles.Remove(ctx, board.ID, member.ID, domain.RoleLeader)
		require.NoError(t, err)
		require.False(t, removed)
	})

	t.Run("no grant on an unrelated board", func(t *testing.T) {
		_, ok, err := roles.RoleFor(ctx, board.ID+100, admin.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})
}
