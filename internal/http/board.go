package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/internal/store"
	"github.com/corkboardhq/corkd/pkg/slogx"
)

// BoardHandler serves board lifecycle, status/type labels and per-board
// role grants. Every route requires a resolved principal; mutating routes
// additionally require the principal to be the board's admin.
type BoardHandler struct {
	Auth   *service.AuthService
	Boards *service.BoardService
	Roles  *service.RolesService
}

type createBoardRequest struct {
	Title string `json:"title"`
}

type boardResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	AdminID int64  `json:"admin_id"`
}

type labelRequest struct {
	Name string `json:"name"`
}

type statusResponse struct {
	ID      int64  `json:"id"`
	BoardID int64  `json:"board_id"`
	Name    string `json:"name"`
}

type assignRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type roleResponse struct {
	BoardID int64  `json:"board_id"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
}

// HandleCreateBoard godoc
//
//	@Summary	Create a board
//	@Tags		Boards
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		createBoardRequest	true	"board title"
//	@Success	200		{object}	Envelope			"created board"
//	@Failure	400		{object}	Envelope
//	@Router		/boards [post].
func (h *BoardHandler) HandleCreateBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeFailure(w, http.StatusBadRequest, "title is required")
		return
	}

	board, err := h.Boards.CreateBoard(ctx, req.Title, principal)
	if err != nil {
		slogx.FromContext(ctx).Error("create board failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed during creation")
		return
	}

	writeSuccess(w, toBoardResponse(board))
}

// HandleListBoards godoc
//
//	@Summary	List boards the caller belongs to
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	Envelope	"boards"
//	@Router		/boards [get].
func (h *BoardHandler) HandleListBoards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	boards, err := h.Boards.ListBoards(ctx, principal.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("list boards failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to list boards")
		return
	}

	out := make([]boardResponse, 0, len(boards))
	for _, b := range boards {
		out = append(out, toBoardResponse(b))
	}
	writeSuccess(w, out)
}

// HandleGetBoard godoc
//
//	@Summary	Fetch a board
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int			true	"board id"
//	@Success	200	{object}	Envelope	"board"
//	@Failure	400	{object}	Envelope	"unknown board"
//	@Router		/boards/{id} [get].
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.loadBoard(w, r)
	if !ok {
		return
	}

	principal, _ := PrincipalFromContext(ctx)
	if _, member, err := h.Roles.RoleFor(ctx, board.ID, principal.ID); err != nil {
		slogx.FromContext(ctx).Error("role lookup failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to fetch board")
		return
	} else if !member {
		writeFailure(w, http.StatusForbidden, "no role on this board")
		return
	}

	writeSuccess(w, toBoardResponse(board))
}

// HandleDeleteBoard godoc
//
//	@Summary	Delete a board and everything on it
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"board id"
//	@Success	200	{object}	Envelope
//	@Failure	403	{object}	Envelope	"caller is not the board admin"
//	@Router		/boards/{id} [delete].
func (h *BoardHandler) HandleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	if err := h.Boards.DeleteBoard(ctx, board.ID); err != nil {
		slogx.FromContext(ctx).Error("delete board failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to delete board")
		return
	}

	writeSuccess(w, nil)
}

// HandleAddStatus godoc
//
//	@Summary	Add a status label to a board
//	@Tags		Boards
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int				true	"board id"
//	@Param		body	body		labelRequest	true	"status name"
//	@Success	200		{object}	Envelope		"created status"
//	@Failure	400		{object}	Envelope		"duplicate name"
//	@Router		/boards/{id}/statuses [post].
func (h *BoardHandler) HandleAddStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	name, ok := decodeLabel(w, r)
	if !ok {
		return
	}

	status, err := h.Boards.AddStatus(ctx, board.ID, name)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			writeFailure(w, http.StatusBadRequest, "status already exists on this board")
			return
		}
		slogx.FromContext(ctx).Error("add status failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to add status")
		return
	}

	writeSuccess(w, statusResponse{ID: status.ID, BoardID: status.BoardID, Name: status.Name})
}

// HandleListStatuses godoc
//
//	@Summary	List a board's status labels
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"board id"
//	@Success	200	{object}	Envelope
//	@Router		/boards/{id}/statuses [get].
func (h *BoardHandler) HandleListStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.loadBoard(w, r)
	if !ok {
		return
	}

	statuses, err := h.Boards.ListStatuses(ctx, board.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("list statuses failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to list statuses")
		return
	}

	out := make([]statusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, statusResponse{ID: s.ID, BoardID: s.BoardID, Name: s.Name})
	}
	writeSuccess(w, out)
}

// HandleRemoveStatus godoc
//
//	@Summary		Remove a status label
//	@Description	Deletes the label and every item on the board that holds it.
//	@Tags			Boards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int		true	"board id"
//	@Param			name	path		string	true	"status name"
//	@Success		200		{object}	Envelope
//	@Failure		400		{object}	Envelope	"unknown status"
//	@Router			/boards/{id}/statuses/{name} [delete].
func (h *BoardHandler) HandleRemoveStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	name := r.PathValue("name")
	if err := h.Boards.RemoveStatus(ctx, board.ID, name); err != nil {
		if errors.Is(err, service.ErrStatusNotFound) {
			writeFailure(w, http.StatusBadRequest, "status does not exist on this board")
			return
		}
		slogx.FromContext(ctx).Error("remove status failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to remove status")
		return
	}

	writeSuccess(w, nil)
}

// HandleAddType godoc
//
//	@Summary	Add an item type to a board
//	@Tags		Boards
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int				true	"board id"
//	@Param		body	body		labelRequest	true	"type name"
//	@Success	200		{object}	Envelope		"created type"
//	@Failure	400		{object}	Envelope		"duplicate name"
//	@Router		/boards/{id}/types [post].
func (h *BoardHandler) HandleAddType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	name, ok := decodeLabel(w, r)
	if !ok {
		return
	}

	itemType, err := h.Boards.AddType(ctx, board.ID, name)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			writeFailure(w, http.StatusBadRequest, "type already exists on this board")
			return
		}
		slogx.FromContext(ctx).Error("add type failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to add type")
		return
	}

	writeSuccess(w, statusResponse{ID: itemType.ID, BoardID: itemType.BoardID, Name: itemType.Name})
}

// HandleListTypes godoc
//
//	@Summary	List a board's item types
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"board id"
//	@Success	200	{object}	Envelope
//	@Router		/boards/{id}/types [get].
func (h *BoardHandler) HandleListTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.loadBoard(w, r)
	if !ok {
		return
	}

	types, err := h.Boards.ListTypes(ctx, board.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("list types failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to list types")
		return
	}

	out := make([]statusResponse, 0, len(types))
	for _, t := range types {
		out = append(out, statusResponse{ID: t.ID, BoardID: t.BoardID, Name: t.Name})
	}
	writeSuccess(w, out)
}

// HandleRemoveType godoc
//
//	@Summary	Remove an item type
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int	true	"board id"
//	@Param		typeID	path		int	true	"type id"
//	@Success	200		{object}	Envelope
//	@Failure	400		{object}	Envelope	"unknown type"
//	@Router		/boards/{id}/types/{typeID} [delete].
func (h *BoardHandler) HandleRemoveType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	typeID, err := strconv.ParseInt(r.PathValue("typeID"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid type id")
		return
	}

	if err := h.Boards.RemoveType(ctx, typeID); err != nil {
		if errors.Is(err, service.ErrTypeNotFound) {
			writeFailure(w, http.StatusBadRequest, "type does not exist")
			return
		}
		slogx.FromContext(ctx).Error("remove type failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to remove type")
		return
	}

	writeSuccess(w, nil)
}

// HandleAssignRole godoc
//
//	@Summary		Grant a user a role on a board
//	@Description	Looks the user up by email and grants the role, replacing any role they already held on the board.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"board id"
//	@Param			body	body		assignRoleRequest	true	"email and role"
//	@Success		200		{object}	Envelope			"the grant"
//	@Failure		400		{object}	Envelope			"unknown email or unknown role"
//	@Router			/boards/{id}/roles [post].
func (h *BoardHandler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := h.Auth.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeFailure(w, http.StatusBadRequest, "user with this email do not exist")
			return
		}
		slogx.FromContext(ctx).Error("user lookup failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to assign role")
		return
	}

	grant, err := h.Roles.Assign(ctx, board.ID, user.ID, role)
	if err != nil {
		slogx.FromContext(ctx).Error("assign role failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to assign role")
		return
	}

	writeSuccess(w, roleResponse{BoardID: grant.BoardID, UserID: grant.UserID, Role: string(grant.Role)})
}

// HandleListRoles godoc
//
//	@Summary	List a board's role grants
//	@Tags		Roles
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"board id"
//	@Success	200	{object}	Envelope
//	@Router		/boards/{id}/roles [get].
func (h *BoardHandler) HandleListRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	grants, err := h.Roles.ListAssignments(ctx, board.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("list roles failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to list roles")
		return
	}

	out := make([]roleResponse, 0, len(grants))
	for _, g := range grants {
		out = append(out, roleResponse{BoardID: g.BoardID, UserID: g.UserID, Role: string(g.Role)})
	}
	writeSuccess(w, out)
}

// HandleRemoveRole godoc
//
//	@Summary		Revoke a role grant
//	@Description	Removes the exact (board, user, role) grant. Revoking an absent grant succeeds without changing anything.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int		true	"board id"
//	@Param			userID	path		int		true	"user id"
//	@Param			role	path		string	true	"role label"
//	@Success		200		{object}	Envelope	"whether a grant was removed"
//	@Router			/boards/{id}/roles/{userID}/{role} [delete].
func (h *BoardHandler) HandleRemoveRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	userID, err := strconv.ParseInt(r.PathValue("userID"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	role, err := domain.ParseRole(r.PathValue("role"))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "unknown role")
		return
	}

	removed, err := h.Roles.Remove(ctx, board.ID, userID, role)
	if err != nil {
		slogx.FromContext(ctx).Error("remove role failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to remove role")
		return
	}

	writeSuccess(w, map[string]bool{"removed": removed})
}

// loadBoard parses the {id} path value and fetches the board, writing the
// failure response itself when either step fails.
func (h *BoardHandler) loadBoard(w http.ResponseWriter, r *http.Request) (domain.Board, bool) {
	ctx := r.Context()

	boardID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid board id")
		return domain.Board{}, false
	}

	board, err := h.Boards.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, service.ErrBoardNotFound) {
			writeFailure(w, http.StatusBadRequest, "board does not exist")
			return domain.Board{}, false
		}
		slogx.FromContext(ctx).Error("board lookup failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to fetch board")
		return domain.Board{}, false
	}

	return board, true
}

// requireAdmin loads the board and checks the principal owns it.
func (h *BoardHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (domain.Board, bool) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return domain.Board{}, false
	}

	board, ok := h.loadBoard(w, r)
	if !ok {
		return domain.Board{}, false
	}

	if board.AdminID != principal.ID {
		writeFailure(w, http.StatusForbidden, "only the board admin can do this")
		return domain.Board{}, false
	}

	return board, true
}

func decodeLabel(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req labelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeFailure(w, http.StatusBadRequest, "name is required")
		return "", false
	}
	return req.Name, true
}

func toBoardResponse(b domain.Board) boardResponse {
	return boardResponse{ID: b.ID, Title: b.Title, AdminID: b.AdminID}
}
