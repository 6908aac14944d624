package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/pkg/slogx"
)

// ItemHandler serves item lifecycle and field updates. Every route requires
// the caller to hold a role on the item's board.
type ItemHandler struct {
	Items *service.ItemService
	Roles *service.RolesService
}

type createItemRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StatusID    *int64     `json:"status_id"`
	TypeID      *int64     `json:"type_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	Importance  int        `json:"importance"`
}

type itemResponse struct {
	ID          int64      `json:"id"`
	BoardID     int64      `json:"board_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StatusID    *int64     `json:"status_id"`
	TypeID      *int64     `json:"type_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	CreatorID   int64      `json:"creator_id"`
	DueDate     *time.Time `json:"due_date"`
	Importance  int        `json:"importance"`
}

// setReferenceRequest updates a single nullable reference on an item. A null
// or absent id clears the field.
type setReferenceRequest struct {
	ID *int64 `json:"id"`
}

func decodeReference(w http.ResponseWriter, r *http.Request) (*int64, bool) {
	var req setReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return req.ID, true
}

// HandleCreateItem godoc
//
//	@Summary	Create an item on a board
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"board id"
//	@Param		body	body		createItemRequest	true	"item fields"
//	@Success	200		{object}	Envelope			"created item"
//	@Failure	400		{object}	Envelope			"unknown board, status or type"
//	@Router		/boards/{id}/items [post].
func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boardID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid board id")
		return
	}

	principal, ok := h.requireMember(w, r, boardID)
	if !ok {
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeFailure(w, http.StatusBadRequest, "title is required")
		return
	}

	item, err := h.Items.CreateItem(ctx, service.CreateItemParams{
		BoardID:     boardID,
		Title:       req.Title,
		Description: req.Description,
		StatusID:    req.StatusID,
		TypeID:      req.TypeID,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Importance:  req.Importance,
	}, principal)
	if err != nil {
		h.writeItemError(w, r, err, "create item failed")
		return
	}

	writeSuccess(w, toItemResponse(item))
}

// HandleFilterItems godoc
//
//	@Summary		List a board's items
//	@Description	Optional query parameters narrow the listing; all given filters must match.
//	@Tags			Items
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int	true	"board id"
//	@Param			status_id	query		int	false	"status filter"
//	@Param			type_id		query		int	false	"type filter"
//	@Param			assignee_id	query		int	false	"assignee filter"
//	@Param			creator_id	query		int	false	"creator filter"
//	@Param			importance	query		int	false	"importance filter"
//	@Success		200			{object}	Envelope	"items"
//	@Router			/boards/{id}/items [get].
func (h *ItemHandler) HandleFilterItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boardID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid board id")
		return
	}

	if _, ok := h.requireMember(w, r, boardID); !ok {
		return
	}

	filter, err := parseItemFilter(r)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid filter parameter")
		return
	}

	items, err := h.Items.FilterItems(ctx, boardID, filter)
	if err != nil {
		h.writeItemError(w, r, err, "filter items failed")
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	writeSuccess(w, out)
}

// HandleGetItem godoc
//
//	@Summary	Fetch an item
//	@Tags		Items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int			true	"item id"
//	@Success	200	{object}	Envelope	"item"
//	@Failure	400	{object}	Envelope	"unknown item"
//	@Router		/items/{id} [get].
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}
	writeSuccess(w, toItemResponse(item))
}

// HandleSetStatus godoc
//
//	@Summary	Move an item to a status
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"item id"
//	@Param		body	body		setReferenceRequest	true	"status id, null to clear"
//	@Success	200		{object}	Envelope			"updated item"
//	@Failure	400		{object}	Envelope			"status not on this board"
//	@Router		/items/{id}/status [put].
func (h *ItemHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	ref, ok := decodeReference(w, r)
	if !ok {
		return
	}

	updated, err := h.Items.SetStatus(r.Context(), item.ID, ref)
	if err != nil {
		h.writeItemError(w, r, err, "set status failed")
		return
	}
	writeSuccess(w, toItemResponse(updated))
}

// HandleSetType godoc
//
//	@Summary	Assign an item a type
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"item id"
//	@Param		body	body		setReferenceRequest	true	"type id, null to clear"
//	@Success	200		{object}	Envelope			"updated item"
//	@Failure	400		{object}	Envelope			"type not on this board"
//	@Router		/items/{id}/type [put].
func (h *ItemHandler) HandleSetType(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	ref, ok := decodeReference(w, r)
	if !ok {
		return
	}

	updated, err := h.Items.SetType(r.Context(), item.ID, ref)
	if err != nil {
		h.writeItemError(w, r, err, "set type failed")
		return
	}
	writeSuccess(w, toItemResponse(updated))
}

// HandleSetAssignee godoc
//
//	@Summary	Assign an item to a user
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"item id"
//	@Param		body	body		setReferenceRequest	true	"user id, null to unassign"
//	@Success	200		{object}	Envelope			"updated item"
//	@Failure	400		{object}	Envelope			"unknown user"
//	@Router		/items/{id}/assignee [put].
func (h *ItemHandler) HandleSetAssignee(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	ref, ok := decodeReference(w, r)
	if !ok {
		return
	}

	updated, err := h.Items.SetAssignee(r.Context(), item.ID, ref)
	if err != nil {
		h.writeItemError(w, r, err, "set assignee failed")
		return
	}
	writeSuccess(w, toItemResponse(updated))
}

// HandleDeleteItem godoc
//
//	@Summary	Delete an item
//	@Tags		Items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"item id"
//	@Success	200	{object}	Envelope
//	@Failure	400	{object}	Envelope	"unknown item"
//	@Router		/items/{id} [delete].
func (h *ItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	if err := h.Items.DeleteItem(r.Context(), item.ID); err != nil {
		h.writeItemError(w, r, err, "delete item failed")
		return
	}
	writeSuccess(w, nil)
}

// loadItem parses the {id} path value, fetches the item and checks the
// principal holds a role on its board.
func (h *ItemHandler) loadItem(w http.ResponseWriter, r *http.Request) (domain.Item, bool) {
	ctx := r.Context()

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid item id")
		return domain.Item{}, false
	}

	item, err := h.Items.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeFailure(w, http.StatusBadRequest, "item does not exist")
			return domain.Item{}, false
		}
		slogx.FromContext(ctx).Error("item lookup failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to fetch item")
		return domain.Item{}, false
	}

	if _, ok := h.requireMember(w, r, item.BoardID); !ok {
		return domain.Item{}, false
	}

	return item, true
}

func (h *ItemHandler) requireMember(
	w http.ResponseWriter,
	r *http.Request,
	boardID int64,
) (domain.User, bool) {
	ctx := r.Context()

	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return domain.User{}, false
	}

	_, member, err := h.Roles.RoleFor(ctx, boardID, principal.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("role lookup failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed to check board role")
		return domain.User{}, false
	}
	if !member {
		writeFailure(w, http.StatusForbidden, "no role on this board")
		return domain.User{}, false
	}

	return principal, true
}

func (h *ItemHandler) writeItemError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		writeFailure(w, http.StatusBadRequest, "board does not exist")
	case errors.Is(err, service.ErrStatusNotFound):
		writeFailure(w, http.StatusBadRequest, "status does not exist on this board")
	case errors.Is(err, service.ErrTypeNotFound):
		writeFailure(w, http.StatusBadRequest, "type does not exist on this board")
	case errors.Is(err, service.ErrItemNotFound):
		writeFailure(w, http.StatusBadRequest, "item does not exist")
	case errors.Is(err, service.ErrUserNotFound):
		writeFailure(w, http.StatusBadRequest, "user does not exist")
	default:
		slogx.FromContext(r.Context()).Error(logMsg, "err", err)
		writeFailure(w, http.StatusInternalServerError, "request failed")
	}
}

func parseItemFilter(r *http.Request) (domain.ItemFilter, error) {
	var filter domain.ItemFilter

	q := r.URL.Query()
	for key, dst := range map[string]**int64{
		"status_id":   &filter.StatusID,
		"type_id":     &filter.TypeID,
		"assignee_id": &filter.AssigneeID,
		"creator_id":  &filter.CreatorID,
	} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ItemFilter{}, err
		}
		*dst = &v
	}

	if raw := q.Get("importance"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ItemFilter{}, err
		}
		filter.Importance = &v
	}

	return filter, nil
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		BoardID:     item.BoardID,
		Title:       item.Title,
		Description: item.Description,
		StatusID:    item.StatusID,
		TypeID:      item.TypeID,
		AssigneeID:  item.AssigneeID,
		CreatorID:   item.CreatorID,
		DueDate:     item.DueDate,
		Importance:  item.Importance,
	}
}
