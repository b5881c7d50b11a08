// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	service "github.com/okian/ipldash/internal/app"
)

// Board query limits used when the server is built without WithBoardLimits.
const (
	defaultBoardLimit = 10
	maxBoardLimit     = 100
)

// BoardDependencies defines the interface for board operations.
type BoardDependencies interface {
	Board(ctx context.Context, board service.Board, n int) ([]Entry, error)
}

// BoardHandler handles board requests.
type BoardHandler struct {
	deps         BoardDependencies
	defaultLimit int
	maxLimit     int
}

type boardInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(deps BoardDependencies, defaultLimit, maxLimit int) *BoardHandler {
	return &BoardHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleListBoards handles GET /api/v1/boards requests.
func (h *BoardHandler) HandleListBoards(w http.ResponseWriter, _ *http.Request) {
	boards := service.Boards()
	out := make([]boardInfo, 0, len(boards))
	for _, b := range boards {
		out = append(out, boardInfo{Name: string(b), Title: b.Title()})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetBoard handles GET /api/v1/boards/{board}?limit=N requests.
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_board"
	board, err := service.ParseBoard(r.PathValue("board"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	n := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request",
				WrapKind(op, ErrBadRequest, fmt.Errorf("limit %q is not a non-negative integer", raw)))
			return
		}
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded",
			WrapKind(op, ErrBadRequest, fmt.Errorf("limit %d exceeds %d", n, h.maxLimit)))
		return
	}

	entries, err := h.deps.Board(r.Context(), board, n)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
