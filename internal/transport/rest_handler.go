package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/view"
	"go.uber.org/zap"
)

// RESTHandler serves pages and counters as JSON. Every request renders
// against the session's latest height; requests never move the session.
type RESTHandler struct {
	session  SessionState
	pages    service.PageRenderer
	mapper   *view.Mapper
	pageSize int
	logger   *zap.Logger
}

// NewRESTHandler builds the handler.
func NewRESTHandler(session SessionState, pages service.PageRenderer, mapper *view.Mapper, pageSize int, logger *zap.Logger) *RESTHandler {
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RESTHandler{
		session:  session,
		pages:    pages,
		mapper:   mapper,
		pageSize: pageSize,
		logger:   logger.Named("rest"),
	}
}

// Routes returns the API mux.
func (h *RESTHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/page/{n}", h.page)
	mux.HandleFunc("GET /api/v1/blocks/{height}", h.block)
	mux.HandleFunc("GET /api/v1/stats", h.stats)
	return mux
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *RESTHandler) page(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		h.write(w, http.StatusBadRequest, errorBody{Error: "page must be an integer"})
		return
	}
	st := h.session.Snapshot()
	if !st.Known {
		h.write(w, http.StatusServiceUnavailable, errorBody{Error: "latest block not resolved yet"})
		return
	}
	if clamp, _ := strconv.ParseBool(r.URL.Query().Get("clamp")); clamp {
		n = service.ClampPage(st.Latest, h.pageSize, n)
	}

	page, err := h.pages.Render(r.Context(), st.Latest, h.pageSize, n)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, h.mapper.Page(page))
}

func (h *RESTHandler) block(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 64)
	if err != nil {
		h.write(w, http.StatusBadRequest, errorBody{Error: "height must be a non-negative integer"})
		return
	}
	st := h.session.Snapshot()
	if !st.Known {
		h.write(w, http.StatusServiceUnavailable, errorBody{Error: "latest block not resolved yet"})
		return
	}

	n, err := service.PageOf(st.Latest, height, h.pageSize)
	if err != nil {
		h.fail(w, err)
		return
	}
	page, err := h.pages.Render(r.Context(), st.Latest, h.pageSize, n)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, h.mapper.Page(service.Highlight(page, height)))
}

func (h *RESTHandler) stats(w http.ResponseWriter, _ *http.Request) {
	var last *service.Page
	if page, ok := h.session.LastPage(); ok {
		last = &page
	}
	h.write(w, http.StatusOK, h.mapper.Stats(h.session.Stats(), last))
}

func (h *RESTHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPageOutOfRange), errors.Is(err, service.ErrHeightOutOfRange):
		h.write(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		h.logger.Warn("render failed", zap.Error(err))
		h.write(w, http.StatusInternalServerError, errorBody{Error: "render failed"})
	}
}

func (h *RESTHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}
