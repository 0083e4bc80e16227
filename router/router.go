// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/danielhkuo/hackconsole/cliparse"
	"github.com/danielhkuo/hackconsole/handlers"
	"github.com/danielhkuo/hackconsole/middleware"
	"github.com/danielhkuo/hackconsole/report"
)

// ActionResponse is the answer to POST /actions/{name}: every output the
// action reported during this request.
type ActionResponse struct {
	Action  string      `json:"action"`
	Outputs interface{} `json:"outputs"`
}

type console struct {
	handler *handlers.Handler
	board   *report.Board
}

// NewRouter serves the console actions of h. Outputs are kept on board,
// which should also be h's panel display.
func NewRouter(h *handlers.Handler, board *report.Board, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	c := &console{handler: h, board: board}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /actions", middleware.WithLogging(c.listActions))
	mux.HandleFunc("POST /actions/{name}", middleware.WithLogging(c.runAction))
	mux.HandleFunc("GET /outputs", middleware.WithLogging(c.listOutputs))
	mux.HandleFunc("GET /panels", middleware.WithLogging(c.showPanels))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hackconsole -> " + cfg.BaseURL))
	})

	return mux
}

// NewServer is NewRouter behind the CORS policy from cfg.
func NewServer(h *handlers.Handler, board *report.Board, cfg cliparse.Config) http.Handler {
	return middleware.CORS(cfg.AllowedOrigin)(NewRouter(h, board, cfg))
}

func (c *console) listActions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, c.handler.ActionNames())
}

// runAction handles POST /actions/{name}. The body is a JSON object of
// field values; an empty body runs the action with no fields.
func (c *console) runAction(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	fields := handlers.Fields{}
	if err := middleware.ParseJSONBody(r, &fields); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fields must be a JSON object of strings")
		return
	}

	local := report.NewBoard()
	h := c.handler.WithReporter(report.Multi(local, c.board))
	if err := h.Run(r.Context(), name, fields); err != nil {
		if errors.Is(err, handlers.ErrUnknownAction) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ActionResponse{
		Action:  name,
		Outputs: local.Outputs(),
	})
}

func (c *console) listOutputs(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, c.board.Outputs())
}

func (c *console) showPanels(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, c.handler.View())
}
