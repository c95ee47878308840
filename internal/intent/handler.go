package intent

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/flux/pkg/handlers"
	"github.com/JaimeStill/flux/pkg/provider"
	"github.com/JaimeStill/flux/pkg/routes"
)

// Handler provides the HTTP dispatch endpoint for intent operations.
type Handler struct {
	sys            System
	logger         *slog.Logger
	maxRequestSize int64
}

// NewHandler creates a Handler with the given system, logger, and request size cap.
func NewHandler(sys System, logger *slog.Logger, maxRequestSize int64) *Handler {
	return &Handler{
		sys:            sys,
		logger:         logger.With("handler", "intent"),
		maxRequestSize: maxRequestSize,
	}
}

// Routes returns the route group definition for the dispatch endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/intent",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Dispatch},
		},
	}
}

// Dispatch reads the request envelope and routes it by type. A missing
// upstream credential fails every mode identically before any routing.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if !h.sys.Configured() {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, provider.ErrNotConfigured)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	var env Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidEnvelope)
		return
	}

	switch env.Type {
	case "classify":
		h.classify(w, r, &env)
	case "plan":
		h.plan(w, r, &env)
	case "council":
		h.council(w, r, &env)
	default:
		h.chat(w, r, &env)
	}
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request, env *Envelope) {
	result, err := h.sys.Classify(r.Context(), env.Messages, env.Context)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) plan(w http.ResponseWriter, r *http.Request, env *Envelope) {
	result, err := h.sys.Plan(r.Context(), env.Tasks, env.Goals)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) council(w http.ResponseWriter, r *http.Request, env *Envelope) {
	result, err := h.sys.Council(r.Context(), env.LatestUserContent())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// chat relays the upstream event stream to the client incrementally. The
// stream is never buffered whole; each read is written and flushed as it
// arrives. A client disconnect cancels the request context, which tears down
// the upstream stream.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request, env *Envelope) {
	stream, err := h.sys.Chat(r.Context(), env.Messages)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer stream.Body.Close()

	w.Header().Set("Content-Type", stream.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)

	for {
		n, err := stream.Body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err != nil {
			return
		}
	}
}
