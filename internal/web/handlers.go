package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/jaminalder/codex-dominoes/internal/app"
	"github.com/jaminalder/codex-dominoes/internal/console"
	"github.com/jaminalder/codex-dominoes/internal/domain"
	"github.com/jaminalder/codex-dominoes/internal/i18n"
)

type handlers struct {
	svc    *app.Service
	tpl    *templates
	lang   string
	logger zerolog.Logger
}

type boardData struct {
	ID             string
	View           domain.View
	StockLine      string
	ComputerLine   string
	HandTitle      string
	Snake          string
	Status         string
	Error          string
	HumanToMove    bool
	ComputerToMove bool
}

// printer prefers the request's Accept-Language over the server default.
func (h *handlers) printer(r *http.Request) *message.Printer {
	return i18n.Printer(r.Header.Get("Accept-Language"), h.lang)
}

func (h *handlers) renderBoard(gs app.GameState, p *message.Printer, errMsg string) []byte {
	v := gs.View
	data := boardData{
		ID:             gs.ID,
		View:           v,
		StockLine:      p.Sprintf(i18n.StockSize, v.StockSize),
		ComputerLine:   p.Sprintf(i18n.ComputerPieces, v.ComputerPieces),
		HandTitle:      p.Sprintf(i18n.YourPieces),
		Snake:          console.Snake(v),
		Status:         i18n.Status(p, v),
		Error:          errMsg,
		HumanToMove:    v.Phase == domain.AwaitingHuman,
		ComputerToMove: v.Phase == domain.AwaitingComputer,
	}
	return renderTemplate(h.tpl.board, "", data)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.index, "base", nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// ensure cookie and auto-claim the seat
	pid := ensurePlayerCookie(w, r)
	_, _, _ = h.svc.Join(id, pid)

	gs, ok := h.svc.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := struct {
		ID        string
		BoardHTML template.HTML
	}{ID: gs.ID, BoardHTML: template.HTML(h.renderBoard(*gs, h.printer(r), ""))}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.game, "base", data))
}

func (h *handlers) join(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pid := ensurePlayerCookie(w, r)
	_, gs, err := h.svc.Join(id, pid)
	if err != nil || gs == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(*gs, h.printer(r), ""))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pid := ensurePlayerCookie(w, r)
	_ = r.ParseForm()
	cmd, err := domain.ParseCommand(r.Form.Get("move"))
	var gs *app.GameState
	if err == nil {
		gs, err = h.svc.Play(id, pid, cmd)
	}
	h.respond(w, r, id, gs, err)
}

func (h *handlers) computer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pid := ensurePlayerCookie(w, r)
	gs, err := h.svc.ComputerTurn(id, pid)
	h.respond(w, r, id, gs, err)
}

// respond writes the board fragment, with a message when the move was refused.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request, id string, gs *app.GameState, err error) {
	p := h.printer(r)
	var errMsg string
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Debug().Err(err).Str("game_id", id).Msg("Move refused")
		if gs == nil {
			if g, ok := h.svc.Get(id); ok {
				gs = g
			}
		}
		errMsg = errorMessage(p, err)
	}
	if gs == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(*gs, p, errMsg))
}

func errorMessage(p *message.Printer, err error) string {
	switch {
	case errors.Is(err, domain.ErrNotYourTurn):
		return p.Sprintf(i18n.NotYourTurn)
	case errors.Is(err, app.ErrNotAPlayer):
		return p.Sprintf(i18n.Spectator)
	case errors.Is(err, domain.ErrIllegalMove):
		return p.Sprintf(i18n.IllegalMove)
	case errors.Is(err, domain.ErrGameOver):
		return p.Sprintf(i18n.GameIsOver)
	default:
		return p.Sprintf(i18n.InvalidInput)
	}
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.svc.Get(id); !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// In tests or non-EventSource requests, just acknowledge headers and return
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, unsub, err := h.svc.Subscribe(ctx, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer unsub()
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	// Initial flush of headers
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			_, _ = fmt.Fprintf(w, "event: board\n")
			_, _ = fmt.Fprintf(w, "data: %s\n\n", sseData(b))
			flusher.Flush()
		}
	}
}

// sseData folds a fragment onto one line; SSE data fields end at newlines.
func sseData(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == '\n' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return out
}
