package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaminalder/codex-dominoes/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrNotFound   = errors.New("game not found")
	ErrNotAPlayer = errors.New("not a player")
)

// GameFactory deals a fresh game.
type GameFactory func() *domain.Game

// GameState is the snapshot handed out for one game.
type GameState struct {
	ID      string
	View    domain.View
	Player  string
	Created time.Time
	Updated time.Time
}

// Finished reports whether the game has an outcome.
func (gs GameState) Finished() bool { return gs.View.Phase == domain.Over }

type session struct {
	id      string
	game    *domain.Game
	player  string
	created time.Time
	updated time.Time
}

func (s *session) snapshot() GameState {
	return GameState{
		ID:      s.id,
		View:    s.game.View(),
		Player:  s.player,
		Created: s.created,
		Updated: s.updated,
	}
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games and subscribers. Each game belongs to one human
// seat; the computer side is driven by the game's own strategy.
type Service struct {
	mu      sync.Mutex
	games   map[string]*session
	subs    map[string]map[*subscriber]struct{}
	newGame GameFactory
	render  func(GameState) []byte
	logger  zerolog.Logger

	// watchers counts live context watchers, one per subscription.
	watchers sync.WaitGroup
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService(factory GameFactory) *Service { return NewServiceWithRenderer(factory, nil) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(factory GameFactory, renderer func(GameState) []byte) *Service {
	if renderer == nil {
		renderer = func(gs GameState) []byte { return nil }
	}
	return &Service{
		games:   make(map[string]*session),
		subs:    make(map[string]map[*subscriber]struct{}),
		newGame: factory,
		render:  renderer,
		logger:  zerolog.Nop(),
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(gs GameState) []byte { return nil }
		return
	}
	s.render = renderer
}

// SetLogger replaces the service logger.
func (s *Service) SetLogger(l zerolog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l.With().Str("component", "app.Service").Logger()
}

// CreateGame deals and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	sess := &session{id: uuid.NewString(), game: s.newGame(), created: now, updated: now}
	s.games[sess.id] = sess
	s.logger.Info().Str("game_id", sess.id).Stringer("first", sess.game.Turn()).Msg("Game created")
	gs := sess.snapshot()
	return &gs, nil
}

// Get returns a snapshot of the game if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	if !ok {
		return nil, false
	}
	gs := sess.snapshot()
	return &gs, true
}

// Join gives the human seat to playerID if it is free or already theirs.
// Anyone else watches: seated is false.
func (s *Service) Join(id, playerID string) (seated bool, gs *GameState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	if !ok {
		return false, nil, ErrNotFound
	}
	if sess.player == "" || sess.player == playerID {
		sess.player = playerID
		seated = true
	}
	sess.updated = time.Now()
	snap := sess.snapshot()
	return seated, &snap, nil
}

// Play validates the seat, applies a human command and broadcasts.
func (s *Service) Play(id, playerID string, cmd domain.MoveCommand) (*GameState, error) {
	return s.apply(id, playerID, func(g *domain.Game) error {
		return g.PlayHuman(cmd)
	})
}

// ComputerTurn lets the computer move in a game the player is seated in.
func (s *Service) ComputerTurn(id, playerID string) (*GameState, error) {
	return s.apply(id, playerID, func(g *domain.Game) error {
		_, err := g.PlayComputer()
		return err
	})
}

func (s *Service) apply(id, playerID string, move func(*domain.Game) error) (*GameState, error) {
	s.mu.Lock()
	sess, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	if sess.player == "" || sess.player != playerID {
		s.mu.Unlock()
		return nil, ErrNotAPlayer
	}
	if err := move(sess.game); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	sess.updated = time.Now()

	cp := sess.snapshot()
	if cp.Finished() {
		s.logger.Info().Str("game_id", id).Stringer("outcome", cp.View.Outcome).Int("turns", cp.View.Turns).Msg("Game finished")
	}
	payload := s.render(cp)
	// Sends never block, so fan-out happens under the lock and cannot race
	// an unsubscribe closing the channel.
	dropped := 0
	for sub := range s.subs[id] {
		select {
		case sub.ch <- payload:
		default:
			sub.close()
			delete(s.subs[id], sub)
			dropped++
		}
	}
	s.mu.Unlock()

	if dropped > 0 {
		s.logger.Debug().Str("game_id", id).Int("dropped", dropped).Msg("Dropped slow subscribers")
	}
	return &cp, nil
}

// Subscribe registers a subscriber for an existing game. Returns a channel
// and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return nil, nil, ErrNotFound
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	done := make(chan struct{})
	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			close(done)
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	s.watchers.Add(1)
	go func() {
		defer s.watchers.Done()
		select {
		case <-ctx.Done():
			unsub()
		case <-done:
		}
	}()
	return sub.ch, unsub, nil
}
