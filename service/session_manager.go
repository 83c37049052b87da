package service

import (
	"context"
	"errors"
	"sync"

	"github.com/beka-birhanu/lightning-maze/maze"
	"github.com/beka-birhanu/lightning-maze/service/i"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxSessions = 64
)

var (
	ErrSessionNotFound  = errors.New("maze session not found")
	ErrTooManySessions  = errors.New("too many maze sessions")
	ErrAlreadyAnimating = errors.New("maze session is already animating")
)

var _ i.MazeSessionManager = &SessionManager{}

// MazeFactory generates a maze for a new session.
type MazeFactory func(width, height uint32, pV, pH float32) (*maze.Maze, error)

// session guards one maze so that at most one caller ticks it at a time.
type session struct {
	maze   *maze.Maze
	cancel context.CancelFunc // Set while an animation is running.
	sync.Mutex
}

// Step implements Stepper.
func (s *session) Step() Frame {
	s.Lock()
	defer s.Unlock()
	s.maze.Tick()
	return NewFrame(s.maze)
}

// SessionManager holds live mazes keyed by session ID.
type SessionManager struct {
	sessions    map[uuid.UUID]*session
	mazeFactory MazeFactory
	animator    *Animator
	maxSessions int
	logger      *logrus.Logger
	ctx         context.Context
	stop        context.CancelFunc
	wg          sync.WaitGroup
	sync.RWMutex
}

// Config holds the collaborators of a SessionManager.
type Config struct {
	MazeFactory MazeFactory
	Animator    *Animator
	MaxSessions int
	Logger      *logrus.Logger
}

// NewSessionManager creates a SessionManager. A nil MazeFactory generates
// mazes with maze.New and default options.
func NewSessionManager(c *Config) (*SessionManager, error) {
	if c == nil || c.Animator == nil {
		return nil, errors.New("session manager requires an animator")
	}

	factory := c.MazeFactory
	if factory == nil {
		factory = func(width, height uint32, pV, pH float32) (*maze.Maze, error) {
			return maze.New(width, height, pV, pH, nil)
		}
	}

	maxSessions := c.MaxSessions
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}

	logger := c.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ctx, stop := context.WithCancel(context.Background())
	return &SessionManager{
		sessions:    make(map[uuid.UUID]*session),
		mazeFactory: factory,
		animator:    c.Animator,
		maxSessions: maxSessions,
		logger:      logger,
		ctx:         ctx,
		stop:        stop,
	}, nil
}

// NewSession implements i.MazeSessionManager.
func (g *SessionManager) NewSession(p i.MazeParams) (uuid.UUID, error) {
	m, err := g.mazeFactory(p.Width, p.Height, p.VerticalOpen, p.HorizontalOpen)
	if err != nil {
		g.logger.WithError(err).Error("creating maze for a new session")
		return uuid.Nil, err
	}

	g.Lock()
	defer g.Unlock()
	if len(g.sessions) >= g.maxSessions {
		g.logger.WithField("sessions", len(g.sessions)).Error("session limit reached")
		return uuid.Nil, ErrTooManySessions
	}

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}
	g.sessions[sessionID] = &session{maze: m}

	g.logger.WithFields(logrus.Fields{
		"session":  sessionID,
		"width":    m.Width(),
		"height":   m.Height(),
		"entrance": m.Entrance().String(),
	}).Info("started new maze session")
	return sessionID, nil
}

// Snapshot implements i.MazeSessionManager.
func (g *SessionManager) Snapshot(id uuid.UUID) (maze.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return maze.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.maze.Snapshot(), nil
}

// Render implements i.MazeSessionManager.
func (g *SessionManager) Render(id uuid.UUID) (string, error) {
	s, err := g.session(id)
	if err != nil {
		return "", err
	}

	s.Lock()
	defer s.Unlock()
	return s.maze.String(), nil
}

// Tick implements i.MazeSessionManager.
func (g *SessionManager) Tick(id uuid.UUID, steps int) (maze.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return maze.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	for n := 0; n < max(steps, 1) && s.maze.State() == maze.Unsolved; n++ {
		s.maze.Tick()
	}
	return s.maze.Snapshot(), nil
}

// Clear implements i.MazeSessionManager.
func (g *SessionManager) Clear(id uuid.UUID) (maze.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return maze.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.maze.ClearCells()
	return s.maze.Snapshot(), nil
}

// Regenerate implements i.MazeSessionManager.
func (g *SessionManager) Regenerate(id uuid.UUID) (maze.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return maze.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	if err := s.maze.Regenerate(); err != nil {
		g.logger.WithError(err).WithField("session", id).Error("regenerating maze")
		return maze.Snapshot{}, err
	}
	return s.maze.Snapshot(), nil
}

// Animate implements i.MazeSessionManager.
func (g *SessionManager) Animate(id uuid.UUID) error {
	s, err := g.session(id)
	if err != nil {
		return err
	}

	s.Lock()
	if s.cancel != nil {
		s.Unlock()
		return ErrAlreadyAnimating
	}
	ctx, cancel := context.WithCancel(g.ctx)
	s.cancel = cancel
	s.Unlock()

	g.wg.Add(1)
	go g.animate(ctx, id, s)
	return nil
}

// animate runs one session's animation to completion or cancellation.
func (g *SessionManager) animate(ctx context.Context, id uuid.UUID, s *session) {
	defer g.wg.Done()
	log := g.logger.WithField("session", id)

	final, err := g.animator.Run(ctx, s, func(f Frame) {
		log.WithFields(logrus.Fields{"tick": f.Tick, "cells": len(f.Cells)}).Debug("frame")
	})

	s.Lock()
	s.cancel = nil
	s.Unlock()

	if err != nil {
		log.WithError(err).Info("animation stopped")
		return
	}
	log.WithFields(logrus.Fields{
		"state": final.State.String(),
		"ticks": final.Tick,
		"path":  len(final.Path),
	}).Info("animation finished")
}

// Remove implements i.MazeSessionManager.
func (g *SessionManager) Remove(id uuid.UUID) error {
	g.Lock()
	s, ok := g.sessions[id]
	if !ok {
		g.Unlock()
		return ErrSessionNotFound
	}
	delete(g.sessions, id)
	g.Unlock()

	s.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.Unlock()

	g.logger.WithField("session", id).Info("removed maze session")
	return nil
}

// StopAll cancels every running animation and waits for them to return.
func (g *SessionManager) StopAll() {
	g.stop()
	g.wg.Wait()
}

func (g *SessionManager) session(id uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
