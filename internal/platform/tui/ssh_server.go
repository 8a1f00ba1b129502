package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
	"github.com/vovakirdan/bricks/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.bricks/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the game over SSH. Every session plays its own game; the
// sessions only share the in-memory run log.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Open the shared run log
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".bricks", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.TickRate = s.config.TickRate

	model := NewSessionModel(cfg, Options{
		Store:     s.store,
		Logger:    s.logger.With("user", sshSession.User()),
		Session:   sshSession.User(),
		AllowBack: true,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("server error", "error", err)
			s.closeStore()
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and discards the run log.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close run log", "error", err)
		}
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages one session's flow: menu -> game -> menu.
type SessionModel struct {
	config    core.RuntimeConfig
	opts      Options
	menu      MenuModel
	gameModel *Model
	quitting  bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu's own quit command is dropped; the session keeps running

	game, err := registry.Create(selected.GameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.opts.Logger.Error("cannot create game", "variant", selected.GameID, "error", err)
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	m.config = m.menu.Config()
	gameModel := NewModel(game, m.config, m.opts)
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}
