// mistery-server hosts one independent game per SSH connection. Build:
//
//	go build -o mistery-server ./cmd/server
//
// Usage:
//
//	./mistery-server [--config mistery.yaml]
//
// Then connect with:
//
//	ssh -t -p 2222 yourname@localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"mistery/internal/config"
	"mistery/internal/game"
	"mistery/internal/logger"
	internalssh "mistery/internal/ssh"
	"mistery/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log)
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed; continuing without traces")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: func(s gossh.Session) {
			handleSession(cfg, s)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any user may connect; the SSH user name becomes the hero's name.
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("server shutdown")
		}
	}()

	log.WithField("port", cfg.Server.Port).Info("SSH server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.WithError(err).Fatal("listen")
	}
}

// allowedTerms lists the TERM values a client may select. Anything else
// falls back to xterm-256color so a client cannot point terminfo at an
// arbitrary name.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu guards os.Setenv("TERM") around screen creation, since terminfo
// lookup reads the process environment.
var termMu sync.Mutex

// maxNameBytes bounds a player name as shown in the combat log.
const maxNameBytes = 16

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sessionTerm returns the client's TERM if it is allowed.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// handleSession runs one game for the life of the connection.
func handleSession(cfg *config.Config, s gossh.Session) {
	log := logger.Log.WithFields(logrus.Fields{
		"session": uuid.New().String(),
		"user":    sanitizeName(s.User()),
		"remote":  s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	term := pty.Term
	if !allowedTerms[term] {
		term = sessionTerm(s.Environ())
	}

	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		log.WithError(err).Warn("terminal setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Warn("screen init failed")
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log = log.WithField("seed", seed)
	log.Info("session started")

	engine, err := game.NewEngine(s.Context(), cfg, mrand.New(mrand.NewSource(seed)), log)
	if err != nil {
		screen.Fini()
		log.WithError(err).Error("engine setup failed")
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		return
	}
	engine.SetPlayerName(sanitizeName(s.User()))

	err = game.New(screen, engine, cfg, log).Run(s.Context())
	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Warn("session ended with error")
		return
	}
	log.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "mistery server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		log.WithError(err).Warn("host key not persisted")
	}
	return signer, nil
}
