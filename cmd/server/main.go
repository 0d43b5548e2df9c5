// dungeon-server hosts one independent game per SSH session and,
// optionally, per WebSocket connection. Build:
//
//	go build -o dungeon-server ./cmd/server
//
// Usage:
//
//	./dungeon-server [-port 2222] [-key server_host_key] [-ws :8080]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode"

	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/generate"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/netplay"
	"dungeon-kernel/internal/render"
	internalssh "dungeon-kernel/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	wsAddr := flag.String("ws", "", "Also serve WebSocket play on this address, e.g. :8080")
	maxSessions := flag.Int("max-sessions", 32, "Maximum concurrent games")
	seed := flag.Int64("seed", 0, "Dungeon seed for every game (0 = random per game)")
	debug := flag.Bool("debug", false, "Check world invariants after every tick")
	palette := flag.String("palette", "classic", "Terrain palette (classic, amber)")
	corridors := flag.String("corridors", "lshaped", "Corridor style (lshaped, zshaped, straight)")
	flag.Parse()

	logger.Init(os.Stdout)

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	cfg.Debug = *debug
	style, err := generate.ParseCorridorStyle(*corridors)
	if err != nil {
		logger.Log.WithError(err).Fatal("flags")
	}
	cfg.Corridors = style
	pal := render.PaletteNamed(*palette)

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("host key")
	}

	pool := newSlots(*maxSessions)
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, pal, pool)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every session gets a fresh single-player game.
		HostSigners: []gossh.Signer{signer},
	}

	var wsSrv *http.Server
	if *wsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", pool.limit(netplay.NewHandler(cfg, pal)))
		wsSrv = &http.Server{Addr: *wsAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			logger.Log.WithField("addr", *wsAddr).Info("websocket listening")
			if err := wsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.WithError(err).Fatal("websocket server")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
		if wsSrv != nil {
			_ = wsSrv.Shutdown(shutdown)
		}
	}()

	logger.Log.WithFields(logrus.Fields{"port": *port, "max_sessions": *maxSessions}).Info("ssh listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("ssh server")
	}
}

// handleSession runs one game for the life of the SSH connection.
func handleSession(s gossh.Session, cfg game.Config, pal render.Palette, pool *slots) {
	log := logger.Log.WithFields(logrus.Fields{
		"user":   sanitizeName(s.User()),
		"remote": s.RemoteAddr().String(),
	})
	if !pool.acquire() {
		fmt.Fprintln(s, "The dungeon is full. Try again later.")
		log.Warn("session rejected: server full")
		return
	}
	defer pool.release()

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.WithError(err).Warn("screen")
		return
	}
	defer screen.Fini()

	g, err := game.New(screen, cfg, pal)
	if err != nil {
		log.WithError(err).Error("new game")
		return
	}
	log = log.WithField("seed", g.Engine().Config().Seed)
	log.Info("session started")
	if err := g.Run(s.Context()); err != nil {
		log.WithError(err).Error("game ended with error")
		return
	}
	log.WithField("turns", g.Engine().Turns()).Info("session ended")
}

// slots bounds the number of concurrent games.
type slots struct {
	sem chan struct{}
}

func newSlots(n int) *slots {
	if n < 1 {
		n = 1
	}
	return &slots{sem: make(chan struct{}, n)}
}

func (s *slots) acquire() bool {
	select {
	case s.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *slots) release() { <-s.sem }

// limit rejects requests with 503 while every slot is taken.
func (s *slots) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.acquire() {
			http.Error(w, "server full", http.StatusServiceUnavailable)
			return
		}
		defer s.release()
		next.ServeHTTP(w, r)
	})
}

// sanitizeName strips control characters from an SSH user name and caps it
// at 16 bytes without splitting a rune, so it is safe to log.
func sanitizeName(name string) string {
	const maxBytes = 16
	out := make([]rune, 0, len(name))
	size := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		n := len(string(r))
		if size+n > maxBytes {
			break
		}
		out = append(out, r)
		size += n
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	logger.Log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "dungeon-kernel server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Log.WithError(err).Warn("host key not persisted")
	}
	return signer, nil
}
