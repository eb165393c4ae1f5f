package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/yosimar43/resona/internal/config"
	"github.com/yosimar43/resona/internal/errmsg"
	"github.com/yosimar43/resona/internal/lastfm"
	"github.com/yosimar43/resona/internal/player"
	"github.com/yosimar43/resona/internal/queue"
	"github.com/yosimar43/resona/internal/scanner"
	"github.com/yosimar43/resona/internal/ui"
)

func main() {
	authFlag := flag.Bool("lastfm-auth", false, "run the Last.fm authorization flow and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	logger := newLogger()

	if *authFlag {
		if err := runLastfmAuth(cfg); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLastfmAuth, err))
			os.Exit(1)
		}
		return
	}

	folder := cfg.MusicFolder
	if flag.NArg() > 0 {
		folder = flag.Arg(0)
	}
	if folder == "" {
		folder, err = os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
			os.Exit(1)
		}
	}

	fmt.Printf("Scanning %s...\n", folder)
	tracks, err := scanner.New(logger).Scan(folder, func(p scanner.Progress) {
		fmt.Printf("\r%d tracks found", p.Found)
	})
	if err != nil && len(tracks) == 0 {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpScanFolder, folder, err))
		os.Exit(1)
	}

	q := queue.New(queue.WithLogger(logger))
	defer q.Close()

	q.SetQueue(tracks, 0, cfg.SortOnLoad)
	q.SetVolume(cfg.Volume)

	if cfg.HasLastfmConfig() && cfg.Lastfm.SessionKey != "" {
		client := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)
		client.SetSessionKey(cfg.Lastfm.SessionKey)
		watcher := lastfm.NewWatcher(client, q, logger)
		watcher.Start()
		defer watcher.Stop()
	}

	mock := player.NewMock()
	stopClock := startPlayerClock(mock)
	defer stopClock()

	p := tea.NewProgram(ui.New(q, mock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

// newLogger writes structured logs to resona.log when RESONA_DEBUG is set,
// and discards them otherwise so the TUI stays clean.
func newLogger() *log.Logger {
	if os.Getenv("RESONA_DEBUG") == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile("resona.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger
}

// startPlayerClock drives the simulated backend forward once per second.
func startPlayerClock(mock *player.Mock) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				mock.Advance(time.Second)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// runLastfmAuth walks the desktop authorization flow: open the authorize
// page in a browser, wait for the callback, exchange the token and print
// the session key for the config file.
func runLastfmAuth(cfg *config.Config) error {
	if !cfg.HasLastfmConfig() {
		return fmt.Errorf("set lastfm.api_key and lastfm.api_secret in the config first")
	}

	client := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)

	token, err := client.GetToken()
	if err != nil {
		return err
	}

	server, err := lastfm.StartAuthServer()
	if err != nil {
		return err
	}
	defer server.Shutdown()

	authURL := client.GetAuthURL(token)
	fmt.Println("Opening browser for Last.fm authorization...")
	fmt.Println("If it does not open, visit:", authURL)
	_ = lastfm.OpenBrowser(authURL)

	select {
	case <-server.TokenChan():
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timed out waiting for authorization")
	}

	username, sessionKey, err := client.GetSession(token)
	if err != nil {
		return err
	}

	fmt.Printf("Authorized as %s.\n", username)
	fmt.Println("Add this to your config.toml under [lastfm]:")
	fmt.Printf("session_key = %q\n", sessionKey)
	return nil
}
