package lastfm

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"
)

// AuthCallbackPort is the local port Last.fm redirects back to after the
// user authorizes; it must match the callback URL of the API account.
const AuthCallbackPort = 18632

const callbackPageTemplate = `<!DOCTYPE html>
<html>
<head><title>Resona</title></head>
<body style="font-family: sans-serif; max-width: 32em; margin: 4em auto;">
<h2>%s</h2>
<p>%s</p>
</body>
</html>`

// AuthServer receives the browser redirect that completes the desktop
// authorization flow.
type AuthServer struct {
	server    *http.Server
	tokenChan chan string
	done      chan struct{}
}

// StartAuthServer listens on AuthCallbackPort for the authorization
// redirect. The token arrives on TokenChan; an empty string means Last.fm
// redirected without one.
func StartAuthServer() (*AuthServer, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", AuthCallbackPort))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", AuthCallbackPort, err)
	}

	as := &AuthServer{
		tokenChan: make(chan string, 1),
		done:      make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", as.handleCallback)
	as.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		_ = as.server.Serve(listener)
		close(as.done)
	}()

	return as, nil
}

func (as *AuthServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	w.Header().Set("Content-Type", "text/html")
	if token == "" {
		fmt.Fprintf(w, callbackPageTemplate,
			"Authorization failed",
			"Last.fm did not send a token. Close this tab and try again.")
	} else {
		fmt.Fprintf(w, callbackPageTemplate,
			"Resona is authorized",
			"You can close this tab and return to the terminal.")
	}

	select {
	case as.tokenChan <- token:
	default:
	}
}

// TokenChan returns the channel that receives the auth token.
func (as *AuthServer) TokenChan() <-chan string {
	return as.tokenChan
}

// Shutdown stops the auth server.
func (as *AuthServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = as.server.Shutdown(ctx)
	<-as.done
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
