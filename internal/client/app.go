package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xmppfed/go-keyhub/internal/adapter"
	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/stanza"
	"github.com/xmppfed/go-keyhub/internal/store"
)

// App is the command-line client. Each Run call executes a single command
// against the server, falling back to the local cache for reads when the
// server cannot be reached.
type App struct {
	server   adapter.ServerAdapter
	cache    store.CacheRepository
	registry *stanza.Registry
	logger   *logger.Logger

	session store.ClientSession

	in  io.Reader
	out io.Writer
}

// NewApp wires the client application from its server adapter and local
// cache. Output goes to stdout; "-" file arguments read from stdin.
func NewApp(server adapter.ServerAdapter, cache store.CacheRepository, log *logger.Logger) *App {
	return &App{
		server:   server,
		cache:    cache,
		registry: stanza.NewRegistry(append(omemo.Kinds(), extdisco.Kinds()...)...),
		logger:   log,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// Run restores the persisted session, then dispatches args[0] as the command
// name with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return errors.New("no command given")
	}

	session, err := a.cache.GetSession(ctx)
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return fmt.Errorf("restore session: %w", err)
	}
	a.session = session
	if session.Token != "" {
		a.server.SetToken(session.Token)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami()
	case "devices":
		return a.devices(ctx)
	case "publish-devices":
		return a.publishDevices(ctx, rest)
	case "bundle":
		return a.bundle(ctx, rest)
	case "publish-bundle":
		return a.publishBundle(ctx, rest)
	case "take-prekey":
		return a.takePreKey(ctx, rest)
	case "prekey-count":
		return a.preKeyCount(ctx, rest)
	case "services":
		return a.services(ctx, rest)
	case "push-services":
		return a.pushServices(ctx, rest)
	case "help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, titleStyle.Render("keyhub client"))
	fmt.Fprint(a.out, labelStyle.Render(`
  register <jid> <password> [name]   create a publisher account
  login <jid> <password>             log in and persist the session
  logout                             drop the persisted session
  whoami                             show the logged-in JID

  devices                            show the published device list
  publish-devices <file|->           upload a device list document
  bundle <device-id>                 show a device bundle
  publish-bundle <device-id> <file|->  upload a bundle document
  take-prekey <device-id>            consume one pre-key from a bundle
  prekey-count <device-id>           count the remaining pre-keys

  services [type]                    show the announced external services
  push-services <file|->             upload a services document
`))
}

// saveSession persists the adapter's current token under jid, replacing any
// previous session.
func (a *App) saveSession(ctx context.Context, jid string) {
	session := store.ClientSession{JID: jid, Token: a.server.Token()}
	if err := a.cache.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Msg("failed to persist session")
		fmt.Fprintln(a.out, warnStyle.Render("warning: session was not persisted, next command will need a fresh login"))
	}
	a.session = session
}

// readDocument returns the content of path, or of stdin when path is "-".
func (a *App) readDocument(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(path)
}
