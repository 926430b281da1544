package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/teamkeeper/internal/client/client"
	"github.com/dmitrijs2005/teamkeeper/internal/client/config"
	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
	"github.com/dmitrijs2005/teamkeeper/internal/client/services"
	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	"github.com/dmitrijs2005/teamkeeper/internal/passphrase"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes/redesigned"
	"github.com/dmitrijs2005/teamkeeper/internal/sessionkeys"
	"github.com/gofrs/flock"
)

// ErrSyncInProgress is returned when another client holds the sync lock.
var ErrSyncInProgress = errors.New("another sync is in progress")

type sessionKeysService interface {
	Unlock(ctx context.Context, passphrase []byte) error
	Unlocked() bool
	Lock()
	Ping(ctx context.Context) error
	LoadLocal(ctx context.Context) (bool, error)
	Fetch(ctx context.Context) error
	Put(foreignModel, foreignID, sessionKey string) bool
	Prune(ctx context.Context, id string) error
	Save(ctx context.Context) error
	Cache() *sessionkeys.MemoryCache
}

type resourceTypesService interface {
	Seed(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*models.ResourceType, error)
	Actions(slug string) ([]resourcetypes.UpdateActionMetadata, error)
	TypeAfterUpdate(ctx context.Context, typeID string, action resourcetypes.UpdateAction) (*models.ResourceType, error)
	EditActions(slug string) ([]redesigned.UpdateActionMetadata, error)
	TypeAfterEdit(ctx context.Context, typeID string, action redesigned.UpdateAction) (*models.ResourceType, error)
}

type App struct {
	config        *config.Config
	logger        logging.Logger
	out           io.Writer
	sessionKeys   sessionKeysService
	resourceTypes resourceTypesService
	lock          *flock.Flock
	askPassphrase func(w io.Writer) ([]byte, error)
	closers       []func() error
}

func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.AccessToken)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	sk := services.NewSessionKeysService(apiClient, repos.DB, passphrase.NewMemoryCache(c.PassphraseTTL), l)
	rt := services.NewResourceTypesService(repos.ResourceTypes, resourcetypes.NewAdjacencyGraph(), redesigned.NewGraph(), l)

	return &App{
		config:        c,
		logger:        l,
		out:           os.Stdout,
		sessionKeys:   sk,
		resourceTypes: rt,
		lock:          flock.New(c.DatabasePath + ".lock"),
		askPassphrase: GetPassphrase,
		closers:       []func() error{apiClient.Close, repos.Close},
	}, nil
}

// Close wipes the in-memory secrets and releases the client and database.
func (a *App) Close() error {
	if a.sessionKeys != nil {
		a.sessionKeys.Lock()
	}
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "sync":
		return a.withLock(ctx, a.sync)
	case "put":
		if len(args) != 3 {
			return fmt.Errorf("usage: put <model> <id> <session-key>")
		}
		return a.withLock(ctx, func(ctx context.Context) error {
			return a.put(ctx, args[0], args[1], args[2])
		})
	case "prune":
		if len(args) != 1 {
			return fmt.Errorf("usage: prune <bundle-id>")
		}
		return a.withLock(ctx, func(ctx context.Context) error {
			return a.prune(ctx, args[0])
		})
	case "types":
		if len(args) > 1 {
			return fmt.Errorf("usage: types [%s]", strings.Join(contenttypes.SlugSetNames, "|"))
		}
		set := "all"
		if len(args) == 1 {
			set = args[0]
		}
		return a.types(ctx, set)
	case "actions":
		if len(args) != 1 {
			return fmt.Errorf("usage: actions <slug>")
		}
		return a.actions(args[0])
	case "transition":
		if len(args) != 2 {
			return fmt.Errorf("usage: transition <type-id|slug> <ACTION>")
		}
		return a.transition(ctx, args[0], args[1])
	case "edits":
		if len(args) != 1 {
			return fmt.Errorf("usage: edits <slug>")
		}
		return a.edits(args[0])
	case "edit":
		if len(args) != 2 {
			return fmt.Errorf("usage: edit <type-id|slug> <ACTION>")
		}
		return a.edit(ctx, args[0], args[1])
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Available commands: sync, put, prune, types, actions, transition, edits, edit, help")
}

func (a *App) withLock(ctx context.Context, fn func(ctx context.Context) error) error {
	locked, err := a.lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", a.lock.Path(), err)
	}
	if !locked {
		return ErrSyncInProgress
	}
	defer func() {
		if err := a.lock.Unlock(); err != nil {
			a.logger.Warn(ctx, "error releasing lock", "path", a.lock.Path(), "error", err)
		}
	}()

	return fn(ctx)
}
