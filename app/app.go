package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"

	curvekeeper "github.com/paw-chain/amm/x/bondingcurve/keeper"
	curvetypes "github.com/paw-chain/amm/x/bondingcurve/types"
	dexkeeper "github.com/paw-chain/amm/x/dex/keeper"
	dextypes "github.com/paw-chain/amm/x/dex/types"
	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

const (
	// Name is the application name, also used as the database name.
	Name = "amm"
)

// App hosts the ledger, dex and bonding curve keepers over one commit
// multistore. Mutating calls are serialized by Execute and applied
// atomically; queries run concurrently with each other.
type App struct {
	mu sync.RWMutex

	cfg    Config
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey

	LedgerKeeper *ledgerkeeper.Keeper
	DexKeeper    *dexkeeper.Keeper
	CurveKeeper  *curvekeeper.Keeper

	invariants *invariantRegistry
	router     *msgRouter
	queries    *queryRouter
}

// New opens the configured database, mounts one store per module and wires
// the keepers.
func New(cfg Config, logger log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := dbm.NewDB(Name, dbm.BackendType(cfg.DBBackend), filepath.Join(cfg.Home, "data"))
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBBackend, err)
	}

	keys := storetypes.NewKVStoreKeys(ledgertypes.StoreKey, dextypes.StoreKey, curvetypes.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load latest version: %w", err)
	}

	app := &App{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		cms:        cms,
		keys:       keys,
		invariants: newInvariantRegistry(),
	}

	app.LedgerKeeper = ledgerkeeper.NewKeeper(keys[ledgertypes.StoreKey])
	app.DexKeeper = dexkeeper.NewKeeper(keys[dextypes.StoreKey], app.LedgerKeeper, cfg.Dex.Owner)
	app.CurveKeeper = curvekeeper.NewKeeper(keys[curvetypes.StoreKey], app.LedgerKeeper)

	app.router = newMsgRouter(*app.LedgerKeeper, *app.DexKeeper, *app.CurveKeeper)
	app.queries = newQueryRouter(*app.DexKeeper, *app.CurveKeeper)

	ledgerkeeper.RegisterInvariants(app.invariants, *app.LedgerKeeper)
	dexkeeper.RegisterInvariants(app.invariants, *app.DexKeeper)
	curvekeeper.RegisterInvariants(app.invariants, *app.CurveKeeper)

	logger.Info("application loaded",
		"db_backend", cfg.DBBackend,
		"version", cms.LastCommitID().Version,
		"owner", cfg.Dex.Owner,
	)
	return app, nil
}

// Logger returns the application logger.
func (app *App) Logger() log.Logger {
	return app.logger
}

// Config returns the configuration the application was built with.
func (app *App) Config() Config {
	return app.cfg
}

// LastVersion returns the latest committed store version.
func (app *App) LastVersion() int64 {
	return app.cms.LastCommitID().Version
}

func (app *App) newContext(ctx context.Context, ms storetypes.MultiStore) sdk.Context {
	header := cmtproto.Header{Height: app.cms.LastCommitID().Version + 1}
	return sdk.NewContext(ms, header, false, app.logger).WithContext(ctx)
}

// Execute runs fn against a cache of the current state while holding the
// write lock. The cache is written back only if fn returns nil, so a failed
// call leaves no trace. The events fn emitted are returned on success.
func (app *App) Execute(ctx context.Context, fn func(ctx sdk.Context) error) (events sdk.Events, err error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	cache := app.cms.CacheMultiStore()
	sdkCtx := app.newContext(ctx, cache)

	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("recovered panic in execute", "panic", r)
			events, err = nil, fmt.Errorf("execute: recovered panic: %v", r)
		}
	}()

	if err := fn(sdkCtx); err != nil {
		return nil, err
	}
	cache.Write()
	return sdkCtx.EventManager().Events(), nil
}

// Query runs a read-only fn against the current state. Writes made by fn are
// discarded.
func (app *App) Query(ctx context.Context, fn func(ctx sdk.Context) error) error {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return fn(app.newContext(ctx, app.cms.CacheMultiStore()))
}

// Commit persists the current state as a new store version.
func (app *App) Commit() storetypes.CommitID {
	app.mu.Lock()
	defer app.mu.Unlock()

	id := app.cms.Commit()
	app.logger.Debug("committed state", "version", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return id
}

// AssertInvariants runs every registered invariant and reports the broken ones.
func (app *App) AssertInvariants(ctx context.Context) error {
	return app.Query(ctx, func(sdkCtx sdk.Context) error {
		return app.invariants.assert(sdkCtx)
	})
}

// Gatherer returns the registry the module metrics are published on, or an
// empty one when telemetry is disabled.
func (app *App) Gatherer() prometheus.Gatherer {
	if !app.cfg.Telemetry.Enabled {
		return prometheus.NewRegistry()
	}
	return prometheus.DefaultGatherer
}

// Close releases the underlying database.
func (app *App) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	return app.db.Close()
}

type invariantRoute struct {
	module    string
	route     string
	invariant sdk.Invariant
}

// invariantRegistry collects module invariants the way the crisis module does.
type invariantRegistry struct {
	routes []invariantRoute
}

var _ sdk.InvariantRegistry = (*invariantRegistry)(nil)

func newInvariantRegistry() *invariantRegistry {
	return &invariantRegistry{}
}

// RegisterRoute implements sdk.InvariantRegistry.
func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, invariantRoute{module: moduleName, route: route, invariant: invar})
}

// Routes returns the registered routes as module/route, sorted.
func (r *invariantRegistry) Routes() []string {
	out := make([]string, 0, len(r.routes))
	for _, ir := range r.routes {
		out = append(out, ir.module+"/"+ir.route)
	}
	sort.Strings(out)
	return out
}

func (r *invariantRegistry) assert(ctx sdk.Context) error {
	var broken []string
	for _, ir := range r.routes {
		if msg, stop := ir.invariant(ctx); stop {
			broken = append(broken, msg)
		}
	}
	if len(broken) > 0 {
		return errors.New(strings.Join(broken, "\n"))
	}
	return nil
}

// InvariantRoutes lists the registered invariants as module/route.
func (app *App) InvariantRoutes() []string {
	return app.invariants.Routes()
}
