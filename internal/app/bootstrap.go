package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"clusterctl/internal/analysis"
	"clusterctl/internal/config"
	"clusterctl/internal/execute"
	"clusterctl/internal/topology"
	"clusterctl/pkg/logging"
)

// Executor is the execution collaborator: locality checks, helper commands
// and file existence checks.
type Executor interface {
	topology.LocalChecker
	CaptureCmd(ctx context.Context, command string) ([]string, error)
	Exists(n *topology.Node, path string) bool
}

// PluginHost is the plugin collaborator.
type PluginHost interface {
	AddNodeKeys(schema *topology.Schema)
	AddAnalyses(reg *analysis.Registry)
}

// Option customizes collaborators of an Application.
type Option func(*Application)

// WithExecutor replaces the local executor.
func WithExecutor(e Executor) Option {
	return func(a *Application) { a.executor = e }
}

// WithResolver replaces the system host resolver.
func WithResolver(r topology.Resolver) Option {
	return func(a *Application) { a.resolver = r }
}

// WithEnvironment replaces os.Getenv and os.Hostname for derived defaults.
func WithEnvironment(getenv func(string) string, hostname func() (string, error)) Option {
	return func(a *Application) {
		a.getenv = getenv
		a.hostname = hostname
	}
}

// Application is the configuration context of one controller process. It
// owns the option store, the persisted state, the node topology and the
// analysis registry, and hands them to whoever needs them.
//
// Initialization has two explicit phases:
//
//  1. NewApplication: static configuration and option defaults
//  2. InitPostPlugins: node topology, persisted state and analyses, after
//     plugins have had a chance to extend the node schema
//
// Example usage:
//
//	cfg := app.NewConfig("/opt/monitor", "", version, false)
//	a, err := app.NewApplication(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := a.InitPostPlugins(ctx, plugins); err != nil {
//	    return err
//	}
//	workers := a.Topology().Nodes("workers", true)
type Application struct {
	config *Config

	store    *config.Store
	state    *config.State
	schema   *topology.Schema
	topology *topology.Topology
	analysis *analysis.Registry

	executor Executor
	resolver topology.Resolver
	getenv   func(string) string
	hostname func() (string, error)

	initialized bool
}

// NewApplication runs the first bootstrap phase:
//
//  1. Configures logging based on debug settings
//  2. Reads the static configuration file
//  3. Seeds basedir and version, then every option descriptor default
//  4. Derives mail, home, operating system and time command defaults
//
// Any fatal condition aborts the bootstrap and is returned.
func NewApplication(ctx context.Context, cfg *Config, opts ...Option) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.LogLevel != "" {
		level, ok := logging.ParseLevel(cfg.LogLevel)
		if !ok {
			return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
		}
		appLogLevel = level
	}
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.Init(appLogLevel, cfg.LogOutput)

	a := &Application{
		config:   cfg,
		store:    config.NewStore(),
		resolver: topology.NetResolver{},
		getenv:   os.Getenv,
		hostname: os.Hostname,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.executor == nil {
		a.executor = execute.NewLocal()
	}

	if err := a.store.LoadStatic(cfg.configPath()); err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from %s", cfg.configPath())
		return nil, err
	}

	if err := a.seedDefaults(ctx); err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize options")
		return nil, err
	}

	a.state = config.NewState(a.store, a.store.Get("statefile"))

	logging.Debug("Bootstrap", "static configuration ready (%d options)", len(a.store.Options(false)))
	return a, nil
}

type optionDefault struct {
	key   string
	value string
}

func (a *Application) seedDefaults(ctx context.Context) error {
	defaults := []optionDefault{
		{"basedir", a.config.BaseDir},
		{"version", a.config.Version},
	}
	for _, opt := range a.config.options() {
		if !opt.DontInit {
			defaults = append(defaults, optionDefault{strings.ToLower(opt.Name), opt.Default})
		}
	}

	hostname, err := a.hostname()
	if err != nil {
		logging.Warn("Bootstrap", "cannot determine hostname: %v", err)
		hostname = "localhost"
	}
	defaults = append(defaults,
		optionDefault{"mailto", a.getenv("USER")},
		optionDefault{"mailfrom", fmt.Sprintf("Cluster Control <clusterctl@%s>", hostname)},
		optionDefault{"home", a.getenv("HOME")},
	)

	for _, d := range defaults {
		if err := a.store.SetDefault(d.key, d.value); err != nil {
			return fmt.Errorf("option %s: %w", d.key, err)
		}
	}
	if err := a.store.SetDefault("mailalarmsto", a.store.Get("mailto")); err != nil {
		return fmt.Errorf("option mailalarmsto: %w", err)
	}

	lines, err := a.executor.CaptureCmd(ctx, "uname")
	if err != nil || len(lines) == 0 {
		return config.NewError(config.KindCommand, "", "cannot run uname").Wrap(err)
	}
	if err := a.store.SetDefault("os", strings.ToLower(strings.TrimSpace(lines[0]))); err != nil {
		return err
	}

	// Should be a GNU time for best results.
	lines, err = a.executor.CaptureCmd(ctx, "which time")
	if err != nil || len(lines) == 0 {
		logging.Warn("Bootstrap", "cannot find time command")
		return nil
	}
	return a.store.SetDefault("time", strings.TrimSpace(lines[0]))
}

// InitPostPlugins runs the second bootstrap phase: plugins extend the node
// schema, the node file and the state file are read, the standalone option
// is derived, and the analysis table is loaded and extended by plugins.
// plugins may be nil.
func (a *Application) InitPostPlugins(ctx context.Context, plugins PluginHost) error {
	if a.initialized {
		return errors.New("configuration already initialized")
	}

	a.schema = topology.DefaultSchema()
	if plugins != nil {
		plugins.AddNodeKeys(a.schema)
	}

	topo, err := topology.Load(ctx, a.store.Get("nodecfg"), topology.Params{
		Schema:   a.schema,
		Resolver: a.resolver,
		Local:    a.executor,
		Options:  a.store,
	})
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load node configuration")
		return err
	}

	if err := a.state.Load(); err != nil {
		logging.Error("Bootstrap", err, "Failed to load state")
		return err
	}

	standalone := "0"
	if len(topo.Nodes(string(topology.TypeStandalone), true)) > 0 {
		standalone = "1"
	}
	if err := a.store.SetDefault("standalone", standalone); err != nil {
		return err
	}

	reg := analysis.NewRegistry(a.state)
	if err := reg.Load(a.store.Get("analysiscfg")); err != nil {
		logging.Error("Bootstrap", err, "Failed to load analysis configuration")
		return err
	}
	if plugins != nil {
		plugins.AddAnalyses(reg)
	}

	// Make sure cron flag is cleared.
	a.store.Set("cron", "0")

	a.topology = topo
	a.analysis = reg
	a.initialized = true
	logging.Info("Bootstrap", "configuration initialized: %d nodes, %d analysis types", topo.Len(), len(reg.All()))
	return nil
}

// Store returns the option store.
func (a *Application) Store() *config.Store {
	return a.store
}

// State returns the persisted state.
func (a *Application) State() *config.State {
	return a.state
}

// Schema returns the node attribute schema, or nil before InitPostPlugins.
func (a *Application) Schema() *topology.Schema {
	return a.schema
}

// Topology returns the node topology, or nil before InitPostPlugins.
func (a *Application) Topology() *topology.Topology {
	return a.topology
}

// Analysis returns the analysis registry, or nil before InitPostPlugins.
func (a *Application) Analysis() *analysis.Registry {
	return a.analysis
}

// SaveState persists the dynamic variables.
func (a *Application) SaveState() error {
	if err := a.state.Save(); err != nil {
		logging.Warn("State", "can't write '%s': %v", a.state.Path(), err)
		return err
	}
	return nil
}
