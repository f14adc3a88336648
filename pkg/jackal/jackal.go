// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jackal

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/auth/token"
	"github.com/jackal-xmpp/allowners/pkg/c2s"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	"github.com/jackal-xmpp/allowners/pkg/host"
	"github.com/jackal-xmpp/allowners/pkg/log"
	"github.com/jackal-xmpp/allowners/pkg/module"
	"github.com/jackal-xmpp/allowners/pkg/module/allowners"
	"github.com/jackal-xmpp/allowners/pkg/muc"
	"github.com/jackal-xmpp/allowners/pkg/router"
	"github.com/jackal-xmpp/allowners/pkg/version"
)

const (
	defaultBootstrapTimeout = time.Minute
	defaultShutdownTimeout  = time.Second * 30

	envConfigFile = "ALLOWNERS_CONFIG_FILE"
)

const usageStr = `
Usage: allowners [options]
Server Options:
    --config <file>    Configuration file path
Common Options:
    --help             Show this message
    --version          Print version information
`

type starter interface {
	Start(ctx context.Context) error
}

type stopper interface {
	Stop(ctx context.Context) error
}

type startStopper interface {
	starter
	stopper
}

// Jackal is the root data structure of the allowners server.
type Jackal struct {
	output io.Writer
	args   []string

	hk          *hook.Hooks
	hosts       *host.Hosts
	verifier    *token.Verifier
	localRouter *c2s.LocalRouter
	router      *router.GlobalRouter
	muc         *muc.Service
	mods        *module.Modules
	allOwners   *allowners.AllOwners

	starters []starter
	stoppers []stopper

	waitStopCh chan os.Signal

	logger kitlog.Logger
}

// New makes a new Jackal.
func New(output io.Writer, args []string) *Jackal {
	return &Jackal{
		output:     output,
		args:       args,
		waitStopCh: make(chan os.Signal, 1),
	}
}

// Run starts the server, and blocks until it stops.
func (j *Jackal) Run() error {
	fs := flag.NewFlagSet("allowners", flag.ExitOnError)
	fs.SetOutput(j.output)

	var configFile string
	var showVersion, showUsage bool

	fs.BoolVar(&showUsage, "help", false, "Show this message")
	fs.BoolVar(&showVersion, "version", false, "Print version information.")
	fs.StringVar(&configFile, "config", "config.yaml", "Configuration file path.")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(j.output, "%s\n", usageStr)
	}
	_ = fs.Parse(j.args[1:])

	// print usage
	if showUsage {
		fs.Usage()
		return nil
	}
	// print version
	if showVersion {
		_, _ = fmt.Fprintf(j.output, "allowners version: %v\n", version.Version)
		return nil
	}
	// if present, override config file url with env var
	if envCfgFile := os.Getenv(envConfigFile); len(envCfgFile) > 0 {
		configFile = envCfgFile
	}
	// load configuration
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	// init logger
	j.logger = log.NewDefaultLogger(cfg.Logger.Level, cfg.Logger.Format)

	level.Info(j.logger).Log("msg", "allowners is starting...",
		"version", version.Version,
		"go_ver", runtime.Version(),
		"go_os", runtime.GOOS,
		"go_arch", runtime.GOARCH,
	)
	if err := j.init(cfg); err != nil {
		return err
	}
	// init HTTP server
	j.registerStartStopper(newHTTPServer(cfg.HTTPPort, j.logger))

	if err := j.bootstrap(); err != nil {
		return err
	}
	signal.Notify(j.waitStopCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for {
		sig := <-j.waitStopCh
		if sig != syscall.SIGHUP {
			level.Info(j.logger).Log("msg", "received stop signal... shutting down...",
				"signal", sig.String(),
			)
			return j.shutdown()
		}
		if err := j.reload(context.Background(), configFile); err != nil {
			level.Error(j.logger).Log("msg", "failed to reload configuration", "err", err)
		}
	}
}

func (j *Jackal) init(cfg *Config) error {
	// init hooks
	j.hk = hook.NewHooks()

	j.initHosts(cfg.Hosts, cfg.MUC.Host)
	j.initRouters(cfg.Token, cfg.MUC)

	return j.initModules(cfg.Modules)
}

func (j *Jackal) initHosts(configs host.Configs, mucHost string) {
	j.hosts = host.NewHosts(configs)
	j.hosts.RegisterConferenceHost(mucHost, j.hosts.DefaultHostName())
}

func (j *Jackal) initRouters(tokenCfg token.Config, mucCfg muc.Config) {
	j.verifier = token.NewVerifier(tokenCfg)
	if !j.verifier.IsEnabled() {
		level.Warn(j.logger).Log("msg", "session token verification disabled, moderated rooms will deny auto-promotion")
	}
	// init C2S router
	j.localRouter = c2s.NewLocalRouter(j.verifier, j.hk, j.logger)

	// init global router
	j.router = router.New(j.hosts, j.localRouter)
	j.registerStartStopper(j.router)

	// init conference service
	j.muc = muc.New(mucCfg, j.router, j.hk, j.logger)
	j.router.SetConferenceService(j.muc)
	j.registerStartStopper(j.muc)
}

func (j *Jackal) initModules(cfg ModulesConfig) error {
	var mods []module.Module

	// enabled modules
	enabled := cfg.Enabled
	if len(enabled) == 0 {
		enabled = defaultModules
	}
	for _, mName := range enabled {
		fn, ok := modFns[mName]
		if !ok {
			return fmt.Errorf("main: unrecognized module name: %s", mName)
		}
		mods = append(mods, fn(j, &cfg))
	}
	j.mods = module.NewModules(mods, j.hk, j.logger)
	j.registerStartStopper(j.mods)
	return nil
}

// reload re-reads configFile and applies its reloadable sections.
func (j *Jackal) reload(ctx context.Context, configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	var applied []string
	if j.allOwners != nil {
		j.allOwners.ApplyConfig(cfg.Modules.AllOwners)
		applied = append(applied, j.allOwners.Name())
	}
	level.Info(j.logger).Log("msg", "configuration reloaded", "path", configFile, "mods_count", len(applied))

	_, err = j.hk.Run(hook.ConfigReloaded, &hook.ExecutionContext{
		Info: &hook.ConfigInfo{
			Path:    configFile,
			Modules: applied,
		},
		Sender:  j,
		Context: ctx,
	})
	return err
}

func (j *Jackal) registerStartStopper(ss startStopper) {
	if ss == nil {
		return
	}
	j.starters = append(j.starters, ss)
	j.stoppers = append([]stopper{ss}, j.stoppers...)
}

func (j *Jackal) bootstrap() error {
	// spin up all service subsystems
	ctx, cancel := context.WithTimeout(context.Background(), defaultBootstrapTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		// invoke all registered starters...
		for _, s := range j.starters {
			if err := s.Start(ctx); err != nil {
				errCh <- err
				return
			}
		}
		errCh <- nil
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Jackal) shutdown() error {
	// wait until shutdown has been completed
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		// invoke all registered stoppers...
		for _, st := range j.stoppers {
			if err := st.Stop(ctx); err != nil {
				errCh <- err
				return
			}
		}
		errCh <- nil
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
