package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/version"
)

// Hook is a lifecycle callback.
type Hook func(ctx context.Context) error

// App carries the wired-up infrastructure for a streamkit program.
//
// Example:
//
//	var cfg config.Config
//	config.LoadConfig("ingest", &cfg)
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app.RunTask(ctx, func(ctx context.Context) error {
//	    return runPipeline(ctx, app)
//	})
type App struct {
	Name    string
	Version string
	Cfg     *config.Config
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	telemetry       bool

	onStart []Hook
	onStop  []Hook
	closers []func(context.Context) error
}

// NewApp creates an application from a loaded config. It applies defaults,
// validates the config, and initializes the logger.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App{
		Name:            cfg.Name,
		Version:         version.Short(),
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
		telemetry:       cfg.Observability.Enabled,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.skipTelemetry {
		app.telemetry = false
	}

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(cfg.Logging)
		app.Logger = logger.GetGlobalLogger()
	}

	return app, nil
}

// OnStart registers a hook to run after infrastructure is initialized,
// before the task.
func (a *App) OnStart(h Hook) { a.onStart = append(a.onStart, h) }

// OnStop registers a hook to run during shutdown, before closers.
func (a *App) OnStop(h Hook) { a.onStop = append(a.onStop, h) }

// AddCloser registers a cleanup function run during graceful shutdown,
// in reverse registration order.
func (a *App) AddCloser(fn func(ctx context.Context) error) {
	a.closers = append(a.closers, fn)
}

// RunTask executes a finite task with the full lifecycle: initialize,
// OnStart hooks, run task with signal-based cancellation, then graceful
// shutdown. The task error wins over shutdown errors.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", logger.Fields(
				"signal", sig.String(),
			))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

// Shutdown performs graceful shutdown. Use when managing your own lifecycle.
func (a *App) Shutdown(ctx context.Context) error {
	return a.stop()
}

func (a *App) startup(ctx context.Context) error {
	a.Logger.Info("Starting application", logger.Fields(
		"name", a.Name,
		"version", a.Version,
		"environment", a.Cfg.Environment,
	))

	if a.telemetry {
		if err := a.initTelemetry(ctx); err != nil {
			return fmt.Errorf("telemetry initialization: %w", err)
		}
	}

	for _, h := range a.onStart {
		if err := h(ctx); err != nil {
			return fmt.Errorf("onStart hook: %w", err)
		}
	}
	return nil
}

// initTelemetry starts the OTLP meter and tracer and registers their
// shutdown as closers.
func (a *App) initTelemetry(ctx context.Context) error {
	obs := a.Cfg.Observability

	mc := observability.DefaultMeterConfig(a.Name)
	mc.ServiceVersion = a.Version
	mc.Environment = a.Cfg.Environment
	mc.Endpoint = obs.Endpoint
	mc.Insecure = obs.Insecure
	mc.Interval = obs.Interval

	mp, err := observability.InitMeter(ctx, &mc)
	if err != nil {
		return err
	}
	a.AddCloser(mp.Shutdown)

	tc := observability.DefaultTracerConfig(a.Name)
	tc.ServiceVersion = a.Version
	tc.Environment = a.Cfg.Environment
	tc.Endpoint = obs.Endpoint
	tc.Insecure = obs.Insecure
	tc.SampleRate = obs.SampleRate

	tp, err := observability.InitTracer(ctx, &tc)
	if err != nil {
		return err
	}
	a.AddCloser(tp.Shutdown)

	return nil
}

func (a *App) stop() error {
	a.Logger.Info("Shutting down application", logger.Fields(
		"timeout", a.gracefulTimeout.String(),
	))

	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error

	for _, h := range a.onStop {
		if err := h(ctx); err != nil {
			a.Logger.Error("OnStop hook error", logger.Fields("error", err.Error()))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.Logger.Error("Closer error", logger.Fields("error", err.Error()))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	a.Logger.Info("Application shutdown complete")
	return shutdownErr
}
