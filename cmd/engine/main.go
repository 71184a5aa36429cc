package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"easyapply-engine/internal/apply"
	"easyapply-engine/internal/browser"
	"easyapply-engine/internal/config"
	"easyapply-engine/internal/domain"
	"easyapply-engine/internal/events"
	"easyapply-engine/internal/httpapi"
	"easyapply-engine/internal/run"
	"easyapply-engine/internal/scheduler"
	"easyapply-engine/internal/secrets"
	"easyapply-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided (a desktop shell can pass one),
	// else local folder.
	dataDir := os.Getenv("EASYAPPLY_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// The browser profile is an exclusive resource; a second engine on the
	// same data dir would fight over it.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance is already running on %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	for _, warn := range vr.Warnings {
		log.Printf("[config] warning: %s", warn)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "easyapply.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()

	screenshotsDir := filepath.Join(dataDir, "session")
	if err := os.MkdirAll(screenshotsDir, 0o755); err != nil {
		log.Fatal(err)
	}

	worker := newWorker(&cfgVal, db, hub, dataDir, screenshotsDir)
	ctl := run.NewController(worker)

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Ctl:         ctl,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Every(gctx, 24*time.Hour, "cleanup", func(ctx context.Context) error {
			n, err := store.CleanupOldApplications(db.Pool)
			if err == nil && n > 0 {
				log.Printf("[cleanup] removed %d old records", n)
			}
			return err
		})
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if _, err := ctl.Stop(); err == nil {
			log.Printf("[engine] worker stopped for shutdown")
		}
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// newWorker builds the run.Worker closure: a fresh settings snapshot and
// browser session per run, recording into the applications table.
func newWorker(cfgVal *atomic.Value, db *store.DB, hub *events.Hub, dataDir, screenshotsDir string) run.Worker {
	return func(ctx context.Context, onApplied func()) {
		cfg := cfgVal.Load().(config.Config)

		settings, err := store.LoadSettings(ctx, db.Pool)
		if err != nil {
			log.Printf("[worker] settings load failed, using defaults: %v", err)
			settings = domain.DefaultSettings()
		}

		// Missing cookie is fine: the profile may already be signed in.
		cookie, _ := secrets.GetSessionCookie()

		profileDir := cfg.Browser.ProfileDir
		if profileDir == "" {
			profileDir = filepath.Join(dataDir, "browser-profile")
		}

		r := &apply.Runner{
			Cfg:      cfg,
			Settings: settings,
			Open: func() (browser.Session, error) {
				return browser.Open(browser.Options{
					ProfileDir:    profileDir,
					Headless:      cfg.Browser.Headless,
					SessionCookie: cookie,
				})
			},
			Record: func(ctx context.Context, app domain.Application) error {
				id, err := store.InsertApplication(ctx, db.Pool, app)
				if err != nil {
					return err
				}
				hub.Publish(events.MakeEvent("", events.TypeApplication, 1, map[string]any{
					"id":     id,
					"status": app.Status,
				}))
				return nil
			},
			OnApplied:     onApplied,
			Pacer:         browser.NewPacer(cfg.Browser.NavPerSecond, cfg.Browser.NavBurst),
			ScreenshotDir: screenshotsDir,
		}
		r.Run(ctx)

		hub.Publish(events.MakeEvent("", events.TypeRunFinished, 1, nil))
	}
}
