package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"concierge-system/internal/app/api"
	"concierge-system/internal/chat"
	"concierge-system/internal/common/config"
	"concierge-system/internal/common/db"
	"concierge-system/internal/common/httpx"
	"concierge-system/internal/common/logger"
	"concierge-system/internal/common/mq"
	"concierge-system/internal/state"
	"concierge-system/internal/store"
	"concierge-system/internal/store/local"
	"concierge-system/internal/store/postgres"
)

func main() {
	mode := flag.String("mode", "server", "server | migrate")
	port := flag.Int("port", 0, "http port (overrides config)")
	cfgPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	lg := logger.New("concierge-system")
	defer lg.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *cfgPath
	if path == "" {
		var err error
		if path, err = config.FindConfig(); err != nil {
			fmt.Fprintln(os.Stderr, "no config.yaml found; pass --config")
			os.Exit(2)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": path})
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	switch *mode {
	case "server":
		if err := runServer(ctx, cfg, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "migrate":
		if err := runMigrate(ctx, cfg, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be: server | migrate")
		os.Exit(2)
	}
}

func runServer(ctx context.Context, cfg config.App, lg *logger.Logger) error {
	st, feed, err := buildStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer st.Close()
	defer feed.Close()

	container, err := state.New(ctx, st, feed, lg)
	if err != nil {
		return err
	}
	go func() {
		if err := container.Run(ctx); err != nil {
			lg.Error("sync_stopped", err, nil)
		}
	}()

	concierge := buildConcierge(ctx, cfg, lg)

	srv := api.NewServer(container, concierge, cfg.Admin.Password, lg)
	lg.Info("service_started", map[string]any{
		"port": cfg.Server.Port, "store": cfg.Store.Driver,
	})
	return httpx.New(":"+strconv.Itoa(cfg.Server.Port), srv.Handler()).Run(ctx)
}

func runMigrate(ctx context.Context, cfg config.App, lg *logger.Logger) error {
	if cfg.Store.Driver != "postgres" {
		return fmt.Errorf("migrate only applies to the postgres store driver")
	}
	conn, err := db.Connect(ctx, cfg.Database.Host, cfg.Database.Port,
		cfg.Database.User, cfg.Database.Pass, cfg.Database.Name)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := postgres.Migrate(ctx, conn); err != nil {
		return err
	}
	lg.Info("migrations_applied", nil)
	return nil
}

func buildStore(ctx context.Context, cfg config.App, lg *logger.Logger) (store.Store, store.Feed, error) {
	switch cfg.Store.Driver {
	case "local":
		st, err := local.Open(cfg.Store.DataDir, lg)
		if err != nil {
			return nil, nil, err
		}
		return st, local.NewWatcher(st.Dir(), lg), nil
	case "postgres":
		conn, err := db.Connect(ctx, cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Pass, cfg.Database.Name)
		if err != nil {
			return nil, nil, err
		}
		client, err := mq.Dial(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Pass)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		host, _ := os.Hostname()
		feed, err := postgres.NewFeed(client, host, lg)
		if err != nil {
			client.Close()
			conn.Close()
			return nil, nil, err
		}
		return postgres.New(conn, lg), feed, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// buildConcierge degrades to the canned fallback reply when no API key is
// configured or the client cannot be constructed.
func buildConcierge(ctx context.Context, cfg config.App, lg *logger.Logger) *chat.Concierge {
	if cfg.Chat.APIKey == "" {
		lg.Warn("chat_disabled", nil, map[string]any{"reason": "no api key"})
		return chat.NewConcierge(nil, lg)
	}
	gen, err := chat.NewGeminiGenerator(ctx, cfg.Chat.APIKey, cfg.Chat.Model)
	if err != nil {
		lg.Warn("chat_disabled", err, nil)
		return chat.NewConcierge(nil, lg)
	}
	return chat.NewConcierge(gen, lg)
}
