package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/hackconsole/cliparse"
	"github.com/danielhkuo/hackconsole/client"
	"github.com/danielhkuo/hackconsole/db"
	"github.com/danielhkuo/hackconsole/handlers"
	"github.com/danielhkuo/hackconsole/report"
	"github.com/danielhkuo/hackconsole/router"
	"github.com/danielhkuo/hackconsole/session"
)

const serveCommand = "serve"

func main() {
	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, args, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hackconsole [flags] <action> [field=value ...]")
		fmt.Fprintln(os.Stderr, "       hackconsole [flags] serve")
		os.Exit(2)
	}

	ctx := context.Background()

	// Open the session store
	kv, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("session database failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	store := session.NewStore(kv)
	if err := store.Load(ctx); err != nil {
		slog.Error("failed to load session", "error", err)
		os.Exit(1)
	}

	api := client.New(cfg.BaseURL, store)
	slog.Debug("console ready", "api", cfg.BaseURL, "db", cfg.DatabaseType)

	if args[0] == serveCommand {
		serve(cfg, api, store)
		return
	}

	fields, err := cliparse.ParseFields(args[1:])
	if err != nil {
		slog.Error("Error parsing fields", "error", err)
		os.Exit(1)
	}

	term := report.NewTerminal(os.Stdout)
	h := handlers.NewHandler(api, store, term, term)
	h.RefreshPanel()

	if err := h.Run(ctx, args[0], handlers.Fields(fields)); err != nil {
		slog.Error("action failed", "error", err, "actions", h.ActionNames())
		os.Exit(1)
	}
}

func serve(cfg cliparse.Config, api *client.Client, store *session.Store) {
	board := report.NewBoard()
	h := handlers.NewHandler(api, store, board, board)
	h.RefreshPanel()

	// Create server
	server := http.Server{
		Handler: router.NewServer(h, board, cfg),
		Addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "addr", server.Addr, "api", cfg.BaseURL)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
