package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/graph"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

var MANAGER *RoutingManager

func main() {
	config_file := flag.String("config", "./config.yaml", "path to the config file")
	serve := flag.Bool("serve", false, "serve the http api instead of writing the outputs once")
	flag.Parse()

	SetupLogging(os.Stdout, "info")
	config, err := ReadConfig(*config_file)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	SetupLogging(os.Stdout, config.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	MANAGER, err = NewRoutingManager(ctx, config)
	if err != nil {
		slog.Error("failed to build road graph", "err", err)
		os.Exit(1)
	}

	if *serve {
		err = RunServer(ctx, MANAGER, config.Server.Address)
	} else {
		err = WriteOutputs(MANAGER, config)
	}
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Computes the table for the source points of interest and writes it
// together with the contracted graph.
func WriteOutputs(manager *RoutingManager, config Config) error {
	table, err := manager.ComputeTable(manager.GetPOIs())
	if err != nil {
		return err
	}
	for _, file := range []string{config.Output.Table, config.Output.GeoJSON} {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}
	if err := WriteJSONToFile(table, config.Output.Table); err != nil {
		return err
	}
	fc := graph.ToFeatureCollection(table.GetContractedGraph(), manager.GetProjection())
	if err := WriteJSONToFile(fc, config.Output.GeoJSON); err != nil {
		return err
	}
	slog.Info("outputs written", "table", config.Output.Table, "geojson", config.Output.GeoJSON)
	return nil
}

func RunServer(ctx context.Context, manager *RoutingManager, address string) error {
	server := &http.Server{
		Addr:    address,
		Handler: NewRouter(manager),
	}
	go func() {
		<-ctx.Done()
		shutdown_ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdown_ctx)
	}()

	slog.Info("listening", "address", address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server failed")
	}
	return nil
}
