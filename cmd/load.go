package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"hearth-mirror/core/config"
	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/core/logger"
	"hearth-mirror/core/session"
	"hearth-mirror/core/storage"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// stdout is where command results are written.
var stdout io.Writer = os.Stdout

// dumpConfig applies the --dump and --object flags on top of cfg.
func dumpConfig(cfg memgraph.Config) memgraph.Config {
	switch {
	case dumpFlag != "":
		cfg.Source = memgraph.SourceFile
		cfg.Path = dumpFlag
	case objectFlag != "":
		cfg.Source = memgraph.SourceBucket
		cfg.Object = objectFlag
	}
	return cfg
}

// openSession loads the configuration, the logger and the graph dump and
// returns a session reading it.
func openSession(ctx context.Context) (*session.Session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	dump := dumpConfig(cfg.Dump)
	if !dump.IsValidSource() {
		return nil, fmt.Errorf("unknown dump source %q", dump.Source)
	}

	var client storage.Client
	if dump.Source == memgraph.SourceBucket {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	img, err := memgraph.Load(ctx, dump, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	logg.Debug("Graph dump loaded",
		zap.String("source", dump.Source),
		zap.Int("classes", len(img.Classes)),
		zap.Int("caches", len(img.Caches)),
	)

	return session.New(img, logg)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
