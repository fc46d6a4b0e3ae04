// Command lvpath answers shortest-path and reachability queries over a
// graph described in a TOML file (see internal/graphfile).
//
//	lvpath --graph roads.toml --from A --to D
//	lvpath --graph roads.toml --from A --to D,E,F --concurrency 4
//	lvpath --graph roads.toml --from A --reachable
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/internal/graphfile"
)

var errUsage = errors.New("lvpath: --graph and --from are required, plus --to or --reachable")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("lvpath failed")
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("lvpath", pflag.ContinueOnError)
	var graphPath = fs.String("graph", "", "path to the TOML graph file")
	var from = fs.String("from", "", "start vertex")
	var to = fs.StringSlice("to", nil, "target vertex; repeat or comma-separate for several")
	var reachable = fs.Bool("reachable", false, "print every vertex reachable from --from and exit")
	var concurrency = fs.Int("concurrency", 0, "parallel searches for several targets (default GOMAXPROCS)")
	var debug = fs.Bool("debug", false, "enable search diagnostics on stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *graphPath == "" || *from == "" || (len(*to) == 0 && !*reachable) {
		fs.PrintDefaults()

		return errUsage
	}

	logger := log.Logger
	if *debug {
		logger = logger.Level(zerolog.TraceLevel)
	}

	g, err := graphfile.LoadFromFile(*graphPath)
	if err != nil {
		return errgo.Wrap(err, "failed to load graph")
	}
	logger.Debug().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

	if *reachable {
		fmt.Fprintln(out, strings.Join(dfs.Reachable[string, int64](g, *from), " "))

		return nil
	}

	queries := lo.Map(*to, func(t string, _ int) dijkstra.Query[string] {
		return dijkstra.Query[string]{From: *from, To: t}
	})
	results, err := dijkstra.ShortestPaths[string, int64](context.Background(), g, queries,
		dijkstra.WithLogger(logger),
		dijkstra.WithConcurrency(*concurrency),
	)
	if err != nil {
		return errgo.Wrap(err, "search failed")
	}

	for i, res := range results {
		q := queries[i]
		if !res.Found {
			fmt.Fprintf(out, "no path from %s to %s\n", q.From, q.To)
			continue
		}
		fmt.Fprintf(out, "%s (cost %d)\n", strings.Join(res.Path, " -> "), res.Cost)
	}

	return nil
}
