// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/forgeboard/forge/cmd/forge/solo"
	"github.com/forgeboard/forge/log"
	"github.com/forgeboard/forge/metrics"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Forge",
		Usage:     "Quest board with staked voting and reward distribution",
		Copyright: "2026 The Forge developers",
		Flags: []cli.Flag{
			verbosityFlag,
			enableMetricsFlag,
			metricsAddrFlag,
		},
		Commands: []cli.Command{
			{
				Name:  "solo",
				Usage: "run a complete quest lifecycle on an in-memory state",
				Flags: []cli.Flag{
					verbosityFlag,
					enableMetricsFlag,
					metricsAddrFlag,
					pauseFlag,
				},
				Action: soloAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func soloAction(ctx *cli.Context) error {
	initLogger(ctx)
	startMetricsServer(ctx)

	defer func() { log.Info("exited") }()
	return solo.New(solo.Options{Pause: ctx.Duration("pause")}).Run()
}

func initLogger(ctx *cli.Context) {
	lvl := logLevel(ctx.Uint64("verbosity"))
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewTerminalLogger(lvl, useColor))
}

func logLevel(verbosity uint64) slog.Level {
	switch verbosity {
	case 0, 1:
		return log.LevelError
	case 2:
		return log.LevelWarn
	case 3:
		return log.LevelInfo
	case 4:
		return log.LevelDebug
	default:
		return log.LevelTrace
	}
}

func startMetricsServer(ctx *cli.Context) {
	if !ctx.Bool(enableMetricsFlag.Name) {
		return
	}
	metrics.InitializePrometheusMetrics()
	addr := ctx.String(metricsAddrFlag.Name)
	go func() {
		if err := http.ListenAndServe(addr, metrics.HTTPHandler()); err != nil {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	log.Info("metrics server started", "addr", addr)
}
