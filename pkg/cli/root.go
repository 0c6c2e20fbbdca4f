// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/logging"
)

const (
	name           = "genbundler"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Diagnostics printed before the one-line error.
const (
	msgNoBundles   = "Não foi possível configurar nenhum gerador com os produtos disponíveis."
	msgNoCatalog   = "Não foi possível carregar os produtos. Verifique o arquivo de produtos."
	msgWriteFailed = "Erro ao gravar os arquivos de saída."
)

// Execute runs the root command with the process arguments and exits.
// SIGINT and SIGTERM cancel the run context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.Writer = stdout
	cmd.ErrWriter = stderr
	return exitCode(cmd.Run(ctx, args), stderr)
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Solar generator bundle configurator",
		Description: `Builds solar generator bundles from a product catalog of panels,
inverters and charge controllers. Each bundle pairs an inverter with a charge
controller of the same power and enough identical panels to reach it exactly.

generate - write the line-item CSV, the weekly notification and the run summary.
catalog  - print the parsed catalog and its per-category counts.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Run configuration file (YAML or JSON). Flags override its values.",
				Sources: cli.EnvVars("GENBUNDLER_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			catalogCmd(),
		},
	}
}

// exitCode reports err on w and maps it to the process exit status.
// A run that yields no bundle is a valid outcome and exits 0.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNoBundles:
		fmt.Fprintln(w, msgNoBundles)
		return 0
	case apperrors.ErrCodeCatalogUnreadable:
		fmt.Fprintln(w, msgNoCatalog)
	case apperrors.ErrCodeArtifactWrite:
		fmt.Fprintln(w, msgWriteFailed)
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
