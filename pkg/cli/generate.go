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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/neosolar/genbundler/pkg/config"
	"github.com/neosolar/genbundler/pkg/configurator"
	"github.com/neosolar/genbundler/pkg/defaults"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/generator"
)

// Flag constructors return fresh values: flags hold parse state and are
// shared by several commands.
func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"f"},
		Value:   defaults.CatalogSource,
		Usage: `Catalog source path or URI.
	Supports: file paths, HTTP/HTTPS URLs, ConfigMap URIs (cm://namespace/name) and S3 URIs (s3://bucket/key).`,
		Sources: cli.EnvVars("GENBUNDLER_CATALOG"),
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "kubeconfig",
			Usage:   "Path to kubeconfig used for cm:// catalog sources (default: in-cluster or ~/.kube/config)",
			Sources: cli.EnvVars("GENBUNDLER_KUBECONFIG"),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "AWS region for s3:// catalog sources",
			Sources: cli.EnvVars("GENBUNDLER_S3_REGION"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "S3-compatible endpoint URL for s3:// catalog sources (e.g. MinIO)",
			Sources: cli.EnvVars("GENBUNDLER_S3_ENDPOINT"),
		},
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate solar generator bundles from a product catalog.",
		Description: `Loads the catalog, matches every inverter with each charge controller of
the same power and the panels that divide that power exactly, and writes:
  - the line-item CSV (one row per bundle component)
  - the weekly notification text
  - the run summary (YAML, or JSON with a .json name)

Optional artifacts: a SHA256 checksums file (--checksums), a local OCI image
layout of the output directory (--oci-ref) and a Prometheus textfile with
the run metrics (--metrics-file).

Examples:

  genbundler generate --catalog produtos.json --output ./out
  genbundler generate --catalog cm://catalogs/produtos --id-strategy sequential
  genbundler generate --catalog s3://catalogs/produtos.json --s3-region sa-east-1 --checksums`,
		Flags: append([]cli.Flag{
			catalogFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   defaults.OutputDir,
				Usage:   "Output directory for the generated artifacts",
				Sources: cli.EnvVars("GENBUNDLER_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "lines-file",
				Value:   defaults.LineItemsFile,
				Usage:   "Line-item CSV file name, relative to the output directory",
				Sources: cli.EnvVars("GENBUNDLER_LINES_FILE"),
			},
			&cli.StringFlag{
				Name:    "notification-file",
				Value:   defaults.NotificationFile,
				Usage:   "Notification file name, relative to the output directory",
				Sources: cli.EnvVars("GENBUNDLER_NOTIFICATION_FILE"),
			},
			&cli.StringFlag{
				Name:    "summary-file",
				Value:   defaults.SummaryFile,
				Usage:   "Run summary file name; empty disables the summary",
				Sources: cli.EnvVars("GENBUNDLER_SUMMARY_FILE"),
			},
			&cli.StringFlag{
				Name:    "id-strategy",
				Value:   string(generator.DefaultStrategy),
				Usage:   fmt.Sprintf("Bundle identifier strategy (supported values: %s)", strings.Join(generator.Strategies(), ", ")),
				Sources: cli.EnvVars("GENBUNDLER_ID_STRATEGY"),
			},
			&cli.BoolFlag{
				Name:    "checksums",
				Usage:   "Write a SHA256 checksums file for the generated artifacts",
				Sources: cli.EnvVars("GENBUNDLER_CHECKSUMS"),
			},
			&cli.StringFlag{
				Name:    "oci-ref",
				Usage:   "Package the output directory as a local OCI image layout tagged with this reference (e.g. ghcr.io/neosolar/bundles:v1)",
				Sources: cli.EnvVars("GENBUNDLER_OCI_REF"),
			},
			&cli.StringSliceFlag{
				Name:  "annotation",
				Usage: "OCI manifest annotation in key=value form (repeatable)",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write run metrics in Prometheus textfile format to this path",
				Sources: cli.EnvVars("GENBUNDLER_METRICS_FILE"),
			},
		}, sourceFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}

			out, err := configurator.New(cfg).Run(ctx)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, msg := range out.Messages() {
				fmt.Fprintln(w, msg)
			}
			return nil
		},
	}
}

// configFromCmd builds the run configuration: defaults, then the --config
// file, then every flag explicitly set on the command line or environment.
func configFromCmd(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option

	if path := cmd.String("config"); path != "" {
		f, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, f.Options()...)
	}

	set := func(flag string, fn func(string) config.Option) {
		if cmd.IsSet(flag) {
			opts = append(opts, fn(cmd.String(flag)))
		}
	}

	set("catalog", config.WithCatalogSource)
	set("output", config.WithOutputDir)
	set("lines-file", config.WithLineItemsFile)
	set("notification-file", config.WithNotificationFile)
	set("summary-file", config.WithSummaryFile)
	set("oci-ref", config.WithOCIReference)
	set("metrics-file", config.WithMetricsFile)
	set("kubeconfig", config.WithKubeconfig)
	set("s3-region", config.WithS3Region)
	set("s3-endpoint", config.WithS3Endpoint)

	if cmd.IsSet("id-strategy") {
		opts = append(opts, config.WithIDStrategy(generator.Strategy(cmd.String("id-strategy"))))
	}
	if cmd.IsSet("checksums") {
		opts = append(opts, config.WithIncludeChecksums(cmd.Bool("checksums")))
	}
	if cmd.IsSet("annotation") {
		annotations, err := parseAnnotations(cmd.StringSlice("annotation"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithAnnotations(annotations))
	}

	opts = append(opts, config.WithVersion(version))
	return config.NewConfig(opts...), nil
}

// parseAnnotations parses key=value pairs.
func parseAnnotations(values []string) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for _, v := range values {
		key, val, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"invalid annotation, expected key=value", map[string]any{"annotation": v})
		}
		out[key] = strings.TrimSpace(val)
	}
	return out, nil
}
