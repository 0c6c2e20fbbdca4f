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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/neosolar/genbundler/pkg/catalog"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/serializer"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Print the parsed product catalog.",
		Description: `Loads the catalog the same way generate does and prints the recognized
components with their category and integer power, plus per-category counts.
Records with a missing or non-integer power are skipped and logged.

Examples:

  genbundler catalog --catalog produtos.json --format table
  genbundler catalog --catalog https://example.com/produtos.yaml --output catalog.json --format json`,
		Flags: append([]cli.Flag{
			catalogFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
			},
		}, sourceFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}

			cat, err := catalog.Load(ctx, cfg.CatalogSource(),
				catalog.WithSourceOptions(cfg.SourceOptions()),
				catalog.WithVersion(cfg.Version()))
			if err != nil {
				return err
			}

			var ser *serializer.Writer
			if path := cmd.String("output"); path != "" {
				ser = serializer.NewFileWriterOrStdout(outFormat, path)
			} else {
				ser = serializer.NewWriter(outFormat, cmd.Root().Writer)
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, cat)
		},
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unknown output format", map[string]any{"format": cmd.String("format")})
	}
	return f, nil
}
