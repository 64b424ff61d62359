// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/piletracker/cmd/piletracker/api"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/database/repositories"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/services"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// piles of one batch share a transaction
const importBatchSize = 500

func NewPilesCommand() *cobra.Command {
	piles := cobra.Command{
		Use:   "piles",
		Short: "Work with the piles of a project",
	}

	piles.AddCommand(newPilesImportCommand())
	return &piles
}

func newPilesImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Imports a csv export of the field crews",
		Long:  "Upserts the piles of the csv by pile number. Invalid rows are reported and skipped, the other rows are imported in batches.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectSlugOrID, _ := cmd.Flags().GetString("project")
			userID, _ := cmd.Flags().GetString("user")
			if projectSlugOrID == "" {
				return errors.New("the --project flag is required")
			}

			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "could not open csv file")
			}
			defer file.Close()

			app := fx.New(
				fx.NopLogger,
				api.DatabaseModule,
				repositories.Module,
				services.Module,
				fx.Invoke(func(
					projectRepository shared.ProjectRepository,
					pileService shared.PileService,
					importService shared.ImportService,
				) error {
					project, err := projectRepository.ReadBySlugOrID(projectSlugOrID)
					if err != nil {
						return errors.Wrapf(err, "could not find project %s", projectSlugOrID)
					}

					requests, rowErrors, err := importService.ParseCSV(file)
					if err != nil {
						return err
					}

					piles := make([]models.Pile, 0, len(requests))
					for _, req := range requests {
						pile, err := transformer.PileRequestToModel(req, project.ID)
						if err != nil {
							return errors.Wrapf(err, "pile %s", req.PileNumber)
						}
						piles = append(piles, pile)
					}

					result, err := importInBatches(cmd.Context(), pileService, project, userID, piles, progressbar.Default(int64(len(piles))))
					if err != nil {
						return err
					}
					result.Errors = append(result.Errors, rowErrors...)
					printImportResult(cmd.OutOrStdout(), result)
					return nil
				}),
			)
			if err := app.Err(); err != nil {
				return err
			}

			startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return err
			}

			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return app.Stop(stopCtx)
		},
	}

	importCmd.Flags().String("project", "", "slug or id of the project")
	importCmd.Flags().String("user", cliActor, "user id recorded as inspector and in the audit trail")
	return importCmd
}

func importInBatches(ctx context.Context, pileService shared.PileService, project models.Project, userID string, piles []models.Pile, bar *progressbar.ProgressBar) (dtos.ImportResult, error) {
	total := dtos.ImportResult{Errors: []dtos.ImportRowError{}}
	for start := 0; start < len(piles); start += importBatchSize {
		end := min(start+importBatchSize, len(piles))
		result, err := pileService.Import(ctx, project, userID, piles[start:end])
		if err != nil {
			return total, errors.Wrapf(err, "could not import piles %d to %d", start+1, end)
		}
		total.Created += result.Created
		total.Updated += result.Updated
		total.Skipped += result.Skipped
		total.Errors = append(total.Errors, result.Errors...)
		bar.Add(end - start) // nolint
	}
	return total, nil
}

func printImportResult(w io.Writer, result dtos.ImportResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendRows([]table.Row{
		{"Created", result.Created},
		{"Updated", result.Updated},
		{"Skipped", result.Skipped},
		{"Invalid rows", len(result.Errors)},
	})
	fmt.Fprintln(w, tw.Render())

	if len(result.Errors) == 0 {
		return
	}
	errorTable := table.NewWriter()
	errorTable.SetStyle(table.StyleLight)
	errorTable.AppendHeader(table.Row{"Row", "Error"})
	for _, rowError := range result.Errors {
		errorTable.AppendRow(table.Row{rowError.Row, rowError.Message})
	}
	fmt.Fprintln(w, errorTable.Render())
}
