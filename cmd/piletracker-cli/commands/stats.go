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
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/piletracker/database/repositories"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewStatsCommand() *cobra.Command {
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Prints the progress of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectSlugOrID, _ := cmd.Flags().GetString("project")
			if projectSlugOrID == "" {
				return errors.New("the --project flag is required")
			}

			db, closeDB := openDatabase()
			defer closeDB()

			project, err := repositories.NewProjectRepository(db).ReadBySlugOrID(projectSlugOrID)
			if err != nil {
				return errors.Wrapf(err, "could not find project %s", projectSlugOrID)
			}

			statisticsService := services.NewStatisticsService(repositories.NewStatisticsRepository(db))
			summary, err := statisticsService.GetSummary(project)
			if err != nil {
				return err
			}
			blocks, err := statisticsService.GetBlockDistribution(project.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", project.Name, project.Slug)
			printSummary(cmd.OutOrStdout(), summary)
			printBlocks(cmd.OutOrStdout(), blocks)
			return nil
		},
	}

	stats.Flags().String("project", "", "slug or id of the project")
	return stats
}

func formatAverage(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", *v, unit)
}

func printSummary(w io.Writer, summary dtos.StatisticsSummary) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendRows([]table.Row{
		{"Planned", summary.TotalProjectPiles},
		{"Recorded", summary.Total},
		{"Accepted", summary.Accepted},
		{"Refusal", summary.Refusal},
		{"Pending", summary.Pending},
		{"Complete", fmt.Sprintf("%.1f %%", summary.PercentComplete)},
		{"Refusal rate", fmt.Sprintf("%.1f %%", summary.RefusalRate)},
		{"Average embedment", formatAverage(summary.AverageEmbedment, "ft")},
		{"Average duration", formatAverage(summary.AverageDurationSeconds, "s")},
	})
	fmt.Fprintln(w, tw.Render())
}

func printBlocks(w io.Writer, blocks []dtos.BlockDistribution) {
	if len(blocks) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Block", "Accepted", "Refusal", "Pending"})
	for _, block := range blocks {
		tw.AppendRow(table.Row{block.Block, block.Accepted, block.Refusal, block.Pending})
	}
	fmt.Fprintln(w, tw.Render())
}
