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
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/database/repositories"
	"github.com/spf13/cobra"
)

// the cli is no user, grants are attributed to it
const cliActor = "piletracker-cli"

func NewSuperAdminCommand() *cobra.Command {
	superAdmin := cobra.Command{
		Use:   "super-admin",
		Short: "Manage the users which may access every project",
	}

	superAdmin.AddCommand(&cobra.Command{
		Use:   "grant <userID>",
		Short: "Makes the kratos identity a super admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB := openDatabase()
			defer closeDB()

			if err := repositories.NewSuperAdminRepository(db).Grant(nil, args[0], cliActor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a super admin now\n", args[0])
			return nil
		},
	})

	superAdmin.AddCommand(&cobra.Command{
		Use:   "revoke <userID>",
		Short: "Removes the super admin flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB := openDatabase()
			defer closeDB()

			if err := repositories.NewSuperAdminRepository(db).Revoke(nil, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is no super admin anymore\n", args[0])
			return nil
		},
	})

	superAdmin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lists all super admins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB := openDatabase()
			defer closeDB()

			superAdmins, err := repositories.NewSuperAdminRepository(db).List()
			if err != nil {
				return err
			}
			printSuperAdmins(cmd.OutOrStdout(), superAdmins)
			return nil
		},
	})

	return &superAdmin
}

func printSuperAdmins(w io.Writer, superAdmins []models.SuperAdmin) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"User", "Granted by", "Since"})
	for _, superAdmin := range superAdmins {
		tw.AppendRow(table.Row{superAdmin.UserID, superAdmin.GrantedBy, superAdmin.CreatedAt.Format(time.DateOnly)})
	}
	fmt.Fprintln(w, tw.Render())
}
