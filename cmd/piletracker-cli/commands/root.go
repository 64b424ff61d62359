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
	"log/slog"
	"strings"

	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = ".piletracker"

var rootCmd = &cobra.Command{
	Use:   "piletracker-cli",
	Short: "Management cli",
	Long: `The piletracker cli works directly on the database of a piletracker instance.
Flags can be set in a ./.piletracker.yaml config file or with environment variables (prefix PILETRACKER_).
The database connection is read from the same POSTGRES_* variables the server uses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck
		return initializeConfig(cmd, viper.GetViper())
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func initializeConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetConfigName(defaultConfigFilename)
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/piletracker/")
	if err := v.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	v.SetEnvPrefix("PILETRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	bindFlags(cmd, v)
	return nil
}

// bindFlags applies config file and environment values to every flag the user did not set
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))) // nolint: errcheck
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}

// openDatabase connects with the pool settings of the server. The returned func closes the pool.
func openDatabase() (shared.DB, func()) {
	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	return database.NewGormDB(pool), pool.Close
}
