/*
Copyright © 2018 the nc-validate authors.
This file is part of nc-validate.

nc-validate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

nc-validate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with nc-validate.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package ncvalidateutil holds the configuration and command-line
// interface for the nc-validate tool.
package ncvalidateutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	ncvalidate "github.com/kerfoot/nc-validate"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to nc-validate.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "template",
			usage: `
              template specifies the path to the NetCDF template file that
              candidate files are validated against. The value may contain
              environment variables.`,
			shorthand:  "t",
			defaultVal: "./templates/IOOS_Glider_NetCDF_v2.0.nc",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("NCVALIDATE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "nc-validate [flags] file.nc [file.nc ...]",
	Short: "Validate NetCDF files against a NetCDF template.",
	Long: `nc-validate compares each specified NetCDF file against a template
NetCDF file and reports any required global attributes, dimensions,
variables, variable datatypes, variable dimension orderings, or variable
attributes that are missing or incorrect. Discrepancies are written to
standard error; a per-file verdict and summary counts are written to
standard output.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'NCVALIDATE_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no NetCDF files specified for validation")
		}
		template, err := checkTemplateFile(Cfg)
		if err != nil {
			return err
		}
		return ValidateFiles(template, args, os.Stdout, os.Stderr)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of nc-validate.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nc-validate v%s\n", ncvalidate.Version)
	},
	DisableAutoGenTag: true,
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("nc-validate: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// checkTemplateFile makes sure that a template file is specified and
// exists, expanding any environment variables in its path.
func checkTemplateFile(cfg *viper.Viper) (string, error) {
	t, err := cast.ToStringE(cfg.Get("template"))
	if err != nil {
		return "", fmt.Errorf("nc-validate: invalid template configuration variable: %v", err)
	}
	t = os.ExpandEnv(t)
	if t == "" {
		return "", fmt.Errorf(`you need to specify a template file (for example: --template="templates/IOOS_Glider_NetCDF_v2.0.nc")`)
	}
	if _, err := os.Stat(t); err != nil {
		return "", fmt.Errorf("nc-validate: the template file doesn't exist: %v", err)
	}
	return t, nil
}
