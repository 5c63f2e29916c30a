// Package cli implements the toolbox command line.
//
// Configuration is read, from the highest priority to the lowest, from command line flags, TOOLBOX_*
// environment variables (TOOLBOX_LOG_LEVEL, TOOLBOX_RENDER_PARALLEL, ...) and a YAML file. The file is the one
// given by --config, then the one named by TOOLBOX_CONFIG_FILE, then .toolbox.yml in the current directory.
package cli

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "TOOLBOX"

// app holds what every command needs once the configuration is loaded.
type app struct {
	v       *viper.Viper
	log     *zap.Logger
	cfgFile string
}

// NewRootCmd creates the toolbox command and its sub commands.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "toolbox",
		Short: "Render text templates through a job pipeline",
		Long: `toolbox renders text templates holding {{key}} and {{modifier:key}} placeholders.

Every template file is a job of a pipeline, run one after the other or all at once.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .toolbox.yml, can also use TOOLBOX_CONFIG_FILE env var)")
	flags.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.BoolP("quiet", "q", false, "disable logging")
	_ = a.v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("quiet", flags.Lookup("quiet"))

	root.AddCommand(newRenderCmd(a), newVersionCmd())

	return root
}

func (a *app) init() error {
	err := a.initConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(a.v.GetString("log-level"), a.v.GetBool("quiet"))
	if err != nil {
		return err
	}

	a.log = log
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("Using config file", zap.String("path", used))
	}

	return nil
}

// initConfig loads the configuration file. A missing default file is not an error, a missing file
// requested with --config or TOOLBOX_CONFIG_FILE is.
func (a *app) initConfig() error {
	explicit := true

	switch envConfigFile := os.Getenv(envPrefix + "_CONFIG_FILE"); {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
	case envConfigFile != "":
		a.v.SetConfigFile(envConfigFile)
	default:
		explicit = false

		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".toolbox")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	err := a.v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, "unable to read config file")
	}

	return nil
}
