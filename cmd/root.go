package cmd

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seashell-sh/seashell/core/config"
	"github.com/seashell-sh/seashell/core/logger"
	"github.com/seashell-sh/seashell/core/shell"
)

var (
	cfgPath     string
	commandLine string
)

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(afero.NewOsFs(), cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}
	if err != nil {
		return nil, err
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return configuration, nil
}

// sessionLogger opens the configured session log, or discards events
// when none is configured.
func sessionLogger(cfg *config.Configuration) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}, nil
	}

	fd, err := cfg.OpenLog()
	if err != nil {
		return nil, nil, err
	}
	return logger.New(fd, logger.NewSessionID()), func() { fd.Close() }, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seashell",
	Short: "A small interactive shell",
	Long: `seashell reads commands a line at a time and runs each one, either
as a shell builtin or as an external program.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sessionLog, closeLog, err := sessionLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		sh := shell.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), sessionLog)

		// -c evaluates a single command line instead of reading input.
		if cmd.Flags().Changed("command") {
			sh.Eval(commandLine)
			return nil
		}

		sh.Run()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a config file or its directory")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
