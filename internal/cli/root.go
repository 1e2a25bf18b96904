package cli

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "DKP_BOOTSTRAP"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

// Execute runs the root command and maps the result to the process
// exit code: 0 on success, 2 for usage errors, 1 for everything else.
func Execute(ctx context.Context) int {
	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		return exitCodeForError(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	opts := bootstrapOptions{}
	cmd := &cobra.Command{
		Use:     "dkp-bootstrap",
		Short:   "Set up the devkitPro toolchain and the emberwing workspace",
		Version: version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("unexpected positional arguments")
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBootstrap(cmd.Context(), cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.Flags().BoolVar(&opts.CloneRepo, "clone-repo", false, "Clone or update the project checkout")
	cmd.Flags().StringVar(&opts.LovebrewPath, "lovebrew-path", "", "LoveBrew workspace to deploy assets into")
	cmd.Flags().BoolVar(&opts.NoInstall, "no-install", false, "Skip toolchain installation")
	cmd.Flags().BoolVar(&opts.UseSystemPacman, "use-system-pacman", false, "Configure the system pacman instead of installing")
	cmd.Flags().StringVar(&opts.DevkitproPath, "devkitpro-path", "/opt/devkitpro", "Toolchain installation root")
	cmd.Flags().StringVar(&opts.PackageSet, "package-set", "", "YAML file overriding the package set")
	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false, "Answer every prompt with its default")
	_ = viper.BindPFlag("clone_repo", cmd.Flags().Lookup("clone-repo"))
	_ = viper.BindPFlag("lovebrew_path", cmd.Flags().Lookup("lovebrew-path"))
	_ = viper.BindPFlag("no_install", cmd.Flags().Lookup("no-install"))
	_ = viper.BindPFlag("use_system_pacman", cmd.Flags().Lookup("use-system-pacman"))
	_ = viper.BindPFlag("devkitpro_path", cmd.Flags().Lookup("devkitpro-path"))
	_ = viper.BindPFlag("package_set", cmd.Flags().Lookup("package-set"))
	_ = viper.BindPFlag("non_interactive", cmd.Flags().Lookup("non-interactive"))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid flags").
			WithCause(err)
	})
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("dkp-bootstrap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/dkp-bootstrap")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	default:
		return 1
	}
}
