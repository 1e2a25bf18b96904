package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dkp-bootstrap/internal/app"
)

type bootstrapOptions struct {
	CloneRepo       bool
	LovebrewPath    string
	NoInstall       bool
	UseSystemPacman bool
	DevkitproPath   string
	PackageSet      string
	NonInteractive  bool
}

func runBootstrap(ctx context.Context, cmd *cobra.Command, opts bootstrapOptions) error {
	service := newAppService()
	result, err := service.Run(ctx, app.BootstrapRequest{
		CloneRepo:       resolveBool(cmd, opts.CloneRepo, "clone_repo", "clone-repo"),
		LovebrewPath:    resolveString(cmd, opts.LovebrewPath, "lovebrew_path", "lovebrew-path"),
		NoInstall:       resolveBool(cmd, opts.NoInstall, "no_install", "no-install"),
		UseSystemPacman: resolveBool(cmd, opts.UseSystemPacman, "use_system_pacman", "use-system-pacman"),
		DevkitproPath:   resolveString(cmd, opts.DevkitproPath, "devkitpro_path", "devkitpro-path"),
		PackageSetPath:  resolveString(cmd, opts.PackageSet, "package_set", "package-set"),
		NonInteractive:  resolveBool(cmd, opts.NonInteractive, "non_interactive", "non-interactive"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("bootstrap complete: mode=%s profile=%s sync=%s deploy=%s\n",
		result.Mode, result.Profile, result.Sync.Outcome, result.Deploy.Outcome)
	return nil
}

func newAppService() app.Service {
	return app.NewService()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
