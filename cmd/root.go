package cmd

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/alexibraimov/sophifs/pkg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sophifs",
	Short: "Directory link and cleanup helper for installers",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/sophifs/config.toml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("registry", defaultRegistry(), "file recording deletions deferred to the next boot")

	_ = viper.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("registry", flags.Lookup("registry"))

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(emptyCmd)
	rootCmd.AddCommand(isLinkCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(plansCmd)
}

func defaultRegistry() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "sophifs", "pending.toml")
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "sophifs"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("SOPHIFS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	filesystem.SetLogger(slog.New(handler))
	pkg.SetLogger(slog.New(handler))

	return nil
}

// platform returns the native platform, recording deferred deletions in the
// configured registry where the OS has no facility of its own.
func platform() filesystem.Platform {
	return filesystem.NewPlatform(filesystem.WithPendingRegistry(registry()))
}

func absPath(path string) filesystem.Path {
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Fatal(err)
	}

	return filesystem.MakePath(abs)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
