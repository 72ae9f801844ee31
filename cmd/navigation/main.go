// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the navigation site builder. Running
// the binary without arguments builds the site.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Slowist-Lee/navigation/internal/site"
	"github.com/Slowist-Lee/navigation/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd builds the site when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "navigation",
	Short: "Build the navigation website from navigation.yml",
	Long: `navigation reads navigation.yml, splits every page's category cards into
two balanced columns and renders template.html once per page, writing
<page>.html next to it.

Top-level keys such as page_title, logo or banner are global template values
and never produce a page. A missing navigation.yml is reported and the build
stops without error.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := siteConfig()
	if err != nil {
		return err
	}
	_, err = site.Build(cfg, cmd.OutOrStdout(), newLogger())
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./navigation-config.yaml or ~/.config/navigation/config.yaml)")
}

// configFileName is the project-local config file. It must not share a base
// name with the navigation document, which viper would otherwise pick up.
const configFileName = "navigation-config.yaml"

func setDefaults() {
	defaults := types.DefaultSiteConfig()
	viper.SetDefault("input", defaults.Input)
	viper.SetDefault("template", defaults.Template)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("reserved_keys", types.DefaultReservedKeys().Keys())
	viper.SetDefault("layout.line_limit", defaults.Layout.LineLimit)
	viper.SetDefault("layout.header_weight", defaults.Layout.HeaderWeight)
	viper.SetDefault("log_level", "warn")
}

func initConfig() {
	viper.Reset()
	setDefaults()

	// A missing .env is the common case.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile == "" {
		cfgFile = findConfigFile()
	}

	viper.SetEnvPrefix("NAVIGATION")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// findConfigFile returns ./navigation-config.yaml or
// ~/.config/navigation/config.yaml, whichever exists first.
func findConfigFile() string {
	candidates := []string{configFileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "navigation", "config.yaml"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// siteConfig maps the merged viper settings onto a SiteConfig.
func siteConfig() (types.SiteConfig, error) {
	var cfg types.SiteConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// newLogger returns a text logger on stderr at the configured level.
func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log_level"))); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
