package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zhubert/emailwriter/internal/config"
	"github.com/zhubert/emailwriter/internal/ui"
)

// configKeys are the settings `config set` accepts, in display order
var configKeys = []string{"api-url", "timeout", "download-dir", "theme", "notifications"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change emailwriter settings",
	Long: `Show or change the settings stored in ~/.emailwriter/config.json.

Keys:
  api-url        Reply service base URL ("" for the build default)
  timeout        Request timeout in seconds (0 for the default)
  download-dir   Where downloaded replies are written ("" for ~/Downloads)
  theme          Interface theme ("" for the default)
  notifications  Desktop notification when a reply is ready (true/false)

$EMAILWRITER_API_URL still wins over api-url.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printConfig(cmd.OutOrStdout(), cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change one setting and save it",
	Example:   "  emailwriter config set theme nord\n  emailwriter config set notifications true",
	Args:      cobra.ExactArgs(2),
	ValidArgs: configKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := runConfigSet(cfg, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", args[0], cfg.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigSet applies one setting, validates the result and saves it
func runConfigSet(cfg *config.Config, key, value string) error {
	if err := setConfigValue(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.Save()
}

func setConfigValue(cfg *config.Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "api-url":
		cfg.SetAPIBaseURL(value)

	case "timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout must be a number of seconds, got %q", value)
		}
		cfg.SetRequestTimeoutSeconds(seconds)

	case "download-dir":
		cfg.SetDownloadDir(value)

	case "theme":
		if value != "" && !slices.Contains(ui.ThemeNames(), ui.ThemeName(value)) {
			return fmt.Errorf("unknown theme %q (available: %v)", value, ui.ThemeNames())
		}
		cfg.SetTheme(value)

	case "notifications":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("notifications must be true or false, got %q", value)
		}
		cfg.SetNotificationsEnabled(enabled)

	default:
		return fmt.Errorf("unknown key %q (keys: %s)", key, strings.Join(configKeys, ", "))
	}
	return nil
}

// printConfig writes the effective settings, defaults resolved
func printConfig(w io.Writer, cfg *config.Config) error {
	theme := cfg.GetTheme()
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	downloads := cfg.GetDownloadDir()
	if downloads == "" {
		downloads = "(working directory)"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "file\t%s\n", cfg.Path())
	fmt.Fprintf(tw, "api-url\t%s\n", cfg.GetAPIBaseURL())
	fmt.Fprintf(tw, "timeout\t%s\n", cfg.GetRequestTimeout())
	fmt.Fprintf(tw, "download-dir\t%s\n", downloads)
	fmt.Fprintf(tw, "theme\t%s\n", theme)
	fmt.Fprintf(tw, "notifications\t%t\n", cfg.GetNotificationsEnabled())
	return tw.Flush()
}
