// internal/cli/root.go
package llmcompare

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/llmcompare/internal/appconfig"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loggingAnnotation marks commands that must not log to the terminal.
const loggingAnnotation = "logging"

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "llmcompare",
	Short: "llmcompare: compare LLM benchmark scores and token costs against a baseline",
	Long: `llmcompare ranks a catalog of large language models by benchmark scores
(MMLU, HellaSwag, HumanEval, GPQA) and estimated token cost, and shows every
model relative to a chosen baseline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		loaded, err := ensureConfigLoaded(cmd)
		if err != nil {
			return err
		}

		// Flags the user set win over environment overrides below.
		userSet := map[string]bool{}
		for _, name := range []string{"debug", "no-color", "catalog", "logFile", "addr"} {
			userSet[name] = cmd.Flags().Changed(name)
		}

		// 2) Copy config values into flags the user did not set, so pflags
		//    and viper agree on the final value.
		for _, name := range []string{"debug", "no-color"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(flagKeys[name])
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		for _, name := range []string{"catalog", "logFile"} {
			if !cmd.Flags().Changed(name) {
				if val := viper.GetString(flagKeys[name]); val != "" {
					_ = cmd.Flags().Set(name, val)
				}
			}
		}

		// 3) Materialize flags > env > config > defaults into currentConfig.
		cfg, err := appconfig.FromViper(viper.GetViper())
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg, userSet)
		if !loaded {
			cfg.ConfigPath = ""
		}
		currentConfig = &cfg

		return initLogging(cmd, cfg)
	},
}

// flagKeys maps persistent flag names to their viper keys.
var flagKeys = map[string]string{
	"debug":    "debug",
	"catalog":  "catalogPath",
	"logFile":  "logFile",
	"no-color": "noColor",
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo sets the string printed by --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (.json, .yaml); the built-in catalog when empty")
	rootCmd.PersistentFlags().String("logFile", "", "also write logs to this file")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored table output")

	// Bind flags to Viper keys (flags override config)
	for name, key := range flagKeys {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing file
// is only an error when --config was given explicitly.
func ensureConfigLoaded(cmd *cobra.Command) (bool, error) {
	viper.SetDefault("debug", false)
	viper.SetDefault("noColor", false)

	required := false
	if f := cmd.Flags().Lookup("config"); f != nil {
		required = f.Changed
	}
	loaded, err := appconfig.ReadConfig(viper.GetViper(), required)
	if err != nil {
		return false, fmt.Errorf("failed to load config: %w", err)
	}
	return loaded, nil
}

// initLogging points the process logger at the terminal and the configured
// log file. Commands annotated with logging=file only log to the file.
func initLogging(cmd *cobra.Command, cfg appconfig.Config) error {
	opts := logging.Options{Path: cfg.LogFile, Console: true, Level: cfg.Level()}
	if cmd.Annotations[loggingAnnotation] == "file" {
		opts.Path = cfg.LogFilePath()
		opts.Console = false
	}
	if err := logging.InitWithOptions(opts); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	logging.Debugf("[CLI] %s: config=%q catalog=%q", cmd.CommandPath(), cfg.ConfigPath, cfg.CatalogPath)
	return nil
}

// applyFlags reapplies the flags in userSet on top of cfg.
func applyFlags(cmd *cobra.Command, cfg *appconfig.Config, userSet map[string]bool) {
	f := cmd.Flags()
	if userSet["debug"] {
		cfg.Debug, _ = f.GetBool("debug")
	}
	if userSet["no-color"] {
		cfg.NoColor, _ = f.GetBool("no-color")
	}
	if userSet["catalog"] {
		cfg.CatalogPath, _ = f.GetString("catalog")
	}
	if userSet["logFile"] {
		cfg.LogFile, _ = f.GetString("logFile")
	}
	if userSet["addr"] {
		cfg.ServerAddr, _ = f.GetString("addr")
	}
}

// getConfig returns the loaded application configuration.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog() ([]catalog.Model, error) {
	cfg := getConfig()
	models, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	logging.Debugf("[CLI] loaded %d models", len(models))
	return models, nil
}
