package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/taptempo/internal/config"
	"github.com/npratt/taptempo/internal/events"
	"github.com/npratt/taptempo/internal/tap"
	"github.com/npratt/taptempo/internal/tempo"
	"github.com/npratt/taptempo/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("TAPTEMPO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "taptempo",
		Short: "Tap out a tempo and read it back in beats per minute",
		Long: `taptempo is a terminal beat counter for musicians.

Tap the spacebar along with the music and taptempo derives the tempo from
the intervals between taps: clicks, beats, and measures per minute. Select
a meter (beats per measure) and whether each tap marks a beat or a whole
measure; the tap history is rescaled across selection changes so the
displayed tempo stays consistent.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("taptempo is interactive and needs a terminal")
			}

			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
			}

			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Apply CLI flag overrides (only if explicitly set)
			if cmd.Flags().Changed(FlagLogFile) {
				cfg.Paths.Log = viper.GetString(FlagLogFile)
			}
			if cmd.Flags().Changed(FlagMeter) {
				cfg.Defaults.Meter = viper.GetString(FlagMeter)
			}
			if cmd.Flags().Changed(FlagMethod) {
				cfg.Defaults.Method = viper.GetString(FlagMethod)
			}
			if cmd.Flags().Changed(FlagIdleTimeout) {
				cfg.Tap.IdleTimeout = viper.GetDuration(FlagIdleTimeout)
			}
			if cmd.Flags().Changed(FlagWindowSize) {
				cfg.Tap.WindowSize = viper.GetInt(FlagWindowSize)
			}

			meter, err := tempo.ParseMeter(cfg.Defaults.Meter)
			if err != nil {
				return err
			}
			method, err := tempo.ParseMethod(cfg.Defaults.Method)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(cfg.Paths.Log), 0755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}

			// Logging goes to a rotating file; stderr would corrupt the
			// TUI display.
			tuiLog, err := SetupTUILogger(filepath.Dir(cfg.Paths.Log), logLevel, cfg.LogRotation)
			if err != nil {
				return err
			}
			defer func() { _ = tuiLog.Close() }()
			slog.SetDefault(tuiLog.Logger)

			tuiLog.Logger.Info("taptempo starting",
				"version", version,
				"meter", meter,
				"method", method,
				"idle_timeout", cfg.Tap.IdleTimeout,
				"window_size", cfg.Tap.WindowSize,
			)

			router := events.NewRouter(events.DefaultBufferSize)

			sinkCtx, sinkCancel := context.WithCancel(cmd.Context())
			logSink := events.NewLogSink(cfg.Paths.Log, events.RotationConfig{
				MaxSizeMB:  cfg.LogRotation.MaxSizeMB,
				MaxBackups: cfg.LogRotation.MaxBackups,
				MaxAgeDays: cfg.LogRotation.MaxAgeDays,
				Compress:   cfg.LogRotation.Compress,
			})
			logSink.Start(sinkCtx, router.Subscribe())

			counter := tap.New(meter, method, router,
				tap.WithIdleTimeout(cfg.Tap.IdleTimeout),
				tap.WithWindowCapacity(cfg.Tap.WindowSize),
				tap.WithLogger(tuiLog.Logger),
			)

			tuiEvents := router.SubscribeBuffered(256)

			app := tui.New(counter, tuiEvents,
				tui.WithOnQuit(counter.Close),
				tui.WithVersion(version),
			)

			runErr := app.Run()

			counter.Close()
			router.Close()
			sinkCancel()
			_ = logSink.Stop()

			return runErr
		},
	}

	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: ~/.config/taptempo/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Session log file path")

	rootCmd.Flags().String(FlagMeter, "", "Starting meter: beat, double, waltz, or common")
	rootCmd.Flags().String(FlagMethod, "", "Counting method: beat or measure")
	rootCmd.Flags().Duration(FlagIdleTimeout, 0, "Idle window before the session pauses")
	rootCmd.Flags().Int(FlagWindowSize, 0, "Number of recent intervals used for the tempo")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("taptempo %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
