package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gridclock/internal/config"
	"gridclock/internal/logging"
	"gridclock/internal/telemetry"
	"gridclock/internal/ui"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "gridclock",
		Short: "Clock, timer and focusable buttons in a terminal grid",
		Long: `gridclock shows a clock, a timer and START/STOP buttons in a grid.
Arrow keys move focus between the buttons, enter activates the focused
button and q quits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gridclock.toml)")
	flags.Duration("tick", time.Second, "clock and timer refresh interval")
	flags.String("log-file", "gridclock.log", "log file path")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("otlp-endpoint", "", "OTLP/HTTP collector host:port for activation traces")
	cobra.CheckErr(config.BindFlags(v, flags))

	cmd.AddCommand(newConfigCmd(v, &cfgFile))
	return cmd
}

func newConfigCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, *cfgFile)
			if err != nil {
				return err
			}
			b, err := cfg.MarshalTOML()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

// run starts the program in the alternate screen and blocks until quit.
func run(ctx context.Context, cfg config.Config) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	tp, err := telemetry.New(ctx, telemetry.Options{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	logger.Info("starting", "tick", cfg.Tick, "telemetry", tp.Enabled())
	model := ui.NewAppModel(ui.Options{
		Tick: cfg.Tick,
		Layout: ui.GridLayout{
			Columns: cfg.Layout.Columns,
			Rows:    cfg.Layout.Rows,
			ColGap:  cfg.Layout.ColumnGap,
			RowGap:  cfg.Layout.RowGap,
			Gutter:  cfg.Layout.Gutter,
		},
		Logger: logger,
		Tracer: tp.Tracer(),
	}).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("stopped")
	return nil
}
