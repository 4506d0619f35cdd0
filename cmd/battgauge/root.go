package main

import (
	"battgauge/config"
	"battgauge/controller"
	"battgauge/logger"
	"battgauge/model"
	"battgauge/renderers/tcell"
	"battgauge/source"
	"battgauge/stream"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battgauge",
		Short: "battgauge shows a segmented battery gauge in the terminal",
		Long: `battgauge shows a segmented battery gauge in the terminal.

Without a subcommand it starts the interactive demo: a horizontal and a
vertical gauge driven by a voltage slider or by a voltage source.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVar(&configPath, "config", "", "config file path (default battgauge.toml)")
	config.RegisterFlags(globalFlags)
	config.RegisterDemoFlags(cmd.Flags())

	cmd.AddCommand(
		NewSnapshotCommand(),
		NewLayoutCommand(),
		NewPaletteCommand(),
	)

	return cmd
}

// loadConfig loads the configuration and sends log output to stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.LogLevel, cmd.ErrOrStderr(), true); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to tcell while the demo runs.
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	if err := logger.Init(cfg.LogLevel, logFile, false); err != nil {
		return err
	}

	src, err := source.New(cfg.Source, cfg.MinVoltage, cfg.MaxVoltage)
	if err != nil {
		return err
	}

	events := stream.NewStream[model.Event]("events")
	renderer, err := tcell.NewRenderer(events)
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	defer renderer.Stop()

	log.Info().
		Str("source", cfg.Source).
		Float64("min_voltage", cfg.MinVoltage).
		Float64("max_voltage", cfg.MaxVoltage).
		Int("pid", os.Getpid()).
		Msg("demo started")
	controller.Run(renderer, events, cfg, src)
	return nil
}
