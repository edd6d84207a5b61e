package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/99minutos/insurance-system/internal/app"
	"github.com/99minutos/insurance-system/internal/cli"
	"github.com/99minutos/insurance-system/internal/infrastructure/config"
	"github.com/99minutos/insurance-system/pkg/logger"
)

var noColor bool

// rootCmd runs the interactive console when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "insurance",
	Short: "Interactive insurance policy management console",
	Long: `insurance is a console for managing insurance policies.

Users log in with one of five roles (admin, agent, underwriter, claim adjuster,
customer) and get a numbered menu of the operations that role may perform.

Configuration comes from the environment:
  DATA_FILE      snapshot path (default data/customer_data.json)
  LOG_LEVEL      trace, debug, info, warn or error (default warn)
  OPS_ADDR       serve /health, /health/ready and /metrics on this address
  MONGO_URI      store users, customers and claims in MongoDB
  REDIS_ADDR     store sessions in Redis`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsole,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().String("data-file", "", "snapshot path (overrides DATA_FILE)")
}

func runConsole(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("data-file"); path != "" {
		cfg.DataFile = path
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
		Output: cmd.ErrOrStderr(),
	})
	log.Debug().Str("env", cfg.Env).Str("data_file", cfg.DataFile).Msg("configuration loaded")

	container, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer container.Close(context.WithoutCancel(ctx))

	if container.Ops != nil {
		container.Ops.Start(ctx)
	}

	// A blocked read on stdin ignores ctx; closing it lets the console see
	// end of input after an interrupt.
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		go func() {
			<-ctx.Done()
			_ = f.Close()
		}()
	}

	console := cli.New(container.Services, cli.Options{
		In:     in,
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Colors: !noColor && cli.ColorsEnabled(),
		Logger: log.With().Str("component", "cli").Logger(),
	})
	return console.Run(ctx)
}
