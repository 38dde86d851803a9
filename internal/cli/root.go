package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/employee-validation/internal/config"
	"github.com/employee-validation/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// app - общее состояние команд, заполняется в PersistentPreRunE
type app struct {
	v      *viper.Viper
	clock  domain.Clock
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(clock domain.Clock) *cobra.Command {
	a := &app{v: config.New(), clock: clock}

	cmd := &cobra.Command{
		Use:           "employee",
		Short:         "Validate employee records and compute payroll values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.Bool("color", false, "colorize Good/Bad markers")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyColor, flags.Lookup("color"))

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDemoCmd(a))
	cmd.AddCommand(newCheckCmd(a))
	return cmd
}

// NewRootCmdForTest returns the root command with a fixed clock for testing.
func NewRootCmdForTest(clock domain.Clock) *cobra.Command {
	return newRootCmd(clock)
}

func Execute() error {
	err := newRootCmd(domain.SystemClock()).Execute()
	if err != nil && !errors.Is(err, ErrFieldRejected) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}
