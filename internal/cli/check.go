package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/employee-validation/internal/domain"
	"github.com/employee-validation/internal/service"
)

// ErrFieldRejected is returned by check when the value fails validation.
var ErrFieldRejected = errors.New("field rejected")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <field> <value>",
		Short: "Validate a single employee field",
		Long:  "Runs one setter against one value. Fields: " + strings.Join(service.FieldNames(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewEmployeeService(a.clock, a.logger)
			result, err := svc.ApplyField(domain.New(a.clock), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, newRenderer(out, a.cfg.Color).Field(result))
			if !result.Accepted {
				return fmt.Errorf("%w: %s", ErrFieldRejected, result.Field)
			}
			return nil
		},
	}
}
