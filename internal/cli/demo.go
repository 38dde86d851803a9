package cli

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/employee-validation/internal/dto"
	"github.com/employee-validation/internal/service"
)

//go:embed sample.yaml
var sampleEmployee []byte

func newDemoCmd(a *app) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Apply every field of a sample employee and print the results",
		Long: "Applies every field of a sample employee (built-in, or --file YAML) and prints\n" +
			"Good: <value> or Bad per field followed by salary, discount and shipping costs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(file)
			if err != nil {
				return err
			}

			svc := service.NewEmployeeService(a.clock, a.logger)
			_, report := svc.Apply(in)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			_, err = fmt.Fprint(out, newRenderer(out, a.cfg.Color).Report(report))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the employee fields (default: built-in sample)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func loadInput(path string) (*dto.EmployeeInput, error) {
	data := sampleEmployee
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read employee file %s: %w", path, err)
		}
		data = b
	}

	var in dto.EmployeeInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse employee yaml: %w", err)
	}
	return &in, nil
}
