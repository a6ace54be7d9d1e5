package commands

import (
	"fmt"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DateCommandHandler encapsulates logic for handling date operations via CLI.
type DateCommandHandler struct {
	logger logger.Logger
}

// NewDateCommandHandler initializes and returns a DateCommandHandler instance.
func NewDateCommandHandler() (*DateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DateCommandHandler{logger: loggerInstance}, nil
}

// ParseDateCmd classifies the date given with --value and prints the result as JSON
func (commandHandler *DateCommandHandler) ParseDateCmd(cmd *cobra.Command, _ []string) error {
	value, err := cmd.Flags().GetString("value")
	if err != nil {
		return fmt.Errorf("invalid value flag: %w", err)
	}
	if value == "" {
		return fmt.Errorf("--value is required")
	}

	country, err := cmd.Flags().GetString("country")
	if err != nil {
		return fmt.Errorf("invalid country flag: %w", err)
	}

	result := dates.Parse(value, country)
	commandHandler.logger.Debug("date parsed", "value", value, "format", string(result.Format))

	return writeJSON(cmd.OutOrStdout(), result)
}

// InitDateCommands registers date-related commands
func InitDateCommands(rootCmd *cobra.Command) error {
	handler, err := NewDateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create date command handler: %w", err)
	}

	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Date disambiguation commands",
	}

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Classify a printed date as DD/MM/YYYY, MM/DD/YYYY, YYYY-MM-DD or ambiguous",
		RunE:  handler.ParseDateCmd,
	}
	parseCmd.Flags().StringP("value", "", "", "Date as printed on the document")
	parseCmd.Flags().StringP("country", "", "", "Issuing country hint (code or name)")
	dateCmd.AddCommand(parseCmd)

	rootCmd.AddCommand(dateCmd)
	return nil
}
