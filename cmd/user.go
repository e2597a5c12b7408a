package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	meToken       string
	historyToken  string
	historyFilter string
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the profile of the authorized user",
	Long: `Show the profile of the authorized user. Without --token the access token
from the configuration (uber.access_token) is used.`,
	RunE: runMe,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the ride history of a user",
	Long:  `Show the ride history of the user owning --token. The token is required.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(historyCmd)

	meCmd.Flags().StringVar(&meToken, "token", "", "user access token")
	historyCmd.Flags().StringVar(&historyToken, "token", "", "user access token")
	historyCmd.Flags().StringVarP(&historyFilter, "filter", "f", "", "filter expression applied to each ride")
}

func runMe(cmd *cobra.Command, args []string) error {
	user := uberClient.User

	var (
		body json.RawMessage
		err  error
	)
	if cmd.Flags().Changed("token") {
		body, err = user.ProfileWithToken(cmd.Context(), meToken)
	} else {
		body, err = user.ProfileWithStoredToken(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), body)
}

func runHistory(cmd *cobra.Command, args []string) error {
	body, err := uberClient.User.History(cmd.Context(), historyToken)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	body, err = applyFilter(body, "history", historyFilter)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), body)
}
