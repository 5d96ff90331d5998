// Command arena is a smoke client for the NLVX Arena debate API.
//
// Usage:
//
//	arena health                                   Check the server is up
//	arena turn --topic "AI regulation" --debater Optimist --lang fr
//	arena debate --topic "Remote work" --debaters Optimist,Critic --rounds 3
//	arena personas                                 List known debaters
//	arena version                                  Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var baseURL string

	rootCmd := &cobra.Command{
		Use:           "arena",
		Short:         "Talk to the NLVX Arena debate API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the debate API")

	client := func() *Client { return NewClient(baseURL) }

	rootCmd.AddCommand(
		newHealthCmd(client),
		newTurnCmd(client),
		newDebateCmd(client),
		newPersonasCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func newHealthCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client().Health(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Health check passed")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arena %s\n", getVersion())
		},
	}
}
