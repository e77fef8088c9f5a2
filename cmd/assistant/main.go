package main

import (
	"os"

	"github.com/spf13/cobra"

	"assistant/addressbook"
	"assistant/cli"
)

func main() {
	root := &cobra.Command{
		Use:           "assistant",
		Short:         "Interactive contact book assistant",
		Long:          "Stores contacts with phone numbers and birthdays in memory and answers which birthdays fall in the next week.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := addressbook.NewUsecase(addressbook.NewBook())
			return cli.New(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
