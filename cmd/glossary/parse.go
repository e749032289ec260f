package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wordleglobal/glossary/internal/wiktionary"
)

func newParseCommand() *cobra.Command {
	var word string

	command := &cobra.Command{
		Use:   "parse FILE",
		Short: "Extract the definition from a saved Wiktionary plaintext extract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extract, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			text, ok := wiktionary.ParseDefinition(string(extract), word)
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No definition found"))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	command.Flags().StringVar(&word, "word", "", "headword; inferred from the first title header when empty")
	return command
}
