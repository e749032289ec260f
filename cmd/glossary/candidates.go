package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wordleglobal/glossary/internal/candidate"
)

func newCandidatesCommand() *cobra.Command {
	var lang Language

	command := &cobra.Command{
		Use:   "candidates WORD",
		Short: "Show the dictionary lookup candidates for a possibly inflected word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			if err := encoder.Encode(candidate.Build(args[0], lang.String())); err != nil {
				return fmt.Errorf("encoder.Encode > %w", err)
			}
			return encoder.Close()
		},
	}
	addLanguageFlag(command, &lang)
	return command
}
