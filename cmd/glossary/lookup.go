package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wordleglobal/glossary/internal/app"
	"github.com/wordleglobal/glossary/internal/definition"
)

func newLookupCommand() *cobra.Command {
	var lang Language
	var noCache bool

	command := &cobra.Command{
		Use:   "lookup WORD",
		Short: "Resolve the definition of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var opts []app.Option
			if noCache {
				opts = append(opts, app.WithoutCache())
			}
			ctx := cmd.Context()
			a, err := app.New(ctx, cfg, opts...)
			if err != nil {
				return fmt.Errorf("app.New > %w", err)
			}
			defer func() {
				_ = a.Close()
			}()

			result := a.Resolver.Resolve(ctx, args[0], lang.String())
			return printResult(cmd.OutOrStdout(), args[0], result)
		},
	}
	addLanguageFlag(command, &lang)
	command.Flags().BoolVar(&noCache, "no-cache", false, "skip the definition cache")
	return command
}

var sourceColors = map[definition.Source]*color.Color{
	definition.SourceNative:  color.New(color.FgGreen),
	definition.SourceEnglish: color.New(color.FgCyan),
	definition.SourceAI:      color.New(color.FgMagenta),
}

func printResult(w io.Writer, word string, result *definition.Result) error {
	if result == nil {
		_, err := fmt.Fprintln(w, color.YellowString("No definition found for %s", word))
		return err
	}

	bold := color.New(color.Bold)
	header := bold.Sprint(word)
	if result.PartOfSpeech != "" {
		header += " " + color.New(color.Italic).Sprintf("(%s)", result.PartOfSpeech)
	}
	sourceColor, ok := sourceColors[result.Source]
	if !ok {
		sourceColor = color.New(color.Reset)
	}

	if _, err := fmt.Fprintf(w, "%s [%s]\n  %s\n", header, sourceColor.Sprint(result.Source), result.Definition); err != nil {
		return err
	}
	if result.URL != nil {
		if _, err := fmt.Fprintf(w, "  %s\n", *result.URL); err != nil {
			return err
		}
	}
	return nil
}
