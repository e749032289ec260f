package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wordleglobal/glossary/internal/language"
)

// Language is a game language code given on the command line.
type Language string

func (l *Language) Set(val string) error {
	if !language.IsValidCode(val) {
		return fmt.Errorf("invalid language code: %s", val)
	}
	*l = Language(val)
	return nil
}

func (l Language) String() string {
	return string(l)
}

func (l *Language) Type() string {
	return "language"
}

var _ pflag.Value = (*Language)(nil)

func addLanguageFlag(cmd *cobra.Command, lang *Language) {
	cmd.Flags().Var(lang, "lang", "language code of the word, e.g. fi or de")
	_ = cmd.MarkFlagRequired("lang")
}
