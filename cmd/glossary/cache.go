package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wordleglobal/glossary/internal/app"
	"github.com/wordleglobal/glossary/internal/cache"
	"github.com/wordleglobal/glossary/internal/datasync"
	"github.com/wordleglobal/glossary/internal/definition"
)

func newCacheCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and purge cached definitions",
	}
	command.AddCommand(newCacheShowCommand(), newCachePurgeCommand(), newCacheImportCommand())
	return command
}

type cachedEntry struct {
	NotFound bool               `yaml:"not_found,omitempty"`
	StoredAt string             `yaml:"stored_at,omitempty"`
	Result   *definition.Result `yaml:"result,omitempty"`
}

// withCache opens the configured cache backend for the duration of f.
func withCache(cmd *cobra.Command, f func(c *cache.Cache) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c, closer, err := app.OpenCache(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("app.OpenCache > %w", err)
	}
	if closer != nil {
		defer func() {
			_ = closer()
		}()
	}
	if c == nil {
		return errors.New("the definition cache is disabled")
	}
	return f(c)
}

func newCacheShowCommand() *cobra.Command {
	var lang Language

	command := &cobra.Command{
		Use:   "show WORD",
		Short: "Show the cached entry of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(cmd, func(c *cache.Cache) error {
				entry, err := c.Entry(cmd.Context(), lang.String(), args[0])
				if errors.Is(err, cache.ErrNotFound) {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is not cached\n", args[0])
					return err
				}
				if err != nil {
					return fmt.Errorf("c.Entry > %w", err)
				}

				out := cachedEntry{NotFound: entry.NotFound, Result: entry.Result}
				if entry.NotFound {
					out.StoredAt = entry.StoredAt.UTC().Format(time.RFC3339)
				}
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				if err := encoder.Encode(out); err != nil {
					return fmt.Errorf("encoder.Encode > %w", err)
				}
				return encoder.Close()
			})
		},
	}
	addLanguageFlag(command, &lang)
	return command
}

func newCachePurgeCommand() *cobra.Command {
	var lang Language

	command := &cobra.Command{
		Use:   "purge WORD",
		Short: "Remove the cached entry of a word so it is resolved again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(cmd, func(c *cache.Cache) error {
				if err := c.Purge(cmd.Context(), lang.String(), args[0]); err != nil {
					return fmt.Errorf("c.Purge > %w", err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "purged %s\n", args[0])
				return err
			})
		},
	}
	addLanguageFlag(command, &lang)
	return command
}

func newCacheImportCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	command := &cobra.Command{
		Use:   "import DIRECTORY",
		Short: "Import a file cache directory into the configured cache backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			ctx := cmd.Context()
			target, closer, err := app.OpenStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("app.OpenStore() > %w", err)
			}
			if closer != nil {
				defer func() {
					_ = closer()
				}()
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(cache.NewFileStore(args[0]), target, out)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			result, err := importer.Import(ctx, opts)
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Entries: %d new, %d skipped, %d updated, %d invalid\n",
				result.New, result.Skipped, result.Updated, result.Invalid)
			return nil
		},
	}
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the cache")
	command.Flags().BoolVar(&updateExisting, "update-existing", false, "Overwrite entries that already exist")
	return command
}
