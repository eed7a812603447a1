package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the scene and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove cached scenes and artifacts",
		Long: `Remove cached scenes and artifacts.

The file backend is emptied; the sqlite backend drops expired entries.
Redis and MongoDB expire entries on their own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ch, err := c.newCache(ctx, false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer ch.Close()

			switch ch := cache.Unwrap(ch).(type) {
			case *cache.FileCache:
				if _, err := os.Stat(ch.Dir()); os.IsNotExist(err) {
					printInfo("Cache is empty")
					return nil
				}
				n, err := ch.Clear()
				if err != nil {
					return err
				}
				printSuccess("Cleared %d cached entries", n)
				printDetail("Directory: %s", ch.Dir())
			case *cache.SQLiteCache:
				n, err := ch.Prune(ctx)
				if err != nil {
					return err
				}
				printSuccess("Pruned %d expired entries", n)
			default:
				printInfo("%s", StyleWarning.Render(fmt.Sprintf("The %s backend expires entries itself", c.Config.Cache.Backend)))
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Long: `Print where the configured backend keeps entries: the directory of the
file cache, the database file of the sqlite cache, or the redis and mongo
addresses. Nothing is printed for the none backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := cacheLocation(c.Config.Cache)
			if err != nil {
				return err
			}
			if loc != "" {
				fmt.Fprintln(cmd.OutOrStdout(), loc)
			}
			return nil
		},
	}
}

// cacheLocation returns where cfg stores entries. A file or sqlite backend
// without a directory uses [cacheDir].
func cacheLocation(cfg cache.Config) (string, error) {
	switch cfg.Backend {
	case cache.BackendRedis:
		return "redis://" + cfg.Redis.Addr, nil
	case cache.BackendMongo:
		return cfg.Mongo.URI, nil
	case cache.BackendNone:
		return "", nil
	case cache.BackendSQLite:
		if cfg.SQLite.Path != "" {
			return cfg.SQLite.Path, nil
		}
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return "", fmt.Errorf("get cache dir: %w", err)
		}
	}
	if cfg.Backend == cache.BackendSQLite {
		return filepath.Join(dir, "cache.db"), nil
	}
	return dir, nil
}
