package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/rescache/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the resource cache",
		Long:  "Show information about the resource cache and its origins",
	}

	cmd.AddCommand(
		newCacheInfoCmd(),
		newCacheDirCmd(),
		newCacheListCmd(),
	)

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display size and file count of the resource cache",
		RunE: func(*cobra.Command, []string) error {
			return runCacheInfo()
		},
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the cache root directory",
		RunE: func(*cobra.Command, []string) error {
			return runCacheDir()
		},
	}
}

func newCacheListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cache origins",
		Long:  "List the {scheme}/{host}/{port} origins present in the cache",
		RunE: func(*cobra.Command, []string) error {
			return runCacheList(filter)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "regular expression matched against origin ids")

	return cmd
}

func runCacheInfo() error {
	mgr, err := cacheManager()
	if err != nil {
		return err
	}

	info, err := mgr.Info()
	if err != nil {
		return err
	}

	fmt.Println("Cache Information:")
	fmt.Printf("  Directory: %s\n", info.Directory)
	fmt.Printf("  Total Size: %s\n", humanize.Bytes(uint64(info.TotalSize)))
	fmt.Printf("  Files: %d\n", info.Files)
	return nil
}

func runCacheDir() error {
	mgr, err := cacheManager()
	if err != nil {
		return err
	}
	fmt.Println(mgr.Directory())
	return nil
}

func runCacheList(filter string) error {
	mgr, err := cacheManager()
	if err != nil {
		return err
	}

	origins, err := mgr.Origins(filter)
	if err != nil {
		return err
	}
	if len(origins) == 0 {
		fmt.Println("No cached origins found")
		return nil
	}
	for _, origin := range origins {
		fmt.Printf("%s\t%d files\t%s\n", origin.ID, origin.Files, humanize.Bytes(uint64(origin.Size)))
	}
	return nil
}

func cacheManager() (*cache.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cache.NewManager(cfg.Settings.CacheDir), nil
}
