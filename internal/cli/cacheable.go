package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/rescache/pkg/cachepath"
	"github.com/glorpus-work/rescache/pkg/model"
)

// NewCacheableCmd creates the cacheable command.
func NewCacheableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cacheable <url> [url...]",
		Short: "Check whether resource locations can be cached",
		Long: "Report for each location whether it can be staged into the cache.\n" +
			"Local-file and archive-entry locations are read in place and never cached.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCacheable(args)
		},
	}
}

func runCacheable(args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	for _, raw := range args {
		res, err := model.NewResource(raw, "")
		if err != nil {
			return err
		}
		cacheable, err := cachepath.IsCacheable(res.Location)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%v\n", raw, cacheable)
	}
	return nil
}
