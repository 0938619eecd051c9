package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/rescache/pkg/cachepath"
	"github.com/glorpus-work/rescache/pkg/model"
)

// NewPathCmd creates the path command.
func NewPathCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "path <url> [url...]",
		Short: "Map resource locations to cache paths",
		Long: "Print the deterministic local cache path each resource location maps to.\n" +
			"No download happens; the mapping is a pure function of URL and cache root.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPath(root, args)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "cache root directory (default: configured cache dir)")

	return cmd
}

func runPath(root string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if root == "" {
		root = cfg.Settings.CacheDir
	}

	for _, raw := range args {
		res, err := model.NewResource(raw, "")
		if err != nil {
			return err
		}
		path, err := cachepath.URLToPath(res.Location, root)
		if err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}
