package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

func newLsCmd() *cobra.Command {
	var showHidden bool

	cmd := &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List a directory's immediate children",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := pathkit.Cwd()
			if len(args) == 1 {
				dir = pathkit.New(args[0])
			}

			children, err := dir.Children()
			if err != nil {
				return err
			}

			cfg := loadConfig()
			for _, child := range children {
				name := child.LastComponent()
				if !showHidden && !cfg.ShowHidden && strings.HasPrefix(name, ".") {
					continue
				}
				if child.IsDirectory() {
					cmd.Println(pterm.FgBlue.Sprint(name) + "/")
				} else {
					cmd.Println(name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showHidden, "all", "a", false, "Include hidden entries")
	return cmd
}

func newTreeCmd() *cobra.Command {
	var (
		showHidden   bool
		shallow      bool
		skipPackages bool
	)

	cmd := &cobra.Command{
		Use:   "tree [PATH]",
		Short: "Render a directory subtree",
		Long: `Render a directory subtree using the lazy enumerator. Hidden entries
are skipped unless --all is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := pathkit.Cwd()
			if len(args) == 1 {
				// Absolute form keeps component depths aligned with the
				// paths the iterator yields.
				root = pathkit.New(args[0]).Absolute()
			}

			var opts []pathkit.IterateOption
			if !showHidden && !loadConfig().ShowHidden {
				opts = append(opts, pathkit.SkipHiddenFiles())
			}
			if shallow {
				opts = append(opts, pathkit.SkipSubdirectoryDescendants())
			}
			if skipPackages {
				opts = append(opts, pathkit.SkipPackageDescendants())
			}

			baseDepth := len(root.Components())
			list := pterm.LeveledList{}
			it := root.Iterate(opts...)
			for p, ok := it.Next(); ok; p, ok = it.Next() {
				text := p.LastComponent()
				if p.IsDirectory() {
					text += "/"
				}
				list = append(list, pterm.LeveledListItem{
					Level: len(p.Components()) - baseDepth - 1,
					Text:  text,
				})
			}

			node := putils.TreeFromLeveledList(list)
			node.Text = root.String()
			rendered, err := pterm.DefaultTree.WithRoot(node).Srender()
			if err != nil {
				return err
			}
			cmd.Print(rendered)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showHidden, "all", "a", false, "Include hidden entries")
	cmd.Flags().BoolVar(&shallow, "shallow", false, "Do not descend into subdirectories")
	cmd.Flags().BoolVar(&skipPackages, "skip-packages", false, "Do not descend into package-like directories")
	return cmd
}
