package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathkit/internal/version"
	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

func newNormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "norm PATH",
		Short: "Lexically normalize a path",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(pathkit.New(args[0]).Normalize())
		},
	}
}

func newAbsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abs PATH",
		Short: "Resolve a path to absolute form",
		Long: `Resolve a path to an absolute, normalized form. A leading tilde is
expanded; a relative path is resolved against the working directory.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(pathkit.New(args[0]).Absolute())
		},
	}
}

func newAbbrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abbr PATH",
		Short: "Abbreviate a leading home-directory prefix to ~",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(pathkit.New(args[0]).Abbreviate())
		},
	}
}

func newGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob PATTERN",
		Short: "Expand a shell glob pattern",
		Long: `Expand a shell glob pattern against the filesystem. Supports "*", "?",
bracket classes, brace alternatives and a leading tilde; matched
directories are marked with a trailing slash. No matches is not an
error.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, match := range pathkit.Glob(args[0]) {
				cmd.Println(match)
			}
		},
	}
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN PATH",
		Short: "Test a path against a shell filename pattern",
		Long: `Test a single path against an fnmatch-style pattern. Prints the result
and exits 1 when the pattern does not match.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			matched := pathkit.New(args[1]).Match(args[0])
			cmd.Println(matched)
			if !matched {
				os.Exit(1)
			}
		},
	}
}

func newMktempCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mktemp",
		Short: "Create a unique temporary directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pathkit.UniqueTemporary()
			if err != nil {
				return fmt.Errorf("creating temporary directory: %w", err)
			}
			cmd.Println(p)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pathkit version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "PATHKIT",
				Section: "1",
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			return doc.GenManTree(root, header, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "man", "Directory to write man pages to")
	return cmd
}
