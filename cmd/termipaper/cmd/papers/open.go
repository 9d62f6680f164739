package papers

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/pkg/errors"
)

// launch opens path with the desktop's default application.
var launch = func(path string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", path)
	case "windows":
		c = exec.Command("cmd", "/c", "start", "", path)
	default:
		c = exec.Command("xdg-open", path)
	}
	if err := c.Start(); err != nil {
		return errors.WrapIO("open", path, err)
	}
	return c.Process.Release()
}

// NewOpenCommand creates the open command.
func NewOpenCommand(app appcontext.Interface) *cobra.Command {
	var (
		category  string
		printPath bool
	)

	cmd := &cobra.Command{
		Use:     "open ID",
		GroupID: "papers",
		Short:   "Open the stored file of a paper",
		Example: `  termipaper open vaswani2017
  termipaper open vaswani2017 --print | xargs zathura`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			c, err := cat.Category(CategoryPath(category)...)
			if err != nil {
				return err
			}
			path, err := c.FilePath(args[0])
			if err != nil {
				return err
			}

			if printPath {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			}
			app.Logger().Debug().Str("path", path).Msg("opening file")
			return launch(path)
		},
	}

	addCategoryFlag(cmd, &category)
	cmd.Flags().BoolVarP(&printPath, "print", "p", false, "print the file path instead of opening it")

	return cmd
}
