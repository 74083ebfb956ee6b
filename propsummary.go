package main

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// DefaultRoot is the top of the source tree when run from its doc directory
var DefaultRoot = filepath.Join("..", "..")

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "propsummary [root]",
		Short: "Generates a compilation of all the properties files, for quick reference",
		Long: `Generates a compilation of all the properties files, for quick reference.
Ex: propsummary > propertiesSummary.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := DefaultRoot
			if len(args) > 0 {
				root = args[0]
			}

			logger := log.StandardLogger()
			count, err := NewGenerator(afero.NewOsFs(), cmd.OutOrStdout(), logger).Run(cmd.Context(), root)
			if err != nil {
				return err
			}
			logger.WithFields(log.Fields{"root": root, "files": count}).Info("Summarized properties files")
			return nil
		},
	}
}

func main() {
	log.SetOutput(os.Stderr)

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
