package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	internalconfig "github.com/popkit-dev/popkit/internal/config"
	"github.com/popkit-dev/popkit/internal/xdg"
)

func newInitCmd() *cobra.Command {
	var (
		project bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long:  "Writes a config.toml with the defaults spelled out, globally (~/.popkit) or for the current project (.popkit/).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := targetPath(project)
			if err != nil {
				return err
			}

			if err := internalconfig.WriteDefault(path, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&project, "project", false, "write the project config instead of the global one")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func targetPath(project bool) (string, error) {
	if project {
		workDir, err := os.Getwd()
		if err != nil {
			return "", err
		}

		return xdg.ProjectConfigPath(workDir), nil
	}

	return xdg.GlobalConfigPath()
}
