package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groupsa/groupsa/hardcheck"
	"github.com/groupsa/groupsa/persist"
)

func newCheckCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report hard-constraint violations in a project document",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(projectPath)
			if err != nil {
				return fmt.Errorf("groupsa check: opening project: %w", err)
			}
			defer f.Close()

			project, err := persist.Load(f)
			if err != nil {
				return fmt.Errorf("groupsa check: %w", err)
			}

			ok, violations := hardcheck.Check(&project)
			if ok {
				fmt.Println("no hard-constraint violations")
				return nil
			}

			for _, v := range violations {
				fmt.Println(v)
			}
			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project JSON document")
	cmd.MarkFlagRequired("project")

	return cmd
}
