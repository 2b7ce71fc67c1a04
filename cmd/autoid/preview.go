package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// previewCmd walks a fixture and prints the resolved identifier table
var previewCmd = &cobra.Command{
	Use:   "preview [fixture]",
	Short: "Walk a tree fixture and print the resolved identifier per node",
	Long: `Walks the YAML tree fixture the way a view traversal would and prints
one line per node: the node, its role, and the identifier the assignment
cascade resolves for it. Suppressed nodes show "(none)".

Example:
  autoid preview login.yaml
  autoid preview login.yaml --namespace myapp --mode semantic`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	f, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	rows := walk(context.Background(), engine, f)

	labelW, roleW := len("NODE"), len("ROLE")
	for _, r := range rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
		if len(r.Role) > roleW {
			roleW = len(r.Role)
		}
	}

	fmt.Printf("%-*s  %-*s  %s\n", labelW, "NODE", roleW, "ROLE", "IDENTIFIER")
	for _, r := range rows {
		id := r.ID
		if !r.Attached {
			id = "(none)"
		}
		fmt.Printf("%-*s  %-*s  %s\n", labelW, r.Label, roleW, r.Role, id)
	}
	fmt.Printf("\n%d nodes, %d identifiers attached\n", len(rows), countAttached(rows))
	return nil
}
