package cmd

import (
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "fmx" {
		t.Errorf("root command Use = %q, expected %q", root.Use, "fmx")
	}
	if root.Version == "" {
		t.Error("root command has no version set")
	}

	expected := []string{
		"list", "tree", "view", "analyze",
		"copy", "move", "delete",
		"hash", "archive", "extract",
	}
	for _, name := range expected {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				if sub.GroupID == "" {
					t.Errorf("subcommand %q has no group assigned", name)
				}
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	if len(root.Groups()) != 3 {
		t.Errorf("root command has %d groups, expected 3", len(root.Groups()))
	}
}
