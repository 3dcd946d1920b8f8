package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tessvane/patchboard/pkg/patch"
	"github.com/tessvane/patchboard/pkg/session"
)

// editCommand creates the edit command.
func (c *CLI) editCommand() *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "edit [name]",
		Short: "Open a patch in the interactive editor",
		Long: `Open a patch in the interactive terminal editor.

With a name, the most recently saved patch with that name is opened, or
a new patch is started under that name when none exists. Without a name,
a picker lists the stored patches.`,
		Example: `  # Open or create the patch named "drone"
  patchboard edit drone

  # Pick from stored patches
  patchboard edit

  # Start over even though "drone" exists
  patchboard edit drone --new`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return c.runEdit(cmd.Context(), name, fresh)
		},
	}

	cmd.Flags().BoolVar(&fresh, "new", false, "start a new patch even when the name exists")
	return cmd
}

func (c *CLI) runEdit(ctx context.Context, name string, fresh bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	store, err := c.newStore()
	if err != nil {
		return err
	}

	doc, err := c.resolveDocument(ctx, store, name, fresh)
	if err != nil || doc == nil {
		return err
	}

	// Wires looping straight back into their own node are rejected at
	// the mechanism level; embedders with feedback graphs install their
	// own policy instead.
	doc.Patch.SetPolicy(patch.RejectSelfLoops)

	model := newEditorModel(ctx, cfg, cfg.BuildTheme(), store, doc, c.Logger)
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

// resolveDocument picks the document to edit: by name, fresh, or through
// the interactive picker. A nil document without error means the user
// backed out of the picker.
func (c *CLI) resolveDocument(ctx context.Context, store *session.FileStore, name string, fresh bool) (*session.Document, error) {
	if fresh {
		return session.NewDocument(name), nil
	}
	if name != "" {
		doc, err := store.FindByName(ctx, name)
		if errors.Is(err, session.ErrNotFound) {
			c.Logger.Debugf("No patch named %q, starting fresh", name)
			return session.NewDocument(name), nil
		}
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	docs, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return session.NewDocument(""), nil
	}

	picker := NewPatchListModel(docs)
	final, err := tea.NewProgram(picker, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, fmt.Errorf("patch picker: %w", err)
	}
	sel := final.(PatchListModel).Selected
	switch {
	case sel == nil:
		return nil, nil
	case sel.NewPatch:
		return session.NewDocument(""), nil
	default:
		return sel.Doc, nil
	}
}
