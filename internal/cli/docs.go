package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tessvane/patchboard/pkg/patch"
)

// docsCommand creates the docs command group for managing stored patches.
func (c *CLI) docsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage stored patches",
		Long:  `List, inspect, and delete the patches in the document store.`,
	}

	cmd.AddCommand(c.docsListCommand())
	cmd.AddCommand(c.docsShowCommand())
	cmd.AddCommand(c.docsDeleteCommand())

	return cmd
}

// docsListCommand creates the docs list subcommand.
func (c *CLI) docsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored patches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore()
			if err != nil {
				return err
			}
			docs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				printInfo("No patches stored yet")
				printNextStep("Create one", "patchboard edit")
				return nil
			}

			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{
					d.DisplayName(),
					fmt.Sprintf("%d", d.Patch.NodeCount()),
					fmt.Sprintf("%d", d.Patch.ConnectionCount()),
					formatRelativeTime(d.UpdatedAt),
					d.ID.String()[:8],
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Patch", "Nodes", "Wires", "Updated", "ID").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
					}
					if col >= 3 {
						return lipgloss.NewStyle().Foreground(colorDim)
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(t.Render())
			printDetail("%d patches in %s", len(docs), store.Path())
			return nil
		},
	}
}

// docsShowCommand creates the docs show subcommand.
func (c *CLI) docsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a stored patch in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore()
			if err != nil {
				return err
			}
			doc, err := store.FindByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := doc.Patch

			printKeyValue("Name", doc.DisplayName())
			printKeyValue("ID", doc.ID.String())
			printKeyValue("Created", doc.CreatedAt.Format("Jan 2, 2006 15:04"))
			printKeyValue("Updated", formatRelativeTime(doc.UpdatedAt))
			printStats(p.NodeCount(), p.ConnectionCount())
			fmt.Println()

			for _, n := range p.Nodes() {
				printInfo("%s", StyleHighlight.Render(nodeDisplay(n)))
				r := n.Rect()
				printDetail("%.0f×%.0f at (%.0f, %.0f)", r.Width, r.Height, r.X, r.Y)
				if names := knobNames(n.Inputs()); names != "" {
					printDetail("in:  %s", names)
				}
				if names := knobNames(n.Outputs()); names != "" {
					printDetail("out: %s", names)
				}
			}

			if conns := p.Connections(); len(conns) > 0 {
				fmt.Println()
				printInfo("Wires")
				for _, w := range conns {
					out, okOut := p.Knob(w.From)
					in, okIn := p.Knob(w.To)
					if !okOut || !okIn {
						continue
					}
					printDetail("%s %s %s", knobLabel(p, out), iconArrow, knobLabel(p, in))
				}
			}

			fmt.Println()
			printFile(filepath.Join(store.Path(), doc.ID.String()+".json"))
			printNextStep("Edit this patch", "patchboard edit "+doc.DisplayName())
			return nil
		},
	}
}

// docsDeleteCommand creates the docs delete subcommand.
func (c *CLI) docsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored patch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore()
			if err != nil {
				return err
			}
			doc, err := store.FindByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !yes && !confirmDelete(os.Stdin, doc.DisplayName()) {
				printWarning("Aborted")
				return nil
			}

			if err := store.Delete(cmd.Context(), doc.ID); err != nil {
				return err
			}
			printSuccess("Deleted %q", doc.DisplayName())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// confirmDelete asks for confirmation on the terminal. Anything but an
// explicit yes declines.
func confirmDelete(in io.Reader, name string) bool {
	fmt.Printf("Delete %q? [y/N]: ", name)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// nodeDisplay names a node for listing output.
func nodeDisplay(n *patch.Node) string {
	if n.Name() != "" {
		return n.Name()
	}
	return "node " + shortID(n.ID())
}

// knobNames joins knob names for a compact one-line listing.
func knobNames(knobs []*patch.Knob) string {
	if len(knobs) == 0 {
		return ""
	}
	names := make([]string, len(knobs))
	for i, k := range knobs {
		names[i] = k.Name()
	}
	return strings.Join(names, ", ")
}
