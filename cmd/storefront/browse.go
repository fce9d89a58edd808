// Browse command: an interactive session that drives the selection store.
// The session subscribes to the store and re-renders the selection snapshot
// after every mutation, the way a reactive UI would.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/storefront/pkg/menu"
	"github.com/mesh-intelligence/storefront/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Start an interactive browsing session. Commands:

  categories          list catalog categories
  select <title>      open (or close) a category's sub-menu
  toggle <name>       select or deselect a sub-category
  confirm             view products for the selected sub-categories
  cancel              abandon the selection and return to browsing
  show                print the current selection state
  quit                leave the session`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	store, cleanup, err := loadStore()
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	unsubscribe := store.Subscribe(func(sel types.Selection) {
		renderSelection(out, store, sel)
	})
	defer unsubscribe()

	fmt.Fprintln(out, "Storefront browser. Type 'categories' to begin, 'quit' to leave.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		verb, arg := splitCommand(scanner.Text())
		if verb == "" {
			continue
		}
		if verb == "quit" || verb == "exit" {
			break
		}
		if err := runBrowseCommand(out, store, verb, arg); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}
	}
	return scanner.Err()
}

// splitCommand separates the first word from the rest of the line.
func splitCommand(line string) (verb, arg string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// runBrowseCommand dispatches one session command against the store.
// Rendering happens through the subscribed observer, not here.
func runBrowseCommand(out io.Writer, store *menu.Store, verb, arg string) error {
	switch verb {
	case "categories":
		for _, c := range store.Categories() {
			fmt.Fprintf(out, "%s: %s\n", c.Title, strings.Join(c.SubCategories, ", "))
		}
		return nil
	case "select":
		c, err := store.CategoryByTitle(arg)
		if err != nil {
			return fmt.Errorf("category %q: %w", arg, err)
		}
		logger.Debug("selecting category", zap.String("title", c.Title))
		return store.SelectCategory(c.CategoryID)
	case "toggle":
		return store.ToggleSubCategory(arg)
	case "confirm":
		return store.ConfirmSelection()
	case "cancel":
		store.CancelSelection()
		return nil
	case "show":
		renderSelection(out, store, store.Selection())
		return nil
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
}

// renderSelection prints the selection snapshot: the open sub-menu while
// choosing, the filtered products while viewing.
func renderSelection(out io.Writer, store *menu.Store, sel types.Selection) {
	switch sel.Phase {
	case types.PhaseChoosing:
		c, err := store.Category(sel.SelectedCategory)
		if err != nil {
			return
		}
		selected := make(map[string]bool, len(sel.SubCategories))
		for _, name := range sel.SubCategories {
			selected[name] = true
		}
		fmt.Fprintf(out, "[choosing] %s\n", c.Title)
		for _, name := range c.SubCategories {
			mark := " "
			if selected[name] {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %s\n", mark, name)
		}
	case types.PhaseViewing:
		cause := sel.CausingCategory
		if c, err := store.Category(cause); err == nil {
			cause = c.Title
		}
		fmt.Fprintf(out, "[viewing] %s: %s\n", cause, strings.Join(sel.SubCategories, ", "))
		for _, p := range store.FilteredProducts() {
			fmt.Fprintf(out, "  %s\n", p.Name)
		}
	default:
		fmt.Fprintln(out, "[browsing]")
	}
}
