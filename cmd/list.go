package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/patrickkleiner/inventory"
	"github.com/patrickkleiner/inventory/export"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	query   string
	tenant  string
	project string
	plain   bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the records visible to the acting principal" }
func (*listCmd) Usage() string {
	return `inv list [-q <text>] [-tenant <tenant>] [-project <project>] [-plain]

  Displays the filtered collection as a table, one row per record, with the
  record id in the first column. A tenant sees only its own records; the
  administrator sees everything and may narrow by -tenant. -q matches any
  field, -project matches the Project field.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Free-text filter, case-insensitive, matched against every field")
	f.StringVar(&c.tenant, "tenant", "", "Tenant equality filter (administrator only)")
	f.StringVar(&c.project, "project", "", "Project substring filter")
	f.BoolVar(&c.plain, "plain", false, "Print the raw markdown table without terminal styling")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	q := inventory.Query{Text: c.query, Tenant: c.tenant, Project: c.project}
	displayed := inventory.Filter(store.Records(), q, principal)
	if len(displayed) == 0 {
		fmt.Println("no records")
		return subcommands.ExitSuccess
	}

	table := export.MarkdownTable(displayed)
	if c.plain {
		fmt.Print(table)
		return subcommands.ExitSuccess
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(table)
		return subcommands.ExitSuccess
	}
	out, err := r.Render(table)
	if err != nil {
		fmt.Print(table)
		return subcommands.ExitSuccess
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
