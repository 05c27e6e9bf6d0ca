package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/patrickkleiner/inventory"
	"github.com/patrickkleiner/inventory/export"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format  string
	out     string
	query   string
	tenant  string
	project string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the displayed subset to an external format" }
func (*exportCmd) Usage() string {
	return `inv export -format <json|html|txt|xlsx> -o <file> [-q <text>] [-tenant <tenant>] [-project <project>]

  Serializes the records currently visible under the given filters into the
  requested format. An unsupported format is an error and writes nothing; an
  empty subset is a notice and writes nothing. The output file gets the
  format's extension if it has none.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Export format: json, html, txt or xlsx")
	f.StringVar(&c.out, "o", "", "Output file")
	f.StringVar(&c.query, "q", "", "Free-text filter, case-insensitive, matched against every field")
	f.StringVar(&c.tenant, "tenant", "", "Tenant equality filter (administrator only)")
	f.StringVar(&c.project, "project", "", "Project substring filter")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	if c.format == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -format and -o are required.")
		return subcommands.ExitUsageError
	}

	format, err := export.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	q := inventory.Query{Text: c.query, Tenant: c.tenant, Project: c.project}
	displayed := inventory.Filter(store.Records(), q, principal)
	if len(displayed) == 0 {
		fmt.Println("no data to export")
		return subcommands.ExitSuccess
	}

	out := c.out
	if filepath.Ext(out) == "" {
		out += format.Ext()
	}
	file, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := export.Export(file, displayed, format); err != nil {
		// Encoding failed: report and leave no partial output behind.
		file.Close()
		os.Remove(out)
		if errors.Is(err, export.ErrNoRecords) {
			fmt.Println("no data to export")
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Export error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("exported %d record(s) to %s\n", len(displayed), out)
	return subcommands.ExitSuccess
}
