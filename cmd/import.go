package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/patrickkleiner/inventory"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	from string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bootstrap the collection from a spreadsheet" }
func (*importCmd) Usage() string {
	return `inv import -from <file.xlsx|file.csv>

  One-time initial import: every spreadsheet row becomes a record. The Last
  Updated stamp is injected, and rows without a Tenant are owned by the
  importing principal (or left unowned when the administrator imports).
  Refuses to overwrite an existing data file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Spreadsheet to import (.xlsx or .csv)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -from is required.")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(*dataFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: data file %q already exists; import only bootstraps a new collection.\n", *dataFile)
		return subcommands.ExitFailure
	}

	records, err := inventory.ImportFile(c.from, principal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store := inventory.NewStore()
	for _, rec := range records {
		store.Append(rec)
	}
	if err := saveStore(store, principal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("imported %d record(s) into %s\n", store.Len(), *dataFile)
	return subcommands.ExitSuccess
}
