package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/patrickkleiner/inventory"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	set fieldFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new record to the collection" }
func (*addCmd) Usage() string {
	return `inv add -set <Field=Value> [-set <Field=Value> ...]

  Appends a new record built from the given field assignments. Fields of the
  existing collection that are not assigned stay empty. The Last Updated
  stamp is set automatically; for a non-administrator the Tenant field is
  forced to the acting principal, whatever was assigned.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.set, "set", "Field assignment, Field=Value (repeatable)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	if len(c.set) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -set Field=Value is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session := inventory.NewEditSession(store.FieldNames())
	for _, a := range c.set {
		session.Set(a.Name, a.Value)
	}
	rec, err := session.Commit(store, principal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store, principal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("added record %s\n", rec.ID())
	return subcommands.ExitSuccess
}
