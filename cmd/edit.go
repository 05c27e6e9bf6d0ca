package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/patrickkleiner/inventory"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	id  string
	set fieldFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing record addressed by its id" }
func (*editCmd) Usage() string {
	return `inv edit -id <record-id> -set <Field=Value> [-set <Field=Value> ...]

  Replaces the addressed record with a copy carrying the given assignments;
  unassigned fields keep their current values. The Last Updated stamp is
  refreshed; for a non-administrator the Tenant field is forced to the
  acting principal. Editing a record owned by another tenant is denied.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the record to edit (first column of 'list')")
	f.Var(&c.set, "set", "Field assignment, Field=Value (repeatable)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	if c.id == "" || len(c.set) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and at least one -set Field=Value are required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rec, err := store.Get(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v: %s\n", err, c.id)
		return subcommands.ExitFailure
	}

	session := inventory.EditSessionFor(rec)
	for _, a := range c.set {
		session.Set(a.Name, a.Value)
	}
	updated, err := session.Commit(store, principal)
	if err != nil {
		var denied *inventory.AuthorizationError
		if errors.As(err, &denied) {
			fmt.Fprintf(os.Stderr, "Denied: record %s belongs to another tenant.\n", c.id)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store, principal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("updated record %s\n", updated.ID())
	return subcommands.ExitSuccess
}
