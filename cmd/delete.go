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

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove records addressed by their ids" }
func (*deleteCmd) Usage() string {
	return `inv delete <record-id> [<record-id> ...]

  Removes every addressed record the acting principal owns, then writes the
  collection back. Records owned by another tenant are retained and the
  denial is reported; ids that match nothing are ignored.
`
}

func (c *deleteCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	ids := f.Args()
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one record id is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := store.Delete(ids, principal)
	var denied *inventory.AuthorizationError
	if err != nil && !errors.As(err, &denied) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The authorized removals stand even when some targets were denied.
	if err := saveStore(store, principal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("removed %d record(s)\n", removed)
	if denied != nil {
		fmt.Fprintf(os.Stderr, "Denied: %d record(s) belong to another tenant and were kept.\n", len(denied.IDs))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
