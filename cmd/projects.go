package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/patrickkleiner/inventory"
)

// projectsCmd lists the distinct project labels visible to the principal.
type projectsCmd struct{}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list the distinct project labels" }
func (*projectsCmd) Usage() string {
	return `inv projects

  Prints the sorted distinct non-empty Project values among the records the
  acting principal may see.
`
}

func (*projectsCmd) SetFlags(*flag.FlagSet) {}

func (c *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, p := range inventory.Projects(store.Records(), principal) {
		fmt.Println(p)
	}
	return subcommands.ExitSuccess
}

// tenantsCmd lists the distinct tenant identities of the collection.
type tenantsCmd struct{}

func (*tenantsCmd) Name() string     { return "tenants" }
func (*tenantsCmd) Synopsis() string { return "list the distinct tenant identities (administrator)" }
func (*tenantsCmd) Usage() string {
	return `inv tenants

  Prints the sorted distinct non-empty Tenant values of the collection. Only
  the administrator sees tenants other than itself.
`
}

func (*tenantsCmd) SetFlags(*flag.FlagSet) {}

func (c *tenantsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, ok := requirePrincipal()
	if !ok {
		return subcommands.ExitSuccess
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, t := range inventory.Tenants(inventory.Scope(store.Records(), principal)) {
		fmt.Println(t)
	}
	return subcommands.ExitSuccess
}
