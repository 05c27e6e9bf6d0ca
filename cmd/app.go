// Package cmd implements the CLI application to manage the inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/patrickkleiner/inventory"
)

// Commands lists every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&listCmd{},
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&exportCmd{},
	&importCmd{},
	&projectsCmd{},
	&tenantsCmd{},
	&queryCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "data.json", "Path to the inventory data file")
var snapshotDir = flag.String("snapshot-dir", ".snapshots", "Directory for post-save snapshots; empty disables them")
var userFlag = flag.String("user", "", "Acting principal, a tenant name or 'administrator' (defaults to INVENTORY_USER)")

func init() {
	// Optional .env file in the working directory; flags still win.
	godotenv.Load()
}

// currentPrincipal resolves the acting principal from the -user flag or the
// INVENTORY_USER environment. The second return is false when no principal
// was provided: the session terminates cleanly without touching anything.
func currentPrincipal() (inventory.Principal, bool) {
	user := strings.TrimSpace(*userFlag)
	if user == "" {
		user = strings.TrimSpace(os.Getenv("INVENTORY_USER"))
	}
	if user == "" {
		return "", false
	}
	return inventory.Principal(user), true
}

// requirePrincipal is the session entry check shared by every command that
// touches the store. No principal means a clean exit, the CLI rendition of a
// cancelled login prompt; only a hint goes to stderr.
func requirePrincipal() (inventory.Principal, bool) {
	principal, ok := currentPrincipal()
	if !ok {
		fmt.Fprintln(os.Stderr, "no principal: set -user or INVENTORY_USER to open a session")
	}
	return principal, ok
}

// openStore loads the full collection from the data file. A missing file is
// an empty collection with a warning; run 'import' to bootstrap from a
// spreadsheet.
func openStore() (*inventory.Store, error) {
	store, err := inventory.LoadStore(*dataFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, data file does not exist, starting with an empty collection (run 'import' to bootstrap one)")
		return inventory.NewStore(), nil
	}
	return store, err
}

// saveStore writes the full collection back to the data file and takes a
// best-effort snapshot tagged with the acting principal.
func saveStore(store *inventory.Store, principal inventory.Principal) error {
	var snap *inventory.Snapshotter
	if *snapshotDir != "" {
		snap = inventory.NewSnapshotter(*snapshotDir)
	}
	return inventory.SaveStore(*dataFile, store, principal, snap)
}

// fieldFlags collects repeated -set Field=Value assignments.
type fieldFlags []inventory.Field

func (f *fieldFlags) String() string {
	var parts []string
	for _, a := range *f {
		parts = append(parts, a.Name+"="+a.Value)
	}
	return strings.Join(parts, ",")
}

func (f *fieldFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("want Field=Value, got %q", s)
	}
	*f = append(*f, inventory.Field{Name: strings.TrimSpace(name), Value: value})
	return nil
}
