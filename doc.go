// Package inventory implements a single-session inventory collection backed
// by one JSON file, with per-tenant visibility, substring filtering, and
// edit-merge semantics.
//
// The core functionalities include:
//   - Record Store: the full ordered collection of inventory rows, read
//     afresh at session start and written back wholesale on every mutation,
//     with explicit authorization on update and delete.
//   - Access Scope: the subset of rows a principal is permitted to see; the
//     administrator sees everything, a tenant sees only rows tagged with its
//     own identity.
//   - Search/Filter: the displayed subset, combining a free-text substring
//     match with tenant and project filter controls.
//   - Edit Session: the bounded interaction producing one committed row
//     mutation or append, stamping the modification time and enforcing
//     tenant attribution.
//   - Data Persistence: ordered, human-readable JSON with atomic whole-file
//     rewrites, a one-time spreadsheet import, and best-effort snapshot
//     copies after each save.
//
// This package serves as the foundational logic for the `inv` command-line
// tool. Records carry stable surrogate identifiers so that edits and deletes
// always target exactly one row, even among field-for-field duplicates.
package inventory
