// Package cli provides the teamkeeper command-line client.
//
// It wires configuration, local storage, the metadata server client and the
// client services, then runs a single command:
//
//   - sync: unlock with the passphrase, fetch and merge session keys, push local changes
//   - put <model> <id> <session-key>: record a session key and sync
//   - types: seed and list the local resource types
//   - actions <slug>: list update actions available for a resource type
//   - transition <type-id|slug> <ACTION>: resolve the resource type after an update
//
// Sync commands hold an exclusive lock next to the local database so two
// clients never push the same cache at once.
package cli
