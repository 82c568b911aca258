// Package commands defines the keybuf CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create the local identity
//   - fingerprint    Print the identity fingerprint
//   - show           Print the public half of the identity
//   - sign           Sign a message with an identity key
//   - verify         Verify a signature
//   - keyring        Add, list and remove peer public keys
//   - decode         Strictly decode a key buffer from JSON, YAML or hex
//   - agree          Derive a key shared with a keyring peer
//
// # Implementation
//
// The root command loads the optional config file and builds a dependency
// graph (stores, services) before any subcommand runs, so handlers can use
// a shared app context.  Diagnostics go through the standard log package
// and are only shown with --verbose.
package commands
