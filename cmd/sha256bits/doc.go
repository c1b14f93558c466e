// Command sha256bits prints SHA-256 digests and checks integrity tokens.
//
// Usage:
//
//	sha256bits [-e ascii|hex] [INPUT...]
//	sha256bits verify --id ID --payload PAYLOAD TOKEN
//
// With no INPUT the whole of stdin is hashed. The verify subcommand
// recomputes Hash(ID + secret + PAYLOAD) and exits 0 if it equals TOKEN
// exactly, 1 if it does not, and 2 on usage or configuration errors.
//
// Configuration is read from the YAML file named by --config or
// SHA256BITS_CONFIG. SHA256BITS_SECRET overrides the secret in the file.
package main
