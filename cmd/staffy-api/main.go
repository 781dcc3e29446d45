// Package main is the entry point for the Staffy HR API.
// It wires configuration, logging, persistence and the REST router, and
// exposes the serve and migrate commands.
package main

func main() {
	Execute()
}
