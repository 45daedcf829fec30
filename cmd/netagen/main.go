// Package main provides the CLI entrypoint for netagen.
//
// netagen is the build-time schema generator behind the netabase store:
//   - Parses Go packages (AST + go/types) for netabase:schema directives
//   - Validates the annotation set and resolves each type's key strategy
//   - Generates the key type and codec surface next to the annotated source
package main

import "github.com/newsnet-africa/netabase-sub001/cmd/netagen/cmd"

func main() {
	cmd.Execute()
}
