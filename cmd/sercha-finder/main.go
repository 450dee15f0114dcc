// Command sercha-finder is a search-as-you-type client for a remote document index.
package main

import "github.com/custodia-labs/sercha-finder/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
