// Command routefinder inspects YAML route tables: it lists routes in
// precedence order, matches paths against them and renders named routes.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
