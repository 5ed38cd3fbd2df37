// Command kg analyzes concept graphs: it validates a JSON document, detects
// communities, finds structural gaps and bridge concepts, and renders the
// result as text, JSON or an interactive HTML page.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
