package main

import (
	"flag"
	"fmt"
	"os"

	"faq-assistant-be/pkg/knowledge"

	"github.com/fatih/color"
)

// kbcheck validates a knowledge base file before deployment and reports what
// the responder would actually serve from it.
func main() {
	path := flag.String("file", "context_docs/faq.json", "path to the knowledge base JSON file")
	query := flag.String("query", "", "optional test query to match against the loaded entries")
	flag.Parse()

	color.Cyan("🔍 Checking knowledge base: %s\n", *path)

	store, err := knowledge.LoadFromFile(*path)
	if err != nil {
		color.Red("Load failed: %v", err)
		os.Exit(1)
	}

	entries := store.Entries()
	if len(entries) == 0 {
		color.Yellow("Loaded, but with ZERO usable entries — every query will hit the fallback")
	} else {
		color.Green("Loaded %d entries", len(entries))
	}

	for _, entry := range entries {
		fmt.Printf("  %-20s %s", entry.Id, entry.Question)
		if len(entry.Aliases) > 0 {
			fmt.Printf("  (+%d aliases)", len(entry.Aliases))
		}
		if entry.Answer == "" {
			color.Yellow("  [empty answer, will serve fallback text]")
		}
		fmt.Println()
	}

	color.Cyan("\nFallback: %s", store.FallbackAnswer())
	for _, link := range store.FallbackLinks() {
		fmt.Printf("  contact: %s (%s)\n", link.Label, link.URL)
	}

	if *query != "" {
		match := store.Match(*query)
		if match.Entry == nil {
			color.Yellow("\nQuery %q matched nothing", *query)
			return
		}
		color.Cyan("\nBest match for %q:", *query)
		fmt.Printf("  entry: %s\n", match.Entry.Id)
		fmt.Printf("  score: %.3f\n", match.Score)
	}
}
