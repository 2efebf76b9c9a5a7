package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	oasmodel "github.com/goliatone/go-oasmodel"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

func main() {
	source := flag.String("source", "openapi.yaml", "OpenAPI document path or URL")
	schemaName := flag.String("schema", "", "print the decoded variant of one component schema")
	preflightFlag := flag.Bool("preflight", false, "validate the whole document with kin-openapi before decoding")
	partial := flag.Bool("partial", false, "accept component-only documents without paths")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	ldr := oasmodel.NewLoader(oas.WithHTTPFallback(0))
	doc, err := ldr.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	parser := oasmodel.NewParser(
		oas.WithPreflight(*preflightFlag),
		oas.WithPartialDocuments(*partial),
	)
	model, err := parser.Parse(ctx, doc)
	if err != nil {
		log.Fatalf("Failed to parse document: %v", err)
	}

	if *schemaName != "" {
		schema, ok := model.Components.Schema(*schemaName)
		if !ok {
			log.Fatalf("no component schema named %q", *schemaName)
		}
		fmt.Println(schema.DebugString())
		return
	}

	printSummary(model)
}

func printSummary(model oas.OpenAPI) {
	fmt.Printf("openapi %s: %s %s\n", model.OpenAPI, model.Info.Title, model.Info.Version)
	for _, item := range model.Paths {
		for _, op := range item.Operations {
			fmt.Printf("  %-7s %s", strings.ToUpper(op.Method.String()), item.Path)
			if op.ID != "" {
				fmt.Printf("  (%s)", op.ID)
			}
			fmt.Println()
		}
	}
	if model.Components != nil {
		for _, entry := range model.Components.Schemas {
			fmt.Printf("  schema %-24s %s\n", entry.Name, entry.Schema.DebugString())
		}
	}
}

func parseSource(raw string) oas.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return oas.SourceFromURL(path)
	}
	return oas.SourceFromFile(path)
}
