package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mcp-demos/calc/bridge"
	"github.com/mcp-demos/calc/config"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, _, err := config.LoadOrCreate()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	serverURL := flag.String("server", cfg.ServerURL, "base URL of the MCP server")
	flag.Parse()

	ctx := context.Background()

	client, err := bridge.NewMCPClient(*serverURL, logger)
	if err != nil {
		logger.Fatalf("Failed to create MCP client: %v", err)
	}
	defer client.Close()

	if _, err := client.Connect(ctx); err != nil {
		logger.Fatalf("Failed to connect: %v", err)
	}

	toolList, err := client.ListTools(ctx)
	if err != nil {
		logger.Fatalf("Failed to list tools: %v", err)
	}

	fmt.Println("Available tools:")
	for _, tool := range toolList {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	result, err := client.CallTool(ctx, "add", map[string]interface{}{"a": 2, "b": 3})
	if err != nil {
		logger.Fatalf("Tool call failed: %v", err)
	}
	fmt.Printf("2 + 3 = %s\n", result)
}
