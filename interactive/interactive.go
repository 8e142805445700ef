// interactive/interactive.go
package interactive

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mcp-demos/calc/bridge"
	"github.com/mcp-demos/calc/config"
)

type Interactive struct {
	logger  *log.Logger
	scanner *bufio.Reader
	cfg     *config.Config
	bridge  *bridge.Bridge
	debug   bool
}

func New(cfg *config.Config, b *bridge.Bridge, logger *log.Logger) *Interactive {
	return &Interactive{
		scanner: bufio.NewReader(os.Stdin),
		logger:  logger,
		cfg:     cfg,
		bridge:  b,
		debug:   strings.ToLower(cfg.Logging.Level) == "debug",
	}
}

// Start runs the REPL until the user quits or input ends
func (i *Interactive) Start(ctx context.Context) error {
	fmt.Println("\n=== MCP Calculator Chat ===")
	fmt.Println("Type 'quit' or press Ctrl+C to exit")
	fmt.Println("Model:", i.cfg.LLM.Model)
	fmt.Println("Server:", i.cfg.ServerURL)
	for _, tool := range i.bridge.Tools() {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println("===========================")

	for {
		fmt.Print("\nQuery: ")
		input, err := i.scanner.ReadString('\n')
		if err != nil {
			if i.debug {
				i.logger.Printf("Error reading input: %v", err)
			}
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			fmt.Println("Goodbye!")
			return nil
		}

		if i.debug {
			i.logger.Printf("Sending query to bridge: %s", input)
		}
		response, err := i.bridge.ProcessQuery(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("\n%s\n", response)
	}
}
