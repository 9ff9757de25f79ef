package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vinay-014/GoodFoods/internal/agent"
	"github.com/Vinay-014/GoodFoods/internal/config"
	"github.com/Vinay-014/GoodFoods/internal/dependency"
)

var chatMessage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the reservation assistant",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message and exit")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	if chatMessage != "" {
		return runSingleMessage(container.Agent())
	}
	return runInteractive(container.Agent())
}

// runSingleMessage sends one message to the assistant and prints the reply.
func runSingleMessage(a *agent.ReservationAgent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Fprintln(os.Stderr, "  ↳ thinking...")
	reply, _ := a.ProcessMessage(ctx, chatMessage)

	printResponse(reply)
	return nil
}

// runInteractive starts the REPL loop: reads lines from stdin and prints each
// reply before prompting again. /clear resets the conversation.
func runInteractive(a *agent.ReservationAgent) error {
	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit, /clear to reset)\n\n", logo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenForSignals(cancel)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitCommands[strings.ToLower(line)] {
			fmt.Println("Goodbye!")
			return nil
		}
		if strings.EqualFold(line, "/clear") {
			a.ClearConversation()
			fmt.Println("Conversation cleared.")
			continue
		}

		reply, _ := a.ProcessMessage(ctx, line)
		printResponse(reply)
	}
}

// listenForSignals cancels ctx on SIGINT or SIGTERM and exits.
func listenForSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()
}

func printResponse(text string) {
	fmt.Printf("\n%s goodfoods\n%s\n\n", logo, text)
}
