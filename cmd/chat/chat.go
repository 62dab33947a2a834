// Package chat implements the conversational mode: one free-text message
// per line, one response per message.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"cofrim/cmd/root"
	"cofrim/internal/categorizer"
	"cofrim/internal/interpreter"

	"github.com/spf13/cobra"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Record entries and ask spending questions in natural language",
	Long: `chat starts the conversational loop. Type transactions
("gastei 50 no mercado com pix") or questions ("quanto gastei esse mes")
and cofrim answers each line. Type 'sair' to leave.

With a message argument the command answers once and exits.`,
	Run: chatFunc,
}

func chatFunc(cmd *cobra.Command, args []string) {
	st, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Failed to open snapshot: %v", err)
	}

	ctx := context.Background()

	strategies := []categorizer.Strategy{
		categorizer.NewKeywordStrategy(st.Groups, root.Log),
	}
	if root.Cfg.AI.Enabled {
		ai, err := categorizer.NewAIStrategy(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model, st.Groups, root.Log)
		if err != nil {
			root.Log.Warnf("AI suggestions unavailable: %v", err)
		} else {
			defer func() {
				if err := ai.Close(); err != nil {
					root.Log.Warnf("Failed to close AI client: %v", err)
				}
			}()
			strategies = append(strategies, ai)
		}
	}

	it := interpreter.New(st, categorizer.New(root.Log, strategies...))

	// One-shot mode: interpret the argument and exit.
	if len(args) > 0 {
		fmt.Println(it.Process(ctx, strings.Join(args, " ")))
		return
	}

	fmt.Println("💬 Modo conversa ativo")
	fmt.Println("Digite lançamentos ou consultas.")
	fmt.Println("Digite 'sair' para voltar.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Você: ")
		if !scanner.Scan() {
			break
		}

		msg := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(msg, "sair") {
			return
		}

		fmt.Printf("Cofrim: %s\n", it.Process(ctx, msg))
	}

	if err := scanner.Err(); err != nil {
		root.Log.Errorf("Error reading input: %v", err)
	}
}
