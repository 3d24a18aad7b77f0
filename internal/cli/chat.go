package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gemini-chatbot/internal/chat"
)

const chatHelp = `Commands:
  /clear        start a new conversation
  /history      show this conversation
  /model <id>   switch model
  /models       list available models
  /help         show this help
  /quit         leave`

func newChatCmd(app *App) *cobra.Command {
	var modelID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat. Every message is sent together with the earlier
turns of the conversation. Type /help for commands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Settings.APIKey == "" {
				return fmt.Errorf("%w: GEMINI_API_KEY not set", ErrInvalidConfig)
			}
			if modelID == "" {
				modelID = app.Settings.DefaultModel
			}
			if !app.Settings.HasModel(modelID) {
				return fmt.Errorf("%w: %s", chat.ErrUnknownModel, modelID)
			}
			return runChat(cmd, app, modelID)
		},
	}
	cmd.Flags().StringVarP(&modelID, "model", "m", "", "Model to chat with (default from DEFAULT_MODEL)")
	return cmd
}

type chatState struct {
	sessionID string
	model     string
}

func runChat(cmd *cobra.Command, app *App, modelID string) error {
	ctx := cmd.Context()
	st := &chatState{model: modelID}

	cmd.Printf("Chatting with %s. Type /help for commands.\n", st.model)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := handleChatCommand(cmd, app, st, line); quit {
				return nil
			}
			continue
		}

		out, err := app.ChatUC.Send(ctx, chat.SendInput{
			SessionID: st.sessionID,
			Model:     st.model,
			Message:   line,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			cmd.Printf("Error: %v\n", err)
			continue
		}

		st.sessionID = out.SessionID
		if out.Empty {
			cmd.Println("(the model returned an empty response)")
			continue
		}
		cmd.Printf("%s\n", out.Reply)
	}
}

// handleChatCommand runs one slash command and reports whether to leave.
func handleChatCommand(cmd *cobra.Command, app *App, st *chatState, line string) bool {
	ctx := cmd.Context()
	fields := strings.Fields(line)

	switch fields[0] {
	case "/quit", "/exit":
		cmd.Println("Goodbye!")
		return true

	case "/help":
		cmd.Println(chatHelp)

	case "/models":
		printModels(cmd, app)

	case "/model":
		if len(fields) < 2 {
			cmd.Printf("Current model: %s\n", st.model)
			return false
		}
		if !app.Settings.HasModel(fields[1]) {
			cmd.Printf("Unknown model %q. Available: %s\n", fields[1], strings.Join(app.Settings.ModelIDs(), ", "))
			return false
		}
		st.model = fields[1]
		cmd.Printf("Switched to %s\n", st.model)

	case "/clear":
		if st.sessionID != "" {
			if err := app.ChatUC.Reset(ctx, st.sessionID); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
				cmd.Printf("Error: %v\n", err)
				return false
			}
		}
		st.sessionID = ""
		cmd.Println("Conversation cleared.")

	case "/history":
		if st.sessionID == "" {
			cmd.Println("No messages yet.")
			return false
		}
		hist, err := app.ChatUC.History(ctx, st.sessionID)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return false
		}
		for _, t := range hist.Turns {
			cmd.Printf("[%s] %s: %s\n", t.CreatedAt.Format("15:04:05"), t.Role, t.Text)
		}

	default:
		cmd.Printf("Unknown command %s. Type /help for commands.\n", fields[0])
	}
	return false
}
