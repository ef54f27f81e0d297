package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the Drive-Law Assistant about Lagos traffic laws",
		Long: `Asks the AI assistant a question about Lagos State traffic laws.

With a question argument, prints one formatted answer. Without arguments,
starts an interactive chat with streamed replies; an empty line or Ctrl-D ends it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			out := cmd.OutOrStdout()

			conv, err := a.assistant.StartChat(cmd.Context(), a.lang)
			if err != nil {
				if errors.Is(err, domain.ErrAssistantOffline) {
					return fmt.Errorf("%s: %s", a.t("aiAssistantTitle"), a.t("offline"))
				}
				return err
			}

			title(out, a.t("aiAssistantTitle"))
			for _, msg := range conv.Messages() {
				fmt.Fprintln(out, msg.Content)
			}

			ask := func(question string) error {
				fmt.Fprintln(out)
				var streamed string
				_, err := conv.Send(cmd.Context(), question, func(partial string) {
					// partial - весь ответ на текущий момент, печатаем только новое
					if strings.HasPrefix(partial, streamed) {
						fmt.Fprint(out, partial[len(streamed):])
					} else {
						fmt.Fprint(out, "\n"+partial)
					}
					streamed = partial
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				return nil
			}

			// Одиночный вопрос: ответ целиком в markdown
			if len(args) > 0 {
				reply, err := conv.Send(cmd.Context(), strings.Join(args, " "), nil)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				renderMarkdown(out, reply.Content)
				return nil
			}

			lines := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !lines.Scan() {
					return lines.Err()
				}
				question := strings.TrimSpace(lines.Text())
				if question == "" {
					return nil
				}
				if err := ask(question); err != nil {
					return err
				}
			}
		},
	}
}
