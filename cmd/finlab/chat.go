package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/faq"
)

func chatCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [question]",
		Short: "Ask the FAQ chatbot",
		Long: `Ask the FAQ chatbot a question. Without a question, start an interactive
session: type a question, "/topics" to list the FAQ topics, "/topic N" to open
one, or "/quit" to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.logger.Sync()
			if !rt.require(app.ComponentChatbot) {
				return nil
			}

			responder := faq.DefaultResponder()
			session := faq.NewSession(responder, rt.cfg.Chat)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				msgs, err := session.Ask(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printReplies(out, msgs)
				return nil
			}
			return repl(cmd, session, responder)
		},
	}
	return cmd
}

func repl(cmd *cobra.Command, session *faq.Session, responder *faq.Responder) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	topics := responder.Topics()
	fmt.Fprintln(out, "Pose ta question (/topics, /topic N, /quit)")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		var (
			msgs []domain.Message
			err  error
		)
		switch {
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/topics":
			for i, t := range topics {
				fmt.Fprintf(out, "  %d. %s\n", i+1, t)
			}
			continue
		case strings.HasPrefix(line, "/topic "):
			n, convErr := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/topic ")))
			if convErr != nil || n < 1 || n > len(topics) {
				fmt.Fprintf(out, "Sujet inconnu, choisis entre 1 et %d\n", len(topics))
				continue
			}
			msgs, err = session.SelectTopic(cmd.Context(), topics[n-1])
		default:
			msgs, err = session.Ask(cmd.Context(), line)
		}
		if err != nil {
			return err
		}
		printReplies(out, msgs)
	}
}

// printReplies prints the bot messages; the user's own messages are already on screen
func printReplies(w io.Writer, msgs []domain.Message) {
	for _, m := range msgs {
		if m.From == domain.SenderBot {
			fmt.Fprintf(w, "bot: %s\n", m.Text)
		}
	}
}
