package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/nlvx-arena/internal/models"
	"github.com/BerylCAtieno/nlvx-arena/internal/personas"
	"github.com/spf13/cobra"
)

func newTurnCmd(client func() *Client) *cobra.Command {
	var req models.DebateRequest

	cmd := &cobra.Command{
		Use:   "turn",
		Short: "Request a single debate turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().Turn(cmd.Context(), req)
			if err != nil {
				return err
			}
			printSpeaker(resp.Debater, resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Topic, "topic", "", "Debate topic")
	cmd.Flags().StringVar(&req.DebaterType, "debater", string(personas.Analyst), "Persona identifier")
	cmd.Flags().StringVar(&req.DebateLanguage, "lang", "en", "Response language code")
	cmd.Flags().StringVar(&req.Context, "context", "", "Prior discussion text")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newDebateCmd(client func() *Client) *cobra.Command {
	var (
		topic    string
		debaters []string
		rounds   int
		lang     string
	)

	cmd := &cobra.Command{
		Use:   "debate",
		Short: "Run a multi-round debate, carrying the transcript as context",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(debaters) < 2 {
				return errors.New("at least two debaters are required")
			}
			if rounds < 1 {
				return errors.New("rounds must be at least 1")
			}

			printHeader(fmt.Sprintf("Debate: %s", topic))
			_, err := runDebate(cmd.Context(), client(), topic, lang, debaters, rounds, printSpeaker)
			return err
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Debate topic")
	cmd.Flags().StringSliceVar(&debaters, "debaters", []string{string(personas.Optimist), string(personas.Critic)}, "Comma-separated persona identifiers, in speaking order")
	cmd.Flags().IntVar(&rounds, "rounds", 2, "Number of rounds; each debater speaks once per round")
	cmd.Flags().StringVar(&lang, "lang", "en", "Response language code")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

// Transcript accumulates "Name: message" lines. The server keeps no history,
// so the full transcript is sent with every turn after the first.
type Transcript struct {
	lines []string
}

func (t *Transcript) Add(speaker, message string) {
	t.lines = append(t.lines, fmt.Sprintf("%s: %s", speaker, message))
}

func (t *Transcript) String() string {
	return strings.Join(t.lines, "\n")
}

func runDebate(ctx context.Context, c *Client, topic, lang string, debaters []string, rounds int, onTurn func(name, message string)) (*Transcript, error) {
	transcript := &Transcript{}

	for round := 1; round <= rounds; round++ {
		for _, debater := range debaters {
			resp, err := c.Turn(ctx, models.DebateRequest{
				Topic:          topic,
				DebaterType:    debater,
				DebateLanguage: lang,
				Context:        transcript.String(),
			})
			if err != nil {
				return transcript, fmt.Errorf("round %d, %s: %w", round, debater, err)
			}
			transcript.Add(resp.Debater, resp.Message)
			if onTurn != nil {
				onTurn(resp.Debater, resp.Message)
			}
		}
	}

	return transcript, nil
}

func newPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the known debater personas",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range personas.All() {
				fmt.Println(p)
			}
			printWarning(fmt.Sprintf("unknown identifiers debate as %s", personas.Fallback))
		},
	}
}
