package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score <option>...",
		Short: "Score quiz answers given as option indices",
		Long: `Score the personality quiz. Each argument is the 0-based option picked
for the question at that position; "-" skips a question.`,
		Example: "  compass score 2 2 0 2 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, content, err := opts.loadContent()
			if err != nil {
				return err
			}

			quizService := service.NewQuizService(content, nil, nil, zap.NewNop())

			answers, err := parseAnswers(args, quizService.Questions())
			if err != nil {
				return err
			}
			printScore(cmd.OutOrStdout(), quizService, quizService.Score(answers))
			return nil
		},
	}
}

// parseAnswers maps positional option indices onto question IDs.
func parseAnswers(args []string, questions []quiz.Question) (quiz.Answers, error) {
	if len(args) > len(questions) {
		return nil, fmt.Errorf("got %d answers for %d questions", len(args), len(questions))
	}

	answers := make(quiz.Answers, len(args))
	for i, arg := range args {
		if arg == "-" {
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, arg)
		}
		if n < 0 || n >= quiz.OptionsPerQuestion {
			return nil, fmt.Errorf("answer %d: option %d: %w", i+1, n, service.ErrInvalidOption)
		}
		answers[questions[i].ID] = n
	}
	return answers, nil
}

func printScore(w io.Writer, quizService *service.QuizService, res quiz.Result) {
	outcome := quizService.Outcome(res.Primary)

	fmt.Fprintln(w, headerStyle.Render("Personality quiz result"))
	fmt.Fprintf(w, "%s %s\n", accentStyle.Render(outcome.Label), dimStyle.Render("("+string(res.Primary)+")"))
	if outcome.Description != "" {
		fmt.Fprintln(w, outcome.Description)
	}
	fmt.Fprintln(w)

	for _, c := range quiz.Categories {
		n := res.Counts[c]
		fmt.Fprintf(w, "%-11s %s %d\n", c, barStyle.Render(strings.Repeat("█", n)), n)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "answered %d/%d\n", res.Answered, res.Total)
	if !res.Complete() {
		fmt.Fprintln(w, dimStyle.Render("quiz incomplete"))
	}
	for _, s := range outcome.Suggestions {
		fmt.Fprintln(w, "• "+s)
	}
}
