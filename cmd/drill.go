package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/problemgen"
	"github.com/abhisek/applemath/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice in plain text mode (no TUI)",
	Long: `Answer questions by typing an option letter (a-d) or the product itself.

Reads answers from stdin line by line, so it also works in pipes and scripts.
Type q to stop.`,
	RunE: runDrillCmd,
}

func runDrillCmd(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	eventRepo, closeStore := openJournal(logger)
	defer closeStore()

	ctx := commandContext(cmd)
	manager := newManager(cfg, eventRepo, logger)
	manager.Start(ctx)
	defer manager.End(ctx)

	return runDrill(ctx, manager, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runDrill plays the quiz over a line-based reader and writer until the
// input closes or the learner quits.
func runDrill(ctx context.Context, m *session.Manager, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	// ask prints prompt and returns the next trimmed line; ok is false once
	// the input is closed.
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintf(out, "Hi %s! Let's count some apples.\n\n", m.Learner())

	for {
		q, err := m.Current()
		switch {
		case errors.Is(err, session.ErrGameOver):
			printSummary(out, m.Summary(ctx))
			answer, ok := ask("Play again? [y/N]: ")
			if !ok || !isYes(answer) {
				return nil
			}
			m.PlayAgain(ctx)
			fmt.Fprintln(out)
			continue

		case errors.Is(err, session.ErrAllMastered):
			fmt.Fprintf(out, "Congratulations! You have mastered all multiplication facts, %s!\n", m.Learner())
			answer, ok := ask("Reset mastery and start over? [y/N]: ")
			if !ok || !isYes(answer) {
				return nil
			}
			m.ResetMastery(ctx)
			fmt.Fprintln(out)
			continue

		case err != nil:
			return fmt.Errorf("next question: %w", err)
		}

		printQuestion(out, m, q)

		answer, ok := ask("\nYour answer: ")
		if !ok {
			break
		}
		if strings.EqualFold(answer, "q") {
			break
		}
		choice, ok := problemgen.ParseChoice(answer, q)
		if !ok {
			fmt.Fprintf(out, "Pick a-%s or type the answer.\n\n", problemgen.OptionLabel(len(q.Options)-1))
			continue
		}

		outcome, err := m.Answer(ctx, choice)
		if err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		if outcome.Correct {
			fmt.Fprintf(out, "\033[32m✓ %s\033[0m\n", outcome.Feedback)
		} else {
			fmt.Fprintf(out, "\033[31m✗ %s\033[0m\n", outcome.Feedback)
		}
		if t := outcome.Transition; t != nil {
			fmt.Fprintln(out, transitionNote(t))
		}
		fmt.Fprintln(out)
	}

	st := m.State()
	fmt.Fprintf(out, "── Stopped: %d/%d correct ──\n", st.SessionScore, st.QuestionsPlayed)
	return nil
}

func printQuestion(out io.Writer, m *session.Manager, q *problemgen.Question) {
	st := m.State()
	if st.Mode == session.ModeClassic {
		fmt.Fprintf(out, "── Question %d of %d ──\n", st.QuestionsPlayed+1, st.MaxQuestions)
	} else {
		fmt.Fprintf(out, "── %d of %d facts mastered ──\n", m.Table().MasteredCount(), mastery.NumFacts)
	}
	fmt.Fprintln(out, q.Text())
	for i, o := range q.Options {
		fmt.Fprintf(out, "  %s) %d\n", problemgen.OptionLabel(i), o)
	}
}

func printSummary(out io.Writer, sum *session.Summary) {
	fmt.Fprintln(out, "── Game Over! ──")
	fmt.Fprintf(out, "You got %d out of %d right!\n", sum.Correct, sum.Total)
	fmt.Fprintln(out, sum.Verdict)
	fmt.Fprintf(out, "Facts mastered: %d/%d\n", sum.MasteredCount, mastery.NumFacts)
	if len(sum.Trickiest) > 0 {
		fmt.Fprintln(out, "Trickiest facts:")
		for _, f := range sum.Trickiest {
			fmt.Fprintf(out, "  %s = %d (missed %d)\n", f.Pair, f.Pair.Product(), f.Misses)
		}
	}
	fmt.Fprintln(out)
}

func transitionNote(t *mastery.StateTransition) string {
	if t.Trigger == "mastered" {
		return fmt.Sprintf("★ %s mastered!", t.Pair)
	}
	return fmt.Sprintf("%s needs more practice.", t.Pair)
}

func isYes(s string) bool {
	s = strings.ToLower(s)
	return s == "y" || s == "yes"
}
