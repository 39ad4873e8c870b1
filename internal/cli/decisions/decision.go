package decisions

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos-app/lifeos/internal/analytics"
	"github.com/lifeos-app/lifeos/internal/cli"
	"github.com/lifeos-app/lifeos/internal/constants"
	"github.com/lifeos-app/lifeos/internal/models"
)

type DecisionCmd struct {
	Add     DecisionAddCmd     `cmd:"" help:"Log a new decision."`
	List    DecisionListCmd    `cmd:"" help:"List logged decisions."`
	Show    DecisionShowCmd    `cmd:"" help:"Show a decision in detail."`
	Outcome DecisionOutcomeCmd `cmd:"" help:"Record the realized outcome of a decision."`
	Delete  DecisionDeleteCmd  `cmd:"" help:"Delete a decision."`
	Stats   DecisionStatsCmd   `cmd:"" help:"Show decision outcome analytics."`
}

type DecisionAddCmd struct {
	Title       string `arg:"" help:"What was decided."`
	Description string `help:"Context around the decision." default:""`
	Options     string `help:"Options considered, comma-separated." default:""`
	Mood        string `help:"Emotional state when deciding." default:"calm"`
	Expected    string `help:"Expected outcome." default:""`
}

func (c *DecisionAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	now := time.Now()
	decision := models.Decision{
		ID:                uuid.New().String(),
		UserID:            user.UserID,
		Title:             c.Title,
		Description:       c.Description,
		OptionsConsidered: models.ParseOptions(c.Options),
		EmotionalState:    models.EmotionalState(c.Mood),
		ExpectedOutcome:   c.Expected,
		ActualOutcome:     models.OutcomePending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := decision.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddDecision(decision); err != nil {
		return err
	}

	fmt.Printf("Logged decision: %s\n", c.Title)
	return nil
}

type DecisionListCmd struct {
	Pending bool `help:"Only show decisions still awaiting an outcome."`
}

func (c *DecisionListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	decisions, err := ctx.Store.GetAllDecisions(user.UserID)
	if err != nil {
		return err
	}

	if c.Pending {
		var pending []models.Decision
		for _, d := range decisions {
			if d.ActualOutcome == models.OutcomePending {
				pending = append(pending, d)
			}
		}
		decisions = pending
	}

	if len(decisions) == 0 {
		fmt.Println("No decisions found.")
		return nil
	}

	for _, d := range decisions {
		fmt.Printf("%s %s  %s  [%s]  %s\n",
			cli.OutcomeSymbol(d.ActualOutcome), shortID(d.ID), d.Title,
			d.EmotionalState, d.CreatedAt.Format(constants.DateFormat))
	}

	return nil
}

type DecisionShowCmd struct {
	ID string `arg:"" help:"Decision id (prefix allowed)."`
}

func (c *DecisionShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	decision, err := findDecision(ctx, user.UserID, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", cli.OutcomeSymbol(decision.ActualOutcome), decision.Title)
	fmt.Printf("ID:       %s\n", decision.ID)
	fmt.Printf("Mood:     %s\n", decision.EmotionalState)
	fmt.Printf("Logged:   %s\n", decision.CreatedAt.Format(constants.DateFormat))
	if decision.Description != "" {
		fmt.Printf("Context:  %s\n", decision.Description)
	}
	if len(decision.OptionsConsidered) > 0 {
		fmt.Println("Options considered:")
		for i, opt := range decision.OptionsConsidered {
			fmt.Printf("  %d. %s\n", i+1, opt)
		}
	}
	if decision.ExpectedOutcome != "" {
		fmt.Printf("Expected: %s\n", decision.ExpectedOutcome)
	}
	fmt.Printf("Outcome:  %s\n", decision.ActualOutcome)
	if decision.OutcomeNotes != "" {
		fmt.Printf("Notes:    %s\n", decision.OutcomeNotes)
	}

	return nil
}

type DecisionOutcomeCmd struct {
	ID      string `arg:"" help:"Decision id (prefix allowed)."`
	Outcome string `arg:"" help:"Realized outcome: successful, neutral, or failed."`
	Notes   string `help:"Notes on how it played out." default:""`
}

func (c *DecisionOutcomeCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	outcome := models.Outcome(strings.ToLower(c.Outcome))
	if !models.ValidOutcome(outcome) || outcome == models.OutcomePending {
		return fmt.Errorf("invalid outcome %q (expected successful, neutral, or failed)", c.Outcome)
	}

	decision, err := findDecision(ctx, user.UserID, c.ID)
	if err != nil {
		return err
	}

	decision.ActualOutcome = outcome
	decision.OutcomeNotes = c.Notes
	decision.UpdatedAt = time.Now()

	if err := ctx.Store.UpdateDecision(decision); err != nil {
		return err
	}

	fmt.Printf("%s Recorded %s outcome for: %s\n", cli.OutcomeSymbol(outcome), outcome, decision.Title)
	return nil
}

type DecisionDeleteCmd struct {
	ID string `arg:"" help:"Decision id (prefix allowed)."`
}

func (c *DecisionDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	decision, err := findDecision(ctx, user.UserID, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteDecision(user.UserID, decision.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted decision: %s\n", decision.Title)
	return nil
}

type DecisionStatsCmd struct{}

func (c *DecisionStatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	decisions, err := ctx.Store.GetAllDecisions(user.UserID)
	if err != nil {
		return err
	}

	fmt.Printf("Decisions logged: %d\n", len(decisions))
	fmt.Printf("Success rate:     %d%%\n", analytics.SuccessRate(decisions))

	dist := analytics.OutcomeDistribution(decisions)
	if len(dist) > 0 {
		fmt.Println("\nOutcomes:")
		for _, oc := range dist {
			fmt.Printf("  %s %-10s %d\n", cli.OutcomeSymbol(oc.Outcome), oc.Outcome, oc.Count)
		}
	}

	pattern := analytics.EmotionalPattern(decisions)
	if len(pattern) > 0 {
		fmt.Println("\nEmotional pattern:")
		for _, mc := range pattern {
			fmt.Printf("  %-11s %s (%d)\n", mc.Mood, strings.Repeat("█", mc.Count), mc.Count)
		}
	}

	return nil
}

// findDecision resolves an id or unique id prefix to a decision
func findDecision(ctx *cli.Context, userID, id string) (models.Decision, error) {
	decision, err := ctx.Store.GetDecision(userID, id)
	if err == nil {
		return decision, nil
	}

	decisions, listErr := ctx.Store.GetAllDecisions(userID)
	if listErr != nil {
		return models.Decision{}, err
	}

	var matches []models.Decision
	for _, d := range decisions {
		if strings.HasPrefix(d.ID, id) {
			matches = append(matches, d)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Decision{}, err
	default:
		return models.Decision{}, fmt.Errorf("decision id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
