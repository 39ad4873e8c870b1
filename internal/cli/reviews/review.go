package reviews

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos-app/lifeos/internal/cli"
	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/utils"
)

type ReviewCmd struct {
	Add  ReviewAddCmd  `cmd:"" help:"Write a weekly review."`
	List ReviewListCmd `cmd:"" help:"List weekly reviews."`
	Show ReviewShowCmd `cmd:"" help:"Show one weekly review."`
	Edit ReviewEditCmd `cmd:"" help:"Edit an existing weekly review."`
}

type ReviewAddCmd struct {
	Week        string `help:"Week start in YYYY-MM-DD format, Monday-aligned (default: this week)." default:""`
	Worked      string `help:"What worked this week." default:""`
	Failed      string `help:"What failed this week." default:""`
	Distraction string `help:"The main distraction." default:""`
	Plan        string `help:"Improvement plan for next week." default:""`
	Summary     string `help:"One-line summary (generated if empty)." default:""`
}

func (c *ReviewAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	weekStart, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	review := models.WeeklyReview{
		ID:              uuid.New().String(),
		UserID:          user.UserID,
		WeekStart:       weekStart,
		WhatWorked:      c.Worked,
		WhatFailed:      c.Failed,
		MainDistraction: c.Distraction,
		ImprovementPlan: c.Plan,
		Summary:         c.Summary,
		CreatedAt:       time.Now(),
	}

	if err := review.Validate(); err != nil {
		return err
	}

	if review.Summary == "" {
		review.Summary = review.GenerateSummary()
	}

	if err := ctx.Store.AddWeeklyReview(review); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("a review for the week of %s already exists (use 'lifeos review edit')", utils.FormatWeekRange(weekStart))
		}
		return err
	}

	fmt.Printf("Saved review for %s\n", utils.FormatWeekRange(weekStart))
	return nil
}

type ReviewListCmd struct{}

func (c *ReviewListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	reviews, err := ctx.Store.GetAllWeeklyReviews(user.UserID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Println("No weekly reviews yet.")
		return nil
	}

	for _, r := range reviews {
		fmt.Printf("%s  %s\n", utils.FormatWeekRange(r.WeekStart), r.Summary)
	}

	return nil
}

type ReviewShowCmd struct {
	Week string `help:"Week start in YYYY-MM-DD format (default: this week)." default:""`
}

func (c *ReviewShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	weekStart, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	review, err := ctx.Store.GetWeeklyReview(user.UserID, weekStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no review for the week of %s", utils.FormatWeekRange(weekStart))
		}
		return err
	}

	fmt.Printf("Week of %s\n\n", utils.FormatWeekRange(review.WeekStart))
	printField("What worked", review.WhatWorked)
	printField("What failed", review.WhatFailed)
	printField("Main distraction", review.MainDistraction)
	printField("Improvement plan", review.ImprovementPlan)
	printField("Summary", review.Summary)

	return nil
}

type ReviewEditCmd struct {
	Week        string `help:"Week start in YYYY-MM-DD format (default: this week)." default:""`
	Worked      string `help:"What worked this week." optional:""`
	Failed      string `help:"What failed this week." optional:""`
	Distraction string `help:"The main distraction." optional:""`
	Plan        string `help:"Improvement plan for next week." optional:""`
	Summary     string `help:"One-line summary." optional:""`
}

func (c *ReviewEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	weekStart, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	review, err := ctx.Store.GetWeeklyReview(user.UserID, weekStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no review for the week of %s (use 'lifeos review add')", utils.FormatWeekRange(weekStart))
		}
		return err
	}

	if c.Worked != "" {
		review.WhatWorked = c.Worked
	}
	if c.Failed != "" {
		review.WhatFailed = c.Failed
	}
	if c.Distraction != "" {
		review.MainDistraction = c.Distraction
	}
	if c.Plan != "" {
		review.ImprovementPlan = c.Plan
	}
	if c.Summary != "" {
		review.Summary = c.Summary
	} else {
		review.Summary = review.GenerateSummary()
	}

	if err := ctx.Store.UpdateWeeklyReview(review); err != nil {
		return err
	}

	fmt.Printf("Updated review for %s\n", utils.FormatWeekRange(weekStart))
	return nil
}

// resolveWeek normalizes a week flag to a Monday-aligned date, defaulting to
// the current week
func resolveWeek(week string) (string, error) {
	if week == "" {
		return utils.CurrentWeekStart(), nil
	}
	if _, err := utils.ParseDay(week); err != nil {
		return "", err
	}
	return utils.WeekStart(week)
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s:\n  %s\n\n", label, value)
}
