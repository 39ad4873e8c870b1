package insights

import (
	"fmt"

	"github.com/lifeos-app/lifeos/internal/analytics"
	"github.com/lifeos-app/lifeos/internal/cli"
	"github.com/lifeos-app/lifeos/internal/utils"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.UserID, false)
	if err != nil {
		return err
	}
	checkins, err := ctx.Store.GetCheckins(user.UserID)
	if err != nil {
		return err
	}
	decisions, err := ctx.Store.GetAllDecisions(user.UserID)
	if err != nil {
		return err
	}
	reviews, err := ctx.Store.GetAllWeeklyReviews(user.UserID)
	if err != nil {
		return err
	}

	avgConsistency := analytics.AverageConsistency(habits, checkins, utils.Today())

	fmt.Println("Reality check:")
	for _, msg := range analytics.Insights(user, habits, decisions, reviews, avgConsistency) {
		fmt.Printf("  • %s\n", msg)
	}

	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.UserID, false)
	if err != nil {
		return err
	}
	checkins, err := ctx.Store.GetCheckins(user.UserID)
	if err != nil {
		return err
	}
	decisions, err := ctx.Store.GetAllDecisions(user.UserID)
	if err != nil {
		return err
	}
	skills, err := ctx.Store.GetAllSkills(user.UserID)
	if err != nil {
		return err
	}
	ratings, err := ctx.Store.GetAllRatings(user.UserID)
	if err != nil {
		return err
	}
	reviews, err := ctx.Store.GetAllWeeklyReviews(user.UserID)
	if err != nil {
		return err
	}

	today := utils.Today()

	fmt.Printf("Decisions logged:   %d (success rate %d%%)\n", len(decisions), analytics.SuccessRate(decisions))
	fmt.Printf("Habits tracked:     %d (consistency %d%%, best streak %d)\n",
		len(habits),
		analytics.AverageConsistency(habits, checkins, today),
		analytics.BestStreak(habits, checkins, today))
	fmt.Printf("Skills tracked:     %d (avg level %.1f, growth points %d)\n",
		len(skills),
		analytics.AverageSkillLevel(skills, ratings),
		analytics.TotalGrowthPoints(skills, ratings))
	fmt.Printf("Weekly reviews:     %d\n", len(reviews))

	return nil
}
