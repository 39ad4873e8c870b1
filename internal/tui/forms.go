package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/lifeos-app/lifeos/internal/models"
)

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
				).
				Value(&fm.Frequency),
		),
	).WithTheme(huh.ThemeDracula())
}

func newDecisionForm(fm *DecisionFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What did you decide?").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("decision title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Context").
				Value(&fm.Description),
			huh.NewInput().
				Title("Options considered").
				Description("Comma separated").
				Value(&fm.Options),
			huh.NewSelect[models.EmotionalState]().
				Title("How did you feel?").
				Options(moodOptions()...).
				Value(&fm.Mood),
			huh.NewInput().
				Title("Expected outcome").
				Value(&fm.Expected),
		),
	).WithTheme(huh.ThemeDracula())
}

func moodOptions() []huh.Option[models.EmotionalState] {
	opts := make([]huh.Option[models.EmotionalState], len(models.EmotionalStates))
	for i, mood := range models.EmotionalStates {
		opts[i] = huh.NewOption(string(mood), mood)
	}
	return opts
}

func newSkillForm(fm *SkillFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Skill Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("skill name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRatingForm(fm *RatingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Rating (1-10)").
				Value(&fm.Rating).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil || i < 1 || i > 10 {
						return fmt.Errorf("rating must be between 1 and 10")
					}
					return nil
				}),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
			huh.NewInput().
				Title("Proof link").
				Description("Optional evidence of progress").
				Value(&fm.ProofLink),
		),
	).WithTheme(huh.ThemeDracula())
}

func newOutcomeForm(fm *OutcomeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Outcome]().
				Title("How did it turn out?").
				Options(
					huh.NewOption("Successful", models.OutcomeSuccessful),
					huh.NewOption("Neutral", models.OutcomeNeutral),
					huh.NewOption("Failed", models.OutcomeFailed),
				).
				Value(&fm.Outcome),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func newReviewForm(fm *ReviewFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What worked this week?").
				Value(&fm.Worked),
			huh.NewInput().
				Title("What failed?").
				Value(&fm.Failed),
			huh.NewInput().
				Title("Main distraction").
				Value(&fm.Distraction),
			huh.NewInput().
				Title("Improvement plan").
				Value(&fm.Plan),
		),
	).WithTheme(huh.ThemeDracula())
}
