package skills

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos-app/lifeos/internal/analytics"
	"github.com/lifeos-app/lifeos/internal/cli"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/utils"
)

type SkillCmd struct {
	Add    SkillAddCmd    `cmd:"" help:"Start tracking a skill."`
	List   SkillListCmd   `cmd:"" help:"List skills with latest rating and growth."`
	Rate   SkillRateCmd   `cmd:"" help:"Record a self-rating for a skill."`
	Show   SkillShowCmd   `cmd:"" help:"Show a skill's rating history."`
	Delete SkillDeleteCmd `cmd:"" help:"Stop tracking a skill (removes its ratings too)."`
}

type SkillAddCmd struct {
	Name     string `arg:"" help:"Skill name."`
	Category string `help:"Grouping category (e.g. technical, social)." default:""`
}

func (c *SkillAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	skill := models.Skill{
		ID:        uuid.New().String(),
		UserID:    user.UserID,
		Name:      c.Name,
		Category:  c.Category,
		CreatedAt: time.Now(),
	}

	if err := skill.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddSkill(skill); err != nil {
		return err
	}

	fmt.Printf("Tracking skill: %s\n", c.Name)
	return nil
}

type SkillListCmd struct{}

func (c *SkillListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	skills, err := ctx.Store.GetAllSkills(user.UserID)
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		fmt.Println("No skills tracked yet.")
		return nil
	}

	ratings, err := ctx.Store.GetAllRatings(user.UserID)
	if err != nil {
		return err
	}

	for _, sk := range skills {
		skillRatings := filterRatings(ratings, sk.ID)
		latest := analytics.LatestRating(skillRatings)
		growth := analytics.Growth(skillRatings)

		growthStr := fmt.Sprintf("%+d", growth)
		if growth == 0 {
			growthStr = " 0"
		}

		category := sk.Category
		if category == "" {
			category = "-"
		}
		fmt.Printf("%-20s level %2d/10  growth %s  [%s]\n", sk.Name, latest, growthStr, category)
	}

	fmt.Printf("\nAverage level: %.1f   Total growth points: %d\n",
		analytics.AverageSkillLevel(skills, ratings),
		analytics.TotalGrowthPoints(skills, ratings))

	return nil
}

type SkillRateCmd struct {
	Name   string `arg:"" help:"Skill name."`
	Rating int    `arg:"" help:"Self-rating from 1 to 10."`
	Notes  string `help:"What changed since the last rating." default:""`
	Proof  string `help:"Link to evidence of the skill level." default:""`
	Date   string `help:"Rating date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *SkillRateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	skill, err := findSkillByName(ctx, user.UserID, c.Name)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if _, err := utils.ParseDay(day); err != nil {
		return err
	}

	rating := models.SkillRating{
		ID:        uuid.New().String(),
		UserID:    user.UserID,
		SkillID:   skill.ID,
		Rating:    c.Rating,
		Notes:     c.Notes,
		ProofLink: c.Proof,
		RatedAt:   day,
		CreatedAt: time.Now(),
	}

	if err := rating.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddRating(rating); err != nil {
		return err
	}

	fmt.Printf("Rated %s at %d/10 for %s\n", skill.Name, c.Rating, day)
	return nil
}

type SkillShowCmd struct {
	Name string `arg:"" help:"Skill name."`
}

func (c *SkillShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	skill, err := findSkillByName(ctx, user.UserID, c.Name)
	if err != nil {
		return err
	}

	ratings, err := ctx.Store.GetRatingsForSkill(user.UserID, skill.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", skill.Name)
	if skill.Category != "" {
		fmt.Printf("Category: %s\n", skill.Category)
	}
	fmt.Printf("Level:    %d/10\n", analytics.LatestRating(ratings))
	fmt.Printf("Growth:   %+d\n", analytics.Growth(ratings))

	if len(ratings) > 0 {
		fmt.Println("\nRecent progress:")
		// Last 3 ratings, newest first
		shown := 0
		for i := len(ratings) - 1; i >= 0 && shown < 3; i-- {
			r := ratings[i]
			line := fmt.Sprintf("  %s  %2d/10", r.RatedAt, r.Rating)
			if r.Notes != "" {
				line += "  " + r.Notes
			}
			fmt.Println(line)
			shown++
		}
	}

	return nil
}

type SkillDeleteCmd struct {
	Name string `arg:"" help:"Skill name."`
}

func (c *SkillDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	skill, err := findSkillByName(ctx, user.UserID, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteSkill(user.UserID, skill.ID); err != nil {
		return err
	}

	fmt.Printf("Stopped tracking skill: %s (ratings removed)\n", skill.Name)
	return nil
}

func findSkillByName(ctx *cli.Context, userID, name string) (models.Skill, error) {
	skills, err := ctx.Store.GetAllSkills(userID)
	if err != nil {
		return models.Skill{}, err
	}
	for _, sk := range skills {
		if sk.Name == name {
			return sk, nil
		}
	}
	return models.Skill{}, fmt.Errorf("skill %q not found", name)
}

func filterRatings(ratings []models.SkillRating, skillID string) []models.SkillRating {
	var out []models.SkillRating
	for _, r := range ratings {
		if r.SkillID == skillID {
			out = append(out, r)
		}
	}
	return out
}
