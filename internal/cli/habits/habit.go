package habits

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos-app/lifeos/internal/analytics"
	"github.com/lifeos-app/lifeos/internal/cli"
	"github.com/lifeos-app/lifeos/internal/constants"
	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits with streak and consistency."`
	Toggle  HabitToggleCmd  `cmd:"" help:"Toggle a habit's checkin for a day."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's habit status."`
	Log     HabitLogCmd     `cmd:"" help:"Show the recent checkin grid."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit (kept, hidden from lists)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore an archived habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"What this habit involves." default:""`
	Frequency   string `help:"daily or weekly." default:"daily"`
	Color       string `help:"Display color (hex or name)." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	// Names double as CLI handles, so keep them unique per user
	if _, err := ctx.Store.GetHabitByName(user.UserID, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		UserID:      user.UserID,
		Name:        c.Name,
		Description: c.Description,
		Frequency:   models.Frequency(c.Frequency),
		Color:       c.Color,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := habit.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.UserID, c.All)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	checkins, err := ctx.Store.GetCheckins(user.UserID)
	if err != nil {
		return err
	}

	today := utils.Today()
	for _, h := range habits {
		status := ""
		if !h.IsActive {
			status = " [ARCHIVED]"
		}
		streak := analytics.Streak(checkins, h.ID, today)
		consistency := analytics.Consistency(checkins, h.ID, today)
		fmt.Printf("%-20s streak %-3d consistency %3d%%  (%s)%s\n",
			h.Name, streak, consistency, h.Frequency, status)
	}

	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.UserID, c.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if _, err := utils.ParseDay(day); err != nil {
		return err
	}

	checked, err := ctx.Store.ToggleCheckin(user.UserID, habit.ID, day)
	if err != nil {
		return err
	}

	if checked {
		fmt.Printf("Checked %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unchecked %q for %s\n", c.Name, day)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
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

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	checkins, err := ctx.Store.GetCheckins(user.UserID)
	if err != nil {
		return err
	}

	today := utils.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	for _, h := range habits {
		status := "[ ]"
		if analytics.CheckedOn(checkins, h.ID, today) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", status, h.Name)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"7"`
	Habit string `help:"Show log for a specific habit only." default:""`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
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

	if c.Habit != "" {
		habit, err := ctx.Store.GetHabitByName(user.UserID, c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{habit}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	checkins, err := ctx.Store.GetCheckins(user.UserID)
	if err != nil {
		return err
	}

	days, err := utils.LastNDays(utils.Today(), c.Days)
	if err != nil {
		return err
	}

	// Header row of day-of-month numbers
	fmt.Printf("%-20s", "")
	for _, day := range days {
		t, _ := time.Parse(constants.DateFormat, day)
		fmt.Printf("%3d", t.Day())
	}
	fmt.Println()

	for _, h := range habits {
		fmt.Printf("%-20s", h.Name)
		for _, day := range days {
			mark := " ·"
			if analytics.CheckedOn(checkins, h.ID, day) {
				mark = " x"
			}
			fmt.Printf("%3s", mark)
		}
		fmt.Println()
	}

	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.UserID, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.ArchiveHabit(user.UserID, habit.ID); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.UserID, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(user.UserID, habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}
