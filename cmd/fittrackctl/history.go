package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/workouts"
)

var (
	historyEmail string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Print a user's latest training days",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		userID, err := resolveUserID(ctx, historyEmail)
		if err != nil {
			return err
		}

		service := history.NewService(history.NewRepo(dbPool), workouts.NewRepo(dbPool))
		dashboard, err := service.Dashboard(ctx, userID)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		days, err := service.History(ctx, userID)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("%s: %d training days\n", dashboard.MonthLabel, dashboard.TrainingCountThisMonth)
		if len(days) == 0 {
			fmt.Println("No training days yet.")
			return nil
		}

		if historyLimit > 0 && len(days) > historyLimit {
			days = days[:historyLimit]
		}
		for _, day := range days {
			fmt.Printf("%s %s\n", color.CyanString(day.Date), bold.Sprint(day.WorkoutName))
			for _, r := range day.Records {
				group := ""
				if r.MuscleGroup != nil {
					group = faint.Sprintf(" (%s)", *r.MuscleGroup)
				}
				fmt.Printf("    %-24s %d x %d @ %g kg%s\n", r.Name, r.Sets, r.Reps, r.Weight, group)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyEmail, "email", "", "email of the user")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "max number of training days")
	rootCmd.AddCommand(historyCmd)
}
