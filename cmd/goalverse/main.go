package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goalverse/goalverse/internal/analytics"
	"github.com/goalverse/goalverse/internal/app"
	"github.com/goalverse/goalverse/internal/doctor"
	"github.com/goalverse/goalverse/internal/goals"
	"github.com/goalverse/goalverse/internal/guidance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "goalverse",
	Short: "goalverse - Goal tracking with Quranic guidance",
	Long:  `goalverse tracks personal goals and pairs each one with relevant Quranic verses, practical steps and dua recommendations.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(moreCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate the autocompletion script for the specified shell",
	Long: `Generate the autocompletion script for goalverse for the specified shell.
See each command's help for details on how to use the generated script.
	`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			err = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			err = cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			err = cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating completion script: %v\n", err)
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
}

func runVersionCmd(a *app.App, cmd *cobra.Command, args []string) {
	fmt.Println("goalverse v0.1.0")
}

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new goal",
	Args:  cobra.MinimumNArgs(1),
}

var addDescription string
var addCategory string

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Longer description of the goal")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label, e.g. health or career")
}

func runAddCmd(a *app.App, cmd *cobra.Command, args []string) {
	goal := &goals.Goal{
		Title:       strings.Join(args, " "),
		Description: addDescription,
		Category:    addCategory,
	}

	if err := a.Goals.Create(goal); err != nil {
		a.Core.Logger.Error("Failed to create goal", zap.Error(err))
		fmt.Printf("❌ Failed to create goal: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Goal #%d added: %s\n", goal.ID, goal.Title)

	// Show guidance for the new goal right away
	results := a.Guidance.FindPassagesForGoal(a.ContextWithLogger(a.Ctx), goal.SearchText())
	printMatchResults(results)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
}

var listAll bool

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include completed goals")
}

func runListCmd(a *app.App, cmd *cobra.Command, args []string) {
	var (
		items []*goals.Goal
		err   error
	)
	if listAll {
		items, err = a.Goals.List()
	} else {
		items, err = a.Goals.ListActive()
	}
	if err != nil {
		a.Core.Logger.Error("Failed to list goals", zap.Error(err))
		fmt.Printf("❌ Error retrieving goals: %v\n", err)
		return
	}

	if len(items) == 0 {
		fmt.Println("No goals yet. Add one with: goalverse add \"your goal\"")
		return
	}

	for _, goal := range items {
		marker := " "
		if goal.Completed {
			marker = "x"
		}
		fmt.Printf("[%s] #%d %s", marker, goal.ID, goal.Title)
		if goal.Category != "" {
			fmt.Printf(" (%s)", goal.Category)
		}
		fmt.Println()
		if goal.Description != "" {
			fmt.Printf("       %s\n", goal.Description)
		}
	}
}

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Toggle a goal's completion state",
	Args:  cobra.ExactArgs(1),
}

func runDoneCmd(a *app.App, cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("❌ Invalid goal ID: %s\n", args[0])
		os.Exit(1)
	}

	goal, err := a.Goals.ToggleComplete(id)
	if err != nil {
		a.Core.Logger.Error("Failed to toggle goal", zap.Error(err), zap.Int64("id", id))
		fmt.Printf("❌ Failed to update goal: %v\n", err)
		os.Exit(1)
	}

	if goal.Completed {
		fmt.Printf("✅ Goal #%d completed: %s\n", goal.ID, goal.Title)
	} else {
		fmt.Printf("Goal #%d reopened: %s\n", goal.ID, goal.Title)
	}
}

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
}

func runRmCmd(a *app.App, cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("❌ Invalid goal ID: %s\n", args[0])
		os.Exit(1)
	}

	if err := a.Goals.Delete(id); err != nil {
		a.Core.Logger.Error("Failed to delete goal", zap.Error(err), zap.Int64("id", id))
		fmt.Printf("❌ Failed to delete goal: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Goal #%d deleted\n", id)
}

var matchCmd = &cobra.Command{
	Use:   "match [goal text]",
	Short: "Find verses for a goal",
	Long: `Find Quranic verses relevant to a goal.

Pass free text, or use --id to match a stored goal.

Examples:
  goalverse match "Build a daily exercise habit"
  goalverse match --id 3`,
}

var matchGoalID int64

func init() {
	matchCmd.Flags().Int64Var(&matchGoalID, "id", 0, "Match a stored goal by ID instead of free text")
	moreCmd.Flags().Int64Var(&moreGoalID, "id", 0, "Load more verses for a stored goal by ID")
	moreCmd.Flags().IntVarP(&moreCurrent, "current", "n", 0, "How many verses you have already seen")
}

func runMatchCmd(a *app.App, cmd *cobra.Command, args []string) {
	goalText, ok := resolveGoalText(a, args, matchGoalID)
	if !ok {
		os.Exit(1)
	}

	results := a.Guidance.FindPassagesForGoal(a.ContextWithLogger(a.Ctx), goalText)
	if len(results) == 0 {
		fmt.Println("No verses found for this goal.")
		return
	}
	printMatchResults(results)
}

var moreCmd = &cobra.Command{
	Use:   "more [goal text]",
	Short: "Load more verses for a goal",
}

var moreGoalID int64
var moreCurrent int

func runMoreCmd(a *app.App, cmd *cobra.Command, args []string) {
	goalText, ok := resolveGoalText(a, args, moreGoalID)
	if !ok {
		os.Exit(1)
	}

	results := a.Guidance.AdditionalPassagesForGoal(a.ContextWithLogger(a.Ctx), goalText, moreCurrent)
	if len(results) == 0 {
		fmt.Println("No further verses found for this goal.")
		return
	}
	printMatchResults(results)
}

// resolveGoalText turns command input into the text the guidance engine
// matches against: either the stored goal's search text or the joined args.
func resolveGoalText(a *app.App, args []string, goalID int64) (string, bool) {
	if goalID > 0 {
		goal, err := a.Goals.Get(goalID)
		if err != nil {
			a.Core.Logger.Error("Failed to load goal", zap.Error(err), zap.Int64("id", goalID))
			fmt.Printf("❌ Failed to load goal #%d: %v\n", goalID, err)
			return "", false
		}
		return goal.SearchText(), true
	}
	if len(args) == 0 {
		fmt.Println("❌ Provide goal text or --id.")
		return "", false
	}
	return strings.Join(args, " "), true
}

var collectionCmd = &cobra.Command{
	Use:   "collection [theme]",
	Short: "Show the verse collection for a theme",
	Args:  cobra.ExactArgs(1),
}

func runCollectionCmd(a *app.App, cmd *cobra.Command, args []string) {
	collection := a.Guidance.ThematicCollection(a.ContextWithLogger(a.Ctx), args[0])
	if collection == nil {
		fmt.Printf("❌ Unknown theme: %s\n", args[0])
		fmt.Print("Available themes:")
		for _, theme := range guidance.Themes() {
			fmt.Printf(" %s", theme.Name)
		}
		fmt.Println()
		os.Exit(1)
	}

	fmt.Printf("Theme: %s\n%s\n\n", collection.Theme, collection.Description)
	for i, passage := range collection.Passages {
		fmt.Printf("[%d] %s\n", i+1, passage.Context)
		fmt.Printf("    %s\n", passage.TextTranslated)
		if passage.Reflection != "" {
			fmt.Printf("    Reflection: %s\n", passage.Reflection)
		}
		fmt.Println()
	}

	if len(collection.PracticalGuidance) > 0 {
		fmt.Println("Practical guidance:")
		for _, item := range collection.PracticalGuidance {
			fmt.Printf("  - %s\n", item)
		}
	}
	if len(collection.RecommendedActions) > 0 {
		fmt.Println("Recommended habits:")
		for _, item := range collection.RecommendedActions {
			fmt.Printf("  - %s\n", item)
		}
	}
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show a daily verse",
}

func runDailyCmd(a *app.App, cmd *cobra.Command, args []string) {
	passage := a.Guidance.DailyPassage(a.ContextWithLogger(a.Ctx))
	if passage == nil {
		fmt.Println("❌ Could not fetch a verse right now. Try again later.")
		os.Exit(1)
	}
	printPassage(passage)
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a verse based on your goals",
}

func runRecommendCmd(a *app.App, cmd *cobra.Command, args []string) {
	all, err := a.Goals.List()
	if err != nil {
		a.Core.Logger.Error("Failed to list goals", zap.Error(err))
		fmt.Printf("❌ Error retrieving goals: %v\n", err)
		os.Exit(1)
	}

	var active, completed []string
	for _, goal := range all {
		if goal.Completed {
			completed = append(completed, goal.SearchText())
		} else {
			active = append(active, goal.SearchText())
		}
	}

	passage := a.Guidance.SmartRecommendation(a.ContextWithLogger(a.Ctx), active, completed)
	if passage == nil {
		fmt.Println("❌ Could not fetch a recommendation right now. Try again later.")
		os.Exit(1)
	}
	printPassage(passage)
}

func printPassage(passage *guidance.Passage) {
	fmt.Printf("%s\n", passage.Context)
	if passage.TextOriginal != "" {
		fmt.Printf("%s\n", passage.TextOriginal)
	}
	fmt.Printf("%s\n", passage.TextTranslated)
	if passage.Reflection != "" {
		fmt.Printf("\nReflection: %s\n", passage.Reflection)
	}
	if passage.LifeApplication != "" {
		fmt.Printf("Apply it: %s\n", passage.LifeApplication)
	}
}

func printMatchResults(results []guidance.MatchResult) {
	for i, result := range results {
		fmt.Printf("\n[%d] (%.2f) %s\n", i+1, result.RelevanceScore, result.Passage.Context)
		fmt.Printf("    %s\n", result.Passage.TextTranslated)
		if result.Passage.Reflection != "" {
			fmt.Printf("    Reflection: %s\n", result.Passage.Reflection)
		}
		if len(result.PracticalSteps) > 0 {
			fmt.Println("    Practical steps:")
			for _, step := range result.PracticalSteps {
				fmt.Printf("      - %s\n", step)
			}
		}
		if result.PrayerRecommendation != "" {
			fmt.Printf("    Dua: %s\n", result.PrayerRecommendation)
		}
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show goal statistics",
}

func runStatsCmd(a *app.App, cmd *cobra.Command, args []string) {
	goalAnalytics := analytics.NewGoalAnalytics(a.Core.DB.GetConnection())
	metrics, err := goalAnalytics.GetGoalMetrics()
	if err != nil {
		a.Core.Logger.Error("Failed to get goal metrics", zap.Error(err))
		fmt.Printf("❌ Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total goals: %d\n", metrics.TotalGoals)
	fmt.Printf("Completed: %d\n", metrics.CompletedGoals)
	fmt.Printf("Active: %d\n", metrics.ActiveGoals)
	fmt.Printf("Completion: %s\n", metrics.VisualizeCompletionRate(30))

	if metrics.AverageTimeToComplete > 0 {
		fmt.Printf("Avg. time to complete: %.1f hours\n", metrics.AverageTimeToComplete.Hours())
	}

	if len(metrics.GoalsByCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, line := range metrics.VisualizeCategoryRates(20) {
			fmt.Printf("  %s\n", line)
		}
	}
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run diagnostics on the goalverse installation",
}

func runDoctorCmd(a *app.App, cmd *cobra.Command, args []string) {
	doctorRunner := doctor.NewRunner(a.Core.Config, a.Core.DB)
	diagnostics := doctorRunner.RunAll()
	diagnostics.PrintReport()
}

// newAppRunner creates a Cobra Run function closure with the app.App instance.
func newAppRunner(a *app.App, runFunc func(*app.App, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		runFunc(a, cmd, args)
	}
}

func main() {
	appInstance, err := app.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer appInstance.Close()

	versionCmd.Run = newAppRunner(appInstance, runVersionCmd)
	addCmd.Run = newAppRunner(appInstance, runAddCmd)
	listCmd.Run = newAppRunner(appInstance, runListCmd)
	doneCmd.Run = newAppRunner(appInstance, runDoneCmd)
	rmCmd.Run = newAppRunner(appInstance, runRmCmd)
	matchCmd.Run = newAppRunner(appInstance, runMatchCmd)
	moreCmd.Run = newAppRunner(appInstance, runMoreCmd)
	collectionCmd.Run = newAppRunner(appInstance, runCollectionCmd)
	dailyCmd.Run = newAppRunner(appInstance, runDailyCmd)
	recommendCmd.Run = newAppRunner(appInstance, runRecommendCmd)
	statsCmd.Run = newAppRunner(appInstance, runStatsCmd)
	doctorCmd.Run = newAppRunner(appInstance, runDoctorCmd)

	if err := rootCmd.Execute(); err != nil {
		appInstance.Core.Logger.Error("Root command execution failed", zap.Error(err))
		os.Exit(1)
	}
}
