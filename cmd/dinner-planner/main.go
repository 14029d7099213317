package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dinner-planner/internal/app"
	"dinner-planner/internal/config"
	"dinner-planner/internal/logging"
	"dinner-planner/internal/metrics"
	"dinner-planner/internal/planner"
	"dinner-planner/internal/weather"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", zap.String("command", os.Args[1]), zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, command string, args []string) error {
	var rng planner.RandomSource
	var opts app.PlanOptions
	asJSON := false

	switch command {
	case "plan":
		planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
		weatherFlag := planCmd.String("weather", "", "Plan for hot, cold or moderate weather instead of the live forecast")
		seed := planCmd.Uint64("seed", 0, "Seed for repeatable plans (0 picks a random seed)")
		jsonFlag := planCmd.Bool("json", false, "Print the plan as JSON")
		planCmd.Parse(args)

		if *weatherFlag != "" {
			w, err := weather.Parse(*weatherFlag)
			if err != nil {
				return err
			}
			opts.Weather = &w
		}
		if *seed != 0 {
			rng = planner.NewSource(*seed)
		}
		asJSON = *jsonFlag
	case "seed", "recipes":
	case "import", "export", "load":
		if len(args) != 1 {
			arg := "dir"
			if command == "import" {
				arg = "url"
			}
			return fmt.Errorf("usage: dinner-planner %s <%s>", command, arg)
		}
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}

	application, db, err := app.Setup(cfg, metrics.NewRecorder(), rng, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "plan":
		res, err := application.GenerateMealPlan(ctx, opts)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Print(app.FormatText(res))
	case "seed":
		n, err := application.SeedSamples(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Recipes already exist, nothing seeded.")
			return nil
		}
		fmt.Printf("Added %d sample recipes.\n", n)
	case "import":
		rec, err := application.ImportRecipe(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %q (%s, %d mins, %d ingredients) as %s\n",
			rec.Name, rec.ProteinType, rec.TotalTime(), len(rec.Ingredients), rec.ID)
	case "export":
		n, err := application.ExportRecipes(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d recipes to %s\n", n, args[0])
	case "load":
		n, err := application.LoadRecipes(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d recipes from %s\n", n, args[0])
	case "recipes":
		recipes, err := application.ListRecipes(ctx)
		if err != nil {
			return err
		}
		for _, r := range recipes {
			fmt.Printf("%-36s  %-30s  %-10s  %3d mins  %s\n", r.ID, r.Name, r.ProteinType, r.TotalTime(), r.WeatherPreference)
		}
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage: dinner-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan [--weather hot|cold|moderate] [--seed N] [--json]")
	fmt.Println("                     Plan next week's dinners and print the shopping list")
	fmt.Println("  seed               Add the sample recipes to an empty collection")
	fmt.Println("  import <url>       Import a recipe from a web page")
	fmt.Println("  recipes            List stored recipes")
	fmt.Println("  export <dir>       Write every recipe to a directory of JSON files")
	fmt.Println("  load <dir>         Store the recipes from a directory of JSON files")
}
