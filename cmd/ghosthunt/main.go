package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/ghost-hunt/internal/config"
	"github.com/tatianab/ghost-hunt/internal/hunt"
	"github.com/tatianab/ghost-hunt/internal/logging"
	"github.com/tatianab/ghost-hunt/internal/models"
	"github.com/tatianab/ghost-hunt/internal/narrator"
	"github.com/tatianab/ghost-hunt/internal/report"
)

func main() {
	names := flag.String("names", "", "comma-separated hunter names (default: prompt on stdin)")
	configFile := flag.String("config", "", "TOML config file")
	seed := flag.Uint64("seed", 0, "run seed (0 picks one at random)")
	save := flag.Bool("save", false, "save the report under the report directory")
	narrate := flag.Bool("narrate", false, "ask Gemini for a story of the hunt")
	list := flag.Bool("list", false, "list saved reports and exit")
	show := flag.String("show", "", "print a saved report and exit")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	switch {
	case *list:
		ids, err := models.ListReports(cfg.ReportDir)
		if err != nil {
			fmt.Printf("Error listing reports: %v\n", err)
			os.Exit(1)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return

	case *show != "":
		r, err := models.LoadReport(cfg.ReportDir, *show)
		if err != nil {
			fmt.Printf("Error loading report: %v\n", err)
			os.Exit(1)
		}
		if err := report.Write(os.Stdout, r, cfg.EvidenceThreshold); err != nil {
			os.Exit(1)
		}
		return
	}

	hunters, err := hunterNames(*names, cfg.Hunters)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	h, err := hunt.Prepare(cfg, hunters, log)
	if err != nil {
		fmt.Printf("Error preparing hunt: %v\n", err)
		os.Exit(1)
	}
	r, runErr := h.Run()

	if *narrate {
		ctx := context.Background()
		narr, err := narrator.NewNarrator(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Error creating narrator: %v\n", err)
			os.Exit(1)
		}
		defer narr.Close()
		if r.Narration, err = narr.Narrate(ctx, r); err != nil {
			log.Warn().Err(err).Msg("narration failed")
		}
	}

	if err := report.Write(os.Stdout, r, h.Threshold()); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		os.Exit(1)
	}

	if *save {
		path, err := r.Save(cfg.ReportDir)
		if err != nil {
			fmt.Printf("Error saving report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nReport saved to %s\n", path)
	}

	if runErr != nil {
		fmt.Printf("Error during hunt: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig layers the -config file, when given, over the environment.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// hunterNames splits the -names flag, or prompts for want names on stdin.
// Blank and repeated names are rejected.
func hunterNames(flagValue string, want int) ([]string, error) {
	if flagValue != "" {
		var out []string
		seen := map[string]bool{}
		for _, name := range strings.Split(flagValue, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("blank hunter name in %q", flagValue)
			}
			if seen[name] {
				return nil, fmt.Errorf("hunter [%s] already exists", name)
			}
			seen[name] = true
			out = append(out, name)
		}
		return out, nil
	}
	return promptNames(os.Stdin, os.Stdout, want)
}
