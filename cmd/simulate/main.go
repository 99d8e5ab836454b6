package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/participant"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/session"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/store"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to session config JSON")
	modelID := flag.String("model", "hyperbolic", "generating model for the synthetic participant")
	paramsArg := flag.String("params", "", "comma-separated true parameters for the generating model")
	sessions := flag.Int("sessions", 1, "number of independent simulated sessions")
	seed := flag.Uint64("seed", 1, "base seed; session i uses seed+i")
	dbPath := flag.String("db", "", "optional SQLite archive path")
	flag.Parse()

	if *configPath == "" || *paramsArg == "" {
		fmt.Fprintln(os.Stderr, "usage: simulate --config session.json --params 0.05,3.0 [--model hyperbolic] [--sessions N] [--seed S] [--db path]")
		os.Exit(2)
	}

	var baseConfig session.Config
	if err := cleanenv.ReadConfig(*configPath, &baseConfig); err != nil {
		fmt.Fprintf(os.Stderr, "read config: %v\n", err)
		os.Exit(2)
	}

	trueParams, err := parseParams(*paramsArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse params: %v\n", err)
		os.Exit(2)
	}

	bank := models.DefaultBank()
	genModel, err := bank.Get(models.ModelID(*modelID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating model: %v\n", err)
		os.Exit(2)
	}

	var archive *store.Store
	if *dbPath != "" {
		archive, err = store.NewStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open archive: %v\n", err)
			os.Exit(2)
		}
		defer archive.Close()
	}

	os.Exit(runSessions(baseConfig, bank, genModel, trueParams, *sessions, *seed, archive))
}

// #endregion main

// #region run-sessions
func runSessions(
	baseConfig session.Config,
	bank *models.Bank,
	genModel models.Model,
	trueParams []float64,
	count int,
	baseSeed uint64,
	archive *store.Store,
) int {
	fmt.Printf("%-10s| %-7s| %-20s| %-10s| %s\n", "Session", "Trials", "Reason", "Entropy", "Recovered")
	fmt.Printf("%-10s+%-8s+%-21s+%-11s+%s\n",
		"----------", "--------", "---------------------", "-----------", "--------------------")

	failures := 0
	for i := 0; i < count; i++ {
		config := baseConfig
		config.SessionID = fmt.Sprintf("sim-%d", i)
		config.Seed = baseSeed + uint64(i)

		responder := participant.NewSimulated(genModel, trueParams, config.Seed)
		ctrl, err := session.NewController(config, bank, responder, archive)
		if err != nil {
			fmt.Fprintf(os.Stderr, "session %d: %v\n", i, err)
			return 2
		}

		result, err := ctrl.Run(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "session %d: %v\n", i, err)
			failures++
			continue
		}

		recovered := "-"
		entropyStr := "-"
		if best := result.Belief.Best(); best != nil {
			recovered = formatParams(best.Fit.Params)
			entropyStr = fmt.Sprintf("%.4f", best.Fit.Entropy)
		}
		fmt.Printf("%-10s| %-7d| %-20s| %-10s| %s\n",
			result.SessionID, len(result.Trials), result.StopReason, entropyStr, recovered)
	}

	fmt.Printf("\nSummary: %d sessions, %d failed, true params %s\n",
		count, failures, formatParams(trueParams))
	if failures > 0 {
		return 1
	}
	return 0
}

// #endregion run-sessions

// #region helpers
func parseParams(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad parameter %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatParams(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.FormatFloat(p, 'f', 4, 64)
	}
	return strings.Join(parts, ",")
}

// #endregion helpers
