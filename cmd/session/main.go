package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/participant"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/session"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/store"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region main
func main() {
	configPath := flag.String("config", envOr("SESSION_CONFIG", ""), "path to session config JSON")
	remoteAddr := flag.String("remote", envOr("ELICIT_ADDR", ""), "gRPC address of the presentation service (empty = stdin prompts)")
	dbPath := flag.String("db", envOr("ELICIT_DB", ""), "optional SQLite archive path")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: session --config path/to/session.json [--remote addr] [--db path]")
		os.Exit(2)
	}

	var config session.Config
	if err := cleanenv.ReadConfig(*configPath, &config); err != nil {
		log.Fatalf("read config: %v", err)
	}

	var archive *store.Store
	if *dbPath != "" {
		var err error
		archive, err = store.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
	}

	var responder participant.Responder
	if *remoteAddr != "" {
		client, err := participant.NewPresentClient(*remoteAddr, config.SessionID, config.SearchSpace)
		if err != nil {
			log.Fatalf("connect presentation service at %s: %v", *remoteAddr, err)
		}
		defer client.Close()
		responder = client
	} else {
		responder = &stdinResponder{space: config.SearchSpace, in: bufio.NewScanner(os.Stdin)}
	}

	ctrl, err := session.NewController(config, models.DefaultBank(), responder, archive)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}

	// Ctrl-C cancels between trials; partial history is preserved.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Adaptive elicitation session ready.")
	fmt.Printf("  models: %v | budget: %d trials (%d burn-in)\n",
		config.ActiveModels, config.MaxTrials, config.BurnInTrialCount)

	result, err := ctrl.Run(ctx)
	if err != nil {
		log.Printf("session error: %v", err)
	}
	printResult(result)
}

// #endregion main

// #region stdin-responder
// stdinResponder renders the stimulus as a two-option prompt and reads the
// participant's answer from stdin. Empty input or EOF is a non-response.
type stdinResponder struct {
	space trial.SearchSpace
	in    *bufio.Scanner
}

func (r *stdinResponder) Respond(_ context.Context, stim trial.StimulusParameterSet) (trial.ChoiceResponse, error) {
	var parts []string
	for _, d := range r.space.Dims {
		parts = append(parts, fmt.Sprintf("%s=%.2f", d.Name, stim[d.Name]))
	}
	fmt.Printf("\n  %s\n", strings.Join(parts, "  "))
	fmt.Print("choose option [1/2]: ")

	if !r.in.Scan() {
		return trial.ChoiceResponse{}, participant.ErrNoResponse
	}
	switch strings.TrimSpace(r.in.Text()) {
	case "1":
		return trial.ChoiceResponse{Choice: 0}, nil
	case "2":
		return trial.ChoiceResponse{Choice: 1}, nil
	default:
		return trial.ChoiceResponse{}, participant.ErrNoResponse
	}
}

// #endregion stdin-responder

// #region output
func printResult(result session.Result) {
	fmt.Printf("\nSession %s: %d trials, reason=%s\n",
		result.SessionID, len(result.Trials), result.StopReason)

	if result.Belief == nil {
		return
	}
	best := result.Belief.Best()
	if best == nil {
		fmt.Println("no model reached a usable fit")
		return
	}
	fmt.Printf("best model: %s (weight %.3f, entropy %.4f)\n",
		best.ModelID, best.Weight, best.Fit.Entropy)
	for i, name := range bestParamNames(best.ModelID) {
		if i < len(best.Fit.Params) {
			fmt.Printf("  %-8s %.6f (log-SE %.4f)\n", name, best.Fit.Params[i], best.Fit.StdErrs[i])
		}
	}
}

func bestParamNames(id models.ModelID) []string {
	m, err := models.DefaultBank().Get(id)
	if err != nil {
		return nil
	}
	return m.Spec().ParamNames
}

// #endregion output

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
