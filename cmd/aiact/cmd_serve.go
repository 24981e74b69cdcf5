package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/cache"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/config"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/transport/httptransport"
)

var serveFlags struct {
	catalogPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.catalogPath, "catalog", "", "Question catalog YAML (default: built-in EU AI Act set)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	observer := decision.NewAsyncInferenceObserver(decision.NewInferenceLogger(log.Default()), cfg.ObsBuffer)
	defer observer.Close()

	engine, err := buildEngine(serveFlags.catalogPath, cfg.RuleMaxPasses, decision.WithInferenceObserver(observer))
	if err != nil {
		return err
	}

	svc := app.NewService(
		engine,
		routing.NewCompiler(),
		cache.NewMemo[*routing.Graph](cfg.CacheMaxItems),
		app.WithMaxDepth(cfg.PathMaxDepth),
	)
	h := httptransport.NewHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("/assess", h.Assess)
	mux.HandleFunc("/analyze", h.Analyze)
	mux.HandleFunc("/questions", h.Questions)

	log.Printf("listening on %s", cfg.HTTPAddr)
	return http.ListenAndServe(cfg.HTTPAddr, mux)
}
