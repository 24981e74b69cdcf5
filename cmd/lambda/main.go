package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/cache"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/config"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/transport/lambdatransport"
)

func main() {
	cfg := config.Load()

	observer := decision.NewAsyncInferenceObserver(decision.NewInferenceLogger(log.Default()), cfg.ObsBuffer)
	defer observer.Close()

	ruleset := decision.NewRuleset(decision.DefaultRules(), decision.WithMaxPasses(cfg.RuleMaxPasses))
	engine := decision.NewEngine(decision.DefaultQuestions(), decision.MasterOrder(), ruleset,
		decision.DefaultRouting(), decision.WithInferenceObserver(observer))
	svc := app.NewService(
		engine,
		routing.NewCompiler(),
		cache.NewMemo[*routing.Graph](cfg.CacheMaxItems),
		app.WithMaxDepth(cfg.PathMaxDepth),
	)
	h := lambdatransport.NewHandler(svc)

	lambda.Start(h.Handle)
}
