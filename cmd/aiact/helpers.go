package main

import (
	"fmt"
	"os"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/cache"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/catalog"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
)

// buildEngine returns the built-in engine, or one loaded from a catalog file.
// Catalogs without a rules section fall back to the built-in inference rules.
// maxPasses <= 0 keeps the default fixed-point cap.
func buildEngine(catalogPath string, maxPasses int, opts ...decision.EngineOption) (*decision.Engine, error) {
	var rsOpts []decision.RulesetOption
	if maxPasses > 0 {
		rsOpts = append(rsOpts, decision.WithMaxPasses(maxPasses))
	}

	if catalogPath == "" {
		ruleset := decision.NewRuleset(decision.DefaultRules(), rsOpts...)
		return decision.NewEngine(decision.DefaultQuestions(), decision.MasterOrder(), ruleset, decision.DefaultRouting(), opts...), nil
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := catalog.Load(data)
	if err != nil {
		return nil, err
	}

	rules := c.Rules
	if len(rules) == 0 {
		rules = decision.DefaultRules()
	}

	return decision.NewEngine(c.Questions, c.Order, decision.NewRuleset(rules, rsOpts...), decision.RoutingTable{}, opts...), nil
}

func buildService(engine *decision.Engine, maxDepth int) *app.Service {
	return app.NewService(
		engine,
		routing.NewCompiler(),
		cache.NewMemo[*routing.Graph](1024),
		app.WithMaxDepth(maxDepth),
	)
}
