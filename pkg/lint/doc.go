// Package lint resolves which rules apply to a file and dispatches them.
//
// # Configuration model
//
// A Store is an immutable, ordered list of Blocks plus a global ignore
// filter. Each Block names the files it applies to (glob patterns; none means
// all files), rule settings, language options and naming selectors:
//
//	store, err := lint.NewStore([]lint.Block{
//		{Index: 0, Files: glob.Set{glob.MustCompile("**/*.ts")},
//			Rules: map[string]lint.RuleSetting{"curly": {Severity: core.SeverityWarn}}},
//		{Index: 1, Files: glob.Set{glob.MustCompile("src/**")},
//			Rules: map[string]lint.RuleSetting{"curly": {Severity: core.SeverityError}}},
//	}, filter)
//
// # Resolution
//
// For a path, the Merger first consults the ignore filter; ignored paths
// resolve to a Skipped config and no block is consulted. Otherwise every
// matching block is folded in declaration order: a later block's setting for
// a rule replaces an earlier one entirely, language options are replaced
// wholesale, and naming selectors are concatenated.
//
// # Queries
//
// An Engine serves the current Store to concurrent callers and swaps it
// atomically on Reload:
//
//	engine := lint.NewEngine(store)
//	cfg := engine.GetEffectiveConfig("src/main.ts")
//	c, ok := engine.GetNamingConstraint("src/main.ts", naming.KindMethod, naming.NewModifiers(naming.ModPublic))
//
// # Rule dispatch
//
// Rule implementations are external. They register with a Registry and the
// Analyzer runs those whose effective severity is not "off":
//
//	lint.Register(lint.WrapRuleDef(lint.RuleDef{ID: "no-var", Check: checkNoVar}))
//	result := lint.NewAnalyzer(engine, nil, logger).Analyze("src/main.ts", tree)
package lint
