package e2e

import (
	"github.com/cucumber/godog"

	"veracity/e2e/steps/check"
	"veracity/e2e/steps/common"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (requests, status and field assertions)
	common.RegisterSteps(ctx, tc)

	// Register check-specific steps
	check.RegisterSteps(ctx, tc)
}
