package check

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	POSTForm(path string, values url.Values) error
	POSTRaw(path, contentType, body string) error
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers check-related step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &checkSteps{tc: tc}

	ctx.Step(`^I check the text "([^"]*)"$`, steps.checkJSON)
	ctx.Step(`^I check the text "([^"]*)" as a form$`, steps.checkForm)
	ctx.Step(`^I check without a body$`, steps.checkEmpty)
	ctx.Step(`^I send a truncated JSON body$`, steps.checkTruncated)

	ctx.Step(`^the verdict should carry exactly one kind of evidence$`, steps.exactlyOneEvidence)
}

type checkSteps struct {
	tc TestContext
}

func (s *checkSteps) checkJSON(ctx context.Context, text string) error {
	return s.tc.POST("/check", map[string]string{"news": text})
}

func (s *checkSteps) checkForm(ctx context.Context, text string) error {
	return s.tc.POSTForm("/check", url.Values{"news": {text}})
}

func (s *checkSteps) checkEmpty(ctx context.Context) error {
	return s.tc.POSTRaw("/check", "application/json", "")
}

func (s *checkSteps) checkTruncated(ctx context.Context) error {
	return s.tc.POSTRaw("/check", "application/json", `{"news":`)
}

func (s *checkSteps) exactlyOneEvidence(ctx context.Context) error {
	source, err := s.tc.GetResponseField("source")
	if err != nil {
		return err
	}
	_, factErr := s.tc.GetResponseField("evidence.fact_check")
	_, signalErr := s.tc.GetResponseField("evidence.signals")

	switch source {
	case "fact_check":
		if factErr != nil || signalErr == nil {
			return fmt.Errorf("fact_check verdict must carry only fact_check evidence")
		}
	case "fusion":
		if signalErr != nil || factErr == nil {
			return fmt.Errorf("fusion verdict must carry only signal evidence")
		}
	default:
		return fmt.Errorf("unexpected source %v", source)
	}
	return nil
}
