package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (any, error)
	ResponseContains(field string) bool
	StatusCode() int
	Header(name string) string
}

// RegisterSteps registers generic request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I GET "([^"]*)"$`, steps.get)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.fieldShouldEqual)
	ctx.Step(`^the response field "([^"]*)" should be one of "([^"]*)"$`, steps.fieldShouldBeOneOf)
	ctx.Step(`^the response field "([^"]*)" should be between ([0-9.]+) and ([0-9.]+)$`, steps.fieldShouldBeBetween)
	ctx.Step(`^the response should contain "([^"]*)"$`, steps.responseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, steps.responseShouldNotContain)
	ctx.Step(`^the response header "([^"]*)" should be set$`, steps.headerShouldBeSet)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) get(ctx context.Context, path string) error {
	return s.tc.GET(path, nil)
}

func (s *commonSteps) statusShouldBe(ctx context.Context, status int) error {
	if got := s.tc.StatusCode(); got != status {
		return fmt.Errorf("expected status %d, got %d", status, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldEqual(ctx context.Context, field, want string) error {
	got, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if fmt.Sprint(got) != want {
		return fmt.Errorf("expected %s to equal %q, got %v", field, want, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldBeOneOf(ctx context.Context, field, options string) error {
	got, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	for _, opt := range strings.Split(options, ",") {
		if fmt.Sprint(got) == strings.TrimSpace(opt) {
			return nil
		}
	}
	return fmt.Errorf("expected %s to be one of %s, got %v", field, options, got)
}

func (s *commonSteps) fieldShouldBeBetween(ctx context.Context, field, lo, hi string) error {
	got, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	v, ok := got.(float64)
	if !ok {
		return fmt.Errorf("expected %s to be a number, got %T", field, got)
	}
	low, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return err
	}
	high, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return err
	}
	if v < low || v > high {
		return fmt.Errorf("expected %s in [%v, %v], got %v", field, low, high, v)
	}
	return nil
}

func (s *commonSteps) responseShouldContain(ctx context.Context, field string) error {
	if !s.tc.ResponseContains(field) {
		return fmt.Errorf("expected response to contain %q", field)
	}
	return nil
}

func (s *commonSteps) responseShouldNotContain(ctx context.Context, field string) error {
	if s.tc.ResponseContains(field) {
		return fmt.Errorf("expected response not to contain %q", field)
	}
	return nil
}

func (s *commonSteps) headerShouldBeSet(ctx context.Context, name string) error {
	if s.tc.Header(name) == "" {
		return fmt.Errorf("expected header %s to be set", name)
	}
	return nil
}
