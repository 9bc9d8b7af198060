package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"veracity/internal/decision"
	"veracity/internal/decision/handler/mocks"
	"veracity/internal/decision/ports"
	dErrors "veracity/pkg/domain-errors"
	"veracity/pkg/requestcontext"
	"veracity/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/decision-mocks.go -package=mocks Service
type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *HandlerSuite) do(req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func fusionResult() *decision.EvaluateResult {
	engine := decision.NewEngine(decision.PolicyThreeWay)
	return &decision.EvaluateResult{
		Verdict:     engine.Decide(decision.Input{AIScore: 0.5, ClassifierDegraded: true, Domain: "www.bbc.com", Credibility: 0.9}),
		EvaluatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// =============================================================================
// POST /check
// =============================================================================

func (s *HandlerSuite) TestCheckJSON() {
	s.service.EXPECT().
		Evaluate(gomock.Any(), decision.EvaluateRequest{Text: "Read https://www.bbc.com/news/x"}).
		Return(fusionResult(), nil)

	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{"news":"  Read https://www.bbc.com/news/x "}`))
	req.Header.Set("Content-Type", "application/json")
	rec, body := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("REAL", body["label"])
	s.Equal(0.34, body["confidence"])
	s.Equal("three_way", body["policy"])
	s.Equal("fusion", body["source"])
	s.Equal("2026-01-02T03:04:05Z", body["evaluated_at"])

	evidence := body["evidence"].(map[string]any)
	s.NotContains(evidence, "fact_check")
	signals := evidence["signals"].(map[string]any)
	s.Equal("www.bbc.com", signals["domain"])
	s.Equal(true, signals["classifier_degraded"])
	s.Equal(0.9, signals["credibility"])
}

func (s *HandlerSuite) TestCheckForm() {
	engine := decision.NewEngine(decision.PolicyThreeWay)
	s.service.EXPECT().
		Evaluate(gomock.Any(), decision.EvaluateRequest{Text: "Moon landing staged"}).
		Return(&decision.EvaluateResult{
			Verdict: engine.Decide(decision.Input{FactCheck: &ports.FactCheckResult{
				Rating:    "Pants on Fire",
				Publisher: "PolitiFact",
				ReviewURL: "https://politifact.com/x",
			}}),
		}, nil)

	form := url.Values{"news": {"Moon landing staged"}}
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec, body := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("FAKE", body["label"])
	s.Equal(0.99, body["confidence"])
	evidence := body["evidence"].(map[string]any)
	s.NotContains(evidence, "signals")
	fc := evidence["fact_check"].(map[string]any)
	s.Equal("PolitiFact", fc["publisher"])
}

func (s *HandlerSuite) TestCheckRejectsBlankText() {
	// no service call is expected
	cases := map[string]*http.Request{
		"blank json":    jsonRequest(`{"news":"   "}`),
		"missing field": jsonRequest(`{}`),
		"blank form":    formRequest(url.Values{"news": {"\t\n"}}),
		"no body":       httptest.NewRequest(http.MethodPost, "/check", nil),
	}

	for name, req := range cases {
		s.Run(name, func() {
			rec, body := s.do(req)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("validation_error", body["error"])
			s.Equal("Please enter some text.", body["error_description"])
		})
	}
}

func (s *HandlerSuite) TestCheckChunkedBody() {
	s.Run("empty body of unknown length prompts for text", func() {
		req := jsonRequest("")
		req.ContentLength = -1

		rec, body := s.do(req)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("validation_error", body["error"])
		s.Equal("Please enter some text.", body["error_description"])
	})

	s.Run("body of unknown length is decoded intact", func() {
		s.service.EXPECT().
			Evaluate(gomock.Any(), decision.EvaluateRequest{Text: "streamed text"}).
			Return(fusionResult(), nil)

		req := jsonRequest(`{"news":"streamed text"}`)
		req.ContentLength = -1

		rec, _ := s.do(req)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *HandlerSuite) TestCheckAcceptsLongText() {
	long := strings.Repeat("a", 20001)
	s.service.EXPECT().
		Evaluate(gomock.Any(), decision.EvaluateRequest{Text: long}).
		Return(fusionResult(), nil)

	payload, err := json.Marshal(map[string]string{"news": long})
	s.Require().NoError(err)
	rec, _ := s.do(jsonRequest(string(payload)))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestCheckNonStringNews() {
	rec, body := s.do(jsonRequest(`{"news":123}`))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("bad_request", body["error"])
}

func (s *HandlerSuite) TestCheckMalformedJSON() {
	rec, body := s.do(jsonRequest(`{"news":`))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("bad_request", body["error"])
}

func (s *HandlerSuite) TestCheckServiceError() {
	s.service.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.Wrap(context.Canceled, dErrors.CodeTimeout, "check abandoned before completion"))

	rec, body := s.do(jsonRequest(`{"news":"text"}`))

	s.Equal(http.StatusGatewayTimeout, rec.Code)
	s.Equal("timeout", body["error"])
}

func (s *HandlerSuite) TestCheckForwardsRequestContext() {
	pinned := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	s.service.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ decision.EvaluateRequest) (*decision.EvaluateResult, error) {
			s.Equal("req-123", requestcontext.RequestID(ctx))
			result := fusionResult()
			result.EvaluatedAt = requestcontext.Now(ctx)
			return result, nil
		})

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/check", CheckRequest{News: "text"})
	req = testutil.WithRequestTime(testutil.WithRequestID(req, "req-123"), pinned)
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[CheckResponse](s.T(), rr)
	s.True(pinned.Equal(resp.EvaluatedAt))
}

// =============================================================================
// GET /check/policy
// =============================================================================

func (s *HandlerSuite) TestPolicy() {
	s.service.EXPECT().Policy().Return(decision.PolicyTieBroken)

	rec, body := s.do(httptest.NewRequest(http.MethodGet, "/check/policy", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("tie_broken", body["policy"])
	s.Equal(0.55, body["fake_threshold"])
	s.Equal(0.45, body["real_threshold"])
	s.Equal(true, body["tie_break"])
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
