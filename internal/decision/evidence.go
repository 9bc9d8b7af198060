package decision

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	dErrors "veracity/pkg/domain-errors"
)

// Evidence source names used in metrics.
const (
	sourceFactCheck   = "fact_check"
	sourceClassifier  = "classifier"
	sourceCredibility = "credibility"
)

// gatherEvidence runs the adapters in the configured order. Adapters degrade
// instead of failing, so the only error is the caller abandoning the request.
func (s *Service) gatherEvidence(ctx context.Context, text string) (*GatheredEvidence, error) {
	evidence := &GatheredEvidence{
		FetchedAt: time.Now(),
	}

	if s.parallel {
		s.gatherParallel(ctx, text, evidence)
	} else {
		s.gatherSequential(ctx, text, evidence)
	}

	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "check abandoned before completion")
	}
	return evidence, nil
}

// gatherSequential asks the fact-checker first and only consults the numeric
// signals when it has nothing.
func (s *Service) gatherSequential(ctx context.Context, text string, evidence *GatheredEvidence) {
	s.lookupFactCheck(ctx, text, evidence)
	if evidence.FactCheck.Found() {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.classify(gctx, text, evidence)
		return nil
	})
	g.Go(func() error {
		s.scoreCredibility(text, evidence)
		return nil
	})
	_ = g.Wait()
}

// gatherParallel overlaps the fact-check with the classifier. A found
// fact-check cancels the classifier since its score would be ignored.
func (s *Service) gatherParallel(ctx context.Context, text string, evidence *GatheredEvidence) {
	classifyCtx, cancelClassify := context.WithCancel(ctx)
	defer cancelClassify()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.lookupFactCheck(gctx, text, evidence)
		if evidence.FactCheck.Found() {
			cancelClassify()
		}
		return nil
	})
	g.Go(func() error {
		s.classify(classifyCtx, text, evidence)
		return nil
	})
	g.Go(func() error {
		s.scoreCredibility(text, evidence)
		return nil
	})
	_ = g.Wait()
}

func (s *Service) lookupFactCheck(ctx context.Context, text string, evidence *GatheredEvidence) {
	start := time.Now()
	evidence.FactCheck = s.factCheck.Lookup(ctx, text)
	evidence.Latencies.FactCheck = time.Since(start)
	s.metrics.ObserveEvidenceLatency(sourceFactCheck, evidence.Latencies.FactCheck)
}

func (s *Service) classify(ctx context.Context, text string, evidence *GatheredEvidence) {
	start := time.Now()
	evidence.Classification = s.classifier.Classify(ctx, text)
	evidence.Latencies.Classifier = time.Since(start)
	s.metrics.ObserveEvidenceLatency(sourceClassifier, evidence.Latencies.Classifier)
}

func (s *Service) scoreCredibility(text string, evidence *GatheredEvidence) {
	start := time.Now()
	domain, ok := s.extract(text)
	if !ok {
		domain = ""
	}
	evidence.Domain = domain
	evidence.DomainFound = ok && domain != ""
	evidence.Credibility = s.credibility.Score(domain)
	evidence.Latencies.Credibility = time.Since(start)
	s.metrics.ObserveEvidenceLatency(sourceCredibility, evidence.Latencies.Credibility)
}
