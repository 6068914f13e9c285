package answerkey

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/rankwala/backend/internal/archive"
	"github.com/rankwala/backend/internal/config"
	"github.com/rankwala/backend/internal/logging"
	"github.com/rankwala/backend/internal/monitoring"
)

var (
	// ErrNoQuestions means every extraction strategy came up empty.
	ErrNoQuestions = errors.New("no questions recognized in document")

	// ErrFetchTimeout means the upstream server did not answer in time.
	ErrFetchTimeout = errors.New("fetching the answer key timed out")
)

// FetchStatusError reports a non-success status from the upstream server.
type FetchStatusError struct {
	Status int
}

func (e *FetchStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// Pipeline fetches a published answer key, extracts and scores its questions,
// and archives a sanitized copy. Each Score call is an independent stateless
// execution; a Pipeline is safe for concurrent use.
type Pipeline struct {
	client  *resty.Client
	maxBody int64
	store   archive.Store
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewPipeline creates a scoring pipeline. Fetches carry the configured
// User-Agent and timeout; no retries are attempted on failure.
func NewPipeline(cfg config.FetchConfig, store archive.Store, logger *logging.Logger, metrics *monitoring.Metrics) *Pipeline {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(0)

	return &Pipeline{
		client:  client,
		maxBody: cfg.MaxBodySize,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Score runs the full pipeline for one answer-key URL. Archival of the
// sanitized copy happens in the background; its failure is logged and never
// surfaces to the caller.
func (p *Pipeline) Score(ctx context.Context, url string) (*Result, error) {
	resp, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		if isTimeout(err) {
			p.metrics.RecordScoreOutcome("timeout")
			return nil, ErrFetchTimeout
		}
		p.metrics.RecordScoreOutcome("fetch_error")
		return nil, fmt.Errorf("fetching answer key: %w", err)
	}
	if resp.IsError() {
		p.metrics.RecordScoreOutcome("upstream_error")
		return nil, &FetchStatusError{Status: resp.StatusCode()}
	}

	html := resp.String()
	if p.maxBody > 0 && int64(len(html)) > p.maxBody {
		p.metrics.RecordScoreOutcome("parse_error")
		return nil, fmt.Errorf("answer key exceeds %d bytes", p.maxBody)
	}
	doc, err := LoadHTML(html)
	if err != nil {
		p.metrics.RecordScoreOutcome("parse_error")
		return nil, fmt.Errorf("parsing answer key: %w", err)
	}

	questions, strategy := ExtractQuestions(doc)
	if len(questions) == 0 {
		p.metrics.RecordScoreOutcome("no_questions")
		return nil, ErrNoQuestions
	}
	p.metrics.RecordExtraction(strategy, len(questions))

	sections := DetectSections(doc)
	questions = AssignSections(questions, sections)
	meta := ExtractMeta(doc)
	score := ComputeScore(questions)

	p.logger.Info("scored answer key",
		zap.String("url", url),
		zap.String("strategy", strategy),
		zap.Int("questions", score.Questions),
		zap.Float64("total", score.Total),
	)

	go p.archiveCopy(html, meta, url)

	p.metrics.RecordScoreOutcome("ok")
	return &Result{
		URL:              url,
		Score:            score,
		SectionsDetected: sections,
		Meta:             meta,
		Rule:             MarkingRule,
	}, nil
}

// archiveCopy redacts the fetched document and persists it once per derived
// filename. The document is re-parsed from the raw markup so the goroutine
// never shares DOM state with the request that spawned it.
func (p *Pipeline) archiveCopy(html string, meta Meta, url string) {
	name := archive.FilenameFor(meta.Subject, meta.TestDate, meta.TestTime, url)

	if p.store.Exists(name) {
		p.metrics.ArchiveSkips.Inc()
		return
	}

	doc, err := LoadHTML(html)
	if err != nil {
		p.metrics.ArchiveErrors.Inc()
		p.logger.Warn("archive re-parse failed", zap.String("file", name), zap.Error(err))
		return
	}

	sanitized, err := Redact(doc, meta)
	if err != nil {
		p.metrics.ArchiveErrors.Inc()
		p.logger.Warn("redaction failed", zap.String("file", name), zap.Error(err))
		return
	}

	if err := p.store.Write(name, []byte(sanitized)); err != nil {
		p.metrics.ArchiveErrors.Inc()
		p.logger.Warn("archive write failed", zap.String("file", name), zap.Error(err))
		return
	}

	p.metrics.ArchiveWrites.Inc()
	p.logger.Info("archived sanitized copy", zap.String("file", name))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
