package answerkey

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankwala/backend/internal/archive"
	"github.com/rankwala/backend/internal/config"
	"github.com/rankwala/backend/internal/logging"
	"github.com/rankwala/backend/internal/monitoring"
)

const answerKeyPage = `<html><body>
<table>
	<tr><td>Roll Number</td><td>220045678</td></tr>
	<tr><td>Candidate Name</td><td>John Doe</td></tr>
	<tr><td>Test Date</td><td>01/03/2024</td></tr>
	<tr><td>Test Time</td><td>9:00 AM</td></tr>
	<tr><td>Subject</td><td>General Studies</td></tr>
</table>
<div class="section-cntnr">
	<div class="section-lbl"><span class="bold">Mathematics</span></div>
	<div class="question-pnl">
		<span class="rightAns">1. 42</span>
		<table>
			<tr><td>Status :</td><td class="bold">Answered</td></tr>
			<tr><td>Chosen Option :</td><td class="bold">1</td></tr>
		</table>
	</div>
	<div class="question-pnl">
		<span class="rightAns">3. An ellipse</span>
		<table>
			<tr><td>Status :</td><td class="bold">Not Answered</td></tr>
			<tr><td>Chosen Option :</td><td class="bold">--</td></tr>
		</table>
	</div>
</div>
<div class="section-cntnr">
	<div class="section-lbl"><span class="bold">Reasoning</span></div>
	<div class="question-pnl">
		<span class="rightAns">2. East</span>
		<table>
			<tr><td>Status :</td><td class="bold">Answered</td></tr>
			<tr><td>Chosen Option :</td><td class="bold">4</td></tr>
		</table>
	</div>
</div>
</body></html>`

func newTestPipeline(store archive.Store, timeout time.Duration) *Pipeline {
	cfg := config.FetchConfig{
		Timeout:     timeout,
		UserAgent:   "test-agent",
		MaxBodySize: MaxDocumentSize,
	}
	return NewPipeline(cfg, store, logging.NewNop(), monitoring.NewMetrics())
}

// TestPipelineScore tests the full fetch-extract-score flow end to end
func TestPipelineScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(answerKeyPage))
	}))
	defer srv.Close()

	store := archive.NewMemStore()
	p := newTestPipeline(store, 5*time.Second)

	result, err := p.Score(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, 3, result.Questions)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 1, result.Wrong)
	assert.Equal(t, 1, result.Blank)
	assert.Equal(t, 2, result.Attempted)
	// (3 - 1) / 3 = 2/3
	assert.Equal(t, 0.67, result.Total)

	require.Len(t, result.SectionsDetected, 2)
	assert.Equal(t, SectionInfo{Name: "Mathematics", Questions: 2}, result.SectionsDetected[0])
	assert.Equal(t, SectionInfo{Name: "Reasoning", Questions: 1}, result.SectionsDetected[1])

	assert.Equal(t, "John Doe", result.Meta.Name)
	assert.Equal(t, "General Studies", result.Meta.Subject)
	assert.Equal(t, MarkingRule, result.Rule)
}

// TestPipelineArchivesSanitizedCopy tests background archival and write-once behavior
func TestPipelineArchivesSanitizedCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(answerKeyPage))
	}))
	defer srv.Close()

	store := archive.NewMemStore()
	p := newTestPipeline(store, 5*time.Second)

	_, err := p.Score(context.Background(), srv.URL)
	require.NoError(t, err)

	name := "exam-general-studies-01-03-2024-9-00-am.html"
	require.Eventually(t, func() bool {
		return store.WriteCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	saved, err := store.Read(name)
	require.NoError(t, err)
	assert.NotContains(t, string(saved), "John Doe")
	assert.NotContains(t, string(saved), "220045678")
	assert.Contains(t, string(saved), "01/03/2024")

	// A second scoring run of the same exam must not write again
	_, err = p.Score(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Never(t, func() bool {
		return store.WriteCount() > 1
	}, 200*time.Millisecond, 20*time.Millisecond)
}

// TestPipelineUpstreamStatus tests that non-success upstream responses carry their status
func TestPipelineUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestPipeline(archive.NewMemStore(), 5*time.Second)

	_, err := p.Score(context.Background(), srv.URL)

	var statusErr *FetchStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
}

// TestPipelineTimeout tests that a slow upstream maps to the timeout error
func TestPipelineTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(answerKeyPage))
	}))
	defer srv.Close()

	p := newTestPipeline(archive.NewMemStore(), 50*time.Millisecond)

	_, err := p.Score(context.Background(), srv.URL)
	assert.True(t, errors.Is(err, ErrFetchTimeout), "got %v", err)
}

// TestPipelineNoQuestions tests that an unrecognizable page fails with ErrNoQuestions
func TestPipelineNoQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>maintenance page</p></body></html>`))
	}))
	defer srv.Close()

	p := newTestPipeline(archive.NewMemStore(), 5*time.Second)

	_, err := p.Score(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrNoQuestions)
}
