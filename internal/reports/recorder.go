package reports

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

// Result is the outcome of recording one submitted checkup.
type Result struct {
	Report Report
	Err    error
}

// Recorder is the completion handler of the onboarding wizard. It turns submitted
// answers into a Report and saves it in the background.
type Recorder struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time

	results chan Result
	wg      sync.WaitGroup
}

var _ onboarding.CompletionHandler = (*Recorder)(nil)

// NewRecorder returns a recorder saving into store.
func NewRecorder(store Store, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		store:   store,
		logger:  logger,
		now:     time.Now,
		results: make(chan Result, 16),
	}
}

// Complete implements onboarding.CompletionHandler. It returns immediately.
func (r *Recorder) Complete(ctx context.Context, sessionID string, answers onboarding.AnswerRecord) {
	report := FromAnswers(sessionID, r.now(), answers)
	// the save outlives the screen that submitted it
	ctx = context.WithoutCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		err := r.store.Save(ctx, report)
		if err != nil {
			r.logger.Error("saving checkup report failed", zap.String("report", report.ID), zap.Error(err))
		} else {
			r.logger.Info("checkup report saved",
				zap.String("report", report.ID),
				zap.Int("symptoms", len(report.Symptoms)),
				zap.Int("recommendations", len(report.Recommendations)))
		}

		select {
		case r.results <- Result{Report: report, Err: err}:
		default:
			r.logger.Warn("recorder result dropped, nobody is reading", zap.String("report", report.ID))
		}
	}()
}

// Results delivers one Result per completed checkup.
func (r *Recorder) Results() <-chan Result {
	return r.results
}

// Close waits for in-flight saves and closes the Results channel.
func (r *Recorder) Close() {
	r.wg.Wait()
	close(r.results)
}
