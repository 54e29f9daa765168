package orchestration

import (
	"context"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/resumescan/internal/config"
	apperrors "github.com/agbru/resumescan/internal/errors"
	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/logging"
	"github.com/agbru/resumescan/internal/metrics"
	"github.com/agbru/resumescan/internal/schedule"
	"github.com/agbru/resumescan/internal/upload"
)

const tracerName = "github.com/agbru/resumescan/internal/orchestration"

// EventBufferSize is the capacity of the event channel between the stage
// timers and the reporter.
const EventBufferSize = 16

// Input is what a user would type into the interactive flow.
type Input struct {
	// Path is the résumé file on disk.
	Path string
	// Location is the job search location.
	Location string
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger. Defaults to logging.Discard.
func WithLogger(l logging.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithRecorder sets the metrics recorder. Defaults to metrics.Nop.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *runner) { r.recorder = rec }
}

// WithTracer overrides the tracer obtained from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *runner) { r.tracer = t }
}

type runner struct {
	ctrl     *flow.Controller
	timings  config.Timings
	events   chan<- Event
	logger   logging.Logger
	recorder metrics.Recorder
	tracer   trace.Tracer
}

// Run plays every stage of c from its current stage to Results, using in
// wherever the interactive flow would ask the user. Events are streamed to
// reporter, which writes to out. It returns the final session.
//
// An unsupported or missing file fails the run at the Upload stage, with the
// controller left there. Cancelling ctx stops the run at the current stage.
func Run(ctx context.Context, c *flow.Controller, in Input, t config.Timings, reporter ProgressReporter, out io.Writer, opts ...Option) (flow.Session, error) {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	events := make(chan Event, EventBufferSize)
	r := &runner{
		ctrl:     c,
		timings:  t,
		events:   events,
		logger:   logging.Discard,
		recorder: metrics.Nop{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}

	ctx, span := r.tracer.Start(ctx, "resumescan.flow",
		trace.WithAttributes(attribute.String("session.id", c.Session().ID)))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reporter.DisplayProgress(events, out)
		return nil
	})
	g.Go(func() error {
		defer close(events)
		return r.play(gctx, in)
	})
	err := g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return c.Session(), err
}

func (r *runner) play(ctx context.Context, in Input) error {
	for {
		stage := r.ctrl.Stage()
		if stage.Terminal() {
			r.emit(ctx, Event{Stage: stage, Percent: 100, Message: "Analysis Complete"})
			return nil
		}
		if err := r.playStage(ctx, stage, in); err != nil {
			return err
		}
	}
}

func (r *runner) playStage(ctx context.Context, stage flow.Stage, in Input) (err error) {
	ctx, span := r.tracer.Start(ctx, "stage."+strings.ToLower(stage.String()))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			r.logger.Error("stage failed", err, logging.String("stage", stage.String()))
		}
		span.End()
	}()

	switch stage {
	case flow.StageIntro:
		r.emit(ctx, Event{Stage: stage, Message: "Resume Analyzer"})
		return r.after(ctx, r.timings.Intro, r.ctrl.CompleteIntro)

	case flow.StageUpload:
		file, err := upload.Accept(in.Path)
		if err != nil {
			r.recorder.UploadRejected()
			return err
		}
		r.recorder.UploadAccepted(upload.KindOf(file))
		span.SetAttributes(
			attribute.String("file.name", file.Name),
			attribute.String("file.content_type", file.ContentType),
			attribute.Int64("file.size", file.Size),
		)
		r.emit(ctx, Event{Stage: stage, Message: "Processing your resume..."})
		return r.after(ctx, r.timings.UploadDelay, func() error {
			if err := r.ctrl.SubmitFile(file); err != nil {
				return err
			}
			return r.ctrl.AdvanceAfterUpload()
		})

	case flow.StageLocation:
		span.SetAttributes(attribute.String("location", in.Location))
		r.emit(ctx, Event{Stage: stage, Message: "Processing..."})
		return r.after(ctx, r.timings.LocationDelay, func() error {
			return r.ctrl.SubmitLocation(in.Location)
		})

	case flow.StageAnalysis:
		return r.analyze(ctx)
	}
	return apperrors.TransitionError{Operation: "Run", From: stage.String(), Reason: "no handler"}
}

// after runs fn once d has elapsed, in a scope that lives for this call.
func (r *runner) after(ctx context.Context, d time.Duration, fn func() error) error {
	scope := schedule.NewScope(ctx)
	defer scope.Close()

	done := make(chan error, 1)
	scope.After(d, func() { done <- fn() })
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// analyze runs the step highlight, the progress increments and the
// completion timer independently. Callbacks of one scope are serialized, so
// ticks and percent need no locking.
func (r *runner) analyze(ctx context.Context) error {
	scope := schedule.NewScope(ctx)
	defer scope.Close()

	var ticks, percent int
	r.emit(ctx, Event{Stage: flow.StageAnalysis, Message: flow.AnalysisSteps[0]})

	scope.Every(r.timings.Step, func() {
		ticks++
		step := flow.StepAt(ticks)
		r.emit(ctx, Event{Stage: flow.StageAnalysis, Step: step, Percent: percent, Message: flow.AnalysisSteps[step]})
	})
	scope.Every(r.timings.Progress, func() {
		if percent >= 100 {
			return
		}
		percent = flow.PercentAt(percent + 1)
		r.emit(ctx, Event{Stage: flow.StageAnalysis, Step: flow.StepAt(ticks), Percent: percent})
	})

	done := make(chan error, 1)
	scope.After(r.timings.Analysis, func() { done <- r.ctrl.CompleteAnalysis() })
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// emit blocks until the reporter takes ev or ctx ends.
func (r *runner) emit(ctx context.Context, ev Event) {
	select {
	case r.events <- ev:
	case <-ctx.Done():
	}
}
