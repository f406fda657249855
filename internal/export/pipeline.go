// Package export turns a rendered document layout into a complete PDF
// artifact. The pipeline walks idle -> capturing -> encoding -> delivering ->
// idle, failing whole: a stage error or a cancelled context yields no
// artifact, never a partial file.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"whitepaper_billing/internal/render"
	"whitepaper_billing/internal/usecase/interfaces"
)

// Stage identifies where the pipeline currently is, and where a failure
// happened. Recovery differs per stage: a capture failure needs a re-render,
// an encode failure is a bug to report, a delivery failure can be retried.

type Stage string

const (
	StageIdle       Stage = "idle"
	StageCapturing  Stage = "capturing"
	StageEncoding   Stage = "encoding"
	StageDelivering Stage = "delivering"
	StageFailed     Stage = "failed"
)

// StageError wraps a failure with the stage it occurred in.

type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

var (
	ErrExportInFlight   = errors.New("an export is already in flight")
	ErrNothingToCapture = errors.New("document view is not ready to capture")
)

// Options is the page geometry for the capture stage. The page is always A4
// portrait; only the margin is configurable.

type Options struct {
	MarginMM float64
}

func DefaultOptions() Options {
	return Options{MarginMM: 20}
}

// Artifact is a complete, deliverable PDF.

type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	URL         string
}

// Pipeline runs one export at a time. A second request while one is in flight
// gets ErrExportInFlight instead of queueing.

type Pipeline struct {
	mu    sync.Mutex
	stage Stage

	store interfaces.IArtifactStore // optional; nil disables upload
	opts  Options
	now   func() time.Time
}

func NewPipeline(store interfaces.IArtifactStore, opts Options) *Pipeline {
	if opts.MarginMM <= 0 {
		opts = DefaultOptions()
	}
	return &Pipeline{stage: StageIdle, store: store, opts: opts, now: time.Now}
}

// Stage reports the pipeline's current stage.
func (p *Pipeline) Stage() Stage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stage
}

// Export captures the layout, encodes it as an A4 PDF and delivers the
// artifact, uploading it to the artifact store when one is configured. A
// cancelled context abandons the run without delivering a stale artifact.
func (p *Pipeline) Export(ctx context.Context, layout *render.DocumentLayout, filename string) (Artifact, error) {
	if !p.acquire() {
		return Artifact{}, ErrExportInFlight
	}
	defer p.release()

	if err := p.enterStage(ctx, StageCapturing); err != nil {
		return Artifact{}, err
	}
	if !layout.Ready() {
		return Artifact{}, p.fail(StageCapturing, ErrNothingToCapture)
	}

	if err := p.enterStage(ctx, StageEncoding); err != nil {
		return Artifact{}, err
	}
	data, err := encodePDF(layout, p.opts)
	if err != nil {
		return Artifact{}, p.fail(StageEncoding, err)
	}

	if err := p.enterStage(ctx, StageDelivering); err != nil {
		return Artifact{}, err
	}
	artifact := Artifact{Filename: filename, ContentType: "application/pdf", Data: data}
	if p.store != nil {
		url, err := p.store.Upload(ctx, p.uploadKey(filename), artifact.ContentType, data)
		if err != nil {
			return Artifact{}, p.fail(StageDelivering, err)
		}
		artifact.URL = url
	}

	return artifact, nil
}

func (p *Pipeline) acquire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stage != StageIdle {
		return false
	}
	p.stage = StageCapturing
	return true
}

func (p *Pipeline) release() {
	p.mu.Lock()
	p.stage = StageIdle
	p.mu.Unlock()
}

func (p *Pipeline) enterStage(ctx context.Context, s Stage) error {
	if err := ctx.Err(); err != nil {
		return p.fail(s, err)
	}
	p.mu.Lock()
	p.stage = s
	p.mu.Unlock()
	return nil
}

func (p *Pipeline) fail(s Stage, err error) error {
	p.mu.Lock()
	p.stage = StageFailed
	p.mu.Unlock()
	return &StageError{Stage: s, Err: err}
}

// uploadKey disambiguates artifacts sharing a filename in the blob store.
func (p *Pipeline) uploadKey(filename string) string {
	base := strings.TrimSuffix(filename, ".pdf")
	return fmt.Sprintf("documents/%s-%s.pdf", base, p.now().UTC().Format("20060102T150405Z"))
}
