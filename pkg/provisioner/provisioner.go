package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/utils/clock"

	"github.com/Azure/azure-mgmt-samples/pkg/metrics"
	utilrecover "github.com/Azure/azure-mgmt-samples/pkg/util/recover"
)

const (
	DefaultPollInterval = 5 * time.Second

	opCreate = "create"
	opStart  = "start"
	opStop   = "stop"
)

// Provisioner drives batches of independent long-running operations to
// completion concurrently. Phases are barriers: every call returns only once
// each resource of the batch has settled.
type Provisioner struct {
	log     *logrus.Entry
	client  ResourceClient
	metrics metrics.Interface
	clock   clock.PassiveClock

	pollInterval time.Duration
	timeout      time.Duration
	concurrency  int
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithPollInterval sets the interval between two polls of the same operation.
func WithPollInterval(d time.Duration) Option {
	return func(p *Provisioner) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// WithTimeout bounds the time spent waiting for each operation. Zero means
// that only the caller's context limits the wait.
func WithTimeout(d time.Duration) Option {
	return func(p *Provisioner) {
		p.timeout = d
	}
}

// WithConcurrency limits the number of resources processed at once within a
// phase. Zero means unbounded.
func WithConcurrency(n int) Option {
	return func(p *Provisioner) {
		p.concurrency = n
	}
}

// WithClock sets the clock used to timestamp provision records.
func WithClock(c clock.PassiveClock) Option {
	return func(p *Provisioner) {
		p.clock = c
	}
}

// New returns a Provisioner acting on client.
func New(log *logrus.Entry, client ResourceClient, m metrics.Interface, opts ...Option) *Provisioner {
	p := &Provisioner{
		log:          log,
		client:       client,
		metrics:      m,
		clock:        clock.RealClock{},
		pollInterval: DefaultPollInterval,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// fanOut runs f for every index in [0, n) concurrently and waits for all of
// them. The error of each call is stored at its index; one failure never
// cancels the others. A panicking call is recorded as its error.
func (p *Provisioner) fanOut(ctx context.Context, n int, f func(ctx context.Context, i int) error) []error {
	errs := make([]error, n)

	var g errgroup.Group
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	for i := 0; i < n; i++ {
		g.Go(func() error {
			defer utilrecover.Error(p.log, &errs[i])
			errs[i] = f(ctx, i)
			return nil
		})
	}

	_ = g.Wait()

	return errs
}

// waitForOperation polls op until it reaches a terminal status. The first poll
// happens immediately. The returned error is set when polling could not
// complete, or carries the failure detail reported with a terminal status.
func (p *Provisioner) waitForOperation(ctx context.Context, op Operation) (OperationStatus, error) {
	status := StatusInProgress
	var detail error

	condition := func(ctx context.Context) (bool, error) {
		var err error
		status, err = op.Poll(ctx)
		if status.Terminal() {
			detail = err
			return true, nil
		}
		return false, err
	}

	var err error
	if p.timeout > 0 {
		err = wait.PollUntilContextTimeout(ctx, p.pollInterval, p.timeout, true, condition)
	} else {
		err = wait.PollUntilContextCancel(ctx, p.pollInterval, true, condition)
	}

	switch {
	case err == nil:
		return status, detail
	case ctx.Err() != nil:
		return status, ctx.Err()
	case wait.Interrupted(err):
		return status, ErrOperationTimeout
	default:
		return status, err
	}
}

// runOperation begins an operation for the named resource and waits for it.
// Any outcome other than success is returned as an *OperationError.
func (p *Provisioner) runOperation(ctx context.Context, op, name string, begin func(context.Context) (Operation, error)) (OperationStatus, error) {
	operation, err := begin(ctx)
	if err != nil {
		return StatusFailed, &OperationError{Op: op, Name: name, Status: StatusFailed, Err: err}
	}

	status, err := p.waitForOperation(ctx, operation)
	if err != nil || status != StatusSucceeded {
		return status, &OperationError{Op: op, Name: name, Status: status, Err: err}
	}

	return status, nil
}
