package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sandbox is a deterministic in-process provider used for local runs and
// demos. Behaviour is scripted off the payer reference:
//
//   - references ending in "00" are rejected at initiation
//   - references ending in "99" stay pending forever (exercises the timeout)
//   - everything else succeeds on the configured poll
type Sandbox struct {
	SucceedAfterPolls int

	mu      sync.Mutex
	charges map[string]*sandboxCharge
	seq     int
}

type sandboxCharge struct {
	payerReference string
	polls          int
}

func NewSandbox(succeedAfterPolls int) *Sandbox {
	if succeedAfterPolls <= 0 {
		succeedAfterPolls = 2
	}
	return &Sandbox{
		SucceedAfterPolls: succeedAfterPolls,
		charges:           make(map[string]*sandboxCharge),
	}
}

func (s *Sandbox) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.HasSuffix(req.PayerReference, "00") {
		return nil, &RejectionError{Reason: "insufficient limit"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	ref := fmt.Sprintf("SBX-%06d", s.seq)
	s.charges[ref] = &sandboxCharge{payerReference: req.PayerReference}

	logrus.WithFields(logrus.Fields{
		"external_reference": ref,
		"payer_reference":    req.PayerReference,
		"amount":             req.Amount.String(),
	}).Info("sandbox gateway accepted charge")

	return &InitiateResult{ExternalReference: ref}, nil
}

func (s *Sandbox) PollStatus(ctx context.Context, externalReference string) (*PollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	charge, ok := s.charges[externalReference]
	if !ok {
		return nil, fmt.Errorf("sandbox: unknown external reference %s", externalReference)
	}

	charge.polls++

	if strings.HasSuffix(charge.payerReference, "99") {
		return &PollResult{Status: StatusPending}, nil
	}
	if charge.polls < s.SucceedAfterPolls {
		return &PollResult{Status: StatusPending}, nil
	}

	return &PollResult{
		Status:  StatusSucceeded,
		Receipt: fmt.Sprintf("RCPT-%s", strings.TrimPrefix(externalReference, "SBX-")),
	}, nil
}
