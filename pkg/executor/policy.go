package executor

import (
	"context"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/types"
)

// Policy decides how a handler's error affects the operation result
type Policy int

const (
	// Strict counts every error as a failure
	Strict Policy = iota
	// SoftSkip turns "nothing to act on" errors into skipped successes;
	// other errors are still failures
	SoftSkip
)

// softSkipCodes are the error codes SoftSkip downgrades
var softSkipCodes = []apperrors.ErrorCode{
	apperrors.ErrHostFileNotFound,
	apperrors.ErrPatchSourceNotFound,
}

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case SoftSkip:
		return "soft-skip"
	default:
		return "unknown"
	}
}

func (p Policy) skips(err error) bool {
	if p != SoftSkip {
		return false
	}
	for _, code := range softSkipCodes {
		if apperrors.IsErrorCode(err, code) {
			return true
		}
	}
	return false
}

type handler struct {
	run    func(e *Executor, ctx context.Context, op types.Operation) (outcome, error)
	policy Policy
}

// handlers has exactly one entry per member of types.AllOperationTypes
var handlers = map[types.OperationType]handler{
	types.OperationReplaceFile:     {run: (*Executor).replaceFile, policy: Strict},
	types.OperationReplaceDir:      {run: (*Executor).replaceDir, policy: Strict},
	types.OperationMergeDir:        {run: (*Executor).mergeDir, policy: Strict},
	types.OperationProvisionBinary: {run: (*Executor).provisionBinary, policy: Strict},
	types.OperationPatchHostFile:   {run: (*Executor).patchHostFile, policy: SoftSkip},
}

// PolicyFor returns the failure policy of an operation type
func PolicyFor(t types.OperationType) (Policy, bool) {
	h, ok := handlers[t]
	return h.policy, ok
}
