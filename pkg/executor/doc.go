// Package executor runs a single declared operation.
//
// Operations are dispatched through a table keyed by operation type. Each
// entry pairs the function doing the work with the failure policy applied
// to its errors, so the asymmetry between strict operations (copies,
// binary provisioning) and optional ones (host file patching) lives in one
// place. Errors never cross the Execute boundary; they are converted into
// a types.OperationResult.
package executor
