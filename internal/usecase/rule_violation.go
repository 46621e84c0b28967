package usecase

import (
	"errors"

	"mecanica_gestao/internal/domain/rules"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrRuleViolation matches every *RuleViolationError via errors.Is.
var ErrRuleViolation = errors.New("business rule violation")

// RuleViolationError carries a failed rules.Result to the HTTP layer.
type RuleViolationError struct {
	Result rules.Result
}

func (e *RuleViolationError) Error() string { return e.Result.Message() }

func (e *RuleViolationError) Is(target error) bool { return target == ErrRuleViolation }

func violation(res rules.Result) error {
	if res.Valid {
		return nil
	}
	return &RuleViolationError{Result: res}
}

// rpcFailureEvent logs input and business rejections at warn; only backend
// faults are errors.
func rpcFailureEvent(err error) *zerolog.Event {
	if errors.Is(err, interfaces.ErrInvalidRPCRequest) || errors.Is(err, interfaces.ErrBackendRejected) {
		return log.Warn().Err(err)
	}
	return log.Error().Err(err)
}
