package renewal

import (
	"github.com/grailsmarket/ens-referrals/errors"
)

// Abbreviation `ENSR` for the error code prefix stands for ENS Renewal
var (
	ErrArityMismatch          = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-001"), Details: "labels and durations differ in length: %d != %d"}
	ErrUpstreamQuoteFailure   = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-002"), Details: "price of %q"}
	ErrUpstreamRenewalFailure = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-003"), Details: "renewal of %q"}
	ErrTransferFailed         = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-004"), Details: "refund to %s"}
	ErrReentrantCall          = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-005"), Details: "reentrant call"}
	ErrInvalidConfig          = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-006"), Details: "invalid configuration: %s"}
	ErrInvalidLabel           = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-007"), Details: "invalid label %q"}
	ErrInvalidDuration        = &errors.ErrorResponse{Code: errors.ErrorCode("ENSR-008"), Details: "invalid duration for %q"}
)
