package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeTimeout            ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
	ErrCodeSerialization      ErrorCode = "COMMON_009"
	ErrCodeCacheError         ErrorCode = "COMMON_010"
	ErrCodeNotImplemented     ErrorCode = "COMMON_011"
)

// Short aliases used throughout the codebase.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeRateLimit    = ErrCodeTooManyRequests
	CodeCacheError   = ErrCodeCacheError
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// Text Processing Error Codes
const (
	ErrCodeTextEmpty           ErrorCode = "TXT_001"
	ErrCodeTextTooLong         ErrorCode = "TXT_002"
	ErrCodeCategoryUnknown     ErrorCode = "TXT_003"
	ErrCodeRuleTableInvalid    ErrorCode = "TXT_004"
	ErrCodeRuleTableLoadFailed ErrorCode = "TXT_005"
)

// Extraction / Reasoning Error Codes
const (
	ErrCodeExtractionFailed    ErrorCode = "ANL_001"
	ErrCodeReasoningFailed     ErrorCode = "ANL_002"
	ErrCodeAnalysisOptsInvalid ErrorCode = "ANL_003"
	ErrCodeAnalysisJobNotFound ErrorCode = "ANL_004"
	ErrCodeAnalysisQueueFull   ErrorCode = "ANL_005"
	ErrCodeAnalysisJobFailed   ErrorCode = "ANL_006"
)

// Knowledge Graph Error Codes
const (
	ErrCodeConceptNotFound     ErrorCode = "GRAPH_001"
	ErrCodeConceptInvalid      ErrorCode = "GRAPH_002"
	ErrCodeRelationshipInvalid ErrorCode = "GRAPH_003"
	ErrCodeGraphQueryFailed    ErrorCode = "GRAPH_004"
	ErrCodeGraphDepthExceeded  ErrorCode = "GRAPH_005"
)

// Confidence Scoring Error Codes
const (
	ErrCodeValidationPassFailed ErrorCode = "SCORE_001"
	ErrCodeScoringConfigInvalid ErrorCode = "SCORE_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeTextEmpty:           http.StatusBadRequest,
	ErrCodeTextTooLong:         http.StatusBadRequest,
	ErrCodeCategoryUnknown:     http.StatusBadRequest,
	ErrCodeRuleTableInvalid:    http.StatusUnprocessableEntity,
	ErrCodeRuleTableLoadFailed: http.StatusInternalServerError,

	ErrCodeExtractionFailed:    http.StatusInternalServerError,
	ErrCodeReasoningFailed:     http.StatusInternalServerError,
	ErrCodeAnalysisOptsInvalid: http.StatusBadRequest,
	ErrCodeAnalysisJobNotFound: http.StatusNotFound,
	ErrCodeAnalysisQueueFull:   http.StatusTooManyRequests,
	ErrCodeAnalysisJobFailed:   http.StatusInternalServerError,

	ErrCodeConceptNotFound:     http.StatusNotFound,
	ErrCodeConceptInvalid:      http.StatusBadRequest,
	ErrCodeRelationshipInvalid: http.StatusBadRequest,
	ErrCodeGraphQueryFailed:    http.StatusInternalServerError,
	ErrCodeGraphDepthExceeded:  http.StatusBadRequest,

	ErrCodeValidationPassFailed: http.StatusInternalServerError,
	ErrCodeScoringConfigInvalid: http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeTextEmpty:           "clinical text is empty",
	ErrCodeTextTooLong:         "clinical text exceeds maximum length",
	ErrCodeCategoryUnknown:     "unknown correction category",
	ErrCodeRuleTableInvalid:    "correction rule table is invalid",
	ErrCodeRuleTableLoadFailed: "failed to load correction rule table",

	ErrCodeExtractionFailed:    "component extraction failed",
	ErrCodeReasoningFailed:     "reasoning pattern detection failed",
	ErrCodeAnalysisOptsInvalid: "invalid analysis options",
	ErrCodeAnalysisJobNotFound: "analysis job not found",
	ErrCodeAnalysisQueueFull:   "analysis job queue is full",
	ErrCodeAnalysisJobFailed:   "analysis job failed",

	ErrCodeConceptNotFound:     "medical concept not found",
	ErrCodeConceptInvalid:      "invalid medical concept",
	ErrCodeRelationshipInvalid: "invalid concept relationship",
	ErrCodeGraphQueryFailed:    "knowledge graph query failed",
	ErrCodeGraphDepthExceeded:  "traversal depth out of range",

	ErrCodeValidationPassFailed: "validation pass failed",
	ErrCodeScoringConfigInvalid: "invalid scoring configuration",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
