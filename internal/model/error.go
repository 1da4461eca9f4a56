package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeFoodItemNotFound = "FOOD_ITEM_NOT_FOUND"
	ErrCodeProfileNotFound  = "PROFILE_NOT_FOUND"
	ErrCodePlanNotFound     = "PLAN_NOT_FOUND"
	ErrCodeInvalidGoals     = "INVALID_GOALS"
	ErrCodeInvalidReason    = "INVALID_REASON"
	ErrCodeEmptyPlan        = "EMPTY_PLAN"
	ErrCodeInvalidPlanDate  = "INVALID_PLAN_DATE"
	ErrCodeNoImportSources  = "NO_IMPORT_SOURCES"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrFoodItemNotFound = NewDomainError(ErrCodeFoodItemNotFound, "One or more food items not found")
	ErrProfileNotFound  = NewDomainError(ErrCodeProfileNotFound, "Profile not found")
	ErrPlanNotFound     = NewDomainError(ErrCodePlanNotFound, "Meal plan not found")
	ErrInvalidGoals     = NewDomainError(ErrCodeInvalidGoals, "Goal targets and budget must not be negative")
	ErrInvalidReason    = NewDomainError(ErrCodeInvalidReason, "Reason must be one of budget, nutrition or dietary")
	ErrEmptyPlan        = NewDomainError(ErrCodeEmptyPlan, "Meal plan must contain at least one item")
	ErrInvalidPlanDate  = NewDomainError(ErrCodeInvalidPlanDate, "Plan date must use the YYYY-MM-DD format")
	ErrNoImportSources  = NewDomainError(ErrCodeNoImportSources, "At least one export file is required")
)
