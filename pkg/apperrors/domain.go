package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// Predefined errors for the frequent static cases.

// ErrInsufficientPermissions - caller's role or ownership does not allow
// the operation.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrUserNotSynced - the identity-provider subject has no local user yet.
var ErrUserNotSynced = New(
	CodeNotFound,
	"users",
	"User has not been synced yet",
	http.StatusNotFound,
)

// --- Campaigns ---

// ErrOnlyBrandsCreateCampaigns - campaign creation is a brand operation.
var ErrOnlyBrandsCreateCampaigns = New(
	CodeForbidden,
	"campaigns",
	"Only brands can create campaigns",
	http.StatusForbidden,
)

// ErrInvalidCampaignTransition - status change outside ACTIVE -> CLOSED/COMPLETED.
var ErrInvalidCampaignTransition = New(
	CodeInvalidStatus,
	"campaigns",
	"Campaign status transition is not allowed",
	http.StatusConflict,
)

// --- Applications ---

// ErrOnlyCreatorsApply - applying is a creator operation.
var ErrOnlyCreatorsApply = New(
	CodeForbidden,
	"applications",
	"Only creators can apply to campaigns",
	http.StatusForbidden,
)

// ErrCampaignNotAccepting - the target campaign is not ACTIVE.
var ErrCampaignNotAccepting = New(
	CodeInvalidStatus,
	"applications",
	"Campaign is not accepting applications",
	http.StatusConflict,
)

// ErrAlreadyApplied - one application per (campaign, creator) pair.
var ErrAlreadyApplied = New(
	CodeConflict,
	"applications",
	"You have already applied to this campaign",
	http.StatusConflict,
)

// ErrApplicationDecided - only PENDING applications can be decided.
var ErrApplicationDecided = New(
	CodeInvalidStatus,
	"applications",
	"Application has already been decided",
	http.StatusConflict,
)

// --- Messages ---

// ErrSelfMessage - sender and receiver must differ.
var ErrSelfMessage = New(
	CodeValidationFailed,
	"messages",
	"Cannot send message to yourself",
	http.StatusBadRequest,
)

// --- Payouts ---

// ErrOnlyCreatorsHavePayouts - payout listing is a creator operation.
var ErrOnlyCreatorsHavePayouts = New(
	CodeForbidden,
	"payouts",
	"Only creators have payouts",
	http.StatusForbidden,
)

// ErrPayoutTargetNotCreator - a payout must reference a creator account.
var ErrPayoutTargetNotCreator = New(
	CodeInvalidOperation,
	"payouts",
	"Payout target user is not a creator",
	http.StatusBadRequest,
)
