package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The dashboard maps these codes to user-facing messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// ==================== Catalog (PRODUCT_) ====================
	ProductNotFound = "PRODUCT_NOT_FOUND"

	// ==================== Companies (COMPANY_) ====================
	CompanyNotFound  = "COMPANY_NOT_FOUND"
	EmployeeNotFound = "EMPLOYEE_NOT_FOUND"

	// ==================== Draft orders (DRAFT_) ====================
	DraftEmpty             = "DRAFT_EMPTY"
	DraftItemNotFound      = "DRAFT_ITEM_NOT_FOUND"
	DraftInvalidQuantity   = "DRAFT_INVALID_QUANTITY"
	DraftInsufficientStock = "DRAFT_INSUFFICIENT_STOCK"
	DraftInvalidSize       = "DRAFT_INVALID_SIZE"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound         = "ORDER_NOT_FOUND"
	OrderSubmissionFailed = "ORDER_SUBMISSION_FAILED"

	// ==================== Notifications (NOTIFICATION_) ====================
	NotificationNotFound = "NOTIFICATION_NOT_FOUND"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalStorageError  = "INTERNAL_STORAGE_ERROR"
	InternalUpstreamError = "INTERNAL_UPSTREAM_ERROR"
)
