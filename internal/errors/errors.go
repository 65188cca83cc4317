package errors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrProjectNotFound indicates that a project with the given ID does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrBudgetLineNotFound indicates that a budget line item with the given ID does not exist.
	ErrBudgetLineNotFound = errors.New("budget line item not found")

	// ErrVendorNotFound indicates that a vendor with the given ID does not exist.
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrDrawNotFound indicates that a draw with the given ID does not exist.
	ErrDrawNotFound = errors.New("draw not found")

	// ErrNoteNotFound indicates that a note with the given ID does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrPhotoNotFound indicates that a photo with the given ID does not exist.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrSettingsNotFound indicates that no calculation settings profile exists for the user.
	ErrSettingsNotFound = errors.New("calculation settings not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidStatus indicates a status value outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCategory indicates a budget category outside the canonical set.
	ErrInvalidCategory = errors.New("invalid budget category")

	// ErrDrawAlreadyPaid indicates an attempt to modify a draw that has
	// already been released.
	ErrDrawAlreadyPaid = errors.New("draw already paid")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrEncryptionFailed indicates that a value could not be encrypted or
	// decrypted with the configured key.
	ErrEncryptionFailed = errors.New("encryption failed")
)
