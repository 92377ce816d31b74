package domain

import "errors"

// ErrorKind classifies a domain error so transports can map it without inspecting messages.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindForbidden
	KindUnauthenticated
	// KindConflict is a stale-version write.
	KindConflict
	// KindDuplicate is a unique-key collision (repeat like, taken email, exhausted slots).
	KindDuplicate
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindConflict:
		return "conflict"
	case KindDuplicate:
		return "duplicate"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is a classified domain error.
// Wrap sentinels with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context;
// the Message of the innermost *Error is what clients see.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a classified error. Prefer the sentinels below when one fits.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation creates a validation error with a caller-specific message.
func Validation(message string) error {
	return NewError(KindValidation, message)
}

// KindOf returns the kind of the first classified error in err's chain.
// Unclassified errors are KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of the first classified error in err's chain.
func MessageOf(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgInventoryNotFound = "inventory not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgFieldNotFound     = "custom field not found"
	ErrMsgGrantNotFound     = "access grant not found"
	ErrMsgUnknownCategory   = "unknown category"

	// Authorization errors
	ErrMsgAccessDenied          = "access denied"
	ErrMsgOwnerOnly             = "only the inventory owner can do this"
	ErrMsgAuthRequired          = "authentication required"
	ErrMsgInvalidCredentials    = "invalid email or password"
	ErrMsgInvalidToken          = "invalid or expired token"
	ErrMsgTokenRevoked          = "token has been revoked"
	ErrMsgVersionConflict       = "data was changed by another user, please refresh"
	ErrMsgDuplicateKey          = "this was already done, please refresh"
	ErrMsgEmailTaken            = "email already registered"
	ErrMsgAlreadyLiked          = "item already liked"
	ErrMsgSlotsExhausted        = "all custom field slots of this type are in use"
	ErrMsgVersionRequired       = "version is required"
	ErrMsgNothingToUpdate       = "nothing to update"
	ErrMsgInventoryIDRequired   = "inventory ID required"
	ErrMsgEmptyContent          = "message content must not be empty"
	ErrMsgContentTooLong        = "message content is too long"
	ErrMsgSelfGrant             = "the owner already has full access"
	ErrMsgInvalidAccessLevel    = "invalid access level"
	ErrMsgInvalidFieldType      = "invalid custom field type"
	ErrMsgUnknownSlot           = "unknown custom field"
	ErrMsgSlotNotConfigured     = "custom field is not configured for this inventory"
	ErrMsgRequiredFieldMissing  = "required custom field is missing"
	ErrMsgInvalidSlotValue      = "custom field value has the wrong type"
	ErrMsgInvalidInput          = "invalid input"
	ErrMsgUnsupportedEntityKind = "unsupported entity kind"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
var (
	ErrUserNotFound      = NewError(KindNotFound, ErrMsgUserNotFound)
	ErrInventoryNotFound = NewError(KindNotFound, ErrMsgInventoryNotFound)
	ErrItemNotFound      = NewError(KindNotFound, ErrMsgItemNotFound)
	ErrFieldNotFound     = NewError(KindNotFound, ErrMsgFieldNotFound)
	ErrGrantNotFound     = NewError(KindNotFound, ErrMsgGrantNotFound)

	ErrForbidden          = NewError(KindForbidden, ErrMsgAccessDenied)
	ErrOwnerOnly          = NewError(KindForbidden, ErrMsgOwnerOnly)
	ErrUnauthenticated    = NewError(KindUnauthenticated, ErrMsgAuthRequired)
	ErrInvalidCredentials = NewError(KindUnauthenticated, ErrMsgInvalidCredentials)
	ErrInvalidToken       = NewError(KindUnauthenticated, ErrMsgInvalidToken)
	ErrTokenRevoked       = NewError(KindUnauthenticated, ErrMsgTokenRevoked)

	ErrVersionConflict = NewError(KindConflict, ErrMsgVersionConflict)

	ErrDuplicateKey   = NewError(KindDuplicate, ErrMsgDuplicateKey)
	ErrEmailTaken     = NewError(KindDuplicate, ErrMsgEmailTaken)
	ErrAlreadyLiked   = NewError(KindDuplicate, ErrMsgAlreadyLiked)
	ErrSlotsExhausted = NewError(KindDuplicate, ErrMsgSlotsExhausted)

	ErrUnknownCategory      = NewError(KindValidation, ErrMsgUnknownCategory)
	ErrVersionRequired      = NewError(KindValidation, ErrMsgVersionRequired)
	ErrNothingToUpdate      = NewError(KindValidation, ErrMsgNothingToUpdate)
	ErrInventoryIDRequired  = NewError(KindValidation, ErrMsgInventoryIDRequired)
	ErrEmptyContent         = NewError(KindValidation, ErrMsgEmptyContent)
	ErrContentTooLong       = NewError(KindValidation, ErrMsgContentTooLong)
	ErrSelfGrant            = NewError(KindValidation, ErrMsgSelfGrant)
	ErrInvalidAccessLevel   = NewError(KindValidation, ErrMsgInvalidAccessLevel)
	ErrInvalidFieldType     = NewError(KindValidation, ErrMsgInvalidFieldType)
	ErrUnknownSlot          = NewError(KindValidation, ErrMsgUnknownSlot)
	ErrSlotNotConfigured    = NewError(KindValidation, ErrMsgSlotNotConfigured)
	ErrRequiredFieldMissing = NewError(KindValidation, ErrMsgRequiredFieldMissing)
	ErrInvalidSlotValue     = NewError(KindValidation, ErrMsgInvalidSlotValue)
	ErrInvalidInput         = NewError(KindValidation, ErrMsgInvalidInput)

	ErrUnsupportedEntityKind = NewError(KindInternal, ErrMsgUnsupportedEntityKind)
)
