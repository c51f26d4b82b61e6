package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrZeroPrice indicates a zero (or missing) price observation; the affected
// currency is skipped for the current adjustment tick.
var ErrZeroPrice = errors.New("currency price is zero")

// ErrDivisionByZero indicates a fixed-point division with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// ErrLedgerRejected indicates the ledger backend refused a mint/burn request,
// e.g. insufficient reserved balance on a burn.
var ErrLedgerRejected = errors.New("ledger rejected mutation")

// ErrConfigurationInvalid indicates the engine configuration failed eager
// validation; the engine must not process any tick with a bad configuration.
var ErrConfigurationInvalid = errors.New("configuration invalid")
