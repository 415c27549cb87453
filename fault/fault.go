// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
// classes correspond to the operation outcome, not the message text
type (
	AuthorizationError GenericError // caller may not perform the operation now
	CapacityError      GenericError // permanent for the ledger, capacity cannot change
	ExistsError        GenericError // record already present
	InvalidError       GenericError // validation failure, never retried
	NotFoundError      GenericError // record absent
	PaymentError       GenericError // caller may retry with corrected funds/asset
	ProcessError       GenericError // internal or delegated processing failure
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrAssetMismatch             = PaymentError("holding account asset does not match required payment asset")
	ErrBalanceOverflow           = CapacityError("balance would overflow")
	ErrCannotDecodeAccount       = InvalidError("cannot decode account")
	ErrCannotDecodeHandle        = InvalidError("cannot decode handle")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrChecksumMismatch          = InvalidError("checksum mismatch")
	ErrClaimLedgerAlreadyExists  = ExistsError("claim ledger already exists for this identifier")
	ErrConfigurationIsEmpty      = InvalidError("configuration must have at least one record")
	ErrCountOverflow             = CapacityError("live count would overflow")
	ErrEditionAlreadyLocked      = ExistsError("edition already locked")
	ErrHoldingAlreadyExists      = ExistsError("holding already exists for this account")
	ErrIndexOutOfRange           = InvalidError("index out of range")
	ErrInsufficientFunds         = PaymentError("not enough funds to pay for this claim")
	ErrInvalidIdentifierLength   = InvalidError("identifier must be exactly 6 characters")
	ErrInvalidKeyLength          = InvalidError("key length is invalid")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrInvalidRoyaltyRate        = InvalidError("royalty basis points exceed 10000")
	ErrInvalidSignature          = AuthorizationError("invalid signature")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTimestamp          = InvalidError("timestamp is too far from node time")
	ErrKeyFileExists             = ExistsError("key file already exists")
	ErrLedgerAlreadyExists       = ExistsError("ledger already exists for this identifier")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrNameTooLong               = InvalidError("name field exceeds its fixed width")
	ErrNotAvailableYet           = AuthorizationError("claims are not available yet")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrNotOperator               = AuthorizationError("caller is not the operator")
	ErrRateLimiting              = ProcessError("rate limiting active")
	ErrRecordAlreadyIssued       = ExistsError("record already issued for this item")
	ErrRecordNotFound            = NotFoundError("record not found")
	ErrRegionTooSmall            = InvalidError("storage region is too small")
	ErrSoldOut                   = CapacityError("all items have been redeemed")
	ErrSymbolTooLong             = InvalidError("symbol field exceeds its fixed width")
	ErrTooManyCreators           = InvalidError("no more than 3 creators can be configured")
	ErrTooManyItemsToProcess     = InvalidError("too many items to process")
	ErrTreasuryIsNotHolding      = PaymentError("treasury is not a holding account for the payment asset")
	ErrUriTooLong                = InvalidError("uri field exceeds its fixed width")
	ErrWrongOwner                = AuthorizationError("account does not own this holding")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e CapacityError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e PaymentError) Error() string       { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrCapacity(e error) bool      { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrPayment(e error) bool       { _, ok := e.(PaymentError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
