// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minting

import (
	"time"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/payment"
	"github.com/dropmint/dropmintd/storage"
	"github.com/dropmint/dropmintd/storagehandle"
)

// IssuedItem - the result of one successful claim
type IssuedItem struct {
	Item          storagehandle.Handle `json:"item"`
	TemplateIndex uint32               `json:"templateIndex"`
	Name          string               `json:"name"`
	Uri           string               `json:"uri"`
	RedeemedCount uint64               `json:"redeemedCount"`
}

// CreateConfiguration - store a new sale configuration with its
// pre-allocated template region
//
// the handle is derived from the operator and the identifier, so a
// second creation with the same pair is rejected
func CreateConfiguration(configuration *ledger.Configuration) (storagehandle.Handle, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return storagehandle.Handle{}, fault.ErrNotInitialised
	}

	region, err := configuration.Pack()
	if nil != err {
		return storagehandle.Handle{}, err
	}

	handle := ConfigurationHandle(configuration.Operator, configuration.Identifier)
	if storage.Pool.Configurations.Has(handle[:]) {
		return storagehandle.Handle{}, fault.ErrLedgerAlreadyExists
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Configurations, handle[:], region)
	if err := batch.Commit(); nil != err {
		return storagehandle.Handle{}, err
	}

	globalData.configurationCounter.Increment()
	globalData.log.Infof("created configuration: %s  capacity: %d", handle, configuration.DeclaredCapacity)

	return handle, nil
}

// AppendRecords - patch a batch of template records into a configuration
// region starting at a slot index
//
// only the configuration operator may append; the patch is in place and
// never rewrites the header fields
//
// returns the live count after the patch
func AppendRecords(operator account.Account, configuration storagehandle.Handle, startIndex uint32, records []ledger.TemplateRecord) (uint32, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	if 0 == len(records) {
		return 0, fault.ErrMissingParameters
	}

	buffer := storage.Pool.Configurations.Get(configuration[:])
	if nil == buffer {
		return 0, fault.ErrRecordNotFound
	}

	region := ledger.Region(buffer)

	header, err := ledger.UnpackConfiguration(region)
	if nil != err {
		return 0, err
	}
	if operator != header.Operator {
		return 0, fault.ErrNotOperator
	}

	if err := region.Append(startIndex, records); nil != err {
		return 0, err
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Configurations, configuration[:], region)
	if err := batch.Commit(); nil != err {
		return 0, err
	}

	liveCount, err := region.LiveCount()
	if nil != err {
		return 0, err
	}

	globalData.log.Infof("appended %d records to: %s  start: %d", len(records), configuration, startIndex)

	return liveCount, nil
}

// CreateClaimLedger - store the mutable sale state bound to an existing
// configuration
//
// fails unless the configuration has at least one live record and, for
// asset based sales, the treasury is a holding of the payment asset
func CreateClaimLedger(claimLedger *ledger.ClaimLedger) (storagehandle.Handle, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return storagehandle.Handle{}, fault.ErrNotInitialised
	}

	buffer := storage.Pool.Configurations.Get(claimLedger.Configuration[:])
	if nil == buffer {
		return storagehandle.Handle{}, fault.ErrRecordNotFound
	}

	region := ledger.Region(buffer)

	header, err := ledger.UnpackConfiguration(region)
	if nil != err {
		return storagehandle.Handle{}, err
	}
	if claimLedger.Operator != header.Operator {
		return storagehandle.Handle{}, fault.ErrNotOperator
	}

	liveCount, err := region.LiveCount()
	if nil != err {
		return storagehandle.Handle{}, err
	}
	if 0 == liveCount {
		return storagehandle.Handle{}, fault.ErrConfigurationIsEmpty
	}

	if err := payment.ValidateTreasury(globalData.transferrer, claimLedger.Treasury, claimLedger.PaymentAsset); nil != err {
		return storagehandle.Handle{}, err
	}

	// the counter always starts from zero
	claimLedger.RedeemedCount = 0

	packed, err := claimLedger.Pack()
	if nil != err {
		return storagehandle.Handle{}, err
	}

	handle := ClaimLedgerHandle(claimLedger.Configuration, claimLedger.Identifier)
	if storage.Pool.ClaimLedgers.Has(handle[:]) {
		return storagehandle.Handle{}, fault.ErrClaimLedgerAlreadyExists
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.ClaimLedgers, handle[:], packed)
	if err := batch.Commit(); nil != err {
		return storagehandle.Handle{}, err
	}

	globalData.claimLedgerCounter.Increment()
	globalData.log.Infof("created claim ledger: %s  available: %d", handle, claimLedger.TotalAvailable)

	return handle, nil
}

// Claim - redeem one item against payment
//
// the full state transition: availability window, capacity, payment
// settlement, counter advance, template selection and delegation to the
// issuance service; the counter is only persisted after issuance has
// succeeded
func Claim(claimLedgerHandle storagehandle.Handle, claimant account.Account, now time.Time, proof *payment.Proof, updateAuthority account.Account) (*IssuedItem, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	buffer := storage.Pool.ClaimLedgers.Get(claimLedgerHandle[:])
	if nil == buffer {
		return nil, fault.ErrRecordNotFound
	}

	claimLedger, err := ledger.UnpackClaimLedger(buffer)
	if nil != err {
		return nil, err
	}

	// before the start time only the operator may claim, and a ledger
	// without a start time never opens to the public
	if nil == claimLedger.AvailabilityStart || now.Unix() < *claimLedger.AvailabilityStart {
		if claimant != claimLedger.Operator {
			return nil, fault.ErrNotAvailableYet
		}
	}

	// the counter cannot overflow: it stays strictly below the 64 bit
	// total available
	if claimLedger.RedeemedCount >= claimLedger.TotalAvailable {
		return nil, fault.ErrSoldOut
	}

	// payment is final once settled, a later issuance failure does not
	// refund it
	if err := payment.Settle(globalData.transferrer, claimLedger, claimant, proof); nil != err {
		return nil, err
	}

	configurationBuffer := storage.Pool.Configurations.Get(claimLedger.Configuration[:])
	if nil == configurationBuffer {
		return nil, fault.ErrRecordNotFound
	}
	region := ledger.Region(configurationBuffer)

	header, err := ledger.UnpackConfiguration(region)
	if nil != err {
		return nil, err
	}

	liveCount, err := region.LiveCount()
	if nil != err {
		return nil, err
	}
	if 0 == liveCount {
		return nil, fault.ErrConfigurationIsEmpty
	}

	// sequential assignment, wrapping only when the cap exceeds the
	// populated count
	position := claimLedger.RedeemedCount
	templateIndex := uint32(position % uint64(liveCount))

	record, err := region.Record(templateIndex)
	if nil != err {
		return nil, err
	}

	// the ledger itself leads the creator list as the verified zero
	// share entry, configured creators follow unverified
	creators := make([]ledger.Creator, 0, len(header.Creators)+1)
	creators = append(creators, ledger.Creator{
		Address:  account.Account(claimLedgerHandle),
		Verified: true,
		Share:    0,
	})
	for _, c := range header.Creators {
		creators = append(creators, ledger.Creator{
			Address:  c.Address,
			Verified: false,
			Share:    c.Share,
		})
	}

	authority := storagehandle.Handle(updateAuthority)
	if header.RetainsUpdateAuthority {
		authority = claimLedgerHandle
	}

	item := ItemHandle(claimLedgerHandle, position)

	metadata := &Metadata{
		Name:               record.Name,
		Symbol:             header.Symbol,
		Uri:                record.Uri,
		RoyaltyBasisPoints: header.RoyaltyBasisPoints,
		Creators:           creators,
		IsMutable:          header.IsMutable,
	}

	if err := globalData.issuer.AttachMetadata(item, metadata, authority); nil != err {
		return nil, err
	}
	if err := globalData.issuer.LockEdition(item, header.MaxSupplyPerItem, authority); nil != err {
		return nil, err
	}

	if err := ledger.PatchRedeemedCount(buffer, position+1); nil != err {
		return nil, err
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.ClaimLedgers, claimLedgerHandle[:], buffer)
	if err := batch.Commit(); nil != err {
		return nil, err
	}

	globalData.claimCounter.Increment()
	globalData.log.Infof("claim %d of %d on: %s  item: %s", position+1, claimLedger.TotalAvailable, claimLedgerHandle, item)

	return &IssuedItem{
		Item:          item,
		TemplateIndex: templateIndex,
		Name:          record.Name,
		Uri:           record.Uri,
		RedeemedCount: position + 1,
	}, nil
}
