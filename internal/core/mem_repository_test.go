package core_test

import (
	"context"
	"sync"

	"landledger/internal/repository"
)

// memRepository is an in-memory core.Repository used to drive the
// ledger through multi-operation flows without a database. A land-read
// hook lets a test pause one caller inside its critical section.
type memRepository struct {
	mu sync.Mutex

	accounts        map[string]repository.Account
	lands           map[uint64]repository.LandRecord
	requests        map[uint64]repository.BuyRequest
	history         map[uint64][]string
	pendingAccounts map[string]struct{}
	pendingLands    map[uint64]struct{}

	nextLandID    uint64
	nextRequestID uint64

	landReadHook func(landID uint64)
}

func newMemRepository() *memRepository {
	return &memRepository{
		accounts:        map[string]repository.Account{},
		lands:           map[uint64]repository.LandRecord{},
		requests:        map[uint64]repository.BuyRequest{},
		history:         map[uint64][]string{},
		pendingAccounts: map[string]struct{}{},
		pendingLands:    map[uint64]struct{}{},
	}
}

func (m *memRepository) seedAccount(account repository.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Address] = account
}

// setLandReadHook installs a callback invoked on every GetLandByID,
// outside the repository mutex so it may block.
func (m *memRepository) setLandReadHook(hook func(landID uint64)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.landReadHook = hook
}

func (m *memRepository) GetAccountByAddress(_ context.Context, address string) (repository.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[address]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return account, nil
}

func (m *memRepository) GetAccountByNationalID(_ context.Context, nationalID string) (repository.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.NationalID == nationalID {
			return account, nil
		}
	}
	return repository.Account{}, repository.ErrAccountNotFound
}

func (m *memRepository) CreateAccount(_ context.Context, account repository.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Address] = account
	return nil
}

func (m *memRepository) SetDesignation(_ context.Context, address string, designation int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[address]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.Designation = designation
	m.accounts[address] = account
	return nil
}

func (m *memRepository) SetAccountVerification(_ context.Context, address string, verified bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[address]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.IsVerified = verified
	m.accounts[address] = account
	return nil
}

func (m *memRepository) VerifyAccountByNationalID(_ context.Context, nationalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for address, account := range m.accounts {
		if account.NationalID == nationalID {
			account.IsVerified = true
			m.accounts[address] = account
			delete(m.pendingAccounts, nationalID)
			return nil
		}
	}
	return repository.ErrAccountNotFound
}

func (m *memRepository) EnqueueAccountVerification(_ context.Context, nationalID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pendingAccounts[nationalID]; ok {
		return false, nil
	}
	m.pendingAccounts[nationalID] = struct{}{}
	return true, nil
}

func (m *memRepository) PendingAccountVerifications(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.pendingAccounts))
	for id := range m.pendingAccounts {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memRepository) CreateLand(_ context.Context, record *repository.LandRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextLandID++
	record.LandID = m.nextLandID
	m.lands[record.LandID] = *record
	return nil
}

func (m *memRepository) GetLandByHashKey(_ context.Context, hashKey string) (repository.LandRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.lands {
		if record.HashKey == hashKey {
			return record, nil
		}
	}
	return repository.LandRecord{}, repository.ErrLandNotFound
}

func (m *memRepository) GetLandByID(_ context.Context, landID uint64) (repository.LandRecord, error) {
	m.mu.Lock()
	hook := m.landReadHook
	m.mu.Unlock()
	if hook != nil {
		hook(landID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.lands[landID]
	if !ok {
		return repository.LandRecord{}, repository.ErrLandNotFound
	}
	return record, nil
}

func (m *memRepository) SetLandVerified(_ context.Context, landID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.lands[landID]
	if !ok {
		return repository.ErrLandNotFound
	}
	record.IsVerified = true
	m.lands[landID] = record
	delete(m.pendingLands, landID)
	return nil
}

func (m *memRepository) SetLandForSale(_ context.Context, landID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.lands[landID]
	if !ok {
		return repository.ErrLandNotFound
	}
	record.IsForSale = true
	m.lands[landID] = record
	return nil
}

func (m *memRepository) EnqueueLandVerification(_ context.Context, landID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pendingLands[landID]; ok {
		return false, nil
	}
	m.pendingLands[landID] = struct{}{}
	return true, nil
}

func (m *memRepository) PendingLandVerifications(_ context.Context) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uint64, 0, len(m.pendingLands))
	for id := range m.pendingLands {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memRepository) LandsForSale(_ context.Context) ([]repository.LandRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var records []repository.LandRecord
	for _, record := range m.lands {
		if record.IsForSale {
			records = append(records, record)
		}
	}
	return records, nil
}

func (m *memRepository) LandsByOwner(_ context.Context, owner string) ([]repository.LandRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var records []repository.LandRecord
	for _, record := range m.lands {
		if record.Owner == owner {
			records = append(records, record)
		}
	}
	return records, nil
}

func (m *memRepository) AllLands(_ context.Context) ([]repository.LandRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make([]repository.LandRecord, 0, len(m.lands))
	for _, record := range m.lands {
		records = append(records, record)
	}
	return records, nil
}

func (m *memRepository) PreviousOwners(_ context.Context, landID uint64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owners := make([]string, len(m.history[landID]))
	copy(owners, m.history[landID])
	return owners, nil
}

func (m *memRepository) CreateBuyRequest(_ context.Context, request *repository.BuyRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRequestID++
	request.RequestID = m.nextRequestID
	m.requests[request.RequestID] = *request
	return nil
}

func (m *memRepository) GetBuyRequest(_ context.Context, requestID uint64) (repository.BuyRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[requestID]
	if !ok {
		return repository.BuyRequest{}, repository.ErrRequestNotFound
	}
	return request, nil
}

func (m *memRepository) BuyerRequestWithStatus(_ context.Context, landID uint64, buyer string, statuses []int) (repository.BuyRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, request := range m.requests {
		if request.LandID == landID && request.Buyer == buyer && statusIn(request.Status, statuses) {
			return request, nil
		}
	}
	return repository.BuyRequest{}, repository.ErrRequestNotFound
}

func (m *memRepository) LandRequestsWithStatus(_ context.Context, landID uint64, statuses []int) ([]repository.BuyRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var requests []repository.BuyRequest
	for _, request := range m.requests {
		if request.LandID == landID && statusIn(request.Status, statuses) {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (m *memRepository) RequestsWithStatus(_ context.Context, statuses []int) ([]repository.BuyRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var requests []repository.BuyRequest
	for _, request := range m.requests {
		if statusIn(request.Status, statuses) {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (m *memRepository) RequestsByBuyer(_ context.Context, buyer string) ([]repository.BuyRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var requests []repository.BuyRequest
	for _, request := range m.requests {
		if request.Buyer == buyer {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (m *memRepository) RequestsBySeller(_ context.Context, seller string) ([]repository.BuyRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var requests []repository.BuyRequest
	for _, request := range m.requests {
		if request.Seller == seller {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (m *memRepository) SetRequestStatus(_ context.Context, requestID uint64, status int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[requestID]
	if !ok {
		return repository.ErrRequestNotFound
	}
	request.Status = status
	m.requests[requestID] = request
	return nil
}

func (m *memRepository) SetRequestsStatus(_ context.Context, requestIDs []uint64, status int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range requestIDs {
		request, ok := m.requests[id]
		if !ok {
			continue
		}
		request.Status = status
		m.requests[id] = request
	}
	return nil
}

func (m *memRepository) TransferOwnership(_ context.Context, args repository.TransferArgs) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.lands[args.LandID]
	if !ok {
		return repository.ErrLandNotFound
	}
	request, ok := m.requests[args.RequestID]
	if !ok {
		return repository.ErrRequestNotFound
	}

	m.history[args.LandID] = append(m.history[args.LandID], args.PreviousOwner)

	record.Owner = args.NewOwner
	record.IsForSale = false
	m.lands[args.LandID] = record

	request.Status = args.CompletedStatus
	m.requests[args.RequestID] = request

	for _, id := range args.RejectRequestIDs {
		sibling, ok := m.requests[id]
		if !ok {
			continue
		}
		sibling.Status = args.RejectedStatus
		m.requests[id] = sibling
	}
	return nil
}

func statusIn(status int, statuses []int) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
