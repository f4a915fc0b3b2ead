/*
accounts.go - Fixed chart of accounts for journal postings

PURPOSE:
  Every journal line posts against a named account from a fixed chart.
  The registry keeps the account metadata (category) in one place and lets
  the journal builder guarantee it never posts to an unknown account.

HOW IT WORKS:
  1. The IFRS 16 chart is registered on init()
  2. journal.go resolves names through MustLookupAccount
  3. The api exposes the chart read-only for display

USAGE:
  acc := lease.MustLookupAccount(lease.AccountLeaseLiability)
  all := lease.ListAccounts() // sorted by name

SEE ALSO:
  - journal.go: posts against these accounts
*/
package lease

import (
	"fmt"
	"sort"
	"sync"
)

// =============================================================================
// ACCOUNT NAMES - the fixed chart
// =============================================================================

const (
	AccountRightOfUse              = "Right of Use Asset"
	AccountLeaseLiability          = "Lease Liability"
	AccountInterestExpense         = "Interest Expense"
	AccountBank                    = "Bank"
	AccountDepreciationExpense     = "Depreciation Expense"
	AccountAccumulatedDepreciation = "Accumulated Depreciation - ROU"
	AccountSecurityDepositAsset    = "Security Deposit (Financial Asset)"
	AccountSecurityDeposit         = "Security Deposit"
	AccountInterestIncome          = "Interest Income"
)

type AccountCategory string

const (
	CategoryAsset       AccountCategory = "asset"
	CategoryContraAsset AccountCategory = "contra_asset"
	CategoryLiability   AccountCategory = "liability"
	CategoryExpense     AccountCategory = "expense"
	CategoryIncome      AccountCategory = "income"
)

// Account is one entry in the chart of accounts.
type Account struct {
	Name     string
	Category AccountCategory
}

// =============================================================================
// ACCOUNT REGISTRY
// =============================================================================

var (
	accountRegistry = make(map[string]Account)
	accountMu       sync.RWMutex
)

func init() {
	for _, acc := range []Account{
		{Name: AccountRightOfUse, Category: CategoryAsset},
		{Name: AccountLeaseLiability, Category: CategoryLiability},
		{Name: AccountInterestExpense, Category: CategoryExpense},
		{Name: AccountBank, Category: CategoryAsset},
		{Name: AccountDepreciationExpense, Category: CategoryExpense},
		{Name: AccountAccumulatedDepreciation, Category: CategoryContraAsset},
		{Name: AccountSecurityDepositAsset, Category: CategoryAsset},
		{Name: AccountSecurityDeposit, Category: CategoryAsset},
		{Name: AccountInterestIncome, Category: CategoryIncome},
	} {
		RegisterAccount(acc)
	}
}

// RegisterAccount adds an account to the chart.
// The built-in chart registers itself on init().
func RegisterAccount(acc Account) {
	accountMu.Lock()
	defer accountMu.Unlock()
	accountRegistry[acc.Name] = acc
}

// LookupAccount finds an account by name. The second return is false when
// the account is not in the chart.
func LookupAccount(name string) (Account, bool) {
	accountMu.RLock()
	defer accountMu.RUnlock()
	acc, ok := accountRegistry[name]
	return acc, ok
}

// MustLookupAccount finds an account or panics. The journal builder uses
// this so a posting against an unknown account fails loudly.
func MustLookupAccount(name string) Account {
	acc, ok := LookupAccount(name)
	if !ok {
		panic(fmt.Sprintf("account not in chart: %s", name))
	}
	return acc
}

// ListAccounts returns the chart sorted by account name.
func ListAccounts() []Account {
	accountMu.RLock()
	defer accountMu.RUnlock()
	result := make([]Account, 0, len(accountRegistry))
	for _, acc := range accountRegistry {
		result = append(result, acc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
