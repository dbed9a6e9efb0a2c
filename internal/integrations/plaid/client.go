// Package plaid adapts the Plaid Go SDK to the BankingProvider port. It is
// the only package that sees provider wire types; everything past this
// boundary works with typed domain values.
package plaid

import (
	"context"
	"fmt"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portsprov "github.com/clarity-finance/clarity-backend/internal/core/ports/providers"
	"github.com/plaid/plaid-go/v27/plaid"
	"github.com/shopspring/decimal"
)

// clientName is what the provider shows the user in the linking UI.
const clientName = "Clarity Finance"

// Client calls the Plaid API with a fixed product/country/language
// configuration: transactions / US / en.
type Client struct {
	api *plaid.APIClient
}

var _ portsprov.BankingProvider = (*Client)(nil)

// NewClient builds a Plaid client for the named environment ("sandbox" or
// "production").
func NewClient(clientID, secret, env string) (*Client, error) {
	environment, err := environmentFromName(env)
	if err != nil {
		return nil, err
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", clientID)
	configuration.AddDefaultHeader("PLAID-SECRET", secret)
	configuration.UseEnvironment(environment)

	return &Client{api: plaid.NewAPIClient(configuration)}, nil
}

func environmentFromName(name string) (plaid.Environment, error) {
	switch name {
	case "sandbox", "":
		return plaid.Sandbox, nil
	case "production":
		return plaid.Production, nil
	default:
		return "", fmt.Errorf("unknown plaid environment %q", name)
	}
}

// CreateLinkToken issues a short-lived link token for the given user.
func (c *Client) CreateLinkToken(ctx context.Context, userID string) (*domain.LinkToken, error) {
	user := *plaid.NewLinkTokenCreateRequestUser(userID)
	req := plaid.NewLinkTokenCreateRequest(clientName, "en", []plaid.CountryCode{plaid.COUNTRYCODE_US}, user)
	req.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*req).Execute()
	if err != nil {
		return nil, wrapProviderError("link token create failed", err)
	}

	return &domain.LinkToken{
		LinkToken:  resp.GetLinkToken(),
		Expiration: resp.GetExpiration(),
		RequestID:  resp.GetRequestId(),
	}, nil
}

// ExchangePublicToken trades a one-time public token for an access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*domain.TokenExchange, error) {
	req := plaid.NewItemPublicTokenExchangeRequest(publicToken)

	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*req).Execute()
	if err != nil {
		return nil, wrapProviderError("public token exchange failed", err)
	}

	return &domain.TokenExchange{
		AccessToken: resp.GetAccessToken(),
		ItemID:      resp.GetItemId(),
	}, nil
}

// GetTransactions fetches a single page of transactions for a date range.
func (c *Client) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) (*domain.TransactionPage, error) {
	req := plaid.NewTransactionsGetRequest(accessToken, startDate, endDate)

	resp, _, err := c.api.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*req).Execute()
	if err != nil {
		return nil, wrapProviderError("transactions fetch failed", err)
	}

	page := &domain.TransactionPage{
		Transactions: make([]domain.ProviderTransaction, 0, len(resp.GetTransactions())),
		Accounts:     toBankAccounts(resp.GetAccounts()),
		Total:        int(resp.GetTotalTransactions()),
	}
	for _, t := range resp.GetTransactions() {
		page.Transactions = append(page.Transactions, domain.ProviderTransaction{
			TransactionID: t.GetTransactionId(),
			AccountID:     t.GetAccountId(),
			Date:          t.GetDate(),
			Name:          t.GetName(),
			Amount:        decimal.NewFromFloat(t.GetAmount()),
			Category:      t.GetCategory(),
			Pending:       t.GetPending(),
			CurrencyCode:  t.GetIsoCurrencyCode(),
		})
	}
	return page, nil
}

// GetAccounts fetches the linked accounts for an access token.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error) {
	req := plaid.NewAccountsGetRequest(accessToken)

	resp, _, err := c.api.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*req).Execute()
	if err != nil {
		return nil, wrapProviderError("accounts fetch failed", err)
	}
	return toBankAccounts(resp.GetAccounts()), nil
}

func toBankAccounts(accounts []plaid.AccountBase) []domain.BankAccount {
	out := make([]domain.BankAccount, 0, len(accounts))
	for _, a := range accounts {
		balances := a.GetBalances()
		out = append(out, domain.BankAccount{
			AccountID:        a.GetAccountId(),
			Name:             a.GetName(),
			OfficialName:     a.GetOfficialName(),
			Type:             string(a.GetType()),
			Subtype:          string(a.GetSubtype()),
			Mask:             a.GetMask(),
			CurrentBalance:   decimal.NewFromFloat(balances.GetCurrent()),
			AvailableBalance: decimal.NewFromFloat(balances.GetAvailable()),
			CurrencyCode:     balances.GetIsoCurrencyCode(),
		})
	}
	return out
}

// wrapProviderError extracts the provider's own error message when one is
// present so it can travel to the response body as details.
func wrapProviderError(msg string, err error) error {
	if plaidErr, convErr := plaid.ToPlaidError(err); convErr == nil {
		return apperrors.NewProviderError(
			fmt.Sprintf("%s: %s", plaidErr.GetErrorCode(), plaidErr.GetErrorMessage()), err)
	}
	return apperrors.NewProviderError(msg+": "+err.Error(), err)
}
