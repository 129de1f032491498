package cli

import (
	stderrors "errors"

	"bank-accounts/internal/dto"
	"bank-accounts/internal/models"
	"bank-accounts/internal/services"
)

var accountTypeKinds = map[string]models.AccountKind{
	"1": models.AccountKindSavings,
	"2": models.AccountKindChecking,
	"3": models.AccountKindInvestment,
}

// handled converts input errors into a message. Only errInputClosed and read
// failures reach the caller.
func (m *Menu) handled(err error, message string) error {
	if err == nil || !stderrors.Is(err, errBadNumber) {
		return err
	}
	m.println(message)
	return nil
}

func (m *Menu) createAccount() error {
	m.println("\n--- CREATE ACCOUNT ---")
	m.println("1. Savings account")
	m.println("2. Checking account")
	m.println("3. Investment account")

	choice, err := m.prompt("Select account type: ")
	if err != nil {
		return err
	}
	holder, err := m.prompt("Holder name: ")
	if err != nil {
		return err
	}
	initial, err := m.promptFloat("Initial balance: ")
	if err != nil {
		return m.handled(err, "Error: initial balance must be a valid number")
	}

	kind, ok := accountTypeKinds[choice]
	if !ok {
		m.println("Invalid option")
		return nil
	}

	req := dto.CreateAccountRequest{
		Kind:           string(kind),
		Holder:         holder,
		InitialBalance: initial,
	}

	if kind == models.AccountKindChecking {
		// An unreadable limit falls back to the configured default
		limit, err := m.promptFloat("Overdraft limit: ")
		if err != nil && !stderrors.Is(err, errBadNumber) {
			return err
		}
		if err == nil {
			req.OverdraftLimit = &limit
		}
	}

	account, err := m.service.CreateAccount(req)
	if err != nil {
		m.printf("Error: %v\n", err)
		return nil
	}

	m.printf("Account created successfully: %s\n", account)
	return nil
}

func (m *Menu) listAccounts(minimum int) bool {
	accounts := m.service.Accounts()
	if len(accounts) < minimum {
		if minimum <= 1 {
			m.println("No accounts created")
		} else {
			m.printf("At least %d accounts are required\n", minimum)
		}
		return false
	}

	for i, account := range accounts {
		m.printf("%d. %s - %s\n", i, account.ID(), account.Holder())
	}
	return true
}

// reportSelection prints the message for a selection error, returning other errors
func (m *Menu) reportSelection(err error) error {
	switch {
	case stderrors.Is(err, errBadNumber), stderrors.Is(err, services.ErrAccountNotFound):
		m.println("Invalid selection")
		return nil
	case stderrors.Is(err, services.ErrSameAccount):
		m.println("Source and destination must be different accounts")
		return nil
	case stderrors.Is(err, services.ErrNotInvestment):
		m.println("The selected account is not an investment account")
		return nil
	case stderrors.Is(err, services.ErrInvalidRequest):
		m.printf("Error: %v\n", err)
		return nil
	default:
		return err
	}
}

func (m *Menu) deposit() error {
	m.println("\n--- DEPOSIT ---")
	if !m.listAccounts(1) {
		return nil
	}

	index, err := m.promptInt("Select account: ")
	if err != nil {
		return m.reportSelection(err)
	}
	amount, err := m.promptFloat("Amount to deposit: ")
	if err != nil {
		return m.reportSelection(err)
	}

	ok, err := m.service.Deposit(index, amount)
	if err != nil {
		return m.reportSelection(err)
	}
	if ok {
		m.println("Deposit successful")
	} else {
		m.println("Deposit failed: amount must be positive")
	}
	return nil
}

func (m *Menu) withdraw() error {
	m.println("\n--- WITHDRAW ---")
	if !m.listAccounts(1) {
		return nil
	}

	index, err := m.promptInt("Select account: ")
	if err != nil {
		return m.reportSelection(err)
	}
	amount, err := m.promptFloat("Amount to withdraw: ")
	if err != nil {
		return m.reportSelection(err)
	}

	ok, err := m.service.Withdraw(index, amount)
	if err != nil {
		return m.reportSelection(err)
	}
	if ok {
		m.println("Withdrawal successful")
	} else {
		m.println("Insufficient funds or invalid amount")
	}
	return nil
}

func (m *Menu) transfer() error {
	m.println("\n--- TRANSFER ---")
	if !m.listAccounts(2) {
		return nil
	}

	from, err := m.promptInt("Select source account: ")
	if err != nil {
		return m.reportSelection(err)
	}
	to, err := m.promptInt("Select destination account: ")
	if err != nil {
		return m.reportSelection(err)
	}
	amount, err := m.promptFloat("Amount to transfer: ")
	if err != nil {
		return m.reportSelection(err)
	}

	ok, err := m.service.Transfer(dto.TransferRequest{FromIndex: from, ToIndex: to, Amount: amount})
	if err != nil {
		return m.reportSelection(err)
	}
	if ok {
		m.println("Transfer successful")
	} else {
		m.println("Transfer failed")
	}
	return nil
}

func (m *Menu) compare() error {
	m.println("\n--- COMPARE BALANCES ---")
	if !m.listAccounts(2) {
		return nil
	}

	first, err := m.promptInt("Select first account: ")
	if err != nil {
		return m.reportSelection(err)
	}
	second, err := m.promptInt("Select second account: ")
	if err != nil {
		return m.reportSelection(err)
	}

	result, err := m.service.Compare(first, second)
	if err != nil {
		return m.reportSelection(err)
	}

	switch {
	case result.Equal():
		m.printf("%s and %s have the same balance\n", result.First.ID(), result.Second.ID())
	case result.FirstExceeds:
		m.printf("%s has the higher balance\n", result.First.ID())
	default:
		m.printf("%s has the higher balance\n", result.Second.ID())
	}
	return nil
}

func (m *Menu) showAll() error {
	m.println("\n--- ACCOUNT STATUS ---")
	accounts := m.service.Accounts()
	if len(accounts) == 0 {
		m.println("No accounts created")
		return nil
	}

	for _, account := range accounts {
		m.println(account)
	}
	m.println()
	renderAccounts(m.out, accounts)
	return nil
}

func (m *Menu) runMonthly() error {
	results := m.service.RunMonthly()
	return m.reporter.WriteReport(m.out, results)
}

func (m *Menu) allocatePortfolio() error {
	m.println("\n--- INVEST IN PORTFOLIO ---")
	if !m.listAccounts(1) {
		return nil
	}

	index, err := m.promptInt("Select investment account: ")
	if err != nil {
		return m.reportSelection(err)
	}

	req := dto.PortfolioRequest{AccountIndex: index}
	for _, field := range []struct {
		label string
		dest  *float64
	}{
		{"Amount for stocks: ", &req.Stocks},
		{"Amount for bonds: ", &req.Bonds},
		{"Amount for funds: ", &req.Funds},
	} {
		v, err := m.promptFloat(field.label)
		if err != nil {
			return m.reportSelection(err)
		}
		*field.dest = v
	}

	ok, err := m.service.AllocatePortfolio(req)
	if err != nil {
		return m.reportSelection(err)
	}
	if !ok {
		m.println("Investment failed: insufficient funds or invalid amounts")
		return nil
	}

	account, err := m.service.Get(index)
	if err != nil {
		return m.reportSelection(err)
	}
	m.printf("Investment successful: %s\n", account)
	return nil
}

func (m *Menu) statement() error {
	m.println("\n--- ACCOUNT STATEMENT ---")
	if !m.listAccounts(1) {
		return nil
	}

	index, err := m.promptInt("Select account: ")
	if err != nil {
		return m.reportSelection(err)
	}

	statement, err := m.service.Statement(index)
	if err != nil {
		return m.reportSelection(err)
	}

	m.println(statement.Account)
	renderTransactions(m.out, statement.Transactions)
	if statement.Journaled >= 0 {
		m.printf("Journaled entries: %d\n", statement.Journaled)
	}
	return nil
}
