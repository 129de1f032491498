// Package cli implements the interactive text menu over the account service.
package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"bank-accounts/internal/models"
	"bank-accounts/internal/services"
)

// errInputClosed ends the session when input runs out mid-action
var errInputClosed = stderrors.New("input closed")

// SnapshotPublisherInterface receives the account state after every action
type SnapshotPublisherInterface interface {
	Publish(accounts []models.Account)
}

// Menu drives the account service from line-oriented input
type Menu struct {
	service   services.AccountServiceInterface
	reporter  services.MonthlyProcessorInterface
	snapshots SnapshotPublisherInterface
	in        *bufio.Scanner
	out       io.Writer
	log       *slog.Logger
}

// NewMenu creates a menu reading from in and writing to out. snapshots may be nil.
func NewMenu(
	service services.AccountServiceInterface,
	reporter services.MonthlyProcessorInterface,
	snapshots SnapshotPublisherInterface,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Menu {
	return &Menu{
		service:   service,
		reporter:  reporter,
		snapshots: snapshots,
		in:        bufio.NewScanner(in),
		out:       out,
		log:       logger,
	}
}

// Run loops over menu selections until the user exits, input ends or ctx is done
func (m *Menu) Run(ctx context.Context) error {
	m.publish()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		option, err := m.prompt("Select an option: ")
		if stderrors.Is(err, errInputClosed) {
			m.println()
			return nil
		}
		if err != nil {
			return err
		}

		if option == "0" {
			m.println("Thank you for using the banking system!")
			return nil
		}

		err = m.dispatch(option)
		m.publish()
		if stderrors.Is(err, errInputClosed) {
			m.println()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) dispatch(option string) error {
	m.log.Debug("menu action selected",
		slog.String("event_type", "menu_action"),
		slog.String("option", option),
	)

	switch option {
	case "1":
		return m.createAccount()
	case "2":
		return m.deposit()
	case "3":
		return m.withdraw()
	case "4":
		return m.transfer()
	case "5":
		return m.compare()
	case "6":
		return m.showAll()
	case "7":
		return m.runMonthly()
	case "8":
		return m.allocatePortfolio()
	case "9":
		return m.statement()
	default:
		m.println("Invalid option. Please try again.")
		return nil
	}
}

func (m *Menu) printMenu() {
	m.println()
	m.println("=== BANKING SYSTEM ===")
	m.println("1. Create account")
	m.println("2. Deposit")
	m.println("3. Withdraw")
	m.println("4. Transfer")
	m.println("5. Compare balances")
	m.println("6. Show all accounts")
	m.println("7. Run monthly processing")
	m.println("8. Invest in portfolio")
	m.println("9. Account statement")
	m.println("0. Exit")
}

func (m *Menu) publish() {
	if m.snapshots != nil {
		m.snapshots.Publish(m.service.Accounts())
	}
}

// prompt prints label and returns the next trimmed input line
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// errBadNumber aborts the current action after the caller printed a message
var errBadNumber = stderrors.New("not a number")

func (m *Menu) promptInt(label string) (int, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errBadNumber
	}
	return n, nil
}

func (m *Menu) promptFloat(label string) (float64, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	// ParseFloat accepts "NaN" and "Inf", which are not amounts
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errBadNumber
	}
	return f, nil
}

func (m *Menu) println(a ...interface{}) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...interface{}) {
	fmt.Fprintf(m.out, format, a...)
}
