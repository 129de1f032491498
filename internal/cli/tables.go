package cli

import (
	"io"
	"strconv"

	"bank-accounts/internal/models"

	"github.com/olekukonko/tablewriter"
)

// TransactionTimeLayout is the timestamp format of statement rows
const TransactionTimeLayout = "2006-01-02 15:04:05"

func renderAccounts(w io.Writer, accounts []models.Account) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Account", "Kind", "Holder", "Balance"})
	table.SetAutoWrapText(false)

	var total float64
	for i, account := range accounts {
		total += account.Balance()
		table.Append([]string{
			strconv.Itoa(i),
			account.ID(),
			string(account.Kind()),
			account.Holder(),
			"$" + models.FormatMoney(account.Balance()),
		})
	}
	table.SetFooter([]string{"", "", "", "Total", "$" + models.FormatMoney(total)})

	table.Render()
}

func renderTransactions(w io.Writer, txs []models.Transaction) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Type", "Description", "Amount", "Balance"})
	table.SetAutoWrapText(false)

	for _, tx := range txs {
		table.Append([]string{
			tx.Timestamp.Format(TransactionTimeLayout),
			string(tx.Type),
			tx.Description,
			"$" + models.FormatMoney(tx.Amount),
			"$" + models.FormatMoney(tx.BalanceAfter()),
		})
	}

	table.Render()
}
