package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oshepkov/lockbank/internal/client/repositories/credentials"
	"github.com/oshepkov/lockbank/internal/cryptox"
)

// Main runs the command loop until "exit" or EOF.
func (a *App) Main(ctx context.Context) {
	fmt.Fprintln(a.out, "Banking client (type 'help' for commands)")

	firstRun, err := a.creds.Get(ctx, credentials.KeyFirstRun, "true")
	if err == nil && firstRun == "true" {
		fmt.Fprintln(a.out, "First run: use 'setpassword' and 'setcreds' before unlocking.")
	}

	for {
		fmt.Fprintf(a.out, "bank %s > ", a.stateTag())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if !a.handleCommand(ctx, parts[0], parts[1:]) {
			return
		}
	}
}

func (a *App) stateTag() string {
	if a.auth.IsLocked() {
		return "[locked]"
	}
	return "[unlocked]"
}

// handleCommand dispatches one REPL command. Returns false to quit the loop.
func (a *App) handleCommand(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.auth.IsLocked() {
			fmt.Fprintln(a.out, "Available commands: setpassword, setcreds, unlock, status, fg, bg, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: accounts, statement, clear, transfer, lock, status, fg, bg, exit")
		}

	case "status":
		fmt.Fprintf(a.out, "state: %s, foregrounded: %d\n", a.stateTag(), a.lock.Foregrounded())

	case "setpassword":
		a.SetPassword(ctx)

	case "setcreds":
		a.SetCredentials(ctx)

	case "unlock":
		a.Unlock(ctx)

	case "lock":
		a.auth.Lock()
		fmt.Fprintln(a.out, "Locked.")

	case "fg":
		a.lock.RegisterForegrounded()

	case "bg":
		a.lock.RegisterBackgrounded()

	case "accounts":
		a.Accounts(ctx)

	case "statement":
		a.Statement(ctx)

	case "clear":
		if err := a.bank.ClearStatements(ctx); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		} else {
			fmt.Fprintln(a.out, "Statements cleared.")
		}

	case "transfer":
		a.Transfer(ctx, args)

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return false

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}

	return true
}

// SetPassword prompts for a new local password and stores its hash + salt.
func (a *App) SetPassword(ctx context.Context) {
	pw, err := GetPassword("New local password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	defer cryptox.WipeByteArray(pw)

	if err := a.auth.SetLocalPassword(ctx, string(pw)); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if err := a.creds.Set(ctx, credentials.KeyFirstRun, "false"); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Local password set.")
}

// SetCredentials prompts for the banking-service username and password.
func (a *App) SetCredentials(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Service username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	pw, err := GetPassword("Service password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	defer cryptox.WipeByteArray(pw)

	if err := a.auth.SetServerCredentials(ctx, username, string(pw)); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Service credentials set.")
}

// Unlock prompts for the local password and runs the unlock flow.
func (a *App) Unlock(ctx context.Context) {
	pw, err := GetPassword("Local password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	defer cryptox.WipeByteArray(pw)

	status, err := a.auth.Unlock(ctx, string(pw))
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if a.auth.IsLocked() {
		fmt.Fprintf(a.out, "Unlock failed (status %d).\n", int(status))
		return
	}
	fmt.Fprintln(a.out, "Unlocked.")
}

// Accounts lists the accounts for the current session.
func (a *App) Accounts(ctx context.Context) {
	accounts, err := a.bank.Accounts(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	for _, acc := range accounts {
		fmt.Fprintln(a.out, acc.String())
	}
}

// Statement downloads the current statement into the statement directory.
func (a *App) Statement(ctx context.Context) {
	path, err := a.bank.DownloadStatement(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Statement saved to", path)
}

// Transfer parses "transfer <from> <to> <amount>" and runs the transfer.
func (a *App) Transfer(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(a.out, "Usage: transfer <fromAccount> <toAccount> <amount>")
		return
	}

	from, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid source account:", args[0])
		return
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid target account:", args[1])
		return
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid amount:", args[2])
		return
	}

	status, err := a.bank.Transfer(ctx, from, to, amount)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Transfer status: %d\n", int(status))
}
