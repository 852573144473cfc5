package cli

import (
	"fmt"

	"github.com/iudanet/colorwin/internal/client/admin"
	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/betflow"
	"github.com/iudanet/colorwin/internal/client/game"
	"github.com/iudanet/colorwin/internal/client/iocli"
	"github.com/iudanet/colorwin/internal/client/session"
)

type Cli struct {
	io      iocli.IO
	api     apiclient.ClientAPI
	session *session.Manager
	rounds  *game.Service
	flow    *betflow.Flow
	monitor *admin.Monitor
}

func New(
	io iocli.IO,
	apiClient apiclient.ClientAPI,
	sessionManager *session.Manager,
	rounds *game.Service,
	flow *betflow.Flow,
	monitor *admin.Monitor,
) *Cli {
	return &Cli{
		io:      io,
		api:     apiClient,
		session: sessionManager,
		rounds:  rounds,
		flow:    flow,
		monitor: monitor,
	}
}

func PrintUsage() {
	fmt.Println("ColorWin Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  colorwin [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --ws URL         Push events URL (default: ws://localhost:8080/ws)")
	fmt.Println("  --db PATH        Path to local database (default: colorwin-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                 Login to server")
	fmt.Println("  logout                Logout and clear local session")
	fmt.Println("  status                Show session and current round status")
	fmt.Println("  balance               Show server-confirmed wallet balance")
	fmt.Println("  results               Show recent round results")
	fmt.Println("  bet <color> <amount>  Place a bet and wait for the round result")
	fmt.Println("  watch                 Follow rounds live")
	fmt.Println("  live                  Watch active bets of the current round (admin)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  colorwin login")
	fmt.Println("  colorwin bet green 50")
	fmt.Println("  colorwin watch")
	fmt.Println("  colorwin --server https://example.com results")
}
