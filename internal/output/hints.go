package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":           {"whoami", "ride book"},
	"logout":          {"login"},
	"ride book":       {"ride status <id>", "payment intent"},
	"ride list":       {"ride status <id>"},
	"parcel send":     {"parcel status <id>"},
	"vehicle add":     {"vehicle my"},
	"vehicle approve": {"dashboard", "vehicle list --pending"},
	"vehicle reject":  {"dashboard", "vehicle list --pending"},
	"rental create":   {"rental list", "rental return <id>"},
	"rewards balance": {"rewards redeem", "rewards events"},
	"kyc submit":      {"kyc status"},
	"dashboard":       {"ride list", "vehicle list --pending", "audit list"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "evctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
