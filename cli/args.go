// Package cli parses the command line into an Invocation.
//
// Parsing is deliberately permissive: a value flag takes the next token
// verbatim (even if it looks like a flag), the last occurrence of a flag wins,
// and unknown tokens are ignored. Ignored tokens and a trailing value flag
// without a value are reported on the Invocation so callers can warn about
// them; they never make parsing fail.
package cli

import (
	"strings"

	"github.com/aschepis/backscratcher/chatgpt/config"
)

// Mode selects the single operation performed by one run.
type Mode int

const (
	ModeListModels Mode = iota
	ModeRequest
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeListModels:
		return "list-models"
	case ModeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Flag names.
const (
	FlagAPIKey      = "-api-key"
	FlagOrgID       = "-org-id"
	FlagProjectID   = "-project-id"
	FlagModel       = "-model"
	FlagSystem      = "-system"
	FlagRequest     = "-request"
	FlagListModels  = "-list-models"
	FlagConfig      = "-config"
	FlagBaseURL     = "-base-url"
	FlagLogLevel    = "-log-level"
	FlagLogFile     = "-logfile"
	FlagPretty      = "-pretty"
	FlagNoClipboard = "-no-clipboard"
	FlagNotify      = "-notify"
)

// Usage describes the command line.
const Usage = "Usage: [-api-key APIKEY] [-org-id ORGANIZATIONID] [-project-id PROJECTID] OPTIONS\n" +
	"Where Options are:\n" +
	"\t [-list-models] Lists currently available gpt models.\n" +
	"\t [-request FILE] Code review/edit request.\n" +
	"\t\t [-model gptmodel] optional\n" +
	"\t\t [-system SYSTEMMESSAGE] optional\n" +
	"\t\t [-no-clipboard] do not append clipboard text\n" +
	"\t\t [-notify] desktop notification when the reply arrives\n" +
	"\t [-config PATH] [-base-url URL] [-log-level LEVEL] [-logfile PATH] [-pretty]\n" +
	"\t\t -log-level debug logs full request and response bodies and clipboard text\n"

// Invocation is the result of parsing the command line.
type Invocation struct {
	Mode        Mode
	RequestFile string
	Config      config.Config

	Ignored  []string // Unrecognized flag-like tokens
	Dangling string   // Value flag given as the last token, if any
}

var valueFlags = map[string]func(inv *Invocation, value string){
	FlagAPIKey:    func(inv *Invocation, v string) { inv.Config.APIKey = v },
	FlagOrgID:     func(inv *Invocation, v string) { inv.Config.OrganizationID = v },
	FlagProjectID: func(inv *Invocation, v string) { inv.Config.ProjectID = v },
	FlagModel:     func(inv *Invocation, v string) { inv.Config.Model = v },
	FlagSystem:    func(inv *Invocation, v string) { inv.Config.SystemMessage = v },
	FlagRequest: func(inv *Invocation, v string) {
		inv.Mode = ModeRequest
		inv.RequestFile = v
	},
	FlagConfig:   func(*Invocation, string) {}, // read by ConfigPath before parsing
	FlagBaseURL:  func(inv *Invocation, v string) { inv.Config.BaseURL = v },
	FlagLogLevel: func(inv *Invocation, v string) { inv.Config.Log.Level = v },
	FlagLogFile:  func(inv *Invocation, v string) { inv.Config.Log.File = v },
}

var switchFlags = map[string]func(inv *Invocation){
	FlagListModels:  func(inv *Invocation) { inv.Mode = ModeListModels },
	FlagPretty:      func(inv *Invocation) { inv.Config.Log.Pretty = true },
	FlagNoClipboard: func(inv *Invocation) { inv.Config.DisableClipboard = true },
	FlagNotify:      func(inv *Invocation) { inv.Config.Notify = true },
}

// Parse applies args on top of base. The default mode is ModeListModels.
func Parse(args []string, base config.Config) Invocation {
	inv := Invocation{
		Mode:   ModeListModels,
		Config: base,
	}

	prev := ""
	for _, arg := range args {
		set, consumed := valueFlags[prev]
		if consumed {
			set(&inv, arg)
		}
		prev = arg

		if apply, ok := switchFlags[arg]; ok {
			apply(&inv)
			continue
		}
		if !consumed && isUnknownFlag(arg) {
			inv.Ignored = append(inv.Ignored, arg)
		}
	}

	if _, ok := valueFlags[prev]; ok {
		inv.Dangling = prev
	}

	return inv
}

// ConfigPath returns the value of the last -config flag in args, or "".
func ConfigPath(args []string) string {
	path := ""
	for i := 1; i < len(args); i++ {
		if args[i-1] == FlagConfig {
			path = args[i]
		}
	}
	return path
}

func isUnknownFlag(arg string) bool {
	if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
		return false
	}
	_, isValue := valueFlags[arg]
	_, isSwitch := switchFlags[arg]
	return !isValue && !isSwitch
}
