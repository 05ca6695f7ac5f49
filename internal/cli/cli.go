package cli

import (
	"fmt"
	"os"

	"glim/internal/journal/service"
)

// Run executes the CLI with the given arguments.
// The first argument should be the namespace ("entry").
func Run(args []string, svc service.EntryService, dateFormat string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "entry":
		return runEntryCommand(subArgs, svc, dateFormat)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", namespace)
		printUsage()
		return 1
	}
}

func runEntryCommand(args []string, svc service.EntryService, dateFormat string) int {
	if len(args) == 0 {
		printEntryUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runAdd(cmdArgs, svc)
	case "list", "ls", "l":
		return runList(cmdArgs, svc, dateFormat)
	case "show", "s":
		return runShow(cmdArgs, svc)
	case "delete", "rm", "del":
		return runDelete(cmdArgs, svc)
	case "help", "-h", "--help":
		printEntryUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown entry command: %s\n", command)
		printEntryUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`glim - a journal for your terminal

Usage: glim [flags] [command] [arguments]

Flags:
  -journal, -j DIR   Journal directory
  -view VIEW         Initial view: feed, circle, onboarding

Commands:
  entry              Manage diary entries (add, list, show, delete)
  help               Show this help

Run glim with no command to open the TUI.`)
}

func printEntryUsage() {
	fmt.Println(`Usage: glim entry <command> [arguments]

Commands:
  add [-title T] [-emotion E] TEXT...   Add a new entry
  list [-emotion E]                     List entries, newest first
  show ID-PREFIX                        Print one entry in full
  delete ID-PREFIX                      Delete an entry`)
}
