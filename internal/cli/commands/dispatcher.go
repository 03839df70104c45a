package commands

import (
	"JewelryStore/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// --help среди глобальных флагов, до имени команды
	if helpBeforeCommand(os.Args[1:], args) {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 0
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" { // jscli help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	if isHelpFlag(args[1:]) {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 0
	}

	err := c.Run(ctx, cfg, args[1:])
	switch err {
	case nil:
		return 0
	case ErrUsage:
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
}

// helpBeforeCommand ищет -h/--help в argv до имени команды. args — хвост argv,
// начинающийся с команды, поэтому всё, что перед ним, — глобальные флаги.
func helpBeforeCommand(argv, args []string) bool {
	n := len(argv) - len(args)
	if n < 0 {
		n = 0
	}
	return isHelpFlag(argv[:n])
}

func isHelpFlag(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" || a == "-help" {
			return true
		}
	}
	return false
}
