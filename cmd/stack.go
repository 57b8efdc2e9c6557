package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lifo-cli/lifo/config"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/trace"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Element types accepted by stack run.
const (
	elemChar = "char"
	elemInt  = "int"
)

func init() {
	rootCmd.AddCommand(stackCmd)
}

// stackCmd groups commands that drive a bounded stack directly.
var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Drive a bounded stack with scripted operations",
}

func init() {
	stackCmd.AddCommand(stackRunCmd)

	stackRunCmd.Flags().StringP("type", "t", elemChar, "Element type of the stack (char or int)")
	lo.Must0(stackRunCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{elemChar, elemInt}, cobra.ShellCompDirectiveNoFileComp
	}))
	stackRunCmd.Flags().IntP("capacity", "c", -1, "Stack capacity; defaults to the configured stack.capacity")
}

// stackRunCmd executes push and pop operations and prints the values they produce.
var stackRunCmd = &cobra.Command{
	Use:   "run [ops...]",
	Short: "Run push and pop operations against a character or integer stack",
	Long: fmt.Sprintf(`Run operations in order against a fresh stack.

Operations: %s
Push takes its value after a colon, for example push:a or push:42.
Popped and peeked values and query answers are printed one per line.
Overflow and underflow abort the run.`, strings.Join(trace.Kinds(), ", ")),
	Example: "  lifo stack run push:c push:a push:t drain\n  lifo stack run --type int push:1 push:2 pop len",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return trace.Kinds(), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(runStack(cmd, lo.Must(cmd.Flags().GetString("type")), lo.Must(cmd.Flags().GetInt("capacity")), args))
	},
}

func runStack(cmd *cobra.Command, elem string, capacity int, words []string) error {
	ops, err := trace.Parse(words)
	if err != nil {
		return err
	}

	if capacity < 0 {
		if capacity, err = config.Capacity(); err != nil {
			return err
		}
	} else if err = stack.CheckCapacity(capacity); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch elem {
	case elemChar:
		return trace.Run(out, stack.New[rune](capacity), ops, trace.Char, func(r rune) string { return string(r) })
	case elemInt:
		return trace.Run(out, stack.New[int](capacity), ops, trace.Int, strconv.Itoa)
	default:
		return fmt.Errorf("unknown element type %q, want %s or %s", elem, elemChar, elemInt)
	}
}

func init() {
	stackCmd.AddCommand(stackDemoCmd)
}

// stackDemoCmd replays the classic character-stack exercise.
var stackDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the classic character-stack exercise",
	Long: `Push c, a, k; pop into x; push t and x; pop into x; push s;
then drain the stack and print the last popped character.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(trace.Demo(cmd.OutOrStdout()))
	},
}
