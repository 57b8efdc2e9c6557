// Package cmd implements the command-line interface for lifo.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/palindrome"
	"github.com/lifo-cli/lifo/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (emoji, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd checks standard input when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.Lifo,
	Short: "Check sentinel-terminated input for palindromes with a bounded stack",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.Lifo) + "\n" +
		style.Italic("    - Check sentinel-terminated input for palindromes with a bounded stack"),
	Example: "  echo 'abba#' | lifo",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(runCheck(cmd, inputSource{}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	reportErr(os.Stderr, err)
	os.Exit(1)
}

func reportErr(w io.Writer, err error) {
	if errors.Is(err, palindrome.ErrBrokenInvariant) {
		printAssertionFailure(w, err)
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
}

// printAssertionFailure reports a condition that correct input handling never produces.
func printAssertionFailure(w io.Writer, err error) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Internal error", icon.Get(icon.Fail)))
	body := err.Error()
	hint := style.Faint("This is a bug in " + constant.Lifo + ", not a property of the input.")

	_, _ = fmt.Fprintln(w, box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint)))
}
