package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/lifo-cli/lifo/config"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/palindrome"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("file", "f", "", "Read input from a file instead of standard input")
	checkCmd.Flags().StringP("string", "s", "", "Check a literal string; it must still end with the sentinel")
	checkCmd.MarkFlagsMutuallyExclusive("file", "string")

	checkCmd.Flags().String("sentinel", string(palindrome.DefaultSentinel), "Character that terminates input")
	lo.Must0(viper.BindPFlag(key.InputSentinel, checkCmd.Flags().Lookup("sentinel")))

	checkCmd.Flags().IntP("capacity", "c", stack.DefaultCapacity, "Maximum number of characters before the sentinel")
	lo.Must0(viper.BindPFlag(key.StackCapacity, checkCmd.Flags().Lookup("capacity")))

	checkCmd.Flags().BoolP("ignore-newlines", "n", false, "Drop line breaks while reading input")
	lo.Must0(viper.BindPFlag(key.InputIgnoreNewlines, checkCmd.Flags().Lookup("ignore-newlines")))

	checkCmd.Flags().BoolP("json", "j", false, "Print the result as a JSON object")
	lo.Must0(viper.BindPFlag(key.OutputJson, checkCmd.Flags().Lookup("json")))
}

// checkCmd reads a sentinel-terminated sequence and prints whether it is a palindrome.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether sentinel-terminated input is a palindrome",
	Long: `Read characters until the sentinel, push the first half onto a bounded stack
and compare popped characters with the second half. Prints Yes or No.

Input longer than the stack capacity is rejected instead of checked.`,
	Example: "  echo 'abba#' | lifo check\n  lifo check --string 'level#'\n  lifo check --file input.txt --ignore-newlines",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		src := inputSource{file: mo.None[string](), literal: mo.None[string]()}

		if cmd.Flags().Changed("file") {
			src.file = mo.Some(lo.Must(cmd.Flags().GetString("file")))
		}

		if cmd.Flags().Changed("string") {
			src.literal = mo.Some(lo.Must(cmd.Flags().GetString("string")))
		}

		handleErr(runCheck(cmd, src))
	},
}

// inputSource selects where characters come from. Standard input is used when neither option is present.
type inputSource struct {
	file    mo.Option[string]
	literal mo.Option[string]
}

func (s inputSource) open(cmd *cobra.Command, sentinel rune) (io.ReadCloser, error) {
	if path, ok := s.file.Get(); ok {
		return filesystem.OpenRegular(path)
	}

	if literal, ok := s.literal.Get(); ok {
		return io.NopCloser(strings.NewReader(literal)), nil
	}

	in := cmd.InOrStdin()
	if util.IsTerminal(in) {
		cmd.PrintErrf("%s type characters and finish with %s\n", icon.Get(icon.Hint), style.Bold(string(sentinel)))
	}
	return io.NopCloser(in), nil
}

// closeInput closes c and reports its error unless err already holds one.
func closeInput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close input: %w", cerr)
	}
}

func readOptions() (palindrome.ReadOptions, error) {
	capacity, err := config.Capacity()
	if err != nil {
		return palindrome.ReadOptions{}, err
	}

	sentinel, err := config.Sentinel()
	if err != nil {
		return palindrome.ReadOptions{}, err
	}

	return palindrome.ReadOptions{
		Sentinel:       sentinel,
		Limit:          capacity,
		IgnoreNewlines: viper.GetBool(key.InputIgnoreNewlines),
	}, nil
}

func runCheck(cmd *cobra.Command, src inputSource) (err error) {
	opts, err := readOptions()
	if err != nil {
		return err
	}

	in, err := src.open(cmd, opts.Sentinel)
	if err != nil {
		return err
	}
	defer closeInput(in, &err)

	result, err := palindrome.Evaluate(in, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if viper.GetBool(key.OutputJson) {
		return json.NewEncoder(out).Encode(result)
	}

	_, err = fmt.Fprintln(out, result.Verdict)
	return err
}

func init() {
	checkCmd.AddCommand(checkSchemaCmd)
}

// checkSchemaCmd prints the JSON schema of check --json output.
var checkSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured check results",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "palindrome." + t.Name()
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&palindrome.Result{})))
	},
}
