package config

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/stack"
	"github.com/spf13/viper"
)

// Capacity returns the configured stack capacity.
func Capacity() (int, error) {
	capacity := viper.GetInt(key.StackCapacity)
	if err := stack.CheckCapacity(capacity); err != nil {
		return 0, fmt.Errorf("%s: %w", key.StackCapacity, err)
	}
	return capacity, nil
}

// Sentinel returns the configured input terminator.
func Sentinel() (rune, error) {
	return ParseSentinel(viper.GetString(key.InputSentinel))
}

// ParseSentinel accepts exactly one character.
func ParseSentinel(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("sentinel must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Validate rejects values that would make a later check fail before it starts.
func Validate(k string, v any) error {
	switch k {
	case key.InputSentinel:
		_, err := ParseSentinel(fmt.Sprint(v))
		return err
	case key.StackCapacity:
		if n, ok := v.(int); ok {
			if err := stack.CheckCapacity(n); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	}
	return nil
}

// Parse converts raw into the type of the key's default value and validates it.
func Parse(k, raw string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", k)
	}

	var v any
	switch field.Value.(type) {
	case string:
		v = raw
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw)
		}
		v = n
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw)
		}
		v = b
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", field.Value, k)
	}

	return v, Validate(k, v)
}
