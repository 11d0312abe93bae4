package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stahnma/gh-repo-search/internal/query"
)

// Input names, as declared by the action. Each is read from the
// environment as INPUT_<NAME>.
const (
	KeyOwner     = "owner"
	KeyTopics    = "topics"
	KeyOperator  = "operator"
	KeyMatrixUse = "matrix_use"
	KeyFormat    = "format"
	KeyDelimiter = "delimiter"
)

var ErrInvalidBoolean = errors.New(`input does not meet YAML 1.2 "Core Schema" specification`)

// NewViper returns a viper instance reading action inputs from the
// environment, with the input defaults registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("INPUT")
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults registers the default value of every optional input.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOperator, query.OperatorOr)
	v.SetDefault(KeyMatrixUse, "true")
	v.SetDefault(KeyFormat, query.FormatJSON)
	v.SetDefault(KeyDelimiter, "\n")
}

// BindFlags binds command line flags to their inputs. Flag names use
// dashes where input names use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyOwner, KeyTopics, KeyOperator, KeyMatrixUse, KeyFormat, KeyDelimiter} {
		name := strings.ReplaceAll(key, "_", "-")
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag --%s is not defined", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// LoadInputs reads the inputs from v. Only the boolean input is checked
// here; everything else is left to query.Inputs.Validate.
func LoadInputs(v *viper.Viper) (query.Inputs, error) {
	matrixUse, err := ParseBool(KeyMatrixUse, strings.TrimSpace(v.GetString(KeyMatrixUse)))
	if err != nil {
		return query.Inputs{}, err
	}

	return query.Inputs{
		Owner:     strings.TrimSpace(v.GetString(KeyOwner)),
		Topics:    strings.TrimSpace(v.GetString(KeyTopics)),
		Operator:  strings.TrimSpace(v.GetString(KeyOperator)),
		MatrixUse: matrixUse,
		Format:    strings.TrimSpace(v.GetString(KeyFormat)),
		Delimiter: v.GetString(KeyDelimiter),
	}, nil
}

// ParseBool parses a boolean input the way the Actions toolkit does.
// An empty value is true.
func ParseBool(name, val string) (bool, error) {
	switch val {
	case "", "true", "True", "TRUE":
		return true, nil
	case "false", "False", "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s (supported values: true | True | TRUE | false | False | FALSE)", ErrInvalidBoolean, name)
}
