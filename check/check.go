// Package check is the public facade of the proof-step checker. It exposes
// the two call surfaces outer layers use — verify a claimed step, suggest
// auto-fill conclusions — plus loading and checking of YAML proof
// documents for the CLI.
package check

import (
	"fmt"
	"iter"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/prooflab/stepcheck/internal/logic"
	"github.com/prooflab/stepcheck/internal/rules"
)

// VerifyStep checks one asserted inference. The report's diagnostic is
// safe to display verbatim; an error is returned only for an unknown rule
// identifier, which indicates a caller bug rather than a bad proof step.
func VerifyStep(ruleID string, conclusion *logic.Expr, premises []logic.Premise) (logic.Report, error) {
	return rules.VerifyClaim(logic.NewClaim(ruleID, conclusion, premises))
}

// SuggestAutoFill proposes conclusion texts for a rule given the
// available premises. The bool result is false when the rule does not
// support auto-fill or the premise shape does not match its pattern; an
// applicable rule may still yield an empty sequence.
func SuggestAutoFill(ruleID string, premises []logic.Premise) (iter.Seq[string], bool, error) {
	return rules.Suggest(ruleID, premises)
}

// Config restricts which rules a document may use, for assignments where
// the instructor limits the toolbox. An empty AllowedRules list allows
// every catalogue rule.
type Config struct {
	Name         string   `yaml:"name"`
	AllowedRules []string `yaml:"allowed-rules"`
}

// DefaultConfig allows the full catalogue.
func DefaultConfig() Config {
	return Config{Name: "stepcheck"}
}

// Checker verifies proof documents under a configuration.
type Checker struct {
	logger  *zap.Logger
	allowed map[string]bool // nil means all rules allowed
}

// New builds a Checker. An empty configuration path means no restriction.
func New(configurationPath string, logger *zap.Logger) (*Checker, error) {
	c := &Checker{logger: logger}
	if configurationPath == "" {
		return c, nil
	}
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}
	if len(config.AllowedRules) > 0 {
		c.allowed = make(map[string]bool, len(config.AllowedRules))
		for _, id := range config.AllowedRules {
			if _, err := rules.Lookup(id); err != nil {
				return nil, fmt.Errorf("configuration %s: %w", configurationPath, err)
			}
			c.allowed[id] = true
		}
	}
	return c, nil
}

// RuleAllowed reports whether the configuration permits the rule.
func (c *Checker) RuleAllowed(id string) bool {
	return c.allowed == nil || c.allowed[id]
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration: %w", err)
	}

	return config, nil
}
