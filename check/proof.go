package check

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/prooflab/stepcheck/internal/logic"
	"github.com/prooflab/stepcheck/internal/rules"
)

// Document is one proof file. Lines are either premises ("assume"),
// nested subproofs, or derived steps naming a rule and the lines they
// follow from. Formulas are carried structurally — an atom is a bare
// string, a compound node is an {op, args} mapping — so no formula
// parser is involved.
type Document struct {
	Proof []Line `yaml:"proof"`
}

// Line is one entry of a proof. Exactly one of Assume, Subproof, or
// Rule+Conclude must be set.
type Line struct {
	ID       lineID         `yaml:"id"`
	Assume   *ExprNode      `yaml:"assume,omitempty"`
	Subproof *SubproofBlock `yaml:"subproof,omitempty"`
	Rule     string         `yaml:"rule,omitempty"`
	From     []lineID       `yaml:"from,omitempty"`
	Conclude *ExprNode      `yaml:"conclude,omitempty"`
}

// SubproofBlock is a nested proof fragment. Inside its steps, the id
// "assume" refers to the block's assumption.
type SubproofBlock struct {
	Assume *ExprNode `yaml:"assume"`
	Steps  []Line    `yaml:"steps"`
}

// lineID accepts scalar ids of any YAML type (1, 3.1, "a") as strings.
type lineID string

func (id *lineID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", value.Line)
	}
	*id = lineID(value.Value)
	return nil
}

// ExprNode decodes a structural formula into an expression tree.
type ExprNode struct {
	Expr *logic.Expr
}

func (n *ExprNode) UnmarshalYAML(value *yaml.Node) error {
	e, err := decodeExpr(value)
	if err != nil {
		return err
	}
	n.Expr = e
	return nil
}

var operatorNames = map[string]logic.Operator{
	"and":     logic.OpAnd,
	"or":      logic.OpOr,
	"not":     logic.OpNot,
	"implies": logic.OpConditional,
	"iff":     logic.OpBiconditional,
}

func decodeExpr(value *yaml.Node) (*logic.Expr, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			return nil, fmt.Errorf("line %d: empty atom name", value.Line)
		}
		return logic.NewAtom(value.Value), nil
	case yaml.MappingNode:
		var raw struct {
			Op   string      `yaml:"op"`
			Args []yaml.Node `yaml:"args"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		op, ok := operatorNames[raw.Op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operator %q", value.Line, raw.Op)
		}
		args := make([]*logic.Expr, len(raw.Args))
		for i := range raw.Args {
			arg, err := decodeExpr(&raw.Args[i])
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		e, err := logic.NewExpr(op, args...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", value.Line, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("line %d: expression must be an atom name or an {op, args} mapping", value.Line)
	}
}

// ParseDocument decodes a proof document from YAML source.
func ParseDocument(source []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("error parsing proof document: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and decodes a proof file.
func LoadDocument(path string) (*Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	doc, err := ParseDocument(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LineResult is the verdict for one derived line of a document.
type LineResult struct {
	ID     string
	Rule   string
	Report logic.Report
}

// step is one resolved derived line: its premises bound to the
// expressions or subproofs the "from" references name.
type step struct {
	id         string
	rule       string
	premises   []logic.Premise
	conclusion *logic.Expr
}

// resolveSteps walks the document once, binding references and collecting
// every derived line (including those inside subproofs) in order. Broken
// references and malformed lines are document errors, distinct from rule
// diagnostics; each derived line's conclusion enters scope whether or not
// it later verifies, since validity is local to each line.
func resolveSteps(doc *Document) ([]step, error) {
	var steps []step
	env := make(map[string]logic.Premise)
	if _, err := resolveLines(doc.Proof, env, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// resolveLines processes one block of lines against its scope and returns
// the expression established by the block's final line, used as the
// conclusion of an enclosing subproof.
func resolveLines(lines []Line, env map[string]logic.Premise, steps *[]step) (last *logic.Expr, err error) {
	for _, line := range lines {
		id := string(line.ID)
		if id == "" {
			return nil, fmt.Errorf("proof line without an id")
		}
		switch {
		case line.Assume != nil:
			last = line.Assume.Expr
			env[id] = logic.NewPremise(last)

		case line.Subproof != nil:
			if line.Subproof.Assume == nil {
				return nil, fmt.Errorf("subproof %s has no assumption", id)
			}
			assumption := line.Subproof.Assume.Expr
			inner := make(map[string]logic.Premise, len(env)+2)
			for k, v := range env {
				inner[k] = v
			}
			inner["assume"] = logic.NewPremise(assumption)
			conclusion, err := resolveLines(line.Subproof.Steps, inner, steps)
			if err != nil {
				return nil, err
			}
			if conclusion == nil {
				conclusion = assumption
			}
			env[id] = logic.NewSubproofPremise(logic.NewSubproof(conclusion, assumption))
			last = nil // a subproof line does not establish an expression in the outer scope

		case line.Rule != "":
			if line.Conclude == nil {
				return nil, fmt.Errorf("line %s applies %s but concludes nothing", id, line.Rule)
			}
			premises := make([]logic.Premise, len(line.From))
			for i, ref := range line.From {
				p, ok := env[string(ref)]
				if !ok {
					return nil, fmt.Errorf("line %s references unknown line %q", id, string(ref))
				}
				premises[i] = p
			}
			last = line.Conclude.Expr
			*steps = append(*steps, step{id: id, rule: line.Rule, premises: premises, conclusion: last})
			env[id] = logic.NewPremise(last)

		default:
			return nil, fmt.Errorf("line %s must have an assumption, a subproof, or a rule application", id)
		}
	}
	return last, nil
}

// CheckDocument verifies every derived line of a document independently.
func (c *Checker) CheckDocument(doc *Document) ([]LineResult, error) {
	steps, err := resolveSteps(doc)
	if err != nil {
		return nil, err
	}

	results := make([]LineResult, 0, len(steps))
	for _, s := range steps {
		if !c.RuleAllowed(s.rule) {
			results = append(results, LineResult{
				ID:   s.id,
				Rule: s.rule,
				Report: logic.ViolationReport(fmt.Sprintf(
					"The rule %s is not permitted by the configuration", s.rule)),
			})
			continue
		}
		report, err := rules.VerifyClaim(logic.NewClaim(s.rule, s.conclusion, s.premises))
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", s.id, err)
		}
		if c.logger != nil && !report.IsValid() {
			c.logger.Debug("step rejected",
				zap.String("line", s.id),
				zap.String("rule", s.rule),
				zap.String("detail", report.Detail))
		}
		results = append(results, LineResult{ID: s.id, Rule: s.rule, Report: report})
	}
	return results, nil
}

// PremisesFor resolves the premises a derived line names, for auto-fill.
// The rule id of the line is returned alongside.
func PremisesFor(doc *Document, id string) (string, []logic.Premise, error) {
	steps, err := resolveSteps(doc)
	if err != nil {
		return "", nil, err
	}
	for _, s := range steps {
		if s.id == id {
			return s.rule, s.premises, nil
		}
	}
	return "", nil, fmt.Errorf("no derived line with id %q", id)
}
