package bfsim

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xrash/smetrics"

	bf "nickandperla.net/bfsim/brainfuck"
)

// An Evaluation is the verdict on one suite Case. Distance is the
// Wagner-Fischer edit distance between expected and actual output, so a near
// miss can be told apart from garbage.
type Evaluation struct {
	// Index is the position of Case in its suite.
	Index    int
	Case     *Case
	Result   *RunResult
	Outcome  string
	Distance int
	Reason   string
}

func (e *Evaluation) Passed() bool {
	return e.Outcome == Passed
}

type Evaluator struct {
	Config *bf.MachineConfig
	Log    *logrus.Entry
}

func NewEvaluator(mc *bf.MachineConfig, log *logrus.Entry) *Evaluator {
	if mc == nil {
		mc = bf.DefaultMachineConfig()
	}
	return &Evaluator{Config: mc, Log: log}
}

// Evaluate runs c on its own Machine.
func (e *Evaluator) Evaluate(c *Case) *Evaluation {
	if c == nil {
		return &Evaluation{Outcome: Errored, Reason: "case is empty"}
	}

	log := e.Log
	if log != nil {
		log = log.WithField("case", c.Name)
	}

	result := Execute(c.Program, c.Input, e.Config, log)
	eval := &Evaluation{
		Case:     c,
		Result:   result,
		Distance: smetrics.WagnerFischer(c.Expected, result.Output, 1, 1, 2),
	}

	switch {
	case result.Err != nil && c.ExpectError == "":
		eval.Outcome = Errored
		eval.Reason = result.Err.Error()
	case result.Err == nil && c.ExpectError != "":
		eval.Outcome = Failed
		eval.Reason = "expected error containing [" + c.ExpectError + "] but the program halted"
	case result.Err != nil && !strings.Contains(result.Err.Error(), c.ExpectError):
		eval.Outcome = Failed
		eval.Reason = "error [" + result.Err.Error() + "] does not contain [" + c.ExpectError + "]"
	case result.Output != c.Expected:
		eval.Outcome = Failed
		eval.Reason = "output differs from expected"
	default:
		eval.Outcome = Passed
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"outcome":  eval.Outcome,
			"distance": eval.Distance,
			"executed": result.InstructionsExecuted,
		}).Debug("Case evaluated")
	}

	return eval
}
