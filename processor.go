package bfsim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type EvaluationPersistor func(eval *Evaluation) error

// JournalPersistor records every evaluation of suite in p.
func JournalPersistor(p *Persistence, suite string) EvaluationPersistor {
	return func(eval *Evaluation) error {
		if eval.Case == nil || eval.Result == nil {
			return fmt.Errorf("Evaluation [%d] has nothing to journal", eval.Index)
		}
		_, err := p.Record("suite/"+suite+"/"+eval.Case.Name, eval.Result)
		return err
	}
}

// A Job is one case and its position in the suite.
type Job struct {
	Index int
	Case  *Case
}

// A Processor evaluates cases from Input until it is closed or ctx is done.
// Every case gets a fresh Machine so processors share nothing but channels.
type Processor struct {
	ID        uint
	Input     <-chan Job
	Output    chan<- *Evaluation
	Evaluator *Evaluator
	Persistor EvaluationPersistor
	Log       *logrus.Entry
}

func NewProcessor(id uint, input <-chan Job, output chan<- *Evaluation, evaluator *Evaluator, persistor EvaluationPersistor, log *logrus.Entry) *Processor {
	return &Processor{
		ID:        id,
		Input:     input,
		Output:    output,
		Evaluator: evaluator,
		Persistor: persistor,
		Log:       log,
	}
}

func (p *Processor) Run(ctx context.Context) {
FOR:
	for {
		select {
		case job, ok := <-p.Input:
			if !ok {
				p.Log.Debugf("Closing processor %d", p.ID)
				break FOR
			}
			eval := p.Evaluator.Evaluate(job.Case)
			eval.Index = job.Index
			if p.Persistor != nil {
				if err := p.Persistor(eval); err != nil {
					p.Log.WithError(err).WithField("index", job.Index).Warn("Failed to journal evaluation")
				}
			}
			select {
			case p.Output <- eval:
			case <-ctx.Done():
				break FOR
			}
		case <-ctx.Done():
			break FOR
		}
	}
}
