package bfsim

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type SuiteEngine struct {
	Workers   uint
	Evaluator *Evaluator
	Persistor EvaluationPersistor
	Log       *logrus.Entry
}

func NewSuiteEngine(workers uint, evaluator *Evaluator, persistor EvaluationPersistor, log *logrus.Entry) *SuiteEngine {
	if workers == 0 {
		workers = DEFAULT_WORKERS
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SuiteEngine{
		Workers:   workers,
		Evaluator: evaluator,
		Persistor: persistor,
		Log:       log,
	}
}

// Run fans cases out over the processors. Evaluations arrive in completion
// order and the channel is closed once every processor has stopped.
func (se *SuiteEngine) Run(ctx context.Context, cases []*Case) <-chan *Evaluation {
	input := make(chan Job)
	output := make(chan *Evaluation, len(cases))

	go func() {
		defer close(input)
		for i, c := range cases {
			select {
			case input <- Job{Index: i, Case: c}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := uint(0); i < se.Workers; i++ {
		wg.Add(1)
		processor := NewProcessor(i, input, output, se.Evaluator, se.Persistor, se.Log.WithField("processor", i))
		go func() {
			defer wg.Done()
			processor.Run(ctx)
		}()
	}

	go func() {
		wg.Wait()
		close(output)
	}()

	return output
}

type SuiteReport struct {
	Name        string
	Evaluations []*Evaluation
	Counts      map[string]uint
}

func (r *SuiteReport) OK() bool {
	return r.Counts[Passed] == uint(len(r.Evaluations))
}

// RunSuite evaluates every case of suite and reports them in suite order.
// Cases skipped because ctx ended are reported as Canceled.
func (se *SuiteEngine) RunSuite(ctx context.Context, suite *Suite) *SuiteReport {
	evaluations := make([]*Evaluation, len(suite.Cases))
	for eval := range se.Run(ctx, suite.Cases) {
		evaluations[eval.Index] = eval
	}

	report := &SuiteReport{Name: suite.Name, Evaluations: evaluations, Counts: make(map[string]uint)}
	for i, eval := range evaluations {
		if eval == nil {
			reason := "case was not evaluated"
			if err := ctx.Err(); err != nil {
				reason = err.Error()
			}
			eval = &Evaluation{Index: i, Case: suite.Cases[i], Outcome: Canceled, Reason: reason}
			evaluations[i] = eval
		}
		report.Counts[eval.Outcome]++
	}
	return report
}
