package bfsim

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"

	bf "nickandperla.net/bfsim/brainfuck"
)

func quietLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logrus.NewEntry(logger)
}

func BenchmarkHelloWorld(b *testing.B) {
	log := quietLog()
	for i := 0; i < b.N; i++ {
		if result := Execute(bf.HELLO_WORLD, "", nil, log); !result.Halted {
			b.Fatalf("HELLO_WORLD failed: %v", result.Err)
		}
	}
}

// BenchmarkParallelSuite measures how the suite engine spreads independent
// machines over cores. Run with: go test -run=^$ -bench=BenchmarkParallelSuite -benchtime=1x -v
func BenchmarkParallelSuite(b *testing.B) {
	n := 1000
	cases := make([]*Case, n)
	for i := 0; i < n; i++ {
		cases[i] = &Case{Name: fmt.Sprintf("hello-%d", i), Program: bf.HELLO_WORLD, Expected: "Hello World\n"}
	}
	suite := &Suite{Name: "bench", Cases: cases}

	cpus := runtime.NumCPU()
	b.Logf("Cases: %d, CPUs: %d, GOMAXPROCS: %d", n, cpus, runtime.GOMAXPROCS(0))

	engine := NewSuiteEngine(uint(cpus), NewEvaluator(nil, quietLog()), nil, quietLog())

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		if report := engine.RunSuite(context.Background(), suite); !report.OK() {
			b.Fatalf("Suite failed: %v", report.Counts)
		}
	}
}
