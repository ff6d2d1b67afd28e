package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/kuroko-lang/kuroko-bigint/pkg/bigint"
	"github.com/kuroko-lang/kuroko-bigint/pkg/ops"
	"github.com/kuroko-lang/kuroko-bigint/pkg/proptest"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator and test harness",
	}

	// calc command
	calcCmd := &cobra.Command{
		Use:   "calc [a] [op] [b]",
		Short: "Evaluate a single binary or unary expression",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(args)
		},
	}

	// convert command
	var toBase int
	convertCmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Parse a value and print it in another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bigint.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println(n.Format(toBase, basePrefix(toBase)))
			return nil
		},
	}
	convertCmd.Flags().IntVar(&toBase, "base", 10, "Target base (2-36)")

	// selftest command
	var selftestVerbose bool
	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the fixed arithmetic scenarios bigint guarantees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelftest(selftestVerbose)
		},
	}
	selftestCmd.Flags().BoolVarP(&selftestVerbose, "verbose", "v", false, "Print each scenario as it runs")

	// fuzz command
	var trials int64
	var maxDigits int
	var numWorkers int
	var fuzzVerbose bool
	var checkpointPath string
	fuzzCmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Fuzz bigint's algebraic properties across random values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuzz(trials, maxDigits, numWorkers, fuzzVerbose, checkpointPath)
		},
	}
	fuzzCmd.Flags().Int64Var(&trials, "trials", 10000, "Trials per property")
	fuzzCmd.Flags().IntVar(&maxDigits, "max-digits", 4, "Maximum digit count of generated operands")
	fuzzCmd.Flags().IntVar(&numWorkers, "workers", runtime.NumCPU(), "Number of parallel workers")
	fuzzCmd.Flags().BoolVarP(&fuzzVerbose, "verbose", "v", false, "Print progress while fuzzing")
	fuzzCmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "Path to periodically save progress; resumes from it if it already exists")

	rootCmd.AddCommand(calcCmd, convertCmd, selftestCmd, fuzzCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// checkpointInterval is how often a running fuzz command persists its
// progress to --checkpoint, independent of the worker pool's own
// progress ticker (worker.go's reportProgress, which only prints).
const checkpointInterval = 10 * time.Second

func runFuzz(trials int64, maxDigits, numWorkers int, verbose bool, checkpointPath string) error {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	pool := proptest.NewWorkerPool(numWorkers)

	if checkpointPath != "" {
		ckpt, err := proptest.LoadCheckpoint(checkpointPath)
		switch {
		case err == nil:
			pool.Results.LoadCheckpoint(ckpt)
			fmt.Printf("resuming from %s: %d trials, %d violations already recorded\n",
				checkpointPath, ckpt.TrialsPerProperty, len(ckpt.Violations))
		case os.IsNotExist(err):
			// First run against this checkpoint path; nothing to resume.
		default:
			return fmt.Errorf("loading checkpoint: %w", err)
		}

		stop := make(chan struct{})
		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			ticker := time.NewTicker(checkpointInterval)
			defer ticker.Stop()
			for {
				select {
				case <-stop:
					return
				case <-ticker.C:
					if err := proptest.SaveCheckpoint(checkpointPath, pool.Results.Snapshot(trials)); err != nil {
						fmt.Fprintf(os.Stderr, "checkpoint save failed: %v\n", err)
					}
				}
			}
		}()
		defer func() {
			close(stop)
			<-stopped
			if err := proptest.SaveCheckpoint(checkpointPath, pool.Results.Snapshot(trials)); err != nil {
				fmt.Fprintf(os.Stderr, "final checkpoint save failed: %v\n", err)
			}
		}()
	}

	pool.Run(proptest.Catalog, trials, maxDigits, verbose)

	violations := pool.Results.Violations()
	if len(violations) == 0 {
		fmt.Println("no violations found")
		return nil
	}
	for _, v := range violations {
		fmt.Printf("FAIL %s: %s\n", v.Property, v.Detail)
	}
	return fmt.Errorf("%d violations found", len(violations))
}

func basePrefix(base int) string {
	switch base {
	case 2:
		return "b0"
	case 8:
		return "o0"
	case 16:
		return "x0"
	default:
		return ""
	}
}

func runCalc(args []string) error {
	if len(args) == 2 {
		op, ok := ops.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown unary operator %q", args[0])
		}
		a, err := bigint.Parse(args[1])
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[1], err)
		}
		result, err := ops.Eval(op, a, nil)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	a, err := bigint.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	op, ok := ops.Lookup(args[1])
	if !ok {
		return fmt.Errorf("unknown operator %q", args[1])
	}
	b, err := bigint.Parse(args[2])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[2], err)
	}

	result, err := ops.Eval(op, a, b)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// scenarios are the concrete worked examples the arithmetic contract is
// built around: floor-division sign adjustment and mixed-sign bitwise
// simulation are both easy to get subtly wrong, so selftest checks them
// by name rather than trusting the property fuzzer alone.
var scenarios = []struct {
	name string
	run  func() error
}{
	{"2325 // -2 == -1163", func() error { return checkDivMod(2325, -2, -1163, -1) }},
	{"5 // 7 == 0", func() error { return checkDivMod(5, 7, 0, 5) }},
	{"-5 // 7 == -1", func() error { return checkDivMod(-5, 7, -1, 2) }},
	{"5 // -7 == -1", func() error { return checkDivMod(5, -7, -1, -2) }},
	{"-5 // -7 == 0", func() error { return checkDivMod(-5, -7, 0, -5) }},
	{"-1 ^ -1 == 0", func() error { return checkBitwise(ops.Xor, -1, -1, 0) }},
	{"-1 & -1 == -1", func() error { return checkBitwise(ops.And, -1, -1, -1) }},
	{"-5 ^ 0 == -5", func() error { return checkBitwise(ops.Xor, -5, 0, -5) }},
	{"0x7FFFeeee + 0x7EEEffff == 0xFEEEEEED", checkHexAdd},
	{"0x123456789abcdef0123456789abcdef round-trips", checkHexDecimalRoundTrip},
}

func checkHexAdd() error {
	a, err := bigint.Parse("0x7FFFeeee")
	if err != nil {
		return err
	}
	b, err := bigint.Parse("0x7EEEffff")
	if err != nil {
		return err
	}
	sum := new(bigint.Int).Add(a, b)
	if got := sum.Format(16, "x0"); got != "0xfeeeeeed" {
		return fmt.Errorf("0x7FFFeeee + 0x7EEEffff = %s, want 0xfeeeeeed", got)
	}
	return nil
}

func checkHexDecimalRoundTrip() error {
	n, err := bigint.Parse("0x123456789abcdef0123456789abcdef")
	if err != nil {
		return err
	}
	if got := n.Format(16, "x0"); got != "0x123456789abcdef0123456789abcdef" {
		return fmt.Errorf("hex round trip = %s, want 0x123456789abcdef0123456789abcdef", got)
	}
	const wantDecimal = "1512366075204170929049582354406559215"
	if got := n.Format(10, ""); got != wantDecimal {
		return fmt.Errorf("decimal rendering = %s, want %s", got, wantDecimal)
	}
	return nil
}

func checkDivMod(a, b, wantQ, wantR int64) error {
	q, m := bigint.New(), bigint.New()
	if _, _, err := q.DivMod(bigint.NewInt64(a), bigint.NewInt64(b), m); err != nil {
		return err
	}
	if q.Int64() != wantQ || m.Int64() != wantR {
		return fmt.Errorf("DivMod(%d, %d) = (%d, %d), want (%d, %d)", a, b, q.Int64(), m.Int64(), wantQ, wantR)
	}
	return nil
}

func checkBitwise(op ops.OpCode, a, b, want int64) error {
	got, err := ops.Eval(op, bigint.NewInt64(a), bigint.NewInt64(b))
	if err != nil {
		return err
	}
	if got.Int64() != want {
		return fmt.Errorf("opcode %d(%d, %d) = %d, want %d", op, a, b, got.Int64(), want)
	}
	return nil
}

func runSelftest(verbose bool) error {
	var failures []string
	for _, s := range scenarios {
		if err := s.run(); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", s.name, err))
			continue
		}
		if verbose {
			fmt.Printf("ok   %s\n", s.name)
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("selftest failures:\n%s", strings.Join(failures, "\n"))
	}
	fmt.Printf("ok: %d scenarios passed\n", len(scenarios))
	return nil
}
