package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/imgconv/internal/batch"
	"github.com/AnyUserName/imgconv/internal/convert"
	"github.com/AnyUserName/imgconv/internal/manifest"
	"github.com/spf13/cobra"
)

const manifestName = "imgconv.manifest.json"

var (
	batchOutDir  string
	batchTo      string
	batchWorkers int
	batchTuning  tuningFlags
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Convert every image in a directory and write a manifest",
	Long: `Scans input directory for images (by extension), converts each one
to --to in parallel and writes ` + manifestName + ` to the output directory.

Output filenames are content-addressed: <key>.<hash>.<ext>`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./imgconv_out", "output directory")
	batchCmd.Flags().StringVarP(&batchTo, "to", "t", "", "output format identifier (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchCmd.MarkFlagRequired("to")
	batchTuning.register(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	ids, err := batchTuning.resolver()
	if err != nil {
		return err
	}
	target, err := convert.NewEngine(convert.Config{Identifiers: ids}).Target(batchTo)
	if err != nil {
		return err
	}
	tuning, prof := batchTuning.tuning(cmd)

	logVerbose("input:  %s", absInput)
	logVerbose("output: %s", absOutput)
	logVerbose("target: %s (preset %s)", target, prof.Name)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	b := batch.New(batch.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Target:    target,
		Tuning:    tuning,
		Preset:    prof.Name,
		Workers:   batchWorkers,
		Verbose:   verbose,
	})
	m, err := b.Run()
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	if err := manifest.WriteJSON(m, filepath.Join(absOutput, manifestName)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	s := m.Stats
	ratio := float64(0)
	if s.TotalInputBytes > 0 {
		ratio = float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
	}

	fmt.Println()
	fmt.Printf("  Target:      %s\n", m.Target)
	fmt.Printf("  Converted:   %d\n", s.Converted)
	if s.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", s.Failed)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.1f%% of original\n", ratio)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Options:     %s\n", m.BuildInfo.Options)
	}

	if len(m.Failures) > 0 {
		keys := make([]string, 0, len(m.Failures))
		for k := range m.Failures {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println()
		fmt.Println("  Failures:")
		for _, k := range keys {
			fmt.Printf("    %-40s %s\n", truncKey(k, 40), m.Failures[k])
		}
	}
	fmt.Println()
	fmt.Printf("  Manifest:    %s\n", manifestName)
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n+1:]
}
