package cmd

import (
	"os"

	"github.com/AnyUserName/imgconv/internal/progress"
	"github.com/AnyUserName/imgconv/internal/worker"
	"github.com/spf13/cobra"
)

var workerFlags tuningFlags

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Serve conversion requests as JSON lines on stdin/stdout",
	Long: `Posts {"type":"ready"} and then reads one JSON request per line:

  {"imageData":"<base64>","fileName":"a.png","inputType":"image/png",
   "outputType":"image/jpeg","options":{"quality":80}}

Each request yields progress messages followed by a done or error message.
Identifiers default to MIME types.`,
	Args: cobra.NoArgs,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().StringVar(&workerFlags.ids, "ids", "mime", "identifier table: short, mime, legacy")
	workerCmd.Flags().StringVar(&workerFlags.policy, "progress-policy", "strict", "progress delivery: strict, best-effort")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	ids, err := workerFlags.resolver()
	if err != nil {
		return err
	}
	policy, err := workerFlags.progressPolicy()
	if err != nil {
		return err
	}
	logVerbose("worker: ids=%s", workerFlags.ids)
	w := worker.New(progress.NewJSONLines(os.Stdout), worker.Config{
		Identifiers: ids,
		Policy:      policy,
	})
	return w.Run(os.Stdin)
}
