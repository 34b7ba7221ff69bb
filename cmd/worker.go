package cmd

import (
	"lending/worker"
	"lending/worker/interest"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lending job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		poolStore := providePoolStore(database)

		jobs := []worker.IJob{
			interest.New(provideConfig(), database, poolStore),
		}

		for _, job := range jobs {
			if err := job.Start(); err != nil {
				log.Errorln("start worker error:", err)
				return
			}
		}

		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			for _, job := range jobs {
				job.Stop()
			}

			close(done)
		})

		log.Infoln("lending worker started")
		<-done
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
