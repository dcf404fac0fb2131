package cmd

import (
	"context"
	"fmt"

	internalApp "github.com/securenotes/secure-notes-service/internal/app"
	"github.com/securenotes/secure-notes-service/internal/dao"
	"github.com/securenotes/secure-notes-service/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedNotes 初始演示数据
var seedNotes = []domain.Note{
	{Title: "Prod-DB-Password", Tags: "production,database", CreatedBy: "admin_user"},
	{Title: "AWS-Root-Key", Tags: "infrastructure,critical", CreatedBy: "devops_lead"},
	{Title: "Grafana-API-Token", Tags: "monitoring,read-only", CreatedBy: "borik_dev"},
}

func init() {
	seedEnv := new(runFlags)

	var seedCommand = &cobra.Command{
		Use:   "seed [-c config_file]",
		Short: "Seed the database with demo notes",
		Run: func(cmd *cobra.Command, args []string) {
			if len(seedEnv.config) <= 0 {
				seedEnv.config = "config/config.yaml"
			}

			appConfig, _, err := internalApp.LoadConfig(seedEnv.config)
			if err != nil {
				bootstrapLogger.Error("failed to load config", zap.Error(err))
				return
			}

			db, err := initDatabaseWithConfig(appConfig, bootstrapLogger)
			if err != nil {
				bootstrapLogger.Error("failed to init database", zap.Error(err))
				return
			}

			repo := dao.NewNoteRepository(dao.New(db, context.Background(), dao.WithLogger(bootstrapLogger)))

			ctx := context.Background()
			for i := range seedNotes {
				note, err := repo.Create(ctx, &seedNotes[i])
				if err != nil {
					bootstrapLogger.Error("error seeding data", zap.Error(err))
					return
				}
				bootstrapLogger.Info("note seeded",
					zap.Int64("id", note.ID),
					zap.String("title", note.Title))
			}

			fmt.Println("Database seeded successfully!")
		},
	}

	rootCmd.AddCommand(seedCommand)
	fs := seedCommand.Flags()
	fs.StringVarP(&seedEnv.config, "config", "c", "", "config file")
}
