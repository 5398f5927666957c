package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/babicastilho/todo-list-api/cmd/api/commands"
)

// @title Todo List API
// @version 1.0
// @description Personal task tracking API with categories, due dates and priorities.

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "todo-api",
		Short: "Todo List API Server",
		Long:  `Todo List API is a personal task tracker: authenticated users manage tasks and categories with due dates and priorities.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
