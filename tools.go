//go:build tools
// +build tools

package tools

// Pins the versions of the linters and generators used in development:
// go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go
// go run github.com/pressly/goose/v3/cmd/goose -dir internal/database/migrations sqlite3 data/jobhunter.db status

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
