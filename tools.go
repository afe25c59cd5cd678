//go:build tools

package tools

// Code generators and CLIs used during development. Nothing here is linked
// into a binary.
//
//   - github.com/matryer/moq: `go generate ./internal/...` rebuilds the
//     *_mock_test.go files for service and middleware consumer interfaces.
//   - github.com/pressly/goose/v3/cmd/goose: pinned through the go.mod tool
//     directive; `go tool goose -dir migrations postgres "$DATABASE_DSN" status`.
