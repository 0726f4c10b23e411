//go:build integration
// +build integration

package service

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"hackathon-dashboard-backend/internal/testutils"
)

// TestMain ensures the shared container is cleaned up after all tests
func TestMain(m *testing.M) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
