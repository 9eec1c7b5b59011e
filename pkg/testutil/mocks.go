package testutil

import (
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockReporter is a testify mock of types.Reporter
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Step(step types.InstallStep) {
	m.Called(step)
}

func (m *MockReporter) Finish(outcome types.Outcome) {
	m.Called(outcome)
}
