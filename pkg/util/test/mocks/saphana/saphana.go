package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lburgazzoli/ipu-lint/pkg/saphana"
	"github.com/lburgazzoli/ipu-lint/pkg/util/answers"
)

// MockTargetVersion is a mock implementation of saphana.TargetVersion.
type MockTargetVersion struct {
	mock.Mock
}

func NewMockTargetVersion() *MockTargetVersion {
	return &MockTargetVersion{}
}

func (m *MockTargetVersion) MatchesTargetVersion(exprs ...string) bool {
	args := m.Called(exprs)

	return args.Bool(0)
}

func (m *MockTargetVersion) TargetMajorVersion() string {
	args := m.Called()

	return args.String(0)
}

// MockArchitecture is a mock implementation of saphana.Architecture.
type MockArchitecture struct {
	mock.Mock
}

func NewMockArchitecture() *MockArchitecture {
	return &MockArchitecture{}
}

func (m *MockArchitecture) MatchesArchitecture(names ...string) bool {
	args := m.Called(names)

	return args.Bool(0)
}

// MockConfirmer is a mock implementation of saphana.Confirmer and
// answers.Provider.
type MockConfirmer struct {
	mock.Mock
}

func NewMockConfirmer() *MockConfirmer {
	return &MockConfirmer{}
}

func (m *MockConfirmer) Answer(ctx context.Context, q answers.Question) (bool, error) {
	args := m.Called(ctx, q)

	return args.Bool(0), args.Error(1)
}

// MockInfoSource is a mock implementation of saphana.InfoSource.
type MockInfoSource struct {
	mock.Mock
}

func NewMockInfoSource() *MockInfoSource {
	return &MockInfoSource{}
}

func (m *MockInfoSource) SapHanaInfo(ctx context.Context) (*saphana.Info, error) {
	args := m.Called(ctx)

	info, _ := args.Get(0).(*saphana.Info)

	return info, args.Error(1)
}
