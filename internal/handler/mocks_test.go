package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/presets"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

// MockRevealService mocks reveal.Service
type MockRevealService struct {
	mock.Mock
}

func (m *MockRevealService) Draw(ctx context.Context, in raffle.Input) (reveal.RunSummary, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(reveal.RunSummary), args.Error(1)
}

func (m *MockRevealService) SetSpeed(ctx context.Context, speed float64) error {
	args := m.Called(ctx, speed)
	return args.Error(0)
}

func (m *MockRevealService) Frame() chart.Frame {
	args := m.Called()
	return args.Get(0).(chart.Frame)
}

func (m *MockRevealService) FrameAt(tick int) (chart.Frame, error) {
	args := m.Called(tick)
	return args.Get(0).(chart.Frame), args.Error(1)
}

func (m *MockRevealService) State() reveal.Snapshot {
	args := m.Called()
	return args.Get(0).(reveal.Snapshot)
}

func (m *MockRevealService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRevealService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPresetSource mocks PresetSource
type MockPresetSource struct {
	mock.Mock
}

func (m *MockPresetSource) All() []presets.Preset {
	args := m.Called()
	return args.Get(0).([]presets.Preset)
}

func (m *MockPresetSource) Instructions() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockPresetSource) Get(name string) (presets.Preset, error) {
	args := m.Called(name)
	return args.Get(0).(presets.Preset), args.Error(1)
}

func (m *MockPresetSource) Reload() error {
	args := m.Called()
	return args.Error(0)
}
