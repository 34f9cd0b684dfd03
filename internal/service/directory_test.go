package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/godilite/profdir/internal/service/mocks"
	"github.com/godilite/profdir/internal/sheet"
)

const sampleSheet = "Chose your professor,Общее качество,Уровень строгости,Взяли бы вы курс у этого преподавателя снова?,Выберите тег который близко описывает преподавателя\r\n" +
	"A,5,3,Да,\"Strict, Fair;Clear\"\r\n" +
	"A,3,,Нет,Fair\r\n" +
	"B,\"4,5\",2,да,\r\n" +
	",5,5,Да,ignored\r\n"

// TestNewDirectoryService tests the constructor
func TestNewDirectoryService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		fetcher := &mocks.MockSheetFetcher{}
		svc := NewDirectoryService(fetcher, DefaultSchema(), zap.NewNop())

		assert.NotNil(t, svc)
		assert.Equal(t, fetcher, svc.source)
		assert.Equal(t, DefaultSchema(), svc.schema)
	})

	t.Run("nil source panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDirectoryService(nil, DefaultSchema(), zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		svc := NewDirectoryService(&mocks.MockSheetFetcher{}, DefaultSchema(), nil)
		assert.NotNil(t, svc.logger)
	})
}

func TestBuild(t *testing.T) {
	snap := Build(sampleSheet, DefaultSchema())

	assert.Equal(t, byte(sheet.Comma), snap.Delimiter)
	assert.Equal(t, 4, snap.TotalResponses())
	assert.Equal(t, 2, snap.TotalProfessors())

	a := snap.Professors[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, 4.0, *a.AvgQuality)
	assert.Equal(t, 3.0, *a.AvgStrictness)
	assert.Equal(t, 50.0, *a.RetakePct)
	assert.Equal(t, 2, a.Tags.Count("Fair"))

	b := snap.Professors[1]
	assert.Equal(t, 4.5, *b.AvgQuality)
	assert.Equal(t, 100.0, *b.RetakePct)
}

// TestLoad tests fetching and installing a snapshot
func TestLoad(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("successful load replaces state", func(t *testing.T) {
		fetcher := &mocks.MockSheetFetcher{
			FetchFunc: func(ctx context.Context) (string, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return sampleSheet, nil
			},
		}
		svc := NewDirectoryService(fetcher, DefaultSchema(), zap.NewNop())
		svc.now = func() time.Time { return fixed }
		state := NewState("", SortResponsesDesc)

		snap, err := svc.Load(ctx, state)

		require.NoError(t, err)
		assert.Same(t, snap, state.Snapshot())
		assert.Equal(t, fixed, snap.LoadedAt)
		assert.Equal(t, []string{"A", "B"}, []string{state.Visible()[0].Name, state.Visible()[1].Name})
	})

	t.Run("fetch failure keeps previous snapshot", func(t *testing.T) {
		state := NewState("", "")
		previous := Build(sampleSheet, DefaultSchema())
		state.Replace(previous)

		fetcher := &mocks.MockSheetFetcher{
			FetchFunc: func(ctx context.Context) (string, error) {
				return "", errors.New("HTTP 404")
			},
		}
		svc := NewDirectoryService(fetcher, DefaultSchema(), zap.NewNop())

		snap, err := svc.Load(ctx, state)

		assert.ErrorIs(t, err, ErrLoadFailed)
		assert.Contains(t, err.Error(), "HTTP 404")
		assert.Nil(t, snap)
		assert.Same(t, previous, state.Snapshot())
	})

	t.Run("empty sheet is a valid empty snapshot", func(t *testing.T) {
		fetcher := &mocks.MockSheetFetcher{
			FetchFunc: func(ctx context.Context) (string, error) {
				return "", nil
			},
		}
		svc := NewDirectoryService(fetcher, DefaultSchema(), zap.NewNop())
		state := NewState("", "")

		snap, err := svc.Load(ctx, state)

		require.NoError(t, err)
		assert.Zero(t, snap.TotalResponses())
		assert.Zero(t, snap.TotalProfessors())
		assert.Empty(t, state.Visible())
	})
}
