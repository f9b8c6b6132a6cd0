package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ttiring-notification-srv/internal/alert"
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscord struct {
	embeds []discord.MessageOptions
	err    error
}

func (f *fakeDiscord) SendEmbed(ctx context.Context, options discord.MessageOptions) error {
	f.embeds = append(f.embeds, options)
	return f.err
}
func (f *fakeDiscord) SendError(ctx context.Context, title, description string, err error) error {
	return nil
}
func (f *fakeDiscord) SendWarning(ctx context.Context, title, description string) error { return nil }
func (f *fakeDiscord) ReportBug(ctx context.Context, message string) error { return nil }
func (f *fakeDiscord) Close() error { return nil }

func TestReportDispatchFailure(t *testing.T) {
	d := &fakeDiscord{}
	uc := New(log.NewNop(), d)

	err := uc.ReportDispatchFailure(context.Background(), alert.DispatchFailureInput{
		DispatchID: "d-1",
		NoticeID:   10,
		Stage:      "match",
		Err:        errors.New("connection reset"),
	})

	require.NoError(t, err)
	require.Len(t, d.embeds, 1)
	assert.Equal(t, discord.MessageTypeError, d.embeds[0].Type)
	assert.Contains(t, d.embeds[0].Title, "#10")
	assert.False(t, d.embeds[0].Timestamp.IsZero())
}

func TestReportDispatchFailureRequiresError(t *testing.T) {
	uc := New(log.NewNop(), &fakeDiscord{})
	assert.ErrorIs(t, uc.ReportDispatchFailure(context.Background(), alert.DispatchFailureInput{}), alert.ErrInvalidInput)
}

func TestReportDeliveryDegraded(t *testing.T) {
	tests := []struct {
		name     string
		input    alert.DeliveryDegradedInput
		wantType discord.MessageType
		wantErr  error
	}{
		{
			name:     "partial",
			input:    alert.DeliveryDegradedInput{TargetCount: 3, SuccessCount: 2, FailureCount: 1, FailuresByKind: map[string]int{"invalid_token": 1}},
			wantType: discord.MessageTypeWarning,
		},
		{
			name:     "outage",
			input:    alert.DeliveryDegradedInput{TargetCount: 3, FailureCount: 3, FailuresByKind: map[string]int{"timeout": 3}},
			wantType: discord.MessageTypeError,
		},
		{
			name:    "nothing failed",
			input:   alert.DeliveryDegradedInput{TargetCount: 3, SuccessCount: 3},
			wantErr: alert.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDiscord{}
			err := New(log.NewNop(), d).ReportDeliveryDegraded(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, d.embeds)
				return
			}
			require.NoError(t, err)
			require.Len(t, d.embeds, 1)
			assert.Equal(t, tt.wantType, d.embeds[0].Type)
		})
	}
}

func TestNilDiscordOnlyLogs(t *testing.T) {
	uc := New(log.NewNop(), nil)
	assert.NoError(t, uc.ReportDeliveryDegraded(context.Background(), alert.DeliveryDegradedInput{FailureCount: 1}))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "invalid_token: 2, timeout: 1", formatKinds(map[string]int{"timeout": 1, "invalid_token": 2}))
	assert.Equal(t, "가나...", truncateText("가나다라마", 5))
	assert.Equal(t, "N/A", buildField("x", "", false).Value)
	assert.Len(t, []rune(buildField("x", strings.Repeat("a", 2000), false).Value), fieldValueLimit)
}
