package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ttiring-notification-srv/internal/alert"
	"ttiring-notification-srv/internal/model"
	noticeRepository "ttiring-notification-srv/internal/notice/repository"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/internal/webhook"
	"ttiring-notification-srv/internal/webhook/repository"
	"ttiring-notification-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotification struct {
	notification.UseCase

	res          notification.DispatchResult
	err          error
	processed    []int64
	broadcasts   int
	categories   int
	broadcastErr error
}

func (f *fakeNotification) ProcessNewNotice(ctx context.Context, n model.Notice) (notification.DispatchResult, error) {
	f.processed = append(f.processed, n.ID)
	return f.res, f.err
}

func (f *fakeNotification) SendImportantBroadcast(ctx context.Context, n model.Notice) (bool, error) {
	f.broadcasts++
	return f.broadcastErr == nil, f.broadcastErr
}

func (f *fakeNotification) SendCategoryNotification(ctx context.Context, n model.Notice) (bool, error) {
	f.categories++
	return true, nil
}

type fakeAlert struct {
	alert.UseCase

	failures []alert.DispatchFailureInput
}

func (f *fakeAlert) ReportDispatchFailure(ctx context.Context, input alert.DispatchFailureInput) error {
	f.failures = append(f.failures, input)
	return nil
}

type fakeNotices map[int64]model.Notice

func (f fakeNotices) Detail(ctx context.Context, id int64) (model.Notice, error) {
	n, ok := f[id]
	if !ok {
		return model.Notice{}, noticeRepository.ErrNotFound
	}
	return n, nil
}

type fakeDedup struct {
	mu       sync.Mutex
	seen     map[int64]bool
	released []int64
	err      error
}

func newFakeDedup() *fakeDedup {
	return &fakeDedup{seen: make(map[int64]bool)}
}

func (f *fakeDedup) MarkReceived(ctx context.Context, noticeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.seen[noticeID] {
		return false, nil
	}
	f.seen[noticeID] = true
	return true, nil
}

func (f *fakeDedup) Release(ctx context.Context, noticeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, noticeID)
	if f.err != nil {
		return f.err
	}
	delete(f.seen, noticeID)
	return nil
}

func i64(v int64) *int64 { return &v }

func newUC(noti *fakeNotification, al *fakeAlert, dedup repository.DedupRepository) webhook.UseCase {
	notices := fakeNotices{
		1: {ID: 1, Title: "2025 Scholarship Deadline"},
		2: {ID: 2, Title: "Campus closed", IsImportant: true},
		3: {ID: 3, Title: "수강신청 안내", CategoryID: i64(3), CategoryName: "학사"},
		4: {ID: 4},
	}
	return New(log.NewNop(), notices, dedup, noti, al)
}

func TestHandleNewNotice(t *testing.T) {
	tests := []struct {
		name           string
		input          webhook.NewNoticeInput
		processErr     error
		wantErr        error
		wantSent       int
		wantTitle      string
		wantBroadcasts int
		wantCategories int
		wantAlerts     int
	}{
		{name: "invalid id", input: webhook.NewNoticeInput{}, wantErr: webhook.ErrInvalidNotice},
		{name: "unknown notice", input: webhook.NewNoticeInput{NoticeID: 99}, wantErr: webhook.ErrNoticeNotFound},
		{name: "plain notice", input: webhook.NewNoticeInput{NoticeID: 1}, wantSent: 3, wantTitle: "2025 Scholarship Deadline"},
		{name: "important without broadcast flag", input: webhook.NewNoticeInput{NoticeID: 2}, wantSent: 3, wantTitle: "Campus closed"},
		{name: "important broadcast", input: webhook.NewNoticeInput{NoticeID: 2, Broadcast: true}, wantSent: 3, wantTitle: "Campus closed", wantBroadcasts: 1},
		{name: "broadcast flag on ordinary notice", input: webhook.NewNoticeInput{NoticeID: 1, Broadcast: true}, wantSent: 3, wantTitle: "2025 Scholarship Deadline"},
		{name: "categorised notice without opt-in", input: webhook.NewNoticeInput{NoticeID: 3}, wantSent: 3, wantTitle: "수강신청 안내"},
		{name: "categorised notice with category broadcast", input: webhook.NewNoticeInput{NoticeID: 3, CategoryBroadcast: true}, wantSent: 3, wantTitle: "수강신청 안내", wantCategories: 1},
		{name: "category broadcast without category", input: webhook.NewNoticeInput{NoticeID: 1, CategoryBroadcast: true}, wantSent: 3, wantTitle: "2025 Scholarship Deadline"},
		{name: "crawler title fills blank", input: webhook.NewNoticeInput{NoticeID: 4, Title: "from crawler"}, wantSent: 3, wantTitle: "from crawler"},
		{name: "dispatch error", input: webhook.NewNoticeInput{NoticeID: 1}, processErr: errors.New("db down"), wantTitle: "2025 Scholarship Deadline", wantAlerts: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noti := &fakeNotification{res: notification.DispatchResult{DispatchID: "d-1", SuccessCount: 3}, err: tt.processErr}
			al := &fakeAlert{}
			uc := newUC(noti, al, newFakeDedup())

			out, err := uc.HandleNewNotice(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, noti.processed)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.input.NoticeID, out.NoticeID)
			assert.Equal(t, tt.wantTitle, out.Title)
			assert.Equal(t, tt.wantSent, out.NotificationsSent)
			assert.False(t, out.Duplicate)
			assert.Equal(t, tt.wantBroadcasts, noti.broadcasts)
			assert.Equal(t, tt.wantCategories, noti.categories)
			require.Len(t, al.failures, tt.wantAlerts)
			if tt.wantAlerts > 0 {
				assert.Equal(t, "d-1", al.failures[0].DispatchID)
				assert.Equal(t, webhook.StageDispatch, al.failures[0].Stage)
			}
		})
	}
}

func TestHandleNewNotice_Duplicate(t *testing.T) {
	noti := &fakeNotification{res: notification.DispatchResult{SuccessCount: 2}}
	uc := newUC(noti, &fakeAlert{}, newFakeDedup())
	ctx := context.Background()

	first, err := uc.HandleNewNotice(ctx, webhook.NewNoticeInput{NoticeID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, first.NotificationsSent)

	second, err := uc.HandleNewNotice(ctx, webhook.NewNoticeInput{NoticeID: 1})
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Zero(t, second.NotificationsSent)
	assert.Equal(t, []int64{1}, noti.processed)
}

func TestHandleNewNotice_DedupStoreDownStillDispatches(t *testing.T) {
	noti := &fakeNotification{}
	dedup := newFakeDedup()
	dedup.err = errors.New("redis down")
	uc := newUC(noti, &fakeAlert{}, dedup)

	out, err := uc.HandleNewNotice(context.Background(), webhook.NewNoticeInput{NoticeID: 1})
	require.NoError(t, err)
	assert.False(t, out.Duplicate)
	assert.Equal(t, []int64{1}, noti.processed)
}

func TestHandleNewNotice_BroadcastErrorSwallowed(t *testing.T) {
	noti := &fakeNotification{broadcastErr: errors.New("unavailable")}
	uc := newUC(noti, &fakeAlert{}, nil)

	out, err := uc.HandleNewNotice(context.Background(), webhook.NewNoticeInput{NoticeID: 2, Broadcast: true})
	require.NoError(t, err)
	assert.False(t, out.BroadcastSent)
	assert.Equal(t, 1, noti.broadcasts)
}

func TestHandleNewNotice_RetryAfterDispatchError(t *testing.T) {
	noti := &fakeNotification{err: errors.New("keyword index down")}
	dedup := newFakeDedup()
	al := &fakeAlert{}
	uc := newUC(noti, al, dedup)
	ctx := context.Background()

	first, err := uc.HandleNewNotice(ctx, webhook.NewNoticeInput{NoticeID: 1})
	require.NoError(t, err)
	assert.False(t, first.Duplicate)
	assert.Zero(t, first.NotificationsSent)
	assert.Equal(t, []int64{1}, dedup.released)
	require.Len(t, al.failures, 1)

	noti.err = nil
	noti.res = notification.DispatchResult{SuccessCount: 4}
	second, err := uc.HandleNewNotice(ctx, webhook.NewNoticeInput{NoticeID: 1})
	require.NoError(t, err)
	assert.False(t, second.Duplicate)
	assert.Equal(t, 4, second.NotificationsSent)
	assert.Equal(t, []int64{1, 1}, noti.processed)

	third, err := uc.HandleNewNotice(ctx, webhook.NewNoticeInput{NoticeID: 1})
	require.NoError(t, err)
	assert.True(t, third.Duplicate)
	assert.Len(t, noti.processed, 2)
}
