package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ttiring-notification-srv/internal/alert"
	keywordRepository "ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/internal/notification/repository"
	userRepository "ttiring-notification-srv/internal/user/repository"
	"ttiring-notification-srv/pkg/fcm"
	"ttiring-notification-srv/pkg/log"
	"ttiring-notification-srv/pkg/paginator"
)

type sentTopic struct {
	Topic string
	Msg   fcm.Message
}

type fakeSender struct {
	mu      sync.Mutex
	batches [][]string
	topics  []sentTopic
	singles []string
	lastMsg fcm.Message

	// batchFn decides the outcome of the n-th (0-based) SendBatch call. Nil means all tokens succeed.
	batchFn   func(ctx context.Context, n int, tokens []string) (fcm.BatchResult, error)
	topicErr  error
	singleErr error
}

func (f *fakeSender) SendSingle(ctx context.Context, token string, msg fcm.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.singles = append(f.singles, token)
	f.lastMsg = msg
	return f.singleErr
}

func (f *fakeSender) SendBatch(ctx context.Context, tokens []string, msg fcm.Message) (fcm.BatchResult, error) {
	f.mu.Lock()
	n := len(f.batches)
	f.batches = append(f.batches, append([]string(nil), tokens...))
	f.lastMsg = msg
	fn := f.batchFn
	f.mu.Unlock()

	if len(tokens) > fcm.MaxBatchSize {
		return fcm.BatchResult{}, fcm.ErrBatchTooLarge
	}
	if fn != nil {
		return fn(ctx, n, tokens)
	}
	return fcm.BatchResult{SuccessCount: len(tokens)}, nil
}

func (f *fakeSender) SendTopic(ctx context.Context, topic string, msg fcm.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, sentTopic{Topic: topic, Msg: msg})
	return f.topicErr
}

func (f *fakeSender) batchSizes() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	sizes := make([]int, len(f.batches))
	for i, b := range f.batches {
		sizes[i] = len(b)
	}
	return sizes
}

type fakeHistory struct {
	rows []model.NotificationHistory
	err  error
}

func (f *fakeHistory) CreateMany(ctx context.Context, opts repository.CreateHistoriesOptions) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, opts.Histories...)
	return nil
}

func (f *fakeHistory) List(ctx context.Context, sc model.Scope, opts repository.ListHistoryOptions) ([]model.NotificationHistory, paginator.Paginator, error) {
	if f.err != nil {
		return nil, paginator.Paginator{}, f.err
	}
	var own []model.NotificationHistory
	for _, h := range f.rows {
		if h.UserID == sc.UserID {
			own = append(own, h)
		}
	}
	page, pag := paginator.PaginateSlice(own, opts.PaginateQuery)
	return page, pag, nil
}

type fakeTokens struct {
	invalid []string
	err     error
}

func (f *fakeTokens) MarkInvalid(ctx context.Context, tokens []string) error {
	if f.err != nil {
		return f.err
	}
	f.invalid = append(f.invalid, tokens...)
	return nil
}

type fakeAlert struct {
	degraded []alert.DeliveryDegradedInput
}

func (f *fakeAlert) ReportDispatchFailure(ctx context.Context, input alert.DispatchFailureInput) error {
	return nil
}

func (f *fakeAlert) ReportDeliveryDegraded(ctx context.Context, input alert.DeliveryDegradedInput) error {
	f.degraded = append(f.degraded, input)
	return nil
}

type subscriber struct {
	token  string
	active bool
}

// fakeIndex evaluates model.Keyword.Matches over stored keywords.
type fakeIndex struct {
	keywordRepository.Repository

	nextID   int64
	keywords map[int64]model.Keyword
	owners   map[int64]subscriber

	// matches, when set, is returned by FindMatching as is.
	matches  []model.KeywordMatch
	err      error
	statsErr error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		keywords: make(map[int64]model.Keyword),
		owners:   make(map[int64]subscriber),
	}
}

func (f *fakeIndex) seed(k model.Keyword) model.Keyword {
	f.nextID++
	k.ID = f.nextID
	f.keywords[k.ID] = k
	return k
}

func (f *fakeIndex) get(id int64) model.Keyword {
	return f.keywords[id]
}

func (f *fakeIndex) FindMatching(ctx context.Context, opts keywordRepository.FindMatchingOptions) ([]model.KeywordMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.matches != nil {
		return f.matches, nil
	}

	ids := make([]int64, 0, len(f.keywords))
	for id := range f.keywords {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.KeywordMatch
	for _, id := range ids {
		k := f.keywords[id]
		o, ok := f.owners[k.UserID]
		if !ok || !o.active || o.token == "" || !k.Matches(opts.Title, opts.Content, opts.CategoryID) {
			continue
		}
		out = append(out, model.KeywordMatch{Keyword: k, PushToken: o.token, UserActive: o.active})
	}
	return out, nil
}

func (f *fakeIndex) IncrementMatched(ctx context.Context, opts keywordRepository.IncrementMatchedOptions) error {
	if f.statsErr != nil {
		return f.statsErr
	}

	at := opts.NotifiedAt
	for _, id := range opts.IDs {
		k, ok := f.keywords[id]
		if !ok {
			continue
		}
		k.MatchedCount++
		k.LastNotifiedAt = &at
		f.keywords[id] = k
	}
	return nil
}

type fakeUsers struct {
	userRepository.Repository

	users map[int64]model.User
	err   error
}

func (f *fakeUsers) put(u model.User) {
	f.users[u.ID] = u
}

func (f *fakeUsers) Detail(ctx context.Context, id int64) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return model.User{}, userRepository.ErrNotFound
	}
	return u, nil
}

type testEnv struct {
	uc       *usecase
	keywords *fakeIndex
	users    *fakeUsers
	sender   *fakeSender
	history  *fakeHistory
	tokens   *fakeTokens
	alerts   *fakeAlert
	sleeps   []time.Duration
	now      time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		keywords: newFakeIndex(),
		users:    &fakeUsers{users: make(map[int64]model.User)},
		sender:   &fakeSender{},
		history:  &fakeHistory{},
		tokens:   &fakeTokens{},
		alerts:   &fakeAlert{},
		now:      time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	env.uc = New(log.NewNop(), env.keywords, env.users, env.history, env.tokens, env.sender, env.alerts, notification.Config{
		BatchSize:    fcm.MaxBatchSize,
		ChunkDelay:   100 * time.Millisecond,
		ChunkTimeout: time.Second,
	}).(*usecase)
	env.uc.clock = func() time.Time { return env.now }
	env.uc.sleep = func(ctx context.Context, d time.Duration) { env.sleeps = append(env.sleeps, d) }
	return env
}

// subscribe registers an active owner with token and one active keyword.
func (e *testEnv) subscribe(userID int64, token, kw string, categoryID *int64) model.Keyword {
	e.keywords.owners[userID] = subscriber{token: token, active: true}
	return e.keywords.seed(model.Keyword{UserID: userID, Keyword: kw, CategoryID: categoryID, IsActive: true})
}

func tokenN(i int) string {
	return fmt.Sprintf("device-token-%04d", i)
}
