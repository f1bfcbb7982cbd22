package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/model"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/repository/memory"
	"matchmaker-be/internal/repository/unitofwork"
	"matchmaker-be/pkg/database"
	"matchmaker-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordedDelivery struct {
	Recipients []uuid.UUID
	Event      dto.RealtimeEvent
}

type fakeDelivery struct {
	mu         sync.Mutex
	deliveries []recordedDelivery
}

func (f *fakeDelivery) Deliver(ctx context.Context, recipients []uuid.UUID, event dto.RealtimeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries = append(f.deliveries, recordedDelivery{Recipients: recipients, Event: event})
	return nil
}

func (f *fakeDelivery) ofType(eventType string) []recordedDelivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []recordedDelivery
	for _, d := range f.deliveries {
		if d.Event.Type == eventType {
			res = append(res, d)
		}
	}
	return res
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) ofType(eventType string) []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []events.Event
	for _, e := range f.events {
		if e.EventType() == eventType {
			res = append(res, e)
		}
	}
	return res
}

// harness wires the matching core on an in-memory database.
type harness struct {
	db        *gorm.DB
	uow       unitofwork.RepositoryFactory
	delivery  *fakeDelivery
	publisher *fakePublisher

	ledger   ISwipeLedger
	detector IMatchDetector
	swipes   ISwipeService
	reads    IReadTracker
	matches  IMatchService
	chat     IChatService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := database.NewSqliteDB("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Profile{}, &model.Swipe{}, &model.Match{}, &model.Message{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logger.NewNopLogger()
	uow := unitofwork.NewRepositoryFactory(db)
	cache := memory.NewMatchCache(time.Minute)
	delivery := &fakeDelivery{}
	publisher := &fakePublisher{}

	ledger := NewSwipeLedger(uow, log)
	detector := NewMatchDetector(uow, ledger, cache, publisher, delivery, log)
	authorizer := NewMatchAuthorizer(uow, cache)
	reads := NewReadTracker(uow, authorizer, log)

	return &harness{
		db:        db,
		uow:       uow,
		delivery:  delivery,
		publisher: publisher,
		ledger:    ledger,
		detector:  detector,
		swipes:    NewSwipeService(ledger, detector, log),
		reads:     reads,
		matches:   NewMatchService(uow, authorizer, reads),
		chat:      NewChatService(uow, authorizer, reads, publisher, delivery, 2000, log),
	}
}

// user creates an active profile and returns its user id.
func (h *harness) user(t *testing.T) uuid.UUID {
	t.Helper()
	userId := uuid.New()
	require.NoError(t, h.db.Create(&model.Profile{
		Id:          uuid.New(),
		UserId:      userId,
		DisplayName: "user",
		IsActive:    true,
	}).Error)
	return userId
}

func like(target uuid.UUID) *dto.SwipeRequest {
	yes := true
	return &dto.SwipeRequest{SwipedId: target, IsLike: &yes}
}

func pass(target uuid.UUID) *dto.SwipeRequest {
	no := false
	return &dto.SwipeRequest{SwipedId: target, IsLike: &no}
}
