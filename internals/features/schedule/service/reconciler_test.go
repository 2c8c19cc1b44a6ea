package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tutorx_backend/internals/features/schedule/model"
	tuitionModel "tutorx_backend/internals/features/tuitions/model"
)

/* ===== fakes in-memory untuk ScheduleStore / TuitionSource ===== */

type fakeStore struct {
	docs   map[string]model.MonthEventMap
	caches map[string]model.MonthEventMap

	docErr   error
	mergeErr error
	cacheErr error

	mergeCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:   map[string]model.MonthEventMap{},
		caches: map[string]model.MonthEventMap{},
	}
}

func storeKey(userID uuid.UUID, monthKey string) string {
	return userID.String() + "|" + monthKey
}

func (f *fakeStore) GetDocument(_ context.Context, userID uuid.UUID, monthKey string) (model.MonthEventMap, error) {
	if f.docErr != nil {
		return nil, f.docErr
	}
	doc, ok := f.docs[storeKey(userID, monthKey)]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeStore) MergeDocument(_ context.Context, userID uuid.UUID, monthKey string, events model.MonthEventMap) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.mergeCalls++
	k := storeKey(userID, monthKey)
	doc, ok := f.docs[k]
	if !ok {
		doc = model.MonthEventMap{}
	}
	// semantik jsonb ||: replace per key tanggal
	for dateKey, dayEvents := range events {
		doc[dateKey] = dayEvents
	}
	f.docs[k] = doc
	return nil
}

func (f *fakeStore) GetCache(_ context.Context, userID uuid.UUID, monthKey string) (model.MonthEventMap, error) {
	if f.cacheErr != nil {
		return nil, f.cacheErr
	}
	c, ok := f.caches[storeKey(userID, monthKey)]
	if !ok {
		return nil, fmt.Errorf("%w: cache miss", ErrScheduleUnavailable)
	}
	return c, nil
}

func (f *fakeStore) SetCache(_ context.Context, userID uuid.UUID, monthKey string, events model.MonthEventMap) error {
	f.caches[storeKey(userID, monthKey)] = events
	return nil
}

type fakeSource struct {
	tuitions []tuitionModel.TuitionModel
	role     string
	listErr  error
}

func (f *fakeSource) ListForUser(_ context.Context, _ uuid.UUID) ([]tuitionModel.TuitionModel, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tuitions, nil
}

func (f *fakeSource) UserRole(_ context.Context, _ uuid.UUID) (string, error) {
	return f.role, nil
}

func (f *fakeSource) GetByID(_ context.Context, tuitionID uuid.UUID) (*tuitionModel.TuitionModel, error) {
	for i := range f.tuitions {
		if f.tuitions[i].TuitionID == tuitionID {
			return &f.tuitions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func fixedNow() time.Time {
	return time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)
}

func newTestService(store *fakeStore, src *fakeSource) *ScheduleService {
	return NewScheduleServiceWith(store, src, fixedNow)
}

/* ===== tests ===== */

func TestReconcile_GeneratesAndPersists(t *testing.T) {
	store := newFakeStore()
	src := &fakeSource{tuitions: []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}, role: "Teacher"}
	svc := newTestService(store, src)
	userID := uuid.New()

	got, err := svc.Reconcile(context.Background(), userID, fixedNow(), nil, "")
	require.NoError(t, err)

	// Senin 4 & 11 sudah lewat (tidak ditulis), 18 & 25 masa depan
	assert.Len(t, got, 2)
	require.Contains(t, got, "2025-08-18")
	require.Contains(t, got, "2025-08-25")

	persisted := store.docs[storeKey(userID, "August 2025")]
	assert.Equal(t, got, persisted, "hasil merge = dokumen tersimpan")
	assert.Equal(t, got, store.caches[storeKey(userID, "August 2025")], "shadow cache ikut refresh")
}

func TestReconcile_Idempotent(t *testing.T) {
	store := newFakeStore()
	src := &fakeSource{tuitions: []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}, role: "Teacher"}
	svc := newTestService(store, src)
	userID := uuid.New()

	first, err := svc.Reconcile(context.Background(), userID, fixedNow(), nil, "")
	require.NoError(t, err)
	second, err := svc.Reconcile(context.Background(), userID, fixedNow(), nil, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for dateKey, dayEvents := range second {
		assert.Len(t, dayEvents, 1, "tidak ada duplikat di %s", dateKey)
	}
}

func TestReconcile_PreservesCompletion(t *testing.T) {
	store := newFakeStore()
	src := &fakeSource{tuitions: []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}, role: "Teacher"}
	svc := newTestService(store, src)
	userID := uuid.New()

	done := classEvent("2025-08-18", true)
	done.ID = model.EventID("11111111-1111-1111-1111-111111111111", model.EventClass, "2025-08-18")
	done.TuitionID = "11111111-1111-1111-1111-111111111111"
	store.docs[storeKey(userID, "August 2025")] = model.MonthEventMap{"2025-08-18": {done}}

	got, err := svc.Reconcile(context.Background(), userID, fixedNow(), nil, "")
	require.NoError(t, err)

	require.Len(t, got["2025-08-18"], 1)
	assert.True(t, got["2025-08-18"][0].Completed, "regenerasi tidak boleh membatalkan completed")
}

func TestReconcile_PreservesPastHistory(t *testing.T) {
	store := newFakeStore()
	src := &fakeSource{tuitions: []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}, role: "Teacher"}
	svc := newTestService(store, src)
	userID := uuid.New()

	past := classEvent("2025-08-04", false)
	past.Type = model.EventMissedClass
	store.docs[storeKey(userID, "August 2025")] = model.MonthEventMap{"2025-08-04": {past}}

	got, err := svc.Reconcile(context.Background(), userID, fixedNow(), nil, "")
	require.NoError(t, err)

	require.Len(t, got["2025-08-04"], 1)
	assert.Equal(t, past, got["2025-08-04"][0], "key masa lalu tidak ditulis ulang")
}

func TestReconcile_FallsBackToCache(t *testing.T) {
	store := newFakeStore()
	store.docErr = fmt.Errorf("%w: koneksi putus", ErrScheduleUnavailable)
	src := &fakeSource{tuitions: []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}, role: "Teacher"}
	svc := newTestService(store, src)
	userID := uuid.New()

	cached := model.MonthEventMap{"2025-08-18": {classEvent("2025-08-18", false)}}
	store.caches[storeKey(userID, "August 2025")] = cached

	got, err := svc.Reconcile(context.Background(), userID, fixedNow(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestReconcile_DegradedWhenAllFail(t *testing.T) {
	store := newFakeStore()
	store.docErr = fmt.Errorf("%w: koneksi putus", ErrScheduleUnavailable)
	src := &fakeSource{tuitions: []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}, role: "Teacher"}
	svc := newTestService(store, src)

	got, err := svc.Reconcile(context.Background(), uuid.New(), fixedNow(), nil, "")

	assert.ErrorIs(t, err, ErrScheduleDegraded)
	assert.Empty(t, got)
	assert.NotNil(t, got, "bulan kosong tetap map valid, bukan nil")
}

func TestReconcile_UsesSuppliedTuitions(t *testing.T) {
	store := newFakeStore()
	src := &fakeSource{listErr: fmt.Errorf("%w: tidak boleh fetch", ErrScheduleUnavailable)}
	svc := newTestService(store, src)

	tuitions := []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}
	got, err := svc.Reconcile(context.Background(), uuid.New(), fixedNow(), tuitions, "Teacher")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMonthSnapshot_ReadOnly(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSource{})
	userID := uuid.New()

	doc := model.MonthEventMap{"2025-07-07": {classEvent("2025-07-07", false)}}
	store.docs[storeKey(userID, "July 2025")] = doc

	got, err := svc.MonthSnapshot(context.Background(), userID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Zero(t, store.mergeCalls, "snapshot tidak menulis")
}

func TestMonthSnapshot_EmptyMonth(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSource{})

	got, err := svc.MonthSnapshot(context.Background(), uuid.New(), fixedNow())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
