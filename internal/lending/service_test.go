package lending

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/catalog"
)

type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

type fakeItemStore struct {
	books       map[string]*catalog.Book
	bundles     map[string]*catalog.Bundle
	members     map[string][]string // bundle id -> book ids
	memberships map[string]int      // book id -> bundle count
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{
		books:       map[string]*catalog.Book{},
		bundles:     map[string]*catalog.Bundle{},
		members:     map[string][]string{},
		memberships: map[string]int{},
	}
}

func (s *fakeItemStore) GetBookForUpdate(ctx context.Context, tx pgx.Tx, id string) (catalog.Book, error) {
	if b, ok := s.books[id]; ok {
		return *b, nil
	}
	return catalog.Book{}, catalog.ErrNotFound
}

func (s *fakeItemStore) GetBundleForUpdate(ctx context.Context, tx pgx.Tx, id string) (catalog.Bundle, error) {
	if b, ok := s.bundles[id]; ok {
		return *b, nil
	}
	return catalog.Bundle{}, catalog.ErrNotFound
}

func (s *fakeItemStore) SetBookStatus(ctx context.Context, tx pgx.Tx, id string, status catalog.Status) error {
	if b, ok := s.books[id]; ok {
		b.Status = status
		return nil
	}
	return catalog.ErrNotFound
}

func (s *fakeItemStore) SetBundleStatus(ctx context.Context, tx pgx.Tx, id string, status catalog.Status) error {
	if b, ok := s.bundles[id]; ok {
		b.Status = status
		return nil
	}
	return catalog.ErrNotFound
}

func (s *fakeItemStore) ListMemberBooks(ctx context.Context, tx pgx.Tx, bundleID string) ([]catalog.Book, error) {
	var out []catalog.Book
	for _, id := range s.members[bundleID] {
		out = append(out, *s.books[id])
	}
	return out, nil
}

func (s *fakeItemStore) MembershipCount(ctx context.Context, tx pgx.Tx, bookID string) (int, error) {
	return s.memberships[bookID], nil
}

type fakeLimitChecker struct {
	allow bool
	err   error
}

func (f fakeLimitChecker) CanBorrow(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (bool, error) {
	return f.allow, f.err
}

type fakeRecordRepo struct {
	records map[string]*Record
	nextID  int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]*Record{}}
}

func (r *fakeRecordRepo) Insert(ctx context.Context, tx pgx.Tx, rec *Record) error {
	r.nextID++
	rec.ID = string(rune('a' + r.nextID))
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeRecordRepo) OpenForItem(ctx context.Context, tx pgx.Tx, kind catalog.Kind, itemID string) (Record, error) {
	for _, rec := range r.records {
		if !rec.Status.Open() {
			continue
		}
		if kind == catalog.KindBook && rec.BookID != nil && *rec.BookID == itemID {
			return *rec, nil
		}
		if kind == catalog.KindBundle && rec.BundleID != nil && *rec.BundleID == itemID {
			return *rec, nil
		}
	}
	return Record{}, ErrNoActiveRecord
}

func (r *fakeRecordRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Record, error) {
	return r.Get(ctx, id)
}

func (r *fakeRecordRepo) Finish(ctx context.Context, tx pgx.Tx, id string, status RecordStatus, returnedAt *time.Time, notes string) error {
	rec, ok := r.records[id]
	if !ok {
		return catalog.ErrNotFound
	}
	rec.Status = status
	rec.ReturnedAt = returnedAt
	rec.Notes = notes
	return nil
}

func (r *fakeRecordRepo) MarkOverdue(ctx context.Context, tx pgx.Tx, id string) error {
	if rec, ok := r.records[id]; ok && rec.Status == RecordActive {
		rec.Status = RecordOverdue
	}
	return nil
}

func (r *fakeRecordRepo) Get(ctx context.Context, id string) (Record, error) {
	if rec, ok := r.records[id]; ok {
		return *rec, nil
	}
	return Record{}, catalog.ErrNotFound
}

func (r *fakeRecordRepo) ListByBorrower(ctx context.Context, profileID string) ([]Record, error) {
	var out []Record
	for _, rec := range r.records {
		if rec.BorrowerID == profileID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) ListByItem(ctx context.Context, kind catalog.Kind, itemID string) ([]Record, error) {
	var out []Record
	for _, rec := range r.records {
		if kind == catalog.KindBook && rec.BookID != nil && *rec.BookID == itemID {
			out = append(out, *rec)
		}
		if kind == catalog.KindBundle && rec.BundleID != nil && *rec.BundleID == itemID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.Status == RecordActive && now.After(rec.DueAt) {
			rec.Status = RecordOverdue
			n++
		}
	}
	return n, nil
}

func newTestEngine(items *fakeItemStore, limits LimitChecker, records *fakeRecordRepo, now time.Time) *Engine {
	e := NewEngine(fakeTxRunner{}, items, limits, records)
	e.now = func() time.Time { return now }
	return e
}

func TestEngine_Borrow_Book(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", NLCode: "NL001", Status: catalog.StatusNormal}
	records := newFakeRecordRepo()
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, records, now)

	rec, err := engine.Borrow(ctx, "b1", "p1", "handle with care")
	require.NoError(t, err)

	assert.Equal(t, RecordActive, rec.Status)
	require.NotNil(t, rec.BookID)
	assert.Equal(t, "b1", *rec.BookID)
	assert.Nil(t, rec.BundleID)
	assert.Equal(t, now, rec.BorrowedAt)
	assert.Equal(t, now.Add(30*24*time.Hour), rec.DueAt)
	assert.Equal(t, "handle with care", rec.Notes)
	assert.Equal(t, catalog.StatusBorrowed, items.books["b1"].Status)
}

func TestEngine_Borrow_BookNotAvailable(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	blocked := []catalog.Status{
		catalog.StatusBorrowed,
		catalog.StatusBooked,
		catalog.StatusWrittenOff,
		catalog.StatusInBundle,
		catalog.StatusLost,
		catalog.StatusPreparing,
	}
	for _, status := range blocked {
		t.Run(string(status), func(t *testing.T) {
			items := newFakeItemStore()
			items.books["b1"] = &catalog.Book{ID: "b1", NLCode: "NL001", Status: status}
			engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), now)

			_, err := engine.Borrow(ctx, "b1", "p1", "")
			assert.ErrorIs(t, err, ErrNotAvailable)
			assert.Equal(t, status, items.books["b1"].Status)
		})
	}
}

func TestEngine_Borrow_EntitlementDenied(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	engine := newTestEngine(items, fakeLimitChecker{allow: false}, newFakeRecordRepo(), time.Now())

	_, err := engine.Borrow(ctx, "b1", "p1", "")
	assert.ErrorIs(t, err, ErrEntitlement)
	assert.Equal(t, catalog.StatusNormal, items.books["b1"].Status)
}

func TestEngine_Borrow_UnknownItem(t *testing.T) {
	engine := newTestEngine(newFakeItemStore(), fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

	_, err := engine.Borrow(context.Background(), "nope", "p1", "")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestEngine_Borrow_Bundle(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	items := newFakeItemStore()
	items.bundles["set1"] = &catalog.Bundle{ID: "set1", Code: "A12", Status: catalog.StatusNormal}
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusInBundle}
	items.books["b2"] = &catalog.Book{ID: "b2", Status: catalog.StatusInBundle}
	items.members["set1"] = []string{"b1", "b2"}
	records := newFakeRecordRepo()
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, records, now)

	rec, err := engine.Borrow(ctx, "set1", "p1", "")
	require.NoError(t, err)

	require.NotNil(t, rec.BundleID)
	assert.Equal(t, "set1", *rec.BundleID)
	assert.Equal(t, catalog.StatusBorrowed, items.bundles["set1"].Status)
	// member copies stay In Bundle while the set circulates
	assert.Equal(t, catalog.StatusInBundle, items.books["b1"].Status)
}

func TestEngine_Borrow_BundleUnavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("empty bundle", func(t *testing.T) {
		items := newFakeItemStore()
		items.bundles["set1"] = &catalog.Bundle{ID: "set1", Code: "A12", Status: catalog.StatusNormal}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		_, err := engine.Borrow(ctx, "set1", "p1", "")
		assert.ErrorIs(t, err, ErrNotAvailable)
	})

	t.Run("member not in bundle state", func(t *testing.T) {
		items := newFakeItemStore()
		items.bundles["set1"] = &catalog.Bundle{ID: "set1", Code: "A12", Status: catalog.StatusNormal}
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusLost}
		items.members["set1"] = []string{"b1"}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		_, err := engine.Borrow(ctx, "set1", "p1", "")
		assert.ErrorIs(t, err, ErrNotAvailable)
	})

	t.Run("bundle itself borrowed", func(t *testing.T) {
		items := newFakeItemStore()
		items.bundles["set1"] = &catalog.Bundle{ID: "set1", Code: "A12", Status: catalog.StatusBorrowed}
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusInBundle}
		items.members["set1"] = []string{"b1"}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		_, err := engine.Borrow(ctx, "set1", "p1", "")
		assert.ErrorIs(t, err, ErrNotAvailable)
	})
}

func TestEngine_Return_Book(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	records := newFakeRecordRepo()
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, records, now)

	borrowed, err := engine.Borrow(ctx, "b1", "p1", "initial note")
	require.NoError(t, err)

	returned, err := engine.Return(ctx, "b1", "slightly worn")
	require.NoError(t, err)

	assert.Equal(t, borrowed.ID, returned.ID)
	assert.Equal(t, RecordReturned, returned.Status)
	require.NotNil(t, returned.ReturnedAt)
	assert.Equal(t, now, *returned.ReturnedAt)
	assert.Equal(t, "initial note\nReturn notes: slightly worn", returned.Notes)
	assert.Equal(t, catalog.StatusNormal, items.books["b1"].Status)
}

func TestEngine_Return_BundledBookRestoresToInBundle(t *testing.T) {
	ctx := context.Background()

	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	items.memberships["b1"] = 1
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

	_, err := engine.Borrow(ctx, "b1", "p1", "")
	require.NoError(t, err)

	_, err = engine.Return(ctx, "b1", "")
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusInBundle, items.books["b1"].Status)
}

func TestEngine_Return_Bundle(t *testing.T) {
	ctx := context.Background()

	items := newFakeItemStore()
	items.bundles["set1"] = &catalog.Bundle{ID: "set1", Code: "A12", Status: catalog.StatusNormal}
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusInBundle}
	items.members["set1"] = []string{"b1"}
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

	_, err := engine.Borrow(ctx, "set1", "p1", "")
	require.NoError(t, err)

	_, err = engine.Return(ctx, "set1", "")
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNormal, items.bundles["set1"].Status)
}

func TestEngine_Return_NoOpenRecord(t *testing.T) {
	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

	_, err := engine.Return(context.Background(), "b1", "")
	assert.ErrorIs(t, err, ErrNoActiveRecord)
}

func TestEngine_Return_EmptyNotesLeaveTrailUntouched(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

	_, err := engine.Borrow(ctx, "b1", "p1", "original")
	require.NoError(t, err)

	returned, err := engine.Return(ctx, "b1", "")
	require.NoError(t, err)
	assert.Equal(t, "original", returned.Notes)
}

func TestEngine_MarkLost(t *testing.T) {
	ctx := context.Background()

	t.Run("borrowed book closes its record", func(t *testing.T) {
		items := newFakeItemStore()
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
		records := newFakeRecordRepo()
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, records, time.Now())

		borrowed, err := engine.Borrow(ctx, "b1", "p1", "")
		require.NoError(t, err)

		lost, err := engine.MarkLost(ctx, "b1")
		require.NoError(t, err)
		require.NotNil(t, lost)
		assert.Equal(t, borrowed.ID, lost.ID)
		assert.Equal(t, RecordLost, lost.Status)
		assert.Nil(t, lost.ReturnedAt)
		assert.Equal(t, catalog.StatusLost, items.books["b1"].Status)
	})

	t.Run("normal book without record", func(t *testing.T) {
		items := newFakeItemStore()
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		lost, err := engine.MarkLost(ctx, "b1")
		require.NoError(t, err)
		assert.Nil(t, lost)
		assert.Equal(t, catalog.StatusLost, items.books["b1"].Status)
	})

	t.Run("rejected from other statuses", func(t *testing.T) {
		for _, status := range []catalog.Status{catalog.StatusWrittenOff, catalog.StatusInBundle, catalog.StatusLost, catalog.StatusPreparing} {
			items := newFakeItemStore()
			items.books["b1"] = &catalog.Book{ID: "b1", Status: status}
			engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

			_, err := engine.MarkLost(ctx, "b1")
			assert.ErrorIs(t, err, catalog.ErrConflict, "status %s", status)
		}
	})

	t.Run("borrowed bundle", func(t *testing.T) {
		items := newFakeItemStore()
		items.bundles["set1"] = &catalog.Bundle{ID: "set1", Code: "A12", Status: catalog.StatusNormal}
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusInBundle}
		items.members["set1"] = []string{"b1"}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		_, err := engine.Borrow(ctx, "set1", "p1", "")
		require.NoError(t, err)

		lost, err := engine.MarkLost(ctx, "set1")
		require.NoError(t, err)
		require.NotNil(t, lost)
		assert.Equal(t, catalog.StatusLost, items.bundles["set1"].Status)
	})
}

func TestEngine_WriteOff(t *testing.T) {
	ctx := context.Background()

	t.Run("normal book", func(t *testing.T) {
		items := newFakeItemStore()
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		require.NoError(t, engine.WriteOff(ctx, "b1"))
		assert.Equal(t, catalog.StatusWrittenOff, items.books["b1"].Status)
	})

	t.Run("rejected when not normal", func(t *testing.T) {
		items := newFakeItemStore()
		items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusBorrowed}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		err := engine.WriteOff(ctx, "b1")
		assert.ErrorIs(t, err, catalog.ErrConflict)
		assert.Equal(t, catalog.StatusBorrowed, items.books["b1"].Status)
	})

	t.Run("rejected for bundles", func(t *testing.T) {
		items := newFakeItemStore()
		items.bundles["set1"] = &catalog.Bundle{ID: "set1", Status: catalog.StatusNormal}
		engine := newTestEngine(items, fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		err := engine.WriteOff(ctx, "set1")
		assert.ErrorIs(t, err, catalog.ErrConflict)
	})

	t.Run("unknown id", func(t *testing.T) {
		engine := newTestEngine(newFakeItemStore(), fakeLimitChecker{allow: true}, newFakeRecordRepo(), time.Now())

		err := engine.WriteOff(ctx, "nope")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestEngine_GetRecord_MaterializesOverdue(t *testing.T) {
	ctx := context.Background()
	borrowedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	records := newFakeRecordRepo()
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, records, borrowedAt)

	rec, err := engine.Borrow(ctx, "b1", "p1", "")
	require.NoError(t, err)

	t.Run("within loan period stays active", func(t *testing.T) {
		engine.now = func() time.Time { return borrowedAt.Add(29 * 24 * time.Hour) }
		got, err := engine.GetRecord(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, RecordActive, got.Status)
	})

	t.Run("past due becomes overdue and persists", func(t *testing.T) {
		engine.now = func() time.Time { return borrowedAt.Add(31 * 24 * time.Hour) }
		got, err := engine.GetRecord(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, RecordOverdue, got.Status)

		stored, err := records.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, RecordOverdue, stored.Status)
	})

	t.Run("overdue record can still be returned", func(t *testing.T) {
		returned, err := engine.Return(ctx, "b1", "late")
		require.NoError(t, err)
		assert.Equal(t, RecordReturned, returned.Status)
	})
}

func TestEngine_GetRecord_CorruptRow(t *testing.T) {
	records := newFakeRecordRepo()
	records.records["x"] = &Record{ID: "x", Status: RecordActive}
	engine := newTestEngine(newFakeItemStore(), fakeLimitChecker{allow: true}, records, time.Now())

	_, err := engine.GetRecord(context.Background(), "x")
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestEngine_SweepOverdue(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	items := newFakeItemStore()
	items.books["b1"] = &catalog.Book{ID: "b1", Status: catalog.StatusNormal}
	items.books["b2"] = &catalog.Book{ID: "b2", Status: catalog.StatusNormal}
	records := newFakeRecordRepo()
	engine := newTestEngine(items, fakeLimitChecker{allow: true}, records, start)

	_, err := engine.Borrow(ctx, "b1", "p1", "")
	require.NoError(t, err)

	engine.now = func() time.Time { return start.Add(15 * 24 * time.Hour) }
	_, err = engine.Borrow(ctx, "b2", "p2", "")
	require.NoError(t, err)

	engine.now = func() time.Time { return start.Add(32 * 24 * time.Hour) }
	n, err := engine.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// second run finds nothing new
	n, err = engine.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRecordStatus_Open(t *testing.T) {
	assert.True(t, RecordActive.Open())
	assert.True(t, RecordOverdue.Open())
	assert.False(t, RecordReturned.Open())
	assert.False(t, RecordLost.Open())
}

func TestAppendNotes(t *testing.T) {
	assert.Equal(t, "Return notes: worn", appendNotes("", "Return notes", "worn"))
	assert.Equal(t, "first\nReturn notes: worn", appendNotes("first", "Return notes", "worn"))
	assert.Equal(t, "first", appendNotes("first", "Return notes", ""))
}
