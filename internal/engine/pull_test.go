package engine

import (
	"context"
	"testing"

	"syncloud/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullValidation(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	t.Run("missing table", func(t *testing.T) {
		_, err := e.Pull(ctx, PullRequest{Owner: "9999"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := e.Pull(ctx, PullRequest{Table: "categories"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := e.Pull(ctx, PullRequest{Table: "nope", Owner: "9999"})
		assert.ErrorIs(t, err, ErrUnknownTable)
	})

	t.Run("missing firmId on tenant table", func(t *testing.T) {
		_, err := e.Pull(ctx, PullRequest{Table: "categories", Owner: "9999"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("bad updatedAfter", func(t *testing.T) {
		_, err := e.Pull(ctx, PullRequest{Table: "categories", Owner: "9999", FirmID: "f1", UpdatedAfter: "yesterday"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestPullScopedToFirm(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	seedFirm(t, db, "f1", "9999")
	seedFirm(t, db, "f2", "9999")

	_, err := e.Push(ctx, PushRequest{Table: "categories", Owner: "9999", Records: []map[string]any{
		categoryRecord("c1", "f1", "a"),
	}})
	require.NoError(t, err)
	_, err = e.Push(ctx, PushRequest{Table: "categories", Owner: "9999", Records: []map[string]any{
		categoryRecord("c2", "f2", "b"),
	}})
	require.NoError(t, err)

	res, err := e.Pull(ctx, PullRequest{Table: "categories", Owner: "9999", FirmID: "f1"})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "c1", res.Records[0].RecordID())
}

func TestPullForbiddenWithoutGrant(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	seedFirm(t, db, "f1", "1111")

	_, err := e.Pull(ctx, PullRequest{Table: "categories", Owner: "2222", FirmID: "f1"})
	assert.ErrorIs(t, err, ErrForbidden)

	seedGrant(t, db, "f1", "2222", "viewer")
	res, err := e.Pull(ctx, PullRequest{Table: "categories", Owner: "2222", FirmID: "f1"})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestPullFirmsUnionOwnedAndShared(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	seedFirm(t, db, "f1", "1111")
	seedFirm(t, db, "f2", "2222")
	seedFirm(t, db, "f3", "3333")
	seedGrant(t, db, "f2", "1111", "accountant")

	res, err := e.Pull(ctx, PullRequest{Table: "firms", Owner: "1111"})
	require.NoError(t, err)

	ids := make([]string, 0, len(res.Records))
	for _, r := range res.Records {
		ids = append(ids, r.RecordID())
	}
	assert.ElementsMatch(t, []string{"f1", "f2"}, ids)
}

func TestPullFirmsNoDuplicateWhenOwnerAlsoGranted(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	seedFirm(t, db, "f1", "1111")
	// A stray grant pointing back at the owner must not duplicate the row.
	seedGrant(t, db, "f1", "1111", "admin")

	res, err := e.Pull(ctx, PullRequest{Table: "firms", Owner: "1111"})
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
}

func TestPullUpdatedAfter(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	seedFirm(t, db, "f1", "9999")

	old := categoryRecord("c1", "f1", "old")
	old["updatedAt"] = "2025-01-01T00:00:00Z"
	recent := categoryRecord("c2", "f1", "recent")
	recent["updatedAt"] = "2025-06-01T00:00:00Z"

	_, err := e.Push(ctx, PushRequest{Table: "categories", Owner: "9999", Records: []map[string]any{old, recent}})
	require.NoError(t, err)

	res, err := e.Pull(ctx, PullRequest{
		Table:        "categories",
		Owner:        "9999",
		FirmID:       "f1",
		UpdatedAfter: "2025-03-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "c2", res.Records[0].RecordID())

	// Strictly greater: a cursor equal to the row's timestamp excludes it.
	res, err = e.Pull(ctx, PullRequest{
		Table:        "categories",
		Owner:        "9999",
		FirmID:       "f1",
		UpdatedAfter: "2025-06-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestPullReturnsFullProjection(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	seedFirm(t, db, "f1", "9999")

	_, err := e.Push(ctx, PushRequest{Table: "parties", Owner: "9999", Records: []map[string]any{{
		"id":             "p1",
		"firmId":         "f1",
		"name":           "Acme Traders",
		"gstType":        "regular",
		"openingBalance": 1500.5,
		"createdAt":      "2025-01-01T00:00:00Z",
		"updatedAt":      "2025-01-01T00:00:00Z",
	}}})
	require.NoError(t, err)

	res, err := e.Pull(ctx, PullRequest{Table: "parties", Owner: "9999", FirmID: "f1"})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	party, ok := res.Records[0].(models.Party)
	require.True(t, ok)
	assert.Equal(t, "Acme Traders", party.Name)
	assert.Equal(t, "regular", party.GSTType)
	assert.Equal(t, 1500.5, party.OpeningBalance)
}
