package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx for context plumbing; calling any method panics.
type fakeTx struct{ pgx.Tx }

func TestLockForUpdate(t *testing.T) {
	t.Parallel()

	b := Builder.Select("asset_id").From("listings").Where("asset_id = ?", 1)

	plain, _, err := LockForUpdate(context.Background(), b).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Contains(plain, "FOR UPDATE") {
		t.Errorf("lock outside a transaction: %s", plain)
	}

	locked, _, err := LockForUpdate(withTx(context.Background(), fakeTx{}), b).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.HasSuffix(locked, "FOR UPDATE") {
		t.Errorf("expected FOR UPDATE inside a transaction: %s", locked)
	}
}

func TestQuerierFromCtx_PrefersTx(t *testing.T) {
	t.Parallel()

	tx := fakeTx{}
	if q := QuerierFromCtx(withTx(context.Background(), tx), nil); q != Querier(tx) {
		t.Errorf("expected the context transaction, got %T", q)
	}
	if !inTx(withTx(context.Background(), tx)) || inTx(context.Background()) {
		t.Error("inTx disagrees with the context")
	}
}
