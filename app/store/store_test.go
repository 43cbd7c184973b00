package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/store"
)

func TestReadAbsentRecordYieldsDefault(t *testing.T) {
	st := store.New(store.NewMemoryDriver())

	var cart []models.CartItem
	ok, err := st.ReadRecord(store.KeyCart, &cart)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, cart)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	st := store.New(store.NewMemoryDriver())

	in := []models.User{{Name: "Asha", Email: "asha@example.com", Password: "pw"}}
	require.NoError(t, st.WriteRecord(store.KeyUsers, in))

	var out []models.User
	ok, err := st.ReadRecord(store.KeyUsers, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestWriteReplacesWholeRecord(t *testing.T) {
	st := store.New(store.NewMemoryDriver())

	require.NoError(t, st.WriteRecord(store.KeyCart, []models.CartItem{
		{ID: "pen-gel-smooth", Name: "Smooth Gel Pen (Pack of 3)", Price: 59, Qty: 2},
	}))
	require.NoError(t, st.WriteRecord(store.KeyCart, []models.CartItem{}))

	var cart []models.CartItem
	ok, err := st.ReadRecord(store.KeyCart, &cart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, cart)
}

func TestMalformedRecordIsParseFailure(t *testing.T) {
	driver := store.NewMemoryDriver()
	require.NoError(t, driver.Write(store.KeyCurrentUser, []byte("{not json")))

	st := store.New(driver)
	var user *models.User
	_, err := st.ReadRecord(store.KeyCurrentUser, &user)
	require.ErrorIs(t, err, store.ErrRecordParse)
}

func TestDeleteRecord(t *testing.T) {
	st := store.New(store.NewMemoryDriver())

	require.NoError(t, st.WriteRecord(store.KeyLastOrder, models.Order{ID: "QS1", Total: 59}))
	require.NoError(t, st.DeleteRecord(store.KeyLastOrder))

	var order *models.Order
	ok, err := st.ReadRecord(store.KeyLastOrder, &order)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResetClearsAllKeys(t *testing.T) {
	st := store.New(store.NewMemoryDriver())

	require.NoError(t, st.WriteRecord(store.KeyUsers, []models.User{{Email: "a@b.c"}}))
	require.NoError(t, st.WriteRecord(store.KeyCart, []models.CartItem{{ID: "x", Qty: 1}}))
	require.NoError(t, st.Reset())

	for _, key := range store.Keys() {
		var raw interface{}
		ok, err := st.ReadRecord(key, &raw)
		require.NoError(t, err)
		assert.False(t, ok, "key %s should be absent after Reset", key)
	}
}

func TestFileDriverRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := store.New(store.NewFileDriver(dir))

	in := []models.CartItem{{ID: "binder-clips", Name: "Binder Clips (Assorted, 24 pcs)", Price: 69, Qty: 3}}
	require.NoError(t, st.WriteRecord(store.KeyCart, in))

	// Record lands as a plain JSON file a user can inspect.
	assert.FileExists(t, filepath.Join(dir, store.KeyCart+".json"))

	var out []models.CartItem
	ok, err := st.ReadRecord(store.KeyCart, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)

	require.NoError(t, st.DeleteRecord(store.KeyCart))
	ok, err = st.ReadRecord(store.KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteDriverRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "qs_test.db")
	driver, err := store.NewSQLiteDriver(dsn)
	require.NoError(t, err)
	st := store.New(driver)

	require.NoError(t, st.WriteRecord(store.KeyLastOrder, models.Order{ID: "QS42", Total: 128, Timestamp: 1700000000000}))
	// Second write must replace, not duplicate.
	require.NoError(t, st.WriteRecord(store.KeyLastOrder, models.Order{ID: "QS43", Total: 256, Timestamp: 1700000001000}))

	var order models.Order
	ok, err := st.ReadRecord(store.KeyLastOrder, &order)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "QS43", order.ID)
	assert.Equal(t, 256, order.Total)
}
