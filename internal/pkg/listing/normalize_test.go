package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestNormalizeEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "plural key", body: `{"packages":[{"id":"1"},{"id":"2"}]}`, want: 2},
		{name: "data key", body: `{"data":[{"id":"1"}]}`, want: 1},
		{name: "bare array", body: `[{"id":"1"},{"id":"2"},{"id":"3"}]`, want: 3},
		{name: "nested data", body: `{"data":{"packages":[{"id":"1"}]}}`, want: 1},
		{name: "empty plural key", body: `{"packages":[]}`, want: 0},
		{name: "unrecognized object", body: `{"result":{"ok":true}}`, want: 0},
		{name: "scalar", body: `42`, want: 0},
		{name: "garbage", body: `not json`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]byte(tt.body), "packages")
			assert.Len(t, got, tt.want)
		})
	}
}

func TestNormalizeResolutionOrder(t *testing.T) {
	// The plural key wins over data when both are arrays.
	body := `{"packages":[{"id":"p"}],"data":[{"id":"d1"},{"id":"d2"}]}`
	got := Normalize([]byte(body), "packages")
	require.Len(t, got, 1)

	// data wins when the plural key is not an array.
	body = `{"packages":{"count":1},"data":[{"id":"d1"},{"id":"d2"}]}`
	got = Normalize([]byte(body), "packages")
	require.Len(t, got, 2)
}

func TestNormalizeSameLogicalList(t *testing.T) {
	bodies := []string{
		`{"packages":[{"id":"1","name":"Basic"}]}`,
		`{"data":[{"id":"1","name":"Basic"}]}`,
		`[{"id":"1","name":"Basic"}]`,
		`{"data":{"packages":[{"id":"1","name":"Basic"}]}}`,
	}
	for _, body := range bodies {
		items := DecodeList[record]([]byte(body), "packages")
		require.Len(t, items, 1, "body: %s", body)
		assert.Equal(t, record{ID: "1", Name: "Basic"}, items[0])
	}
}

func TestDecodeListSkipsMalformedRecords(t *testing.T) {
	body := `[{"id":"1"},{"id":42},{"id":"3"}]`
	items := DecodeList[record]([]byte(body), "packages")
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}

func TestDecodeOne(t *testing.T) {
	item, ok := DecodeOne[record]([]byte(`{"id":"1","name":"Basic"}`), "data", "package")
	require.True(t, ok)
	assert.Equal(t, "Basic", item.Name)

	item, ok = DecodeOne[record]([]byte(`{"data":{"id":"2","name":"Pro"}}`), "data", "package")
	require.True(t, ok)
	assert.Equal(t, "2", item.ID)

	item, ok = DecodeOne[record]([]byte(`{"package":{"id":"3"}}`), "data", "package")
	require.True(t, ok)
	assert.Equal(t, "3", item.ID)

	_, ok = DecodeOne[record]([]byte(`[1,2,3]`), "data")
	assert.False(t, ok)
}
