package opt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type location struct {
	Path string `json:"path"`
}

func TestNone(t *testing.T) {
	assert.False(t, None[int]().IsDefined())
	assert.Equal(t, 0, None[int]().Value())
	assert.Nil(t, None[*string]().Value())
	assert.Nil(t, None[int]().Interface())
	assert.Equal(t, "[none]", None[int]().String())
}

func TestSome(t *testing.T) {
	assert.True(t, Some(0).IsDefined())
	assert.Equal(t, 201, Some(201).Value())
	assert.Equal(t, 201, Some(201).Interface())
	assert.Equal(t, "201", Some(201).String())
}

func TestStringUsesStringer(t *testing.T) {
	assert.Equal(t, "1s", Some(time.Second).String())
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, None[time.Time](), Timestamp(time.Time{}))
	issued := time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, Some(issued), Timestamp(issued))
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 200, None[int]().OrElse(200))
	assert.Equal(t, 204, Some(204).OrElse(200))
}

func TestMarshalUnmarshal(t *testing.T) {
	testMarshalUnmarshal(t, None[int](), "null")
	testMarshalUnmarshal(t, Some(true), "true")
	testMarshalUnmarshal(t, Some(location{Path: "/widgets/1"}), `{"path": "/widgets/1"}`)

	var m Maybe[location]
	assert.Error(t, m.UnmarshalJSON([]byte(`malformed json`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`{"path": true}`)))
}

func testMarshalUnmarshal[V any](t *testing.T, expected Maybe[V], expectedJSON string) {
	data, err := json.Marshal(expected)
	require.NoError(t, err)
	assert.JSONEq(t, expectedJSON, string(data))

	var actual Maybe[V]
	require.NoError(t, json.Unmarshal([]byte(expectedJSON), &actual))
	assert.Equal(t, expected, actual)
}
