package jsonstore

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
)

var zone = time.FixedZone("UTC+1", 60*60)

func fixedClock() func() time.Time {
	t := time.Date(2024, time.March, 5, 10, 0, 0, 0, zone)
	return func() time.Time { return t }
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts = append([]Option{
		WithLogger(log.New(&logs)),
		WithClock(fixedClock()),
		WithLocation(zone),
	}, opts...)
	return New(filepath.Join(t.TempDir(), "db.json"), opts...), &logs
}

func TestNew_DefaultPath(t *testing.T) {
	require.Equal(t, "db.json", New("").Path())
}

func TestLoad_CreatesMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Load())
	require.Empty(t, s.Todos())

	_, err := os.Stat(s.Path())
	require.NoError(t, err)
}

func TestLoad_EmptyAndWhitespace(t *testing.T) {
	for _, content := range []string{"", "   \n\t\n"} {
		s, logs := newTestStore(t)
		s.Add("left over")
		require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

		require.NoError(t, s.Load())
		require.Empty(t, s.Todos())
		require.Empty(t, logs.String())
	}
}

func TestLoad_InvalidContentKeepsCurrentTodos(t *testing.T) {
	for _, content := range []string{"{not json", `[1, 2, 3]`, `{"other": []}`, `{"todos": "nope"}`} {
		s, logs := newTestStore(t)
		kept := s.Add("keep me")
		require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

		require.NoError(t, s.Load(), content)
		require.Equal(t, []model.Todo{kept}, s.Todos(), content)
		require.Contains(t, logs.String(), "could not parse todo file", content)
	}
}

func TestLoad_AcceptsOddButWellFormedData(t *testing.T) {
	s, _ := newTestStore(t)
	doc := `{"todos":[{"id":1,"timestamp":-5,"date":"whenever","text":"","completed":true}]}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o644))

	require.NoError(t, s.Load())
	require.Equal(t, []model.Todo{{ID: 1, CreatedAt: -5, CreatedDate: "whenever", Completed: true}}, s.Todos())
}

func TestLoad_DirectoryIsIOError(t *testing.T) {
	s := New(t.TempDir(), WithLogger(log.New(&bytes.Buffer{})))
	require.Error(t, s.Load())
}

func TestSave_RequiresExistingFile(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("never written")

	err := s.Save()
	require.ErrorIs(t, err, fs.ErrNotExist)
	_, statErr := os.Stat(s.Path())
	require.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestSave_EmptyCollection(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Save())

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, "{\n  \"todos\": []\n}", string(b))
}

func TestSave_TruncatesAndPrettyPrints(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), bytes.Repeat([]byte("x"), 4096), 0o644))
	require.NoError(t, s.Load())
	s.Add("buy milk")
	require.NoError(t, s.Save())

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.NotContains(t, string(b), "xxxx")
	require.Contains(t, string(b), "\n  \"todos\": [\n    {\n      \"id\": ")
	require.Contains(t, string(b), `"timestamp": 1709629200`)
	require.Contains(t, string(b), `"date": "05/03/2024"`)
	require.Contains(t, string(b), `"text": "buy milk"`)
	require.Contains(t, string(b), `"completed": false`)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	a := s.Add("first")
	s.Add("second")
	s.Add("third")
	s.MarkCompleted(a.ID)
	require.NoError(t, s.Save())

	reloaded := New(s.Path(), WithLogger(log.New(&bytes.Buffer{})))
	require.NoError(t, reloaded.Load())
	require.Equal(t, s.Todos(), reloaded.Todos())
}

func TestAdd_AppendsIncompleteTodoWithFreshID(t *testing.T) {
	s, _ := newTestStore(t)
	first := s.Add("first")
	got := s.Add("buy milk")

	require.Equal(t, 2, s.Len())
	require.Equal(t, got, s.Todos()[1])
	require.Equal(t, "buy milk", got.Text)
	require.False(t, got.Completed)
	require.Equal(t, int64(1709629200), got.CreatedAt)
	require.Equal(t, "05/03/2024", got.CreatedDate)
	require.NotEqual(t, first.ID, got.ID, "same-second creations must not collide")
	require.Greater(t, got.ID, first.ID)
}

func TestAdd_IDFollowsClock(t *testing.T) {
	current := time.Date(2024, time.March, 5, 10, 0, 0, 0, zone)
	s, _ := newTestStore(t, WithClock(func() time.Time { return current }))

	a := s.Add("a")
	current = current.Add(time.Hour)
	b := s.Add("b")

	require.Equal(t, current.Unix(), b.ID)
	require.Greater(t, b.ID, a.ID)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.Add("a")
	b := s.Add("b")
	c := s.Add("c")

	s.Remove(b.ID)
	require.Equal(t, []model.Todo{a, c}, s.Todos())

	s.Remove(12345)
	require.Equal(t, []model.Todo{a, c}, s.Todos())
}

func TestMarkUnmarkCompleted(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.Add("a")
	b := s.Add("b")

	s.MarkCompleted(a.ID)
	s.MarkCompleted(a.ID)
	require.True(t, s.Todos()[0].Completed)
	require.False(t, s.Todos()[1].Completed)

	s.UnmarkCompleted(a.ID)
	require.False(t, s.Todos()[0].Completed)

	s.UnmarkCompleted(b.ID)
	s.MarkCompleted(b.ID)
	require.True(t, s.Todos()[1].Completed)

	s.MarkCompleted(999)
	require.Len(t, s.Todos(), 2)
}

func TestAt(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.Add("a")

	got, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, a, got)

	for _, i := range []int{-1, 1, 10} {
		_, err := s.At(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}
